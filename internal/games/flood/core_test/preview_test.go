package core_test

import (
	"testing"

	"github.com/vovakirdan/colour-flood/internal/games/flood/core"
)

func TestPreviewDoesNotMutate(t *testing.T) {
	s := stateFor(grid(
		[]core.Color{A, B, A},
		[]core.Color{B, B, A},
		[]core.Color{A, A, B},
	), 25)
	before := s.Clone()

	p := core.Preview(&s, B, core.DefaultMultipliers())
	if len(p.NewTiles) != 3 {
		t.Errorf("preview tiles = %d, expected 3", len(p.NewTiles))
	}
	if p.Multiplier != 1 {
		t.Errorf("preview multiplier = %v, expected 1", p.Multiplier)
	}
	for _, c := range []core.Coord{core.RC(0, 1), core.RC(1, 0), core.RC(1, 1)} {
		if !p.Contains(c) {
			t.Errorf("preview missing %v", c)
		}
	}

	if !s.Grid.Equal(before.Grid) {
		t.Errorf("preview mutated the grid")
	}
	if s.Region.Len() != before.Region.Len() || s.Score != before.Score || s.MovesLeft != before.MovesLeft {
		t.Errorf("preview mutated region, score or moves")
	}
}

func TestPreviewEmpty(t *testing.T) {
	s := stateFor(grid([]core.Color{A, B}, []core.Color{B, B}), 5)

	if p := core.Preview(&s, A, core.DefaultMultipliers()); !p.Empty() || p.Multiplier != 1 {
		t.Errorf("preview of active color = %+v, expected empty", p)
	}

	s.Status = core.StatusLost
	if p := core.Preview(&s, B, core.DefaultMultipliers()); !p.Empty() {
		t.Errorf("preview on finished level = %+v, expected empty", p)
	}
}

func TestPreviewMatchesApplyMove(t *testing.T) {
	e, err := core.NewEngine(core.DefaultRules(), []core.Palette{testPalette("p")}, &scriptRand{picks: []int{0, 1, 2, 2, 1, 0, 1}})
	if err != nil {
		t.Fatalf("NewEngine failed: %v", err)
	}

	for i := 0; i < 10; i++ {
		s := e.Snapshot()
		if s.Status != core.StatusPlaying {
			break
		}
		color := s.Selection[(i+1)%len(s.Selection)]
		if color == s.ActiveColor {
			color = s.Selection[(i+2)%len(s.Selection)]
		}

		p := e.PreviewMove(color)
		_, res, err := e.ApplyMove(color)
		if err != nil {
			t.Fatalf("ApplyMove failed: %v", err)
		}
		if len(p.NewTiles) != len(res.NewTiles) || p.Multiplier != res.Multiplier {
			t.Errorf("move %d: preview %d tiles at %v, applied %d at %v",
				i, len(p.NewTiles), p.Multiplier, len(res.NewTiles), res.Multiplier)
		}
	}
}
