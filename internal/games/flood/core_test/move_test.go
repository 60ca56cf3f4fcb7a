package core_test

import (
	"errors"
	"testing"

	"github.com/vovakirdan/colour-flood/internal/games/flood/core"
)

func TestMultiplierBoundaries(t *testing.T) {
	rules := core.DefaultMultipliers()
	tests := []struct {
		newTiles   int
		multiplier float64
		increment  int
	}{
		{0, 1, 0},
		{1, 1, 1},
		{10, 1, 10},
		{11, 1.5, 16},
		{13, 1.5, 19},
		{20, 1.5, 30},
		{21, 2, 42},
		{50, 2, 100},
	}

	for _, tt := range tests {
		if got := core.Multiplier(tt.newTiles, rules); got != tt.multiplier {
			t.Errorf("Multiplier(%d) = %v, expected %v", tt.newTiles, got, tt.multiplier)
		}
		if got := core.ScoreIncrement(tt.newTiles, rules); got != tt.increment {
			t.Errorf("ScoreIncrement(%d) = %d, expected %d", tt.newTiles, got, tt.increment)
		}
	}
}

func TestMultiplierRuleOrderIrrelevant(t *testing.T) {
	reversed := []core.MultiplierRule{{Over: 10, Factor: 1.5}, {Over: 20, Factor: 2}}
	if got := core.Multiplier(25, reversed); got != 2 {
		t.Errorf("Multiplier(25) = %v, expected 2", got)
	}
	if got := core.Multiplier(5, nil); got != 1 {
		t.Errorf("Multiplier with no rules = %v, expected 1", got)
	}
}

func TestApplyMoveExample(t *testing.T) {
	s := stateFor(grid(
		[]core.Color{A, B, A},
		[]core.Color{B, B, A},
		[]core.Color{A, A, B},
	), 25)

	if s.Region.Len() != 1 {
		t.Fatalf("initial region = %d, expected 1", s.Region.Len())
	}

	res, err := core.ApplyMove(&s, B, core.DefaultMultipliers())
	if err != nil {
		t.Fatalf("ApplyMove failed: %v", err)
	}

	want := grid(
		[]core.Color{B, B, A},
		[]core.Color{B, B, A},
		[]core.Color{A, A, B},
	)
	if !s.Grid.Equal(want) {
		t.Errorf("grid after move:\n%s\nexpected:\n%s", s.Grid, want)
	}
	if s.Region.Len() != 4 {
		t.Errorf("region = %d, expected 4", s.Region.Len())
	}
	if s.Region.Contains(core.RC(2, 2)) {
		t.Errorf("disconnected (2,2) must not join the region")
	}
	if len(res.NewTiles) != 3 || res.Multiplier != 1 || res.Gained != 3 {
		t.Errorf("result = %+v, expected 3 tiles at 1x", res)
	}
	if s.Score != 3 {
		t.Errorf("score = %d, expected 3", s.Score)
	}
	if s.MovesLeft != 24 {
		t.Errorf("movesLeft = %d, expected 24", s.MovesLeft)
	}
	if s.ActiveColor != B {
		t.Errorf("activeColor = %v, expected %v", s.ActiveColor, B)
	}
	if s.Status != core.StatusPlaying {
		t.Errorf("status = %v, expected playing", s.Status)
	}
	checkInvariants(t, s)
}

func TestApplyMoveRejected(t *testing.T) {
	tests := []struct {
		name   string
		status core.Status
		color  core.Color
	}{
		{"same color", core.StatusPlaying, A},
		{"after win", core.StatusWon, B},
		{"after loss", core.StatusLost, B},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := stateFor(grid([]core.Color{A, B}, []core.Color{B, A}), 5)
			s.Status = tt.status
			before := s.Clone()

			_, err := core.ApplyMove(&s, tt.color, core.DefaultMultipliers())
			if !errors.Is(err, core.ErrInvalidMove) {
				t.Fatalf("ApplyMove() error = %v, expected ErrInvalidMove", err)
			}
			if !s.Grid.Equal(before.Grid) || s.MovesLeft != before.MovesLeft || s.Score != before.Score {
				t.Errorf("rejected move changed state")
			}
			if s.Status != tt.status || s.ActiveColor != before.ActiveColor {
				t.Errorf("rejected move changed status or color")
			}
		})
	}
}

func TestApplyMoveWinBeatsLoss(t *testing.T) {
	s := stateFor(grid([]core.Color{A, B}, []core.Color{B, B}), 1)

	res, err := core.ApplyMove(&s, B, core.DefaultMultipliers())
	if err != nil {
		t.Fatalf("ApplyMove failed: %v", err)
	}
	if s.Status != core.StatusWon || res.Status != core.StatusWon {
		t.Errorf("status = %v, expected won on the last move", s.Status)
	}
	if s.MovesLeft != 0 {
		t.Errorf("movesLeft = %d, expected 0", s.MovesLeft)
	}
	checkInvariants(t, s)
}

func TestApplyMoveLoss(t *testing.T) {
	s := stateFor(grid(
		[]core.Color{A, B, A},
		[]core.Color{B, A, B},
		[]core.Color{A, B, A},
	), 1)

	if _, err := core.ApplyMove(&s, B, core.DefaultMultipliers()); err != nil {
		t.Fatalf("ApplyMove failed: %v", err)
	}
	if s.Status != core.StatusLost {
		t.Errorf("status = %v, expected lost", s.Status)
	}
	checkInvariants(t, s)

	if _, err := core.ApplyMove(&s, A, core.DefaultMultipliers()); !errors.Is(err, core.ErrInvalidMove) {
		t.Errorf("move after loss error = %v, expected ErrInvalidMove", err)
	}
}

func TestApplyMoveMultiplierScoring(t *testing.T) {
	tests := []struct {
		name  string
		size  int
		score int
	}{
		{"3x3 gains 8 at 1x", 3, 8},
		{"4x4 gains 15 at 1.5x", 4, 22},
		{"5x5 gains 24 at 2x", 5, 48},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := core.NewGrid(tt.size, B)
			g.Set(core.Anchor, A)
			s := stateFor(g, 3)

			if _, err := core.ApplyMove(&s, B, core.DefaultMultipliers()); err != nil {
				t.Fatalf("ApplyMove failed: %v", err)
			}
			if s.Score != tt.score {
				t.Errorf("score = %d, expected %d", s.Score, tt.score)
			}
			if s.Status != core.StatusWon {
				t.Errorf("status = %v, expected won", s.Status)
			}
		})
	}
}

func TestRegionNeverShrinks(t *testing.T) {
	s := stateFor(grid(
		[]core.Color{A, B, C, A},
		[]core.Color{C, A, B, B},
		[]core.Color{B, C, A, C},
		[]core.Color{A, B, C, A},
	), 20)

	for _, color := range []core.Color{C, B, A, C, B, A, C, B} {
		if s.Status != core.StatusPlaying {
			break
		}
		if color == s.ActiveColor {
			continue
		}
		prevLen := s.Region.Len()
		prevMoves := s.MovesLeft
		if _, err := core.ApplyMove(&s, color, core.DefaultMultipliers()); err != nil {
			t.Fatalf("ApplyMove(%v) failed: %v", color, err)
		}
		if s.Region.Len() < prevLen {
			t.Errorf("region shrank from %d to %d", prevLen, s.Region.Len())
		}
		if s.MovesLeft != prevMoves-1 {
			t.Errorf("movesLeft = %d, expected %d", s.MovesLeft, prevMoves-1)
		}
		checkInvariants(t, s)
	}
}
