package core_test

import (
	"testing"

	"github.com/vovakirdan/colour-flood/internal/games/flood/core"
)

const (
	A core.Color = "#A"
	B core.Color = "#B"
	C core.Color = "#C"
)

// scriptRand replays a fixed sequence of picks, wrapping when exhausted.
type scriptRand struct {
	picks []int
	pos   int
}

func (r *scriptRand) Intn(n int) int {
	if len(r.picks) == 0 {
		return 0
	}
	v := r.picks[r.pos%len(r.picks)] % n
	r.pos++
	return v
}

func grid(rows ...[]core.Color) *core.Grid {
	return core.GridFromRows(rows)
}

func stateFor(g *core.Grid, moves int) core.State {
	return core.NewState(g, moves, 0, 1, "test", []core.Color{A, B, C})
}

// reachable computes the anchor component with a plain BFS, independently of core.ComputeRegion.
func reachable(g *core.Grid) map[core.Coord]bool {
	seen := map[core.Coord]bool{core.Anchor: true}
	target := g.At(core.Anchor)
	queue := []core.Coord{core.Anchor}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, d := range []core.Coord{{Row: 1}, {Row: -1}, {Col: 1}, {Col: -1}} {
			n := core.RC(cur.Row+d.Row, cur.Col+d.Col)
			if g.InBounds(n) && !seen[n] && g.At(n) == target {
				seen[n] = true
				queue = append(queue, n)
			}
		}
	}
	return seen
}

// checkInvariants asserts the region/status invariants that must hold for every reachable state.
func checkInvariants(t *testing.T, s core.State) {
	t.Helper()

	if !s.Region.Contains(core.Anchor) {
		t.Fatalf("anchor not in region")
	}
	for _, c := range s.Region.Cells() {
		if got := s.Grid.At(c); got != s.ActiveColor {
			t.Fatalf("region cell %v has color %v, expected %v", c, got, s.ActiveColor)
		}
	}

	want := reachable(s.Grid)
	if len(want) != s.Region.Len() {
		t.Fatalf("region size = %d, expected %d", s.Region.Len(), len(want))
	}
	for c := range want {
		if !s.Region.Contains(c) {
			t.Fatalf("reachable cell %v missing from region", c)
		}
	}

	full := s.Region.Len() == s.Grid.Area()
	if (s.Status == core.StatusWon) != full {
		t.Fatalf("status = %v with region %d/%d", s.Status, s.Region.Len(), s.Grid.Area())
	}
	if full != s.Grid.Uniform() {
		t.Fatalf("full region = %v but uniform grid = %v", full, s.Grid.Uniform())
	}
	if s.Status == core.StatusLost && (s.MovesLeft != 0 || full) {
		t.Fatalf("lost with movesLeft=%d full=%v", s.MovesLeft, full)
	}
	if s.Status == core.StatusPlaying && s.MovesLeft <= 0 {
		t.Fatalf("playing with movesLeft=%d", s.MovesLeft)
	}
}
