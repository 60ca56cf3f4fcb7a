package core_test

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/vovakirdan/colour-flood/internal/games/flood/core"
)

func testPalette(name string) core.Palette {
	return core.Palette{
		Name:   name,
		Colors: []core.Color{A, B, C, "#D", "#E", "#F"},
	}
}

func TestColorCount(t *testing.T) {
	thresholds := []int{5, 10, 15}
	tests := []struct {
		level int
		want  int
	}{
		{1, 3}, {4, 3}, {5, 4}, {9, 4}, {10, 5}, {14, 5}, {15, 6}, {40, 6},
	}

	for _, tt := range tests {
		if got := core.ColorCount(tt.level, 3, thresholds); got != tt.want {
			t.Errorf("ColorCount(%d) = %d, expected %d", tt.level, got, tt.want)
		}
	}
}

func TestPerfectClear(t *testing.T) {
	rules := core.DefaultRules()
	tests := []struct {
		movesLeft int
		want      bool
	}{
		{25, true},
		{11, true}, // 14 used
		{10, false},
		{0, false},
	}

	for _, tt := range tests {
		if got := rules.PerfectClear(tt.movesLeft); got != tt.want {
			t.Errorf("PerfectClear(%d) = %v, expected %v", tt.movesLeft, got, tt.want)
		}
	}
}

func TestNewEngineValidation(t *testing.T) {
	short := core.Palette{Name: "short", Colors: []core.Color{A, B}}
	zeroGrid := core.DefaultRules()
	zeroGrid.GridSize = 0
	zeroMoves := core.DefaultRules()
	zeroMoves.DefaultMoves = 0

	tests := []struct {
		name     string
		rules    core.Rules
		palettes []core.Palette
		want     error
	}{
		{"no palettes", core.DefaultRules(), nil, core.ErrEmptyPalette},
		{"palette too small", core.DefaultRules(), []core.Palette{short}, core.ErrEmptyPalette},
		{"zero grid", zeroGrid, []core.Palette{testPalette("p")}, core.ErrBadRules},
		{"zero moves", zeroMoves, []core.Palette{testPalette("p")}, core.ErrBadRules},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := core.NewEngine(tt.rules, tt.palettes, rand.New(rand.NewSource(1)))
			if !errors.Is(err, tt.want) {
				t.Errorf("NewEngine() error = %v, expected %v", err, tt.want)
			}
		})
	}
}

func TestGenerateEmptyPalette(t *testing.T) {
	if _, err := core.Generate(4, nil, rand.New(rand.NewSource(1))); !errors.Is(err, core.ErrEmptyPalette) {
		t.Errorf("Generate() error = %v, expected ErrEmptyPalette", err)
	}
}

func TestGenerateUsesSelection(t *testing.T) {
	colors := []core.Color{A, B, C}
	g, err := core.Generate(14, colors, rand.New(rand.NewSource(3)))
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if g.Area() != 196 {
		t.Errorf("area = %d, expected 196", g.Area())
	}
	counts := g.CountByColor()
	for color := range counts {
		if color != A && color != B && color != C {
			t.Errorf("unexpected color %v", color)
		}
	}
	if len(counts) != 3 {
		t.Errorf("expected all three colors on a 14x14 board, got %d", len(counts))
	}
}

func TestStartNewGame(t *testing.T) {
	e, err := core.NewEngine(core.DefaultRules(), []core.Palette{testPalette("p")}, rand.New(rand.NewSource(9)))
	if err != nil {
		t.Fatalf("NewEngine failed: %v", err)
	}

	s := e.Snapshot()
	if s.Level != 1 || s.Score != 0 || s.MovesLeft != 25 {
		t.Errorf("new game = level %d score %d moves %d", s.Level, s.Score, s.MovesLeft)
	}
	if len(s.Selection) != 3 {
		t.Errorf("selection = %d colors, expected 3", len(s.Selection))
	}
	if s.Grid.Size != 14 {
		t.Errorf("grid size = %d, expected 14", s.Grid.Size)
	}
	checkInvariants(t, s)
}

func TestStartNextLevelBonus(t *testing.T) {
	// Uniform boards are won before any move is made.
	e, err := core.NewEngine(core.DefaultRules(), []core.Palette{testPalette("p")}, &scriptRand{})
	if err != nil {
		t.Fatalf("NewEngine failed: %v", err)
	}
	if s := e.Snapshot(); s.Status != core.StatusWon {
		t.Fatalf("status = %v, expected won on a uniform board", s.Status)
	}

	for level := 2; level <= 16; level++ {
		s := e.StartNextLevel()
		if s.Level != level {
			t.Fatalf("level = %d, expected %d", s.Level, level)
		}
		if want := 500 * (level - 1); s.Score != want {
			t.Errorf("level %d score = %d, expected %d", level, s.Score, want)
		}
		if want := core.ColorCount(level, 3, []int{5, 10, 15}); len(s.Selection) != want {
			t.Errorf("level %d selection = %d, expected %d", level, len(s.Selection), want)
		}
		if s.MovesLeft != 25 {
			t.Errorf("level %d movesLeft = %d, expected 25", level, s.MovesLeft)
		}
	}
}

func TestStartNextLevelNoBonus(t *testing.T) {
	rules := core.DefaultRules()
	rules.GridSize = 3
	rules.DefaultMoves = 3
	rules.PerfectUnder = 1

	// Board: A B A / B A B / A B A.
	e, err := core.NewEngine(rules, []core.Palette{testPalette("p")}, &scriptRand{picks: []int{0, 1}})
	if err != nil {
		t.Fatalf("NewEngine failed: %v", err)
	}
	s, res, err := e.ApplyMove(B)
	if err != nil {
		t.Fatalf("ApplyMove failed: %v", err)
	}

	next := e.StartNextLevel()
	if next.Score != s.Score {
		t.Errorf("score = %d, expected %d without bonus (gained %d)", next.Score, s.Score, res.Gained)
	}
	if next.Level != 2 {
		t.Errorf("level = %d, expected 2", next.Level)
	}
}

func TestResetLevelKeepsProgress(t *testing.T) {
	e, err := core.NewEngine(core.DefaultRules(), []core.Palette{testPalette("p")}, &scriptRand{})
	if err != nil {
		t.Fatalf("NewEngine failed: %v", err)
	}
	e.StartNextLevel()
	e.StartNextLevel()

	s := e.ResetLevel()
	if s.Level != 3 || s.Score != 1000 {
		t.Errorf("after reset level %d score %d, expected 3 and 1000", s.Level, s.Score)
	}
	if s.MovesLeft != 25 {
		t.Errorf("movesLeft = %d, expected 25", s.MovesLeft)
	}

	s = e.StartNewGame()
	if s.Level != 1 || s.Score != 0 {
		t.Errorf("new game level %d score %d, expected 1 and 0", s.Level, s.Score)
	}
}

func TestCyclePalette(t *testing.T) {
	palettes := []core.Palette{testPalette("one"), testPalette("two"), testPalette("three")}
	e, err := core.NewEngine(core.DefaultRules(), palettes, rand.New(rand.NewSource(5)))
	if err != nil {
		t.Fatalf("NewEngine failed: %v", err)
	}

	want := []string{"two", "three", "one", "two"}
	for _, name := range want {
		s := e.CyclePalette()
		if s.Palette != name {
			t.Errorf("palette = %q, expected %q", s.Palette, name)
		}
		checkInvariants(t, s)
	}

	// Spent moves stay spent across a palette change.
	s := e.Snapshot()
	for _, c := range s.Selection {
		if c != s.ActiveColor && s.Status == core.StatusPlaying {
			s, _, _ = e.ApplyMove(c)
			break
		}
	}
	left := s.MovesLeft
	if s.Status == core.StatusPlaying {
		if got := e.CyclePalette().MovesLeft; got != left {
			t.Errorf("MovesLeft after cycle = %d, expected %d", got, left)
		}
	}

	if !e.SelectPalette("three") || e.Snapshot().Palette != "three" {
		t.Errorf("SelectPalette(three) did not switch")
	}
	if e.SelectPalette("missing") {
		t.Errorf("SelectPalette(missing) reported success")
	}
}

func TestCyclePaletteAfterLossRestoresBudget(t *testing.T) {
	rules := core.DefaultRules()
	rules.DefaultMoves = 1
	palettes := []core.Palette{testPalette("one"), testPalette("two")}
	e, err := core.NewEngine(rules, palettes, rand.New(rand.NewSource(9)))
	if err != nil {
		t.Fatalf("NewEngine failed: %v", err)
	}

	s := e.Snapshot()
	for _, c := range s.Selection {
		if c != s.ActiveColor {
			s, _, _ = e.ApplyMove(c)
			break
		}
	}
	if s.Status != core.StatusLost {
		t.Fatalf("status = %v, expected lost after the only move", s.Status)
	}

	s = e.CyclePalette()
	if s.MovesLeft != 1 || s.Status == core.StatusLost {
		t.Errorf("cycle after loss: movesLeft %d status %v", s.MovesLeft, s.Status)
	}
	checkInvariants(t, s)
}

func TestEngineDeterministic(t *testing.T) {
	play := func() core.State {
		e, err := core.NewEngine(core.DefaultRules(), []core.Palette{testPalette("p")}, rand.New(rand.NewSource(42)))
		if err != nil {
			t.Fatalf("NewEngine failed: %v", err)
		}
		for i := 0; i < 8; i++ {
			s := e.Snapshot()
			if s.Status != core.StatusPlaying {
				break
			}
			for _, c := range s.Selection {
				if c != s.ActiveColor {
					_, _, _ = e.ApplyMove(c)
					break
				}
			}
		}
		return e.Snapshot()
	}

	a, b := play(), play()
	if !a.Grid.Equal(b.Grid) || a.Score != b.Score || a.MovesLeft != b.MovesLeft {
		t.Errorf("same seed produced different games")
	}
}

func TestSnapshotIsolation(t *testing.T) {
	e, err := core.NewEngine(core.DefaultRules(), []core.Palette{testPalette("p")}, rand.New(rand.NewSource(11)))
	if err != nil {
		t.Fatalf("NewEngine failed: %v", err)
	}

	snap := e.Snapshot()
	snap.Grid.Set(core.Anchor, "#Z")
	snap.Selection[0] = "#Z"

	fresh := e.Snapshot()
	if fresh.Grid.At(core.Anchor) == "#Z" || fresh.Selection[0] == "#Z" {
		t.Errorf("mutating a snapshot leaked into the engine")
	}
}

func TestRandomPlayInvariants(t *testing.T) {
	rules := core.DefaultRules()
	rules.GridSize = 8
	rng := rand.New(rand.NewSource(2024))

	for game := 0; game < 30; game++ {
		e, err := core.NewEngine(rules, []core.Palette{testPalette("p")}, rand.New(rand.NewSource(int64(game))))
		if err != nil {
			t.Fatalf("NewEngine failed: %v", err)
		}
		for step := 0; step < 40; step++ {
			s := e.Snapshot()
			checkInvariants(t, s)
			if s.Status != core.StatusPlaying {
				break
			}

			color := s.Selection[rng.Intn(len(s.Selection))]
			after, _, err := e.ApplyMove(color)
			switch {
			case color == s.ActiveColor:
				if !errors.Is(err, core.ErrInvalidMove) || after.MovesLeft != s.MovesLeft {
					t.Fatalf("same-color move was not rejected cleanly")
				}
			case err != nil:
				t.Fatalf("ApplyMove failed: %v", err)
			case after.MovesLeft != s.MovesLeft-1:
				t.Fatalf("movesLeft = %d, expected %d", after.MovesLeft, s.MovesLeft-1)
			}
		}
	}
}
