package flood

import (
	"strings"
	"testing"

	"github.com/vovakirdan/colour-flood/internal/config"
	"github.com/vovakirdan/colour-flood/internal/core"
)

func newGame(t *testing.T, seed int64) *Game {
	t.Helper()
	g := New()
	g.Reset(core.RuntimeConfig{Seed: seed, ScreenW: 80, ScreenH: 24, TickRate: 30})
	if g.Err() != nil {
		t.Fatalf("Reset() failed: %v", g.Err())
	}
	return g
}

// withConfig swaps the package config for the duration of a test.
func withConfig(t *testing.T, mutate func(*config.FloodConfig)) {
	t.Helper()
	prev := GetConfig()
	cfg := config.DefaultFloodConfig()
	mutate(&cfg)
	SetConfig(cfg)
	t.Cleanup(func() { SetConfig(prev) })
}

// playable returns a colour slot that grows the region, or any slot other
// than the active colour.
func playable(g *Game) int {
	fallback := -1
	for i, c := range g.state.Selection {
		if c == g.state.ActiveColor {
			continue
		}
		if !g.engine.PreviewMove(c).Empty() {
			return i
		}
		if fallback < 0 {
			fallback = i
		}
	}
	return fallback
}

func activeSlot(g *Game) int {
	for i, c := range g.state.Selection {
		if c == g.state.ActiveColor {
			return i
		}
	}
	return -1
}

func TestGameIDs(t *testing.T) {
	if id := New().ID(); id != "flood" {
		t.Errorf("New().ID() = %s, expected flood", id)
	}
	if id := NewASCII().ID(); id != "flood_ascii" {
		t.Errorf("NewASCII().ID() = %s, expected flood_ascii", id)
	}
	if title := NewASCII().Title(); title != "Colour Flood (ASCII)" {
		t.Errorf("NewASCII().Title() = %s", title)
	}
}

func TestDeterminism(t *testing.T) {
	g1 := newGame(t, 12345)
	g2 := newGame(t, 12345)

	inputs := []core.InputFrame{
		core.FrameOf(core.ActionRight),
		core.FrameOf(core.ActionConfirm),
		core.FrameOf(core.ActionPick3),
		core.FrameOf(core.ActionPick1),
		core.FrameOf(core.ActionPalette),
		core.FrameOf(core.ActionPick2),
	}
	for i := 0; i < 60; i++ {
		in := inputs[i%len(inputs)]
		g1.Step(in)
		g2.Step(in)
	}

	s1, s2 := g1.Snapshot(), g2.Snapshot()
	if s1 != s2 {
		t.Errorf("Snapshot mismatch:\n%+v\n%+v", s1, s2)
	}
}

func TestDifferentSeedsDealDifferentBoards(t *testing.T) {
	if newGame(t, 1).Snapshot().Board == newGame(t, 2).Snapshot().Board {
		t.Error("different seeds should deal different boards")
	}
}

func TestResetStartsFreshRun(t *testing.T) {
	g := newGame(t, 7)
	s := g.Snapshot()

	if s.Level != 1 || s.Score != 0 || s.MovesLeft != 25 {
		t.Errorf("fresh run = %+v", s)
	}
	if s.Colors != 3 {
		t.Errorf("level 1 should deal 3 colours, got %d", s.Colors)
	}
	if s.Palette != "default" {
		t.Errorf("Palette = %s, expected default", s.Palette)
	}
}

func TestPickPlaysColour(t *testing.T) {
	g := newGame(t, 42)
	i := playable(g)

	res := g.Step(core.FrameOf(core.PickActions[i]))
	if !res.Has(core.EventMoveApplied) {
		t.Fatalf("expected move_applied, got %+v", res.Events)
	}
	if res.State.MovesLeft != 24 {
		t.Errorf("MovesLeft = %d, expected 24", res.State.MovesLeft)
	}
	if g.cursor != i {
		t.Errorf("cursor = %d, expected %d", g.cursor, i)
	}
	if g.flash == nil {
		t.Error("absorbed tiles should flash")
	}
}

func TestPickActiveColourRejected(t *testing.T) {
	g := newGame(t, 42)
	before := g.Snapshot()

	res := g.Step(core.FrameOf(core.PickActions[activeSlot(g)]))
	if !res.Has(core.EventMoveRejected) || res.Has(core.EventMoveApplied) {
		t.Errorf("expected only move_rejected, got %+v", res.Events)
	}
	after := g.Snapshot()
	if after.MovesLeft != before.MovesLeft || after.Board != before.Board {
		t.Error("rejected move must not change the board")
	}
}

func TestPickOutsideSelectionIgnored(t *testing.T) {
	g := newGame(t, 42)
	before := g.Snapshot()
	res := g.Step(core.FrameOf(core.ActionPick6))
	if len(res.Events) != 0 || res.State.MovesLeft != before.MovesLeft {
		t.Errorf("pick 6 on a 3-colour level = %+v", res)
	}
}

func TestCursorWraps(t *testing.T) {
	g := newGame(t, 3)
	g.Step(core.FrameOf(core.ActionLeft))
	if g.cursor != 2 {
		t.Errorf("cursor after Left from 0 = %d, expected 2", g.cursor)
	}
	g.Step(core.FrameOf(core.ActionDown))
	if g.cursor != 0 {
		t.Errorf("cursor after Down from 2 = %d, expected 0", g.cursor)
	}
}

func TestPreviewMatchesMove(t *testing.T) {
	g := newGame(t, 99)
	g.cursor = playable(g)

	preview := g.Preview()
	res := g.Step(core.FrameOf(core.ActionConfirm))

	var tiles int
	for _, e := range res.Events {
		if e.Kind == core.EventMoveApplied {
			tiles = e.Tiles
		}
	}
	if tiles != len(preview.NewTiles) {
		t.Errorf("move absorbed %d tiles, preview promised %d", tiles, len(preview.NewTiles))
	}
}

func TestResetDialog(t *testing.T) {
	g := newGame(t, 5)
	g.Step(core.FrameOf(core.PickActions[playable(g)]))
	score := g.state.Score

	g.Step(core.FrameOf(core.ActionRestart))
	if g.Snapshot().State != StateDialog {
		t.Fatalf("Restart should open a confirm dialog, state %s", g.Snapshot().State)
	}

	// Cancel keeps the level as it is.
	g.Step(core.FrameOf(core.ActionRight))
	g.Step(core.FrameOf(core.ActionConfirm))
	if g.dialog != DialogNone || g.state.MovesLeft != 24 {
		t.Errorf("cancel: dialog %d moves %d", g.dialog, g.state.MovesLeft)
	}

	// Escape closes too.
	g.Step(core.FrameOf(core.ActionRestart))
	g.Step(core.FrameOf(core.ActionBack))
	if g.dialog != DialogNone {
		t.Error("Back should close the dialog")
	}

	g.Step(core.FrameOf(core.ActionRestart))
	res := g.Step(core.FrameOf(core.ActionConfirm))
	if !res.Has(core.EventLevelStarted) {
		t.Errorf("expected level_started, got %+v", res.Events)
	}
	if g.state.MovesLeft != 25 || g.state.Score != score || g.state.Level != 1 {
		t.Errorf("after reset: moves %d score %d level %d", g.state.MovesLeft, g.state.Score, g.state.Level)
	}
}

func TestMovesIgnoredWhileDialogOpen(t *testing.T) {
	g := newGame(t, 5)
	g.Step(core.FrameOf(core.ActionInfo))
	if g.Snapshot().State != StateDialog {
		t.Fatal("Info should open a dialog")
	}

	before := g.Snapshot()
	res := g.Step(core.FrameOf(core.PickActions[playable(g)]))
	if len(res.Events) != 0 || res.State.MovesLeft != before.MovesLeft {
		t.Errorf("pick under dialog = %+v", res)
	}
	if !g.Preview().Empty() {
		t.Error("no preview while a dialog is open")
	}

	g.Step(core.FrameOf(core.ActionInfo))
	if g.dialog != DialogNone {
		t.Error("Info should toggle the dialog closed")
	}
}

func TestLevelCompleteAdvances(t *testing.T) {
	withConfig(t, func(c *config.FloodConfig) { c.Grid.Size = 3 })
	g := newGame(t, 11)

	var won core.StepResult
	for i := 0; i < 25 && g.Snapshot().State == StatePlaying; i++ {
		won = g.Step(core.FrameOf(core.PickActions[playable(g)]))
	}
	if g.Snapshot().State != StateLevelComplete {
		t.Fatalf("3x3 board not cleared in 25 moves, state %s", g.Snapshot().State)
	}
	if g.state.MovesUsed() > 0 && !won.Has(core.EventLevelWon) {
		t.Errorf("winning move should emit level_won, got %+v", won.Events)
	}
	if g.lastBonus != 500 {
		t.Errorf("lastBonus = %d, expected 500", g.lastBonus)
	}

	screen := core.NewScreen(80, 24)
	g.Render(screen)
	content := screen.String()
	for _, want := range []string{"LEVEL COMPLETE!", "Perfect Clear Bonus: +500!", "Next Level"} {
		if !strings.Contains(content, want) {
			t.Errorf("level complete dialog missing %q", want)
		}
	}

	score := g.state.Score
	res := g.Step(core.FrameOf(core.ActionConfirm))
	if g.state.Level != 2 || g.state.Score != score+500 {
		t.Errorf("next level: level %d score %d, expected 2 and %d", g.state.Level, g.state.Score, score+500)
	}
	var bonus int
	for _, e := range res.Events {
		if e.Kind == core.EventLevelStarted {
			bonus = e.Bonus
		}
	}
	if bonus != 500 {
		t.Errorf("level_started bonus = %d, expected 500", bonus)
	}
}

func TestGameOverAndPlayAgain(t *testing.T) {
	withConfig(t, func(c *config.FloodConfig) { c.Moves.Default = 1 })
	g := newGame(t, 21)

	res := g.Step(core.FrameOf(core.PickActions[playable(g)]))
	if !res.Has(core.EventGameLost) || !res.State.GameOver {
		t.Fatalf("one move on a 14x14 board should lose, got %+v", res)
	}
	if g.Snapshot().State != StateGameOver {
		t.Errorf("State = %s, expected game_over", g.Snapshot().State)
	}

	screen := core.NewScreen(80, 24)
	g.Render(screen)
	for _, want := range []string{"GAME OVER", "You ran out of moves!", "You reached level 1"} {
		if !strings.Contains(screen.String(), want) {
			t.Errorf("game over dialog missing %q", want)
		}
	}

	res = g.Step(core.FrameOf(core.ActionConfirm))
	var fresh bool
	for _, e := range res.Events {
		if e.Kind == core.EventLevelStarted && e.NewRun {
			fresh = true
		}
	}
	if !fresh {
		t.Errorf("Play Again should start a new run, got %+v", res.Events)
	}
	if res.State.Score != 0 || res.State.Level != 1 || res.State.GameOver {
		t.Errorf("after Play Again = %+v", res.State)
	}
}

func TestPaletteCycle(t *testing.T) {
	g := newGame(t, 8)
	g.Step(core.FrameOf(core.PickActions[playable(g)]))
	before := g.State()

	res := g.Step(core.FrameOf(core.ActionPalette))
	if !res.Has(core.EventPaletteChanged) {
		t.Errorf("expected palette_changed, got %+v", res.Events)
	}
	if res.State.Palette != "pastel" {
		t.Errorf("Palette = %s, expected pastel", res.State.Palette)
	}
	if res.State.Score != before.Score || res.State.Level != before.Level || res.State.MovesLeft != before.MovesLeft {
		t.Errorf("cycle palette: %+v -> %+v", before, res.State)
	}
}

func TestStartPalette(t *testing.T) {
	withConfig(t, func(c *config.FloodConfig) { c.Palette.Start = "beach" })
	if p := newGame(t, 1).State().Palette; p != "beach" {
		t.Errorf("Palette = %s, expected beach", p)
	}
}

func TestUnknownStartPaletteUsesFirst(t *testing.T) {
	withConfig(t, func(c *config.FloodConfig) { c.Palette.Start = "sepia" })
	g := newGame(t, 1)
	if g.Err() != nil {
		t.Fatalf("Err() = %v", g.Err())
	}
	if p := g.State().Palette; p != "default" {
		t.Errorf("Palette = %s, expected default", p)
	}
}

func TestThemeAndMuteToggle(t *testing.T) {
	g := newGame(t, 1)
	if !g.Dark() || g.Muted() {
		t.Fatal("games start dark and unmuted")
	}
	g.Step(core.FrameOf(core.ActionTheme, core.ActionMute))
	if g.Dark() || !g.Muted() {
		t.Error("Theme and Mute should toggle")
	}

	screen := core.NewScreen(80, 24)
	g.Render(screen)
	if bg := screen.GetCell(79, 23).BG; bg != LightTheme().Background {
		t.Errorf("light theme background = %q", bg)
	}
	if !strings.Contains(screen.Row(1), "[muted]") {
		t.Error("HUD should show muted")
	}
}

func TestWindowTooSmall(t *testing.T) {
	g := New()
	g.Reset(core.RuntimeConfig{Seed: 333, ScreenW: 20, ScreenH: 10})

	if !g.tooSmall {
		t.Error("Game should detect window is too small")
	}
	if s := g.Snapshot(); s.State != StatePausedSmall {
		t.Errorf("State should be paused_small_window, got %s", s.State)
	}
	if res := g.Step(core.FrameOf(core.ActionPick2)); len(res.Events) != 0 {
		t.Errorf("no moves while too small, got %+v", res.Events)
	}
}

func TestResizeKeepsRun(t *testing.T) {
	g := newGame(t, 13)
	g.Step(core.FrameOf(core.PickActions[playable(g)]))
	before := g.Snapshot()

	g.Resize(20, 10)
	if !g.tooSmall {
		t.Fatal("20x10 should be too small")
	}
	g.Resize(120, 40)
	after := g.Snapshot()
	if after.Board != before.Board || after.Score != before.Score || after.MovesLeft != before.MovesLeft {
		t.Error("resize must not touch the run")
	}
	if g.cellW != 4 || g.cellH != 2 {
		t.Errorf("120x40 cell = %dx%d, expected 4x2", g.cellW, g.cellH)
	}
}

func TestBadConfigReportsError(t *testing.T) {
	withConfig(t, func(c *config.FloodConfig) { c.Palettes[0].Colors[0] = "not-a-colour" })

	g := New()
	g.Reset(core.RuntimeConfig{Seed: 1, ScreenW: 80, ScreenH: 24})
	if g.Err() == nil {
		t.Fatal("expected an error for a broken palette")
	}
	if g.Snapshot().State != StateError {
		t.Errorf("State = %s, expected error", g.Snapshot().State)
	}
	if res := g.Step(core.FrameOf(core.ActionConfirm)); len(res.Events) != 0 {
		t.Error("no events without an engine")
	}

	screen := core.NewScreen(80, 24)
	g.Render(screen)
	if !strings.Contains(screen.String(), "Cannot start game") {
		t.Error("render should explain the error")
	}
}

func TestRender(t *testing.T) {
	for _, g := range []*Game{New(), NewASCII()} {
		g.Reset(core.RuntimeConfig{Seed: 444, ScreenW: 80, ScreenH: 24})
		screen := core.NewScreen(80, 24)
		g.Render(screen)

		content := screen.String()
		if !strings.Contains(content, "COLOUR FLOOD") {
			t.Errorf("%s: HUD should contain the title", g.ID())
		}
		if !strings.Contains(screen.Row(0), "Level 1") || !strings.Contains(screen.Row(0), "Moves 25/25") {
			t.Errorf("%s: HUD row = %q", g.ID(), screen.Row(0))
		}
		if r := screen.Get(g.boardX, g.boardY); r != 'S' {
			t.Errorf("%s: anchor drawn as %q, expected S", g.ID(), r)
		}
		if !strings.Contains(content, "×") {
			t.Errorf("%s: active colour button should be crossed out", g.ID())
		}
	}
}

func TestRenderASCIIUsesGlyphs(t *testing.T) {
	g := NewASCII()
	g.Reset(core.RuntimeConfig{Seed: 444, ScreenW: 80, ScreenH: 24})
	screen := core.NewScreen(80, 24)
	g.Render(screen)

	cell := screen.GetCell(g.boardX+g.cellW, g.boardY)
	if !strings.ContainsRune("#@%&*+~•", cell.Rune) {
		t.Errorf("ASCII cell rune = %q", cell.Rune)
	}
	if cell.BG != DarkTheme().Background {
		t.Errorf("ASCII cells should not paint a background, got %q", cell.BG)
	}
}
