// Package flood provides the Colour Flood puzzle for the arcade platform.
// The rules live in the core subpackage; this package maps platform input to
// engine calls, drives dialogs and draws the board.
package flood

import (
	"math/rand"

	"github.com/vovakirdan/colour-flood/internal/config"
	platformcore "github.com/vovakirdan/colour-flood/internal/core"
	"github.com/vovakirdan/colour-flood/internal/games/flood/core"
	"github.com/vovakirdan/colour-flood/internal/registry"
)

// Style selects how the board is drawn.
type Style int

const (
	StyleBlocks Style = iota // true-colour background blocks
	StyleASCII               // glyphs in the 16 base terminal colours
)

// Dialog is the modal currently covering the board.
type Dialog int

const (
	DialogNone Dialog = iota
	DialogLevelComplete
	DialogGameOver
	DialogConfirmReset
	DialogInfo
)

// Game implements the Colour Flood puzzle.
type Game struct {
	style  Style
	rng    *rand.Rand
	engine *core.Engine
	state  core.State
	err    error

	// Screen dimensions
	screenW int
	screenH int

	// Status
	tick     uint64
	tickRate int
	tooSmall bool
	dark     bool
	muted    bool

	// Selection state
	cursor    int    // focused colour button
	dialog    Dialog // open modal
	dialogBtn int    // focused modal button
	lastBonus int    // perfect-clear bonus earned by the level just won

	// Tiles absorbed by the last move, highlighted until flashUntil.
	flash      []core.Coord
	flashUntil uint64

	// Rendering config
	cellW     int
	cellH     int
	hudHeight int
	footH     int

	// Calculated offsets
	boardX int
	boardY int
}

// Package-level variables for configuration
var (
	floodConfig = config.DefaultFloodConfig()
)

// SetConfig sets the configuration used by games created afterwards.
func SetConfig(cfg config.FloodConfig) {
	floodConfig = cfg
}

// GetConfig returns the configuration new games will use.
func GetConfig() config.FloodConfig {
	return floodConfig
}

// SetPalette sets the palette new games start on. Unknown names are ignored
// when the game resets.
func SetPalette(name string) {
	floodConfig.Palette.Start = name
}

func init() {
	registry.Register("flood", func() registry.Game {
		return New()
	})
	registry.Register("flood_ascii", func() registry.Game {
		return NewASCII()
	})
}

// New creates a game drawn with coloured blocks.
func New() *Game {
	return &Game{
		style:     StyleBlocks,
		dark:      true,
		hudHeight: 3,
		footH:     4,
		cellW:     2,
		cellH:     1,
	}
}

// NewASCII creates a game drawn with glyphs, for terminals without true colour.
func NewASCII() *Game {
	g := New()
	g.style = StyleASCII
	return g
}

// ID returns the game identifier.
func (g *Game) ID() string {
	if g.style == StyleASCII {
		return "flood_ascii"
	}
	return "flood"
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.style == StyleASCII {
		return "Colour Flood (ASCII)"
	}
	return "Colour Flood"
}

// Reset starts a new run: level 1, score 0, configured palette.
func (g *Game) Reset(cfg platformcore.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.tickRate = cfg.TickRate
	if g.tickRate <= 0 {
		g.tickRate = platformcore.DefaultConfig().TickRate
	}
	g.tick = 0
	g.cursor = 0
	g.dialog = DialogNone
	g.dialogBtn = 0
	g.lastBonus = 0
	g.flash = nil
	g.err = nil
	g.engine = nil

	cat, err := floodConfig.Catalog()
	if err != nil {
		g.err = err
		return
	}

	engine, err := core.NewEngine(floodConfig.Rules(), cat.Palettes(), g.rng)
	if err != nil {
		g.err = err
		return
	}
	// An unknown start palette stays on the first one.
	if start := floodConfig.Palette.Start; start != "" {
		engine.SelectPalette(start)
	}
	g.engine = engine
	g.state = engine.Snapshot()
	g.calculateLayout()
	g.openWonDialog(nil)
}

// Resize adapts the layout to a new terminal size without touching the run.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
	g.calculateLayout()
}

// calculateLayout determines cell sizes and offsets.
func (g *Game) calculateLayout() {
	n := floodConfig.Grid.Size
	if g.engine != nil {
		n = g.engine.Rules().GridSize
	}

	availW := g.screenW - 4
	availH := g.screenH - g.hudHeight - g.footH

	g.cellH = platformcore.Min(availH/n, availW/(2*n))
	if g.cellH < 1 {
		g.tooSmall = true
		return
	}
	g.tooSmall = false
	g.cellW = 2 * g.cellH

	g.boardX = (g.screenW - n*g.cellW) / 2
	g.boardY = g.hudHeight + (availH-n*g.cellH)/2
}

// Step advances the game by one tick.
func (g *Game) Step(input platformcore.InputFrame) platformcore.StepResult {
	g.tick++

	if input.Has(platformcore.ActionTheme) {
		g.dark = !g.dark
	}
	if input.Has(platformcore.ActionMute) {
		g.muted = !g.muted
	}

	if g.engine == nil || g.tooSmall {
		return platformcore.StepResult{State: g.State()}
	}

	var events []platformcore.Event
	if g.dialog != DialogNone {
		events = g.stepDialog(input)
	} else {
		events = g.stepPlaying(input)
	}
	return platformcore.StepResult{State: g.State(), Events: events}
}

// stepPlaying handles input while the board has focus.
func (g *Game) stepPlaying(input platformcore.InputFrame) []platformcore.Event {
	n := len(g.state.Selection)

	switch {
	case input.Has(platformcore.ActionInfo):
		g.openDialog(DialogInfo)
		return nil
	case input.Has(platformcore.ActionRestart):
		g.openDialog(DialogConfirmReset)
		return nil
	case input.Has(platformcore.ActionPalette):
		g.state = g.engine.CyclePalette()
		g.flash = nil
		g.cursor = platformcore.Clamp(g.cursor, 0, len(g.state.Selection)-1)
		events := []platformcore.Event{g.event(platformcore.EventPaletteChanged)}
		return g.openWonDialog(events)
	}

	if input.Has(platformcore.ActionLeft) || input.Has(platformcore.ActionUp) {
		g.cursor = (g.cursor - 1 + n) % n
	}
	if input.Has(platformcore.ActionRight) || input.Has(platformcore.ActionDown) {
		g.cursor = (g.cursor + 1) % n
	}

	for _, a := range platformcore.PickActions {
		if i := a.PickIndex(); input.Has(a) && i < n {
			g.cursor = i
			return g.play(g.state.Selection[i])
		}
	}
	if input.Has(platformcore.ActionConfirm) {
		return g.play(g.state.Selection[g.cursor])
	}
	return nil
}

// play commits a move and reports what happened.
func (g *Game) play(color core.Color) []platformcore.Event {
	state, res, err := g.engine.ApplyMove(color)
	if err != nil {
		ev := g.event(platformcore.EventMoveRejected)
		ev.Color = string(color)
		return []platformcore.Event{ev}
	}
	g.state = state
	g.flash = res.NewTiles
	g.flashUntil = g.tick + uint64(g.tickRate/3)

	ev := g.event(platformcore.EventMoveApplied)
	ev.Color = string(color)
	ev.Gained = res.Gained
	ev.Tiles = len(res.NewTiles)
	ev.Multiplier = res.Multiplier
	events := []platformcore.Event{ev}

	switch state.Status {
	case core.StatusWon:
		return g.openWonDialog(events)
	case core.StatusLost:
		g.openDialog(DialogGameOver)
		events = append(events, g.event(platformcore.EventGameLost))
	}
	return events
}

// openWonDialog opens Level Complete if the current level is already won,
// which also covers boards dealt uniform.
func (g *Game) openWonDialog(events []platformcore.Event) []platformcore.Event {
	if g.state.Status != core.StatusWon {
		return events
	}
	g.lastBonus = 0
	if rules := g.engine.Rules(); rules.PerfectClear(g.state.MovesLeft) {
		g.lastBonus = rules.PerfectBonus
	}
	g.openDialog(DialogLevelComplete)
	ev := g.event(platformcore.EventLevelWon)
	ev.Bonus = g.lastBonus
	return append(events, ev)
}

// stepDialog handles input while a modal is open.
func (g *Game) stepDialog(input platformcore.InputFrame) []platformcore.Event {
	switch g.dialog {
	case DialogLevelComplete:
		if input.Has(platformcore.ActionConfirm) {
			prev := g.state.Score
			g.closeDialog()
			g.startLevel(g.engine.StartNextLevel())
			ev := g.event(platformcore.EventLevelStarted)
			ev.Bonus = g.state.Score - prev
			return g.openWonDialog([]platformcore.Event{ev})
		}

	case DialogGameOver:
		if input.Has(platformcore.ActionConfirm) || input.Has(platformcore.ActionRestart) {
			g.closeDialog()
			g.startLevel(g.engine.StartNewGame())
			ev := g.event(platformcore.EventLevelStarted)
			ev.NewRun = true
			return g.openWonDialog([]platformcore.Event{ev})
		}

	case DialogConfirmReset:
		if input.Has(platformcore.ActionLeft) || input.Has(platformcore.ActionRight) {
			g.dialogBtn = 1 - g.dialogBtn
		}
		switch {
		case input.Has(platformcore.ActionBack):
			g.closeDialog()
		case input.Has(platformcore.ActionConfirm):
			reset := g.dialogBtn == 0
			g.closeDialog()
			if reset {
				g.startLevel(g.engine.ResetLevel())
				return g.openWonDialog([]platformcore.Event{g.event(platformcore.EventLevelStarted)})
			}
		}

	case DialogInfo:
		if input.Has(platformcore.ActionConfirm) || input.Has(platformcore.ActionBack) || input.Has(platformcore.ActionInfo) {
			g.closeDialog()
		}
	}
	return nil
}

func (g *Game) startLevel(s core.State) {
	g.state = s
	g.flash = nil
	g.cursor = platformcore.Clamp(g.cursor, 0, len(s.Selection)-1)
}

func (g *Game) openDialog(d Dialog) {
	g.dialog = d
	g.dialogBtn = 0
}

func (g *Game) closeDialog() {
	g.dialog = DialogNone
	g.dialogBtn = 0
}

// event builds an event stamped with the current level, score and palette.
func (g *Game) event(kind platformcore.EventKind) platformcore.Event {
	return platformcore.Event{
		Kind:      kind,
		Level:     g.state.Level,
		Score:     g.state.Score,
		MovesUsed: g.state.MovesUsed(),
		Palette:   g.state.Palette,
	}
}

// Preview returns what playing the focused colour would absorb.
// It is empty while a dialog is open.
func (g *Game) Preview() core.PreviewResult {
	if g.engine == nil || g.dialog != DialogNone || len(g.state.Selection) == 0 {
		return core.PreviewResult{Multiplier: 1}
	}
	return g.engine.PreviewMove(g.state.Selection[g.cursor])
}

// Muted reports whether sound cues are off.
func (g *Game) Muted() bool {
	return g.muted
}

// Dark reports whether the dark theme is active.
func (g *Game) Dark() bool {
	return g.dark
}

// DialogOpen reports whether a modal has focus.
func (g *Game) DialogOpen() bool {
	return g.dialog != DialogNone
}

// Err returns the error that prevented the game from starting, if any.
func (g *Game) Err() error {
	return g.err
}

// State returns the current game state.
func (g *Game) State() platformcore.GameState {
	return platformcore.GameState{
		Score:     g.state.Score,
		Level:     g.state.Level,
		MovesLeft: g.state.MovesLeft,
		Palette:   g.state.Palette,
		GameOver:  g.state.Status == core.StatusLost,
		Won:       g.state.Status == core.StatusWon,
	}
}
