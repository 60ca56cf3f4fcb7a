package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/colour-flood/internal/core"
	"github.com/vovakirdan/colour-flood/internal/registry"
	"github.com/vovakirdan/colour-flood/internal/storage"
)

// helpHeight is the row under the board reserved for the key help.
const helpHeight = 1

// Model is the Bubble Tea model for playing one variant.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	ledger     *storage.Ledger
	logger     *log.Logger
	bell       io.Writer
	config     core.RuntimeConfig
	keyMapper  *KeyMapper
	help       help.Model
	inputFrame core.InputFrame
	gameState  core.GameState
	runID      int64
	quitting   bool
	back       bool // return to the menu rather than exit
}

// Options configures a play session.
type Options struct {
	Ledger *storage.Ledger // may be nil
	Logger *log.Logger     // may be nil
	Bell   io.Writer       // where sound cues go; nil means stderr
}

// NewModel creates a new Bubble Tea model for the given game and starts a run.
func NewModel(game registry.Game, cfg core.RuntimeConfig, opts Options) *Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	if opts.Bell == nil {
		opts.Bell = os.Stderr
	}

	boardCfg := cfg
	boardCfg.ScreenH = max(cfg.ScreenH-helpHeight, 0)

	m := &Model{
		game:       game,
		screen:     core.NewScreen(boardCfg.ScreenW, boardCfg.ScreenH),
		ledger:     opts.Ledger,
		logger:     opts.Logger.WithPrefix(game.ID()),
		bell:       opts.Bell,
		config:     cfg,
		keyMapper:  NewKeyMapper(),
		help:       help.New(),
		inputFrame: core.NewInputFrame(),
	}
	m.help.Width = cfg.ScreenW

	m.game.Reset(boardCfg)
	m.gameState = m.game.State()
	m.startRun()
	return m
}

// Init starts the tick loop.
func (m *Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keyMapper.Keys().Shot) {
		m.saveScreenshot()
		return m, nil
	}

	action, isQuit := m.keyMapper.MapKey(msg)
	switch {
	case isQuit:
		m.quitting = true
		return m, tea.Quit
	case action == core.ActionBack && !m.dialogOpen():
		m.back = true
		return m, tea.Quit
	}

	if action != core.ActionNone {
		m.inputFrame.Set(action)
	}
	return m, nil
}

// handleResize processes window resize events. The run is kept.
func (m *Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	h := max(msg.Height-helpHeight, 0)
	m.screen.Resize(msg.Width, h)
	m.game.Resize(msg.Width, h)
	m.help.Width = msg.Width
	return m, nil
}

// handleTick processes simulation ticks.
func (m *Model) handleTick() (tea.Model, tea.Cmd) {
	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	m.inputFrame.Clear()

	cmds := []tea.Cmd{tickCmd(m.config.TickRate)}
	for _, ev := range result.Events {
		m.record(ev)
	}
	if (result.Has(core.EventLevelWon) || result.Has(core.EventGameLost)) && !m.muted() {
		cmds = append(cmds, bellCmd(m.bell))
	}
	return m, tea.Batch(cmds...)
}

// record logs an event and writes level results to the ledger.
func (m *Model) record(ev core.Event) {
	switch ev.Kind {
	case core.EventMoveApplied:
		m.logger.Debug("move", "level", ev.Level, "color", ev.Color, "tiles", ev.Tiles,
			"multiplier", ev.Multiplier, "gained", ev.Gained, "score", ev.Score)

	case core.EventMoveRejected:
		m.logger.Debug("move rejected", "color", ev.Color)

	case core.EventLevelWon:
		m.logger.Info("level won", "level", ev.Level, "moves", ev.MovesUsed, "score", ev.Score, "bonus", ev.Bonus)
		m.recordLevel(ev, true)

	case core.EventGameLost:
		m.logger.Info("game over", "level", ev.Level, "score", ev.Score)
		m.recordLevel(ev, false)
		if m.ledger != nil {
			if err := m.ledger.FinishRun(m.runID, ev.Score, ev.Level); err != nil {
				m.logger.Error("cannot finish run", "err", err)
			}
		}

	case core.EventLevelStarted:
		if ev.NewRun {
			m.startRun()
			return
		}
		m.logger.Info("level started", "level", ev.Level, "score", ev.Score, "bonus", ev.Bonus)

	case core.EventPaletteChanged:
		m.logger.Info("palette changed", "palette", ev.Palette, "level", ev.Level)
	}
}

func (m *Model) recordLevel(ev core.Event, won bool) {
	if m.ledger == nil {
		return
	}
	_, err := m.ledger.RecordLevel(storage.LevelResult{
		RunID:     m.runID,
		Level:     ev.Level,
		Palette:   ev.Palette,
		Won:       won,
		MovesUsed: ev.MovesUsed,
		Score:     ev.Score,
		Bonus:     ev.Bonus,
	})
	if err != nil {
		m.logger.Error("cannot record level", "err", err)
	}
}

// startRun opens a ledger run for the game's current state.
func (m *Model) startRun() {
	st := m.game.State()
	m.logger.Info("run started", "palette", st.Palette, "seed", m.config.Seed)
	if m.ledger == nil {
		return
	}
	id, err := m.ledger.StartRun(m.game.ID(), st.Palette)
	if err != nil {
		m.logger.Error("cannot start run", "err", err)
		return
	}
	m.runID = id
}

func (m *Model) muted() bool {
	if ind, ok := m.game.(registry.Indicators); ok {
		return ind.Muted()
	}
	return false
}

func (m *Model) dialogOpen() bool {
	if ind, ok := m.game.(registry.Indicators); ok {
		return ind.DialogOpen()
	}
	return false
}

// bellCmd rings the terminal bell.
func bellCmd(w io.Writer) tea.Cmd {
	return func() tea.Msg {
		//nolint:errcheck // A missed bell is not worth surfacing
		io.WriteString(w, "\a")
		return nil
	}
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	// Render current state
	m.game.Render(m.screen)

	// Create screenshots directory
	dir := filepath.Join(os.Getenv("HOME"), ".arcade", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	// Generate filename with timestamp
	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp)
	path := filepath.Join(dir, filename)

	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("screenshot failed", "err", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m *Model) View() string {
	if m.quitting || m.back {
		return ""
	}

	// Render game to screen buffer
	m.game.Render(m.screen)

	return RenderScreen(m.screen) + "\n" + GetTheme().Help.Render(m.help.View(m.keyMapper.Keys()))
}

// State returns the last reported game state.
func (m *Model) State() core.GameState {
	return m.gameState
}

// Back reports whether the player left for the menu.
func (m *Model) Back() bool {
	return m.back
}

// Run plays game until the player quits or goes back.
// Returns true when the player wants the menu again.
func Run(game registry.Game, cfg core.RuntimeConfig, opts Options) (back bool, err error) {
	model := NewModel(game, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	if _, err := p.Run(); err != nil {
		return false, err
	}
	return model.Back(), nil
}
