package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/colour-flood/internal/storage"
)

// Scoreboard layout constants
const (
	minWidthForSidebar = 80  // Minimum width to show the stats sidebar
	sidebarWidth       = 24  // Width of stats sidebar
	maxRuns            = 100 // Max runs to load
)

// ScoreboardKeyMap defines the key bindings for the scoreboard.
type ScoreboardKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Levels key.Binding
	Back   key.Binding
	Quit   key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Levels, k.Back, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Levels},
		{k.Back, k.Quit},
	}
}

// DefaultScoreboardKeyMap returns default key bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		Levels: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "levels"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ScoreboardModel shows the runs of this session, best first.
type ScoreboardModel struct {
	ledger      *storage.Ledger
	runs        []storage.RunEntry
	stats       *storage.SessionStats
	levels      []storage.LevelResult // levels of the run opened with Enter
	showLevels  bool
	table       table.Model
	help        help.Model
	keys        ScoreboardKeyMap
	width       int
	height      int
	quitting    bool
	goingBack   bool // True if user pressed back (not quit)
	showSidebar bool // Whether to show stats sidebar
}

// NewScoreboardModel creates a new scoreboard model.
func NewScoreboardModel(ledger *storage.Ledger, width, height int) ScoreboardModel {
	h := help.New()
	h.ShowAll = false

	m := ScoreboardModel{
		ledger:      ledger,
		keys:        DefaultScoreboardKeyMap(),
		help:        h,
		width:       width,
		height:      height,
		showSidebar: width >= minWidthForSidebar,
	}

	m.table = m.createTable()
	m.loadRuns()
	return m
}

// createTable creates a new table with appropriate columns.
func (m *ScoreboardModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "Rank", Width: 6},
		{Title: "Score", Width: 8},
		{Title: "Level", Width: 6},
		{Title: "Palette", Width: 12},
		{Title: "Mode", Width: 12},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(m.height-8, 3)), // Leave room for header, help, and margins
	)

	theme := GetTheme()
	s := table.DefaultStyles()
	s.Header = s.Header.Inherit(theme.TableHeader)
	s.Selected = s.Selected.Inherit(theme.TableCursor)
	t.SetStyles(s)

	return t
}

// loadRuns reloads runs and stats from the ledger.
func (m *ScoreboardModel) loadRuns() {
	m.runs, m.stats = nil, nil
	if m.ledger != nil {
		if runs, err := m.ledger.TopRuns(maxRuns); err == nil {
			m.runs = runs
		}
		if stats, err := m.ledger.Stats(); err == nil {
			m.stats = stats
		}
	}
	m.updateTableRows()
}

// updateTableRows updates the table with current runs.
func (m *ScoreboardModel) updateTableRows() {
	rows := make([]table.Row, len(m.runs))
	for i, r := range m.runs {
		rank := fmt.Sprintf("#%d", i+1)
		if !r.Finished {
			rank += "*"
		}
		rows[i] = table.Row{
			rank,
			fmt.Sprintf("%d", r.FinalScore),
			fmt.Sprintf("%d", r.LastLevel),
			r.Palette,
			r.Variant,
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// Init initializes the scoreboard model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the scoreboard.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Back):
			if m.showLevels {
				m.showLevels = false
				return m, nil
			}
			m.goingBack = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Levels):
			m.openLevels()
			return m, nil

		case key.Matches(msg, m.keys.Up), key.Matches(msg, m.keys.Down):
			m.table, cmd = m.table.Update(msg)
			return m, cmd
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.showSidebar = m.width >= minWidthForSidebar
		m.table = m.createTable()
		m.updateTableRows()
		m.help.Width = msg.Width
		return m, nil
	}

	// Pass other messages to table
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// openLevels loads the levels of the highlighted run.
func (m *ScoreboardModel) openLevels() {
	i := m.table.Cursor()
	if m.ledger == nil || i < 0 || i >= len(m.runs) {
		return
	}
	levels, err := m.ledger.Results(m.runs[i].ID)
	if err != nil {
		return
	}
	m.levels = levels
	m.showLevels = true
}

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}
	theme := GetTheme()

	var b strings.Builder
	b.WriteString(centerText(theme.Title.Render("THIS SESSION"), m.width))
	b.WriteString("\n\n")

	body := theme.Border.Render(m.renderTableContent())
	if m.showLevels {
		body = theme.Border.Render(m.renderLevels())
	}
	if m.showSidebar {
		body = lipgloss.JoinHorizontal(lipgloss.Top, m.renderStats(), "  ", body)
	}
	b.WriteString(body)

	b.WriteString("\n")
	b.WriteString(theme.Help.Render(m.help.View(m.keys)))

	return b.String()
}

// renderStats renders the session totals sidebar.
func (m ScoreboardModel) renderStats() string {
	theme := GetTheme()
	style := theme.Border.Width(sidebarWidth)

	if m.stats == nil {
		return style.Render("Stats\n" + theme.StatLabel.Render("unavailable"))
	}
	s := m.stats
	lines := []struct{ label, value string }{
		{"Runs", fmt.Sprintf("%d", s.Runs)},
		{"High score", fmt.Sprintf("%d", s.HighScore)},
		{"Levels", fmt.Sprintf("%d", s.LevelsPlayed)},
		{"Win rate", fmt.Sprintf("%.0f%%", s.WinRate()*100)},
		{"Perfect", fmt.Sprintf("%d", s.PerfectClears)},
		{"Avg level", fmt.Sprintf("%.1f", s.AvgLastLevel)},
		{"Moves/win", fmt.Sprintf("%.1f", s.AvgMovesPerWin)},
	}

	var sb strings.Builder
	sb.WriteString("Stats\n")
	sb.WriteString(strings.Repeat("-", sidebarWidth-4))
	for _, l := range lines {
		sb.WriteString("\n")
		sb.WriteString(theme.StatLabel.Render(fmt.Sprintf("%-11s", l.label)))
		sb.WriteString(theme.StatValue.Render(l.value))
	}
	return style.Render(sb.String())
}

// renderTableContent renders the table or empty message.
func (m ScoreboardModel) renderTableContent() string {
	if len(m.runs) == 0 {
		return GetTheme().Empty.Render("No runs this session yet.\nPlay a game to set a score!")
	}
	return m.table.View() + "\n" + GetTheme().StatLabel.Render("* run still in progress")
}

// renderLevels lists the levels of the opened run.
func (m ScoreboardModel) renderLevels() string {
	if len(m.levels) == 0 {
		return GetTheme().Empty.Render("No finished levels in this run.")
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "%-6s %-6s %-6s %-8s %-6s %s", "Level", "Result", "Moves", "Score", "Bonus", "Palette")
	for _, l := range m.levels {
		result := "lost"
		if l.Won {
			result = "won"
		}
		fmt.Fprintf(&sb, "\n%-6d %-6s %-6d %-8d %-6d %s", l.Level, result, l.MovesUsed, l.Score, l.Bonus, l.Palette)
	}
	return sb.String()
}

// IsGoingBack returns true if user wants to go back to menu.
func (m ScoreboardModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m ScoreboardModel) IsQuitting() bool {
	return m.quitting
}

// RunScoreboard runs the scoreboard screen.
// Returns true if user wants to go back to menu, false if quitting.
func RunScoreboard(ledger *storage.Ledger, width, height int) (goBack bool, err error) {
	model := NewScoreboardModel(ledger, width, height)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}

	m, ok := finalModel.(ScoreboardModel)
	if !ok {
		return false, nil
	}

	return m.IsGoingBack(), nil
}
