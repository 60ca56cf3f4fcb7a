package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/colour-flood/internal/core"
	floodcore "github.com/vovakirdan/colour-flood/internal/games/flood/core"
	"github.com/vovakirdan/colour-flood/internal/registry"
)

// MenuItem represents a selectable mode in the menu.
type MenuItem struct {
	GameID   string
	Title    string
	Disabled bool // shown but not playable yet
}

// comingSoon lists modes announced in the menu but not playable yet.
var comingSoon = []string{"Time Attack", "Puzzle Mode"}

// MenuModel is the Bubble Tea model for the mode picker menu.
type MenuModel struct {
	items          []MenuItem
	cursor         int
	palettes       []floodcore.Palette
	paletteIdx     int
	width          int
	height         int
	config         core.RuntimeConfig
	keyMapper      *KeyMapper
	quitting       bool
	selected       *MenuItem // Set when user selects a mode
	openScoreboard bool      // True if user pressed Tab for scoreboard
}

// NewMenuModel creates a new menu model. palette names the palette shown
// first; unknown names start on the first palette.
func NewMenuModel(cfg core.RuntimeConfig, palettes []floodcore.Palette, palette string) MenuModel {
	games := registry.List()
	items := make([]MenuItem, 0, len(games)+len(comingSoon))

	for _, g := range games {
		items = append(items, MenuItem{GameID: g.ID, Title: g.Title})
	}
	for _, title := range comingSoon {
		items = append(items, MenuItem{Title: title + " (Coming Soon)", Disabled: true})
	}

	idx := 0
	for i, p := range palettes {
		if p.Name == palette {
			idx = i
		}
	}

	return MenuModel{
		items:      items,
		palettes:   palettes,
		paletteIdx: idx,
		width:      cfg.ScreenW,
		height:     cfg.ScreenH,
		config:     cfg,
		keyMapper:  NewKeyMapper(),
	}
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keyMapper.MapKeyToMenuAction(msg)

	switch action {
	case MenuActionQuit, MenuActionBack:
		m.quitting = true
		return m, tea.Quit

	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}

	case MenuActionDown:
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}

	case MenuActionLeft:
		if n := len(m.palettes); n > 0 {
			m.paletteIdx = (m.paletteIdx - 1 + n) % n
		}

	case MenuActionRight:
		if n := len(m.palettes); n > 0 {
			m.paletteIdx = (m.paletteIdx + 1) % n
		}

	case MenuActionSelect:
		if len(m.items) > 0 && !m.items[m.cursor].Disabled {
			selected := m.items[m.cursor]
			m.selected = &selected
			return m, tea.Quit // Exit menu to start game
		}

	case MenuActionScoreboard:
		m.openScoreboard = true
		return m, tea.Quit // Exit menu to show scoreboard
	}

	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}
	theme := GetTheme()

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(theme.Title.Render("C O L O U R   F L O O D"), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(theme.Subtitle.Render("Select a mode"), m.width))
	b.WriteString("\n\n")

	for i, item := range m.items {
		cursor := "  "
		style := theme.ItemNormal
		if i == m.cursor {
			cursor = "> "
			style = theme.ItemActive
		}
		if item.Disabled {
			style = theme.ItemDisabled
		}
		b.WriteString(centerText(style.Render(cursor+item.Title), m.width))
		b.WriteString("\n")
	}

	if len(m.palettes) > 0 {
		b.WriteString("\n")
		b.WriteString(centerText(m.paletteLine(), m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	controls := "Up/Down: Navigate  |  Left/Right: Palette  |  Enter: Play  |  Tab: Session  |  Q: Quit"
	b.WriteString(centerText(theme.Description.Render(controls), m.width))
	b.WriteString("\n")

	return b.String()
}

// paletteLine shows the current palette's name and colour swatches.
func (m MenuModel) paletteLine() string {
	p := m.palettes[m.paletteIdx]
	var sw strings.Builder
	for _, c := range p.Colors {
		sw.WriteString(lipgloss.NewStyle().Background(lipgloss.Color(c)).Render("  "))
	}
	return GetTheme().Description.Render("< "+p.Name+" > ") + sw.String()
}

// Selected returns the selected menu item, or nil if none selected.
func (m MenuModel) Selected() *MenuItem {
	return m.selected
}

// Palette returns the name of the palette shown in the menu.
func (m MenuModel) Palette() string {
	if len(m.palettes) == 0 {
		return ""
	}
	return m.palettes[m.paletteIdx].Name
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// WantsScoreboard returns true if user requested scoreboard.
func (m MenuModel) WantsScoreboard() bool {
	return m.openScoreboard
}

// Config returns the current runtime config (may have been updated by resize).
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// centerText centers text within given width, measuring styled text by its
// printable cells.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	padding := (width - w) / 2
	return strings.Repeat(" ", padding) + text
}

// MenuResult holds the result of running the menu.
type MenuResult struct {
	GameID          string
	Palette         string
	Config          core.RuntimeConfig
	WantsScoreboard bool
	Quit            bool
}

// RunMenu runs the menu and returns the selection result.
func RunMenu(cfg core.RuntimeConfig, palettes []floodcore.Palette, palette string) (MenuResult, error) {
	model := NewMenuModel(cfg, palettes, palette)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return MenuResult{Config: cfg, Palette: palette}, err
	}

	m, ok := finalModel.(MenuModel)
	if !ok {
		return MenuResult{Config: cfg, Palette: palette, Quit: true}, nil
	}

	result := MenuResult{
		Config:  m.Config(),
		Palette: m.Palette(),
	}

	if m.WantsScoreboard() {
		result.WantsScoreboard = true
		return result, nil
	}

	if m.IsQuitting() {
		result.Quit = true
		return result, nil
	}

	if m.Selected() != nil {
		result.GameID = m.Selected().GameID
	} else {
		result.Quit = true
	}

	return result, nil
}
