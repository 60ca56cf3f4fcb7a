package tui

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme contains the styles of the screens around the board: menu,
// scoreboard and the help bar.
type Theme struct {
	// Menu styles
	Title        lipgloss.Style
	Subtitle     lipgloss.Style
	ItemNormal   lipgloss.Style
	ItemActive   lipgloss.Style
	ItemDisabled lipgloss.Style
	Description  lipgloss.Style

	// Scoreboard styles
	Border      lipgloss.Style
	StatLabel   lipgloss.Style
	StatValue   lipgloss.Style
	TableHeader lipgloss.Style
	TableCursor lipgloss.Style
	Empty       lipgloss.Style

	// Help bar
	Help lipgloss.Style
}

// DefaultTheme returns the dark theme.
func DefaultTheme() Theme {
	return Theme{
		Title:        lipgloss.NewStyle().Foreground(lipgloss.Color("51")).Bold(true),
		Subtitle:     lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		ItemNormal:   lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		ItemActive:   lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true),
		ItemDisabled: lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Italic(true),
		Description:  lipgloss.NewStyle().Foreground(lipgloss.Color("245")),

		Border:      lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240")).Padding(0, 1),
		StatLabel:   lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		StatValue:   lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Bold(true),
		TableHeader: lipgloss.NewStyle().BorderStyle(lipgloss.NormalBorder()).BorderForeground(lipgloss.Color("240")).BorderBottom(true).Bold(true),
		TableCursor: lipgloss.NewStyle().Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57")),
		Empty:       lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true).Padding(2, 4),

		Help: lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	}
}

// LightTheme returns a theme readable on light terminals.
func LightTheme() Theme {
	theme := DefaultTheme()
	theme.Title = lipgloss.NewStyle().Foreground(lipgloss.Color("25")).Bold(true)
	theme.ItemNormal = lipgloss.NewStyle().Foreground(lipgloss.Color("236"))
	theme.ItemActive = lipgloss.NewStyle().Foreground(lipgloss.Color("130")).Bold(true)
	theme.StatValue = lipgloss.NewStyle().Foreground(lipgloss.Color("232")).Bold(true)
	theme.TableCursor = lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color("25"))
	return theme
}

// Global theme variable (can be changed at runtime)
var tuiTheme = DefaultTheme()

// SetTheme sets the global theme.
func SetTheme(theme Theme) {
	tuiTheme = theme
}

// GetTheme returns the current global theme.
func GetTheme() Theme {
	return tuiTheme
}
