package tui

import (
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"github.com/vovakirdan/colour-flood/internal/core"
)

// styleKey identifies a cell's look; runs of equal keys share one style.
type styleKey struct {
	fg, bg core.Color
	bold   bool
}

func keyOf(c core.Cell) styleKey {
	return styleKey{fg: c.FG, bg: c.BG, bold: c.Bold}
}

// styleCache maps cell looks to lipgloss styles. Palettes come from config,
// so styles are built on first use rather than listed up front.
var styleCache sync.Map // styleKey -> lipgloss.Style

func styleFor(k styleKey) lipgloss.Style {
	if s, ok := styleCache.Load(k); ok {
		return s.(lipgloss.Style)
	}
	s := lipgloss.NewStyle()
	if k.fg != core.ColorDefault {
		s = s.Foreground(lipgloss.Color(k.fg))
	}
	if k.bg != core.ColorDefault {
		s = s.Background(lipgloss.Color(k.bg))
	}
	if k.bold {
		s = s.Bold(true)
	}
	styleCache.Store(k, s)
	return s
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same look to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			start := keyOf(s.GetCell(x, y))

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if keyOf(cell) != start {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			if start == (styleKey{}) {
				sb.WriteString(run.String())
				continue
			}
			sb.WriteString(styleFor(start).Render(run.String()))
		}
	}
	return sb.String()
}
