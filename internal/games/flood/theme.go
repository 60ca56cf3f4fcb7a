package flood

import platformcore "github.com/vovakirdan/colour-flood/internal/core"

// Theme contains the chrome colours drawn around the board.
type Theme struct {
	Background platformcore.Color
	Text       platformcore.Color
	Muted      platformcore.Color
	Accent     platformcore.Color
	Highlight  platformcore.Color
	Good       platformcore.Color
	Bad        platformcore.Color

	PanelFG platformcore.Color
	PanelBG platformcore.Color
}

// DarkTheme draws on the terminal's own background.
func DarkTheme() Theme {
	return Theme{
		Background: platformcore.ColorDefault,
		Text:       platformcore.ColorBrightWhite,
		Muted:      platformcore.ColorGray,
		Accent:     platformcore.ColorBrightCyan,
		Highlight:  platformcore.ColorBrightYellow,
		Good:       platformcore.ColorBrightGreen,
		Bad:        platformcore.ColorBrightRed,
		PanelFG:    platformcore.ColorBrightWhite,
		PanelBG:    "#1e1e2e",
	}
}

// LightTheme paints a light background over the whole screen.
func LightTheme() Theme {
	return Theme{
		Background: "#f5f5f5",
		Text:       "#111111",
		Muted:      "#6c6c6c",
		Accent:     "#005f87",
		Highlight:  "#af5f00",
		Good:       "#008700",
		Bad:        "#af0000",
		PanelFG:    "#111111",
		PanelBG:    "#e4e4e4",
	}
}

func (g *Game) theme() Theme {
	if g.dark {
		return DarkTheme()
	}
	return LightTheme()
}
