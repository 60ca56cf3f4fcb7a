package palettes

import (
	"strconv"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/vovakirdan/colour-flood/internal/games/flood/core"
)

// Glyph colours for text drawn on top of a palette colour.
const (
	InkDark  core.Color = "#111111"
	InkLight core.Color = "#F5F5F5"
)

// Luminance returns the relative luminance of a hex colour in [0, 1].
// Unparseable colours report 0.
func Luminance(c core.Color) float64 {
	col, err := colorful.Hex(string(c))
	if err != nil {
		return 0
	}
	r, g, b := col.LinearRgb()
	return 0.2126*r + 0.7152*g + 0.0722*b
}

// Contrast picks a readable ink colour for text drawn on background bg.
func Contrast(bg core.Color) core.Color {
	if Luminance(bg) > 0.35 {
		return InkDark
	}
	return InkLight
}

// ansi16 are the xterm defaults for the 16 base colours.
var ansi16 = [16]string{
	"#000000", "#800000", "#008000", "#808000", "#000080", "#800080", "#008080", "#c0c0c0",
	"#808080", "#ff0000", "#00ff00", "#ffff00", "#0000ff", "#ff00ff", "#00ffff", "#ffffff",
}

// ANSI maps a hex colour to the perceptually closest of the 16 base terminal
// colours, returned as an ANSI index string such as "9".
func ANSI(c core.Color) core.Color {
	col, err := colorful.Hex(string(c))
	if err != nil {
		return ""
	}

	best, bestDist := 0, -1.0
	for i, h := range ansi16 {
		ref, _ := colorful.Hex(h)
		d := col.DistanceLab(ref)
		if bestDist < 0 || d < bestDist {
			best, bestDist = i, d
		}
	}
	return core.Color(strconv.Itoa(best))
}
