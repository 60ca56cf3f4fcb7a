package flood

import (
	"sort"
	"strconv"
	"strings"

	platformcore "github.com/vovakirdan/colour-flood/internal/core"
	"github.com/vovakirdan/colour-flood/internal/games/flood/core"
	"github.com/vovakirdan/colour-flood/internal/games/flood/palettes"
)

// asciiGlyphs mark colour slots in the ASCII style.
var asciiGlyphs = []rune{'#', '@', '%', '&', '*', '+'}

const (
	buttonW   = 8 // "[1 ████]"
	buttonGap = 1
	swatchW   = 4
)

// Render draws the game to the screen.
func (g *Game) Render(dst *platformcore.Screen) {
	th := g.theme()
	dst.Fill(platformcore.Cell{Rune: ' ', FG: th.Text, BG: th.Background})

	g.renderHUD(dst, th)

	switch {
	case g.err != nil:
		g.renderOverlay(dst, th, "Cannot start game", g.err.Error())
		return
	case g.tooSmall:
		g.renderOverlay(dst, th, "Window too small", "Resize to continue")
		return
	}

	g.renderBoard(dst)
	g.renderButtons(dst, th)
	g.renderPreviewLine(dst, th)

	switch g.dialog {
	case DialogLevelComplete:
		g.renderLevelComplete(dst, th)
	case DialogGameOver:
		g.renderGameOver(dst, th)
	case DialogConfirmReset:
		g.renderDialog(dst, th, "RESET LEVEL?", []string{
			"The board is dealt again and the",
			"moves refilled. Your score is kept.",
		}, []string{"Reset", "Cancel"})
	case DialogInfo:
		g.renderDialog(dst, th, "HOW TO PLAY", g.infoLines(), []string{"Got it"})
	}
}

// renderHUD draws the title, run stats and a separator.
func (g *Game) renderHUD(dst *platformcore.Screen, th Theme) {
	title := " COLOUR FLOOD"
	if g.style == StyleASCII {
		title = " COLOUR FLOOD (ASCII)"
	}
	dst.DrawStyledText(0, 0, title, th.Accent, th.Background, true)

	if g.engine != nil {
		stats := "Level " + strconv.Itoa(g.state.Level) +
			"  Score " + strconv.Itoa(g.state.Score) +
			"  Moves " + strconv.Itoa(g.state.MovesLeft) + "/" + strconv.Itoa(g.state.MoveBudget) + " "
		x := dst.Width() - platformcore.TextWidth(stats)
		dst.DrawStyledText(x, 0, stats, th.Text, th.Background, true)

		info := " Palette: " + g.state.Palette +
			"  Captured " + strconv.Itoa(int(g.state.Progress()*100)) + "%"
		if g.muted {
			info += "  [muted]"
		}
		dst.DrawStyledText(0, 1, info, th.Muted, th.Background, false)
	}

	for x := 0; x < dst.Width(); x++ {
		dst.SetCell(x, 2, platformcore.Cell{Rune: '─', FG: th.Muted, BG: th.Background})
	}
}

// renderBoard draws every cell, the anchor marker, preview shading and the
// flash of tiles absorbed by the last move.
func (g *Game) renderBoard(dst *platformcore.Screen) {
	grid := g.state.Grid
	if grid == nil {
		return
	}

	preview := g.Preview()
	var previewColor core.Color
	if !preview.Empty() {
		previewColor = g.state.Selection[g.cursor]
	}

	flashing := make(map[core.Coord]bool)
	if g.tick < g.flashUntil {
		for _, c := range g.flash {
			flashing[c] = true
		}
	}

	for r := 0; r < grid.Size; r++ {
		for c := 0; c < grid.Size; c++ {
			at := core.Coord{Row: r, Col: c}
			cell := g.cellLook(grid.At(at))
			if preview.Contains(at) {
				if g.style == StyleASCII {
					cell.Rune = '~'
					cell.FG = platformcore.Color(palettes.ANSI(previewColor))
				} else {
					cell.Rune = '░'
					cell.FG = platformcore.Color(previewColor)
				}
			}

			x := g.boardX + c*g.cellW
			y := g.boardY + r*g.cellH
			dst.FillRect(platformcore.NewRect(x, y, g.cellW, g.cellH), cell)

			// Markers go in the middle of the cell.
			mx, my := x+(g.cellW-1)/2, y+(g.cellH-1)/2
			switch {
			case at == core.Anchor:
				cell.Rune = 'S'
				cell.Bold = true
				cell.FG = g.inkFor(grid.At(at))
				dst.SetCell(mx, my, cell)
			case flashing[at]:
				cell.Rune = '•'
				cell.FG = g.inkFor(grid.At(at))
				dst.SetCell(mx, my, cell)
			}
		}
	}
}

// inkFor returns a readable marker colour on top of a board colour.
func (g *Game) inkFor(color core.Color) platformcore.Color {
	if g.style == StyleASCII {
		return g.theme().Highlight
	}
	return platformcore.Color(palettes.Contrast(color))
}

// cellLook returns how a board colour is drawn in the current style.
func (g *Game) cellLook(color core.Color) platformcore.Cell {
	if g.style == StyleASCII {
		return platformcore.Cell{
			Rune: g.glyph(color),
			FG:   platformcore.Color(palettes.ANSI(color)),
			BG:   g.theme().Background,
		}
	}
	return platformcore.Cell{
		Rune: ' ',
		FG:   platformcore.Color(palettes.Contrast(color)),
		BG:   platformcore.Color(color),
	}
}

// glyph returns the ASCII marker of a colour's slot in the current selection.
func (g *Game) glyph(color core.Color) rune {
	for i, c := range g.state.Selection {
		if c == color && i < len(asciiGlyphs) {
			return asciiGlyphs[i]
		}
	}
	return '?'
}

// buttonsRect returns the area of the colour button row.
func (g *Game) buttonsRect() platformcore.Rect {
	n := len(g.state.Selection)
	w := n*buttonW + (n-1)*buttonGap
	y := g.boardY + g.engine.Rules().GridSize*g.cellH + 1
	return platformcore.NewRect((g.screenW-w)/2, y, w, 1)
}

// renderButtons draws one button per playable colour. The focused button is
// bracketed; the active colour is crossed out since it cannot be played.
func (g *Game) renderButtons(dst *platformcore.Screen, th Theme) {
	row := g.buttonsRect()

	for i, color := range g.state.Selection {
		x := row.X + i*(buttonW+buttonGap)
		focused := i == g.cursor && g.dialog == DialogNone

		bracket := th.Muted
		if focused {
			bracket = th.Highlight
		}
		open, closing := " ", " "
		if focused {
			open, closing = "[", "]"
		}
		dst.DrawStyledText(x, row.Y, open, bracket, th.Background, true)
		dst.DrawStyledText(x+1, row.Y, strconv.Itoa(i+1), th.Text, th.Background, focused)

		swatch := g.cellLook(color)
		dst.FillRect(platformcore.NewRect(x+3, row.Y, swatchW, 1), swatch)
		if color == g.state.ActiveColor {
			swatch.Rune = '×'
			swatch.FG = g.inkFor(color)
			dst.SetCell(x+4, row.Y, swatch)
			dst.SetCell(x+5, row.Y, swatch)
		}
		dst.DrawStyledText(x+3+swatchW, row.Y, closing, bracket, th.Background, true)
	}
}

// renderPreviewLine describes the focused colour's move under the buttons,
// with a multiplier badge when the move would combo.
func (g *Game) renderPreviewLine(dst *platformcore.Screen, th Theme) {
	if g.dialog != DialogNone || g.state.Status != core.StatusPlaying {
		return
	}
	y := g.buttonsRect().Y + 1
	area := platformcore.NewRect(0, y, dst.Width(), 1)

	if g.state.Selection[g.cursor] == g.state.ActiveColor {
		dst.DrawStyledTextCentered(area, y, "Already flooding this colour", th.Muted, th.Background, false)
		return
	}

	p := g.Preview()
	if p.Empty() {
		dst.DrawStyledTextCentered(area, y, "No new tiles", th.Muted, th.Background, false)
		return
	}

	text := "+" + strconv.Itoa(len(p.NewTiles)) + " tiles"
	if p.Multiplier <= 1 {
		dst.DrawStyledTextCentered(area, y, text, th.Text, th.Background, false)
		return
	}
	badge := " x" + formatFactor(p.Multiplier) + " COMBO "
	w := platformcore.TextWidth(text) + 1 + platformcore.TextWidth(badge)
	x := (dst.Width() - w) / 2
	dst.DrawStyledText(x, y, text, th.Text, th.Background, false)
	dst.DrawStyledText(x+platformcore.TextWidth(text)+1, y, badge, platformcore.Color(palettes.InkDark), th.Highlight, true)
}

func (g *Game) renderLevelComplete(dst *platformcore.Screen, th Theme) {
	lines := []string{
		"You cleared the level in " + strconv.Itoa(g.state.MovesUsed()) + " moves!",
		"Score: " + strconv.Itoa(g.state.Score),
	}
	if g.lastBonus > 0 {
		lines = append(lines, "Perfect Clear Bonus: +"+strconv.Itoa(g.lastBonus)+"!")
	}
	g.renderDialog(dst, th, "LEVEL COMPLETE!", lines, []string{"Next Level"})
}

func (g *Game) renderGameOver(dst *platformcore.Screen, th Theme) {
	g.renderDialog(dst, th, "GAME OVER", []string{
		"You ran out of moves!",
		"Final score: " + strconv.Itoa(g.state.Score),
		"You reached level " + strconv.Itoa(g.state.Level),
	}, []string{"Play Again"})
}

// infoLines explains the rules with the configured numbers.
func (g *Game) infoLines() []string {
	rules := g.engine.Rules()
	lines := []string{
		"Flood the board from the top-left tile (S).",
		"Pick a colour to repaint your region;",
		"matching neighbours join it.",
		"Fill the board before the moves run out.",
		"",
	}

	mult := append([]core.MultiplierRule(nil), rules.Multipliers...)
	sort.Slice(mult, func(i, j int) bool { return mult[i].Over < mult[j].Over })
	for _, m := range mult {
		lines = append(lines, "More than "+strconv.Itoa(m.Over)+" tiles in one move: x"+formatFactor(m.Factor))
	}
	if rules.PerfectBonus > 0 {
		lines = append(lines, "Clear in under "+strconv.Itoa(rules.PerfectUnder)+" moves: +"+strconv.Itoa(rules.PerfectBonus))
	}
	return append(lines, "", "1-6 play  C palette  R reset  T theme  M mute")
}

// renderDialog draws a centered modal with a title, body lines and buttons.
// The focused button is bracketed.
func (g *Game) renderDialog(dst *platformcore.Screen, th Theme, title string, lines, buttons []string) {
	labels := make([]string, len(buttons))
	for i, b := range buttons {
		if i == g.dialogBtn {
			labels[i] = "[ " + b + " ]"
		} else {
			labels[i] = "  " + b + "  "
		}
	}
	buttonRow := strings.Join(labels, "  ")

	w := platformcore.TextWidth(title)
	for _, l := range append(lines, buttonRow) {
		w = platformcore.Max(w, platformcore.TextWidth(l))
	}
	box := platformcore.Centered(w+6, len(lines)+6, dst.Width(), dst.Height())
	dst.DrawPanel(box, th.PanelFG, th.PanelBG)

	dst.DrawStyledTextCentered(box, box.Y+1, title, th.Highlight, th.PanelBG, true)
	for i, l := range lines {
		dst.DrawStyledTextCentered(box, box.Y+3+i, l, th.PanelFG, th.PanelBG, false)
	}

	y := box.Bottom() - 2
	x := box.X + (box.W-platformcore.TextWidth(buttonRow))/2
	for i, l := range labels {
		fg := th.Muted
		if i == g.dialogBtn {
			fg = th.Highlight
		}
		dst.DrawStyledText(x, y, l, fg, th.PanelBG, i == g.dialogBtn)
		x += platformcore.TextWidth(l) + 2
	}
}

// renderOverlay draws a centered two-line message.
func (g *Game) renderOverlay(dst *platformcore.Screen, th Theme, line1, line2 string) {
	w := platformcore.Max(platformcore.TextWidth(line1), platformcore.TextWidth(line2)) + 4
	box := platformcore.Centered(w, 5, dst.Width(), dst.Height())
	dst.DrawPanel(box, th.PanelFG, th.PanelBG)
	dst.DrawStyledTextCentered(box, box.Y+1, line1, th.Highlight, th.PanelBG, true)
	dst.DrawStyledTextCentered(box, box.Y+3, line2, th.PanelFG, th.PanelBG, false)
}

// formatFactor prints 1.5 as "1.5" and 2 as "2".
func formatFactor(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
