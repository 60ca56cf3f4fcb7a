package core

// Color is a terminal colour for a screen cell: either an ANSI index
// ("0".."255") or a "#rrggbb" hex string. The empty string is the terminal default.
type Color string

// Named colours used for chrome around the board.
const (
	ColorDefault      Color = ""
	ColorRed          Color = "1"
	ColorGreen        Color = "2"
	ColorYellow       Color = "3"
	ColorBlue         Color = "4"
	ColorMagenta      Color = "5"
	ColorCyan         Color = "6"
	ColorWhite        Color = "7"
	ColorBrightBlack  Color = "8"
	ColorBrightRed    Color = "9"
	ColorBrightGreen  Color = "10"
	ColorBrightYellow Color = "11"
	ColorBrightCyan   Color = "14"
	ColorBrightWhite  Color = "15"
	ColorOrange       Color = "208"
	ColorGray         Color = "245"
)

// Cell is one character of a Screen with its colours.
type Cell struct {
	Rune rune
	FG   Color
	BG   Color
	Bold bool
}

// Blank is an empty cell with default colours.
var Blank = Cell{Rune: ' '}
