package core

import "strings"

// Grid is a square board of colours.
// Cells are stored in row-major order: index = row*Size + col.
type Grid struct {
	Size  int
	Cells []Color
}

// NewGrid creates a size×size grid with every cell set to fill.
func NewGrid(size int, fill Color) *Grid {
	if size < 0 {
		size = 0
	}
	g := &Grid{
		Size:  size,
		Cells: make([]Color, size*size),
	}
	for i := range g.Cells {
		g.Cells[i] = fill
	}
	return g
}

// GridFromRows builds a grid from a square matrix of colours.
// Returns nil if the rows do not form a square.
func GridFromRows(rows [][]Color) *Grid {
	n := len(rows)
	g := &Grid{Size: n, Cells: make([]Color, 0, n*n)}
	for _, row := range rows {
		if len(row) != n {
			return nil
		}
		g.Cells = append(g.Cells, row...)
	}
	return g
}

// index converts a coordinate to a flat array index.
func (g *Grid) index(c Coord) int {
	return c.Row*g.Size + c.Col
}

// Area returns the number of cells in the grid.
func (g *Grid) Area() int {
	return g.Size * g.Size
}

// InBounds returns true if the coordinate is within the grid boundaries.
func (g *Grid) InBounds(c Coord) bool {
	return c.Row >= 0 && c.Row < g.Size && c.Col >= 0 && c.Col < g.Size
}

// At returns the colour at the given coordinate.
// Returns the empty colour if out of bounds.
func (g *Grid) At(c Coord) Color {
	if !g.InBounds(c) {
		return ""
	}
	return g.Cells[g.index(c)]
}

// Set paints the cell at the given coordinate. Out-of-bounds writes are ignored.
func (g *Grid) Set(c Coord, color Color) {
	if g.InBounds(c) {
		g.Cells[g.index(c)] = color
	}
}

// Paint recolours every coordinate in cells.
func (g *Grid) Paint(cells []Coord, color Color) {
	for _, c := range cells {
		g.Set(c, color)
	}
}

// Uniform reports whether every cell has the same colour.
func (g *Grid) Uniform() bool {
	for _, c := range g.Cells {
		if c != g.Cells[0] {
			return false
		}
	}
	return true
}

// CountByColor returns how many cells carry each colour.
func (g *Grid) CountByColor() map[Color]int {
	counts := make(map[Color]int)
	for _, c := range g.Cells {
		counts[c]++
	}
	return counts
}

// Clone returns a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	if g == nil {
		return nil
	}
	cells := make([]Color, len(g.Cells))
	copy(cells, g.Cells)
	return &Grid{Size: g.Size, Cells: cells}
}

// Equal returns true if two grids have the same dimensions and contents.
func (g *Grid) Equal(other *Grid) bool {
	if g.Size != other.Size {
		return false
	}
	for i, c := range g.Cells {
		if c != other.Cells[i] {
			return false
		}
	}
	return true
}

// String renders the grid with one line per row and cells separated by spaces.
func (g *Grid) String() string {
	var sb strings.Builder
	for r := 0; r < g.Size; r++ {
		if r > 0 {
			sb.WriteByte('\n')
		}
		for c := 0; c < g.Size; c++ {
			if c > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(string(g.Cells[r*g.Size+c]))
		}
	}
	return sb.String()
}
