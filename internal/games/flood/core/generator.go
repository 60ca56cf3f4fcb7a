package core

import "fmt"

// RandSource is the subset of *math/rand.Rand the generator needs.
// Tests inject seeded or scripted sources to get reproducible grids.
type RandSource interface {
	Intn(n int) int
}

// Generate builds a size×size grid whose cells are drawn independently and
// uniformly from colors. Adjacent cells may share a colour.
func Generate(size int, colors []Color, rng RandSource) (*Grid, error) {
	if len(colors) == 0 {
		return nil, ErrEmptyPalette
	}
	if size < 1 {
		return nil, fmt.Errorf("flood: grid size must be positive, got %d", size)
	}

	g := &Grid{
		Size:  size,
		Cells: make([]Color, size*size),
	}
	for i := range g.Cells {
		g.Cells[i] = colors[rng.Intn(len(colors))]
	}
	return g, nil
}
