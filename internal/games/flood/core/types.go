// Package core provides the region-growing engine for the Colour Flood puzzle.
// This package is UI-agnostic and deterministic: the only randomness comes from
// the source handed to the generator.
package core

import (
	"errors"
	"fmt"
)

// Color is an opaque colour token, typically a "#RRGGBB" string taken from a palette.
// Colours are only ever compared for equality.
type Color string

// Palette is a named, ordered set of colours.
type Palette struct {
	Name   string
	Colors []Color
}

// Selection returns the first n colours of the palette.
// n is clamped to the palette size.
func (p Palette) Selection(n int) []Color {
	if n > len(p.Colors) {
		n = len(p.Colors)
	}
	if n < 0 {
		n = 0
	}
	sel := make([]Color, n)
	copy(sel, p.Colors[:n])
	return sel
}

// Coord is a (row, col) position on the grid, 0-indexed.
type Coord struct {
	Row int
	Col int
}

// RC is a convenience constructor for Coord.
func RC(row, col int) Coord {
	return Coord{Row: row, Col: col}
}

// String returns a string representation of the coordinate.
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// Anchor is the fixed cell every active region grows from.
var Anchor = Coord{Row: 0, Col: 0}

// neighbours lists the 4-directional offsets in up, right, down, left order.
var neighbours = [4]Coord{
	{Row: -1, Col: 0},
	{Row: 0, Col: 1},
	{Row: 1, Col: 0},
	{Row: 0, Col: -1},
}

// Status is the lifecycle state of a level.
type Status uint8

const (
	StatusPlaying Status = iota
	StatusWon
	StatusLost
)

// String returns the string representation of a status.
func (s Status) String() string {
	switch s {
	case StatusPlaying:
		return "playing"
	case StatusWon:
		return "won"
	case StatusLost:
		return "lost"
	default:
		return "unknown"
	}
}

// Terminal reports whether no further moves are accepted.
func (s Status) Terminal() bool {
	return s != StatusPlaying
}

var (
	// ErrInvalidMove is returned when a move is attempted on a finished level
	// or with the colour that is already active.
	ErrInvalidMove = errors.New("flood: invalid move")

	// ErrEmptyPalette is returned when a grid is requested with no colours.
	ErrEmptyPalette = errors.New("flood: empty palette")

	// ErrBadRules is returned by NewEngine for rule sets that cannot produce a game.
	ErrBadRules = errors.New("flood: bad rules")
)
