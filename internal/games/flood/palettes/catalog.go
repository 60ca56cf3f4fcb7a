// Package palettes holds the ordered catalog of named colour sets the flood
// engine deals boards from. The catalog is pure data; core does not depend on it.
package palettes

import (
	"errors"
	"fmt"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/vovakirdan/colour-flood/internal/games/flood/core"
)

// Size is the number of colours every palette must carry.
const Size = 6

var (
	ErrNoPalettes     = errors.New("palettes: catalog is empty")
	ErrUnknownPalette = errors.New("palettes: unknown palette")
	ErrPaletteSize    = errors.New("palettes: wrong number of colors")
	ErrBadColor       = errors.New("palettes: invalid color")
	ErrDuplicateName  = errors.New("palettes: duplicate name")
	ErrDuplicateColor = errors.New("palettes: duplicate color")
)

// Catalog is an ordered, immutable set of palettes.
type Catalog struct {
	palettes []core.Palette
	index    map[string]int
}

// New validates palettes and builds a catalog that cycles in the given order.
// Colours are normalized to lower-case "#rrggbb".
func New(palettes []core.Palette) (*Catalog, error) {
	if len(palettes) == 0 {
		return nil, ErrNoPalettes
	}

	c := &Catalog{
		palettes: make([]core.Palette, 0, len(palettes)),
		index:    make(map[string]int, len(palettes)),
	}
	for _, p := range palettes {
		name := strings.TrimSpace(p.Name)
		if name == "" {
			return nil, fmt.Errorf("%w: empty name", ErrUnknownPalette)
		}
		if _, dup := c.index[name]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateName, name)
		}
		if len(p.Colors) != Size {
			return nil, fmt.Errorf("%w: %q has %d, need %d", ErrPaletteSize, name, len(p.Colors), Size)
		}

		colors := make([]core.Color, len(p.Colors))
		seen := make(map[core.Color]bool, len(p.Colors))
		for i, raw := range p.Colors {
			norm, err := Normalize(string(raw))
			if err != nil {
				return nil, fmt.Errorf("palette %q: %w", name, err)
			}
			// Every prefix must deal as many distinct colours as it is long.
			if seen[norm] {
				return nil, fmt.Errorf("%w: %q repeats %s", ErrDuplicateColor, name, norm)
			}
			seen[norm] = true
			colors[i] = norm
		}

		c.index[name] = len(c.palettes)
		c.palettes = append(c.palettes, core.Palette{Name: name, Colors: colors})
	}
	return c, nil
}

// MustDefault returns the built-in catalog. It panics only if the built-in data is broken.
func MustDefault() *Catalog {
	c, err := New(Default())
	if err != nil {
		panic(err)
	}
	return c
}

// Normalize parses a "#rrggbb" string and returns it in canonical form.
func Normalize(hex string) (core.Color, error) {
	col, err := colorful.Hex(strings.TrimSpace(hex))
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrBadColor, hex)
	}
	return core.Color(col.Hex()), nil
}

// Len returns the number of palettes.
func (c *Catalog) Len() int {
	return len(c.palettes)
}

// Names returns palette names in cycle order.
func (c *Catalog) Names() []string {
	names := make([]string, len(c.palettes))
	for i, p := range c.palettes {
		names[i] = p.Name
	}
	return names
}

// Palettes returns copies of all palettes in cycle order.
func (c *Catalog) Palettes() []core.Palette {
	out := make([]core.Palette, len(c.palettes))
	for i, p := range c.palettes {
		out[i] = copyPalette(p)
	}
	return out
}

// Index returns the position of name, or -1.
func (c *Catalog) Index(name string) int {
	if i, ok := c.index[name]; ok {
		return i
	}
	return -1
}

// Get returns the named palette.
func (c *Catalog) Get(name string) (core.Palette, error) {
	i, ok := c.index[name]
	if !ok {
		return core.Palette{}, fmt.Errorf("%w: %q", ErrUnknownPalette, name)
	}
	return copyPalette(c.palettes[i]), nil
}

// Next returns the name that follows name, wrapping at the end.
// Unknown names map to the first palette.
func (c *Catalog) Next(name string) string {
	i, ok := c.index[name]
	if !ok {
		return c.palettes[0].Name
	}
	return c.palettes[(i+1)%len(c.palettes)].Name
}

// Rotate returns the palettes reordered so start comes first,
// keeping the cyclic order intact.
func (c *Catalog) Rotate(start string) ([]core.Palette, error) {
	i, ok := c.index[start]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownPalette, start)
	}
	all := c.Palettes()
	return append(all[i:], all[:i]...), nil
}

func copyPalette(p core.Palette) core.Palette {
	colors := make([]core.Color, len(p.Colors))
	copy(colors, p.Colors)
	return core.Palette{Name: p.Name, Colors: colors}
}
