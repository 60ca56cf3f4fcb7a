package palettes

import (
	"fmt"
	"os"

	"github.com/vovakirdan/colour-flood/internal/games/flood/core"
	"gopkg.in/yaml.v3"
)

// Spec is the YAML form of a palette.
type Spec struct {
	Name   string   `yaml:"name"`
	Colors []string `yaml:"colors"`
}

// FromSpecs converts YAML specs into core palettes. Validation happens in New.
func FromSpecs(specs []Spec) []core.Palette {
	out := make([]core.Palette, len(specs))
	for i, s := range specs {
		colors := make([]core.Color, len(s.Colors))
		for j, c := range s.Colors {
			colors[j] = core.Color(c)
		}
		out[i] = core.Palette{Name: s.Name, Colors: colors}
	}
	return out
}

// ToSpecs is the inverse of FromSpecs.
func ToSpecs(palettes []core.Palette) []Spec {
	out := make([]Spec, len(palettes))
	for i, p := range palettes {
		colors := make([]string, len(p.Colors))
		for j, c := range p.Colors {
			colors[j] = string(c)
		}
		out[i] = Spec{Name: p.Name, Colors: colors}
	}
	return out
}

// ParseYAML parses a list of palettes and validates it as a catalog.
func ParseYAML(data []byte) (*Catalog, error) {
	var specs []Spec
	if err := yaml.Unmarshal(data, &specs); err != nil {
		return nil, fmt.Errorf("yaml unmarshal: %w", err)
	}
	return New(FromSpecs(specs))
}

// LoadFile reads a palette catalog from a YAML file.
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading file %s: %w", path, err)
	}
	c, err := ParseYAML(data)
	if err != nil {
		return nil, fmt.Errorf("parsing file %s: %w", path, err)
	}
	return c, nil
}
