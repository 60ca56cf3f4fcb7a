// Package config provides YAML-based configuration loading and difficulty
// presets for Colour Flood.
package config

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/colour-flood/internal/games/flood/core"
	"github.com/vovakirdan/colour-flood/internal/games/flood/palettes"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("config: invalid")

// FloodConfig contains all configuration for the flood game.
type FloodConfig struct {
	Grid        GridConfig        `yaml:"grid"`
	Moves       MovesConfig       `yaml:"moves"`
	Progression ProgressionConfig `yaml:"progression"`
	Scoring     ScoringConfig     `yaml:"scoring"`
	Bonus       BonusConfig       `yaml:"bonus"`
	Palette     PaletteConfig     `yaml:"palette"`
	Palettes    []palettes.Spec   `yaml:"palettes"`
}

// GridConfig defines the board.
type GridConfig struct {
	Size int `yaml:"size"`
}

// MovesConfig defines the per-level move budget.
type MovesConfig struct {
	Default int `yaml:"default"`
}

// ProgressionConfig defines how many colours each level uses.
type ProgressionConfig struct {
	BaseColors int   `yaml:"base_colors"`
	Thresholds []int `yaml:"thresholds"` // levels that add one colour each
}

// ScoringConfig defines combo multipliers.
type ScoringConfig struct {
	Multipliers []MultiplierConfig `yaml:"multipliers"`
}

// MultiplierConfig grants Factor to moves adding more than Over tiles.
type MultiplierConfig struct {
	Over   int     `yaml:"over"`
	Factor float64 `yaml:"factor"`
}

// BonusConfig defines the perfect-clear bonus.
type BonusConfig struct {
	PerfectUnder int `yaml:"perfect_under"` // bonus when fewer moves than this were used
	Amount       int `yaml:"amount"`
}

// PaletteConfig selects the palette a session starts on.
type PaletteConfig struct {
	Start string `yaml:"start"`
}

// Validate checks the config for values the engine cannot play.
func (c FloodConfig) Validate() error {
	if c.Grid.Size < 2 {
		return fmt.Errorf("%w: grid.size must be at least 2, got %d", ErrInvalidConfig, c.Grid.Size)
	}
	if c.Moves.Default < 1 {
		return fmt.Errorf("%w: moves.default must be positive, got %d", ErrInvalidConfig, c.Moves.Default)
	}
	if c.Progression.BaseColors < 2 {
		return fmt.Errorf("%w: progression.base_colors must be at least 2, got %d", ErrInvalidConfig, c.Progression.BaseColors)
	}
	prev := 0
	for _, t := range c.Progression.Thresholds {
		if t <= prev {
			return fmt.Errorf("%w: progression.thresholds must be increasing positive levels", ErrInvalidConfig)
		}
		prev = t
	}
	if most := c.Progression.BaseColors + len(c.Progression.Thresholds); most > palettes.Size {
		return fmt.Errorf("%w: progression reaches %d colors, palettes hold %d", ErrInvalidConfig, most, palettes.Size)
	}
	for _, m := range c.Scoring.Multipliers {
		if m.Over < 0 || m.Factor < 1 {
			return fmt.Errorf("%w: multiplier {over: %d, factor: %v}", ErrInvalidConfig, m.Over, m.Factor)
		}
	}
	if c.Bonus.PerfectUnder < 0 || c.Bonus.Amount < 0 {
		return fmt.Errorf("%w: bonus values must not be negative", ErrInvalidConfig)
	}

	cat, err := c.Catalog()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if c.Palette.Start != "" && cat.Index(c.Palette.Start) < 0 {
		return fmt.Errorf("%w: palette.start %q is not in the catalog", ErrInvalidConfig, c.Palette.Start)
	}
	return nil
}

// Rules converts the config to engine rules.
func (c FloodConfig) Rules() core.Rules {
	mult := make([]core.MultiplierRule, len(c.Scoring.Multipliers))
	for i, m := range c.Scoring.Multipliers {
		mult[i] = core.MultiplierRule{Over: m.Over, Factor: m.Factor}
	}
	thresholds := make([]int, len(c.Progression.Thresholds))
	copy(thresholds, c.Progression.Thresholds)

	return core.Rules{
		GridSize:     c.Grid.Size,
		DefaultMoves: c.Moves.Default,
		BaseColors:   c.Progression.BaseColors,
		Thresholds:   thresholds,
		Multipliers:  mult,
		PerfectUnder: c.Bonus.PerfectUnder,
		PerfectBonus: c.Bonus.Amount,
	}
}

// Catalog builds the palette catalog. An empty palette list means the built-in one.
func (c FloodConfig) Catalog() (*palettes.Catalog, error) {
	if len(c.Palettes) == 0 {
		return palettes.MustDefault(), nil
	}
	return palettes.New(palettes.FromSpecs(c.Palettes))
}

// CyclePalettes returns the catalog in cycle order, starting at palette.start.
func (c FloodConfig) CyclePalettes() ([]core.Palette, error) {
	cat, err := c.Catalog()
	if err != nil {
		return nil, err
	}
	if c.Palette.Start == "" {
		return cat.Palettes(), nil
	}
	return cat.Rotate(c.Palette.Start)
}
