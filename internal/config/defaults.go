package config

import (
	_ "embed"

	"github.com/vovakirdan/colour-flood/internal/games/flood/palettes"
)

//go:embed defaults/flood.yaml
var defaultFloodYAML []byte

// DefaultFloodConfig returns the default configuration: a 14×14 board,
// 25 moves per level and the seven built-in palettes.
func DefaultFloodConfig() FloodConfig {
	return FloodConfig{
		Grid:  GridConfig{Size: 14},
		Moves: MovesConfig{Default: 25},
		Progression: ProgressionConfig{
			BaseColors: 3,
			Thresholds: []int{5, 10, 15},
		},
		Scoring: ScoringConfig{
			Multipliers: []MultiplierConfig{
				{Over: 20, Factor: 2},
				{Over: 10, Factor: 1.5},
			},
		},
		Bonus: BonusConfig{
			PerfectUnder: 15,
			Amount:       500,
		},
		Palette:  PaletteConfig{Start: "default"},
		Palettes: palettes.ToSpecs(palettes.Default()),
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "flood":
		return defaultFloodYAML
	default:
		return nil
	}
}
