package core

import "math"

// MultiplierRule grants Factor to moves that add strictly more than Over tiles.
type MultiplierRule struct {
	Over   int
	Factor float64
}

// DefaultMultipliers returns the classic combo table: >20 tiles doubles,
// >10 tiles is worth half again.
func DefaultMultipliers() []MultiplierRule {
	return []MultiplierRule{
		{Over: 20, Factor: 2},
		{Over: 10, Factor: 1.5},
	}
}

// Multiplier returns the factor for a move that added newTiles tiles.
// The rule with the highest Over that newTiles exceeds wins; otherwise 1.
func Multiplier(newTiles int, rules []MultiplierRule) float64 {
	best := -1
	factor := 1.0
	for _, r := range rules {
		if newTiles > r.Over && r.Over > best {
			best = r.Over
			factor = r.Factor
		}
	}
	return factor
}

// ScoreIncrement returns floor(newTiles * multiplier).
func ScoreIncrement(newTiles int, rules []MultiplierRule) int {
	if newTiles <= 0 {
		return 0
	}
	return int(math.Floor(float64(newTiles) * Multiplier(newTiles, rules)))
}
