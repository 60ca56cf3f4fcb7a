package config

import "fmt"

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// presetMoveDelta is how many moves each preset adds to the budget.
var presetMoveDelta = map[DifficultyPreset]int{
	DifficultyEasy:   5,
	DifficultyNormal: 0,
	DifficultyHard:   -5,
}

// ParsePreset validates a preset name. Empty means normal.
func ParsePreset(name string) (DifficultyPreset, error) {
	if name == "" {
		return DifficultyNormal, nil
	}
	p := DifficultyPreset(name)
	if _, ok := presetMoveDelta[p]; !ok {
		return "", fmt.Errorf("%w: unknown difficulty %q (use easy, normal or hard)", ErrInvalidConfig, name)
	}
	return p, nil
}

// ApplyFloodPreset adjusts the move budget for a difficulty preset.
// The budget never drops below one move.
func ApplyFloodPreset(cfg *FloodConfig, preset DifficultyPreset) {
	cfg.Moves.Default += presetMoveDelta[preset]
	if cfg.Moves.Default < 1 {
		cfg.Moves.Default = 1
	}
}
