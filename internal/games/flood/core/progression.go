package core

import "fmt"

// Rules parameterizes an Engine.
type Rules struct {
	GridSize     int
	DefaultMoves int
	// BaseColors is the colour count before the first threshold.
	BaseColors int
	// Thresholds are the levels at which one more colour is introduced.
	Thresholds   []int
	Multipliers  []MultiplierRule
	PerfectUnder int
	PerfectBonus int
}

// DefaultRules returns the classic 14×14, 25-move ruleset.
func DefaultRules() Rules {
	return Rules{
		GridSize:     14,
		DefaultMoves: 25,
		BaseColors:   3,
		Thresholds:   []int{5, 10, 15},
		Multipliers:  DefaultMultipliers(),
		PerfectUnder: 15,
		PerfectBonus: 500,
	}
}

// MaxColors is the colour count reached once every threshold has passed.
func (r Rules) MaxColors() int {
	return r.BaseColors + len(r.Thresholds)
}

// ColorCount returns how many palette colours are in play at level:
// base plus one per threshold the level has reached.
func ColorCount(level, base int, thresholds []int) int {
	n := base
	for _, t := range thresholds {
		if level >= t {
			n++
		}
	}
	return n
}

// PerfectClear reports whether clearing a level with movesLeft remaining earns the bonus.
func (r Rules) PerfectClear(movesLeft int) bool {
	return r.DefaultMoves-movesLeft < r.PerfectUnder
}

// Engine drives levels over a fixed palette catalog.
// It is not safe for concurrent use; every method runs to completion.
type Engine struct {
	rules      Rules
	palettes   []Palette
	paletteIdx int
	rng        RandSource
	state      State
}

// NewEngine validates the configuration and starts a new game on palette 0.
func NewEngine(rules Rules, palettes []Palette, rng RandSource) (*Engine, error) {
	if len(palettes) == 0 {
		return nil, fmt.Errorf("%w: no palettes", ErrEmptyPalette)
	}
	if rules.GridSize < 1 {
		return nil, fmt.Errorf("%w: grid size %d", ErrBadRules, rules.GridSize)
	}
	if rules.DefaultMoves < 1 {
		return nil, fmt.Errorf("%w: move budget %d", ErrBadRules, rules.DefaultMoves)
	}
	if rules.BaseColors < 1 {
		return nil, fmt.Errorf("%w: base colors %d", ErrBadRules, rules.BaseColors)
	}
	for _, p := range palettes {
		if len(p.Colors) < rules.MaxColors() {
			return nil, fmt.Errorf("%w: palette %q has %d colors, need %d",
				ErrEmptyPalette, p.Name, len(p.Colors), rules.MaxColors())
		}
	}

	e := &Engine{
		rules:    rules,
		palettes: palettes,
		rng:      rng,
	}
	e.StartNewGame()
	return e, nil
}

// Rules returns the engine's ruleset.
func (e *Engine) Rules() Rules {
	return e.rules
}

// Palettes returns the palette names in cycle order.
func (e *Engine) Palettes() []string {
	names := make([]string, len(e.palettes))
	for i, p := range e.palettes {
		names[i] = p.Name
	}
	return names
}

// SelectPalette switches to the named palette and regenerates the level.
// It reports false for unknown names.
func (e *Engine) SelectPalette(name string) bool {
	for i, p := range e.palettes {
		if p.Name == name {
			e.paletteIdx = i
			e.deriveState(e.state.Level, e.state.Score)
			return true
		}
	}
	return false
}

// Snapshot returns a deep copy of the current state.
func (e *Engine) Snapshot() State {
	return e.state.Clone()
}

// StartNewGame resets score and level and deals a fresh board.
func (e *Engine) StartNewGame() State {
	e.deriveState(1, 0)
	return e.Snapshot()
}

// ResetLevel deals a fresh board for the current level, keeping the score.
func (e *Engine) ResetLevel() State {
	e.deriveState(e.state.Level, e.state.Score)
	return e.Snapshot()
}

// StartNextLevel applies the perfect-clear bonus when earned and advances a level.
func (e *Engine) StartNextLevel() State {
	score := e.state.Score
	if e.rules.PerfectClear(e.state.MovesLeft) {
		score += e.rules.PerfectBonus
	}
	e.deriveState(e.state.Level+1, score)
	return e.Snapshot()
}

// CyclePalette moves to the next palette and deals a fresh board for the same level.
// Moves already spent on the level stay spent; a finished level gets a full budget.
func (e *Engine) CyclePalette() State {
	left := e.state.MovesLeft
	playing := e.state.Status == StatusPlaying
	e.paletteIdx = (e.paletteIdx + 1) % len(e.palettes)
	e.deriveState(e.state.Level, e.state.Score)
	if playing {
		e.state.MovesLeft = left
	}
	return e.Snapshot()
}

// ApplyMove plays color on the current level.
func (e *Engine) ApplyMove(color Color) (State, MoveResult, error) {
	res, err := ApplyMove(&e.state, color, e.rules.Multipliers)
	if err != nil {
		return e.Snapshot(), MoveResult{}, err
	}
	return e.Snapshot(), res, nil
}

// PreviewMove reports what playing color would add.
func (e *Engine) PreviewMove(color Color) PreviewResult {
	return Preview(&e.state, color, e.rules.Multipliers)
}

// deriveState rebuilds the whole aggregate for level and palette in one step.
func (e *Engine) deriveState(level, score int) {
	palette := e.palettes[e.paletteIdx]
	selection := palette.Selection(ColorCount(level, e.rules.BaseColors, e.rules.Thresholds))

	grid, err := Generate(e.rules.GridSize, selection, e.rng)
	if err != nil {
		// NewEngine has already rejected every configuration that reaches here.
		panic(err)
	}
	e.state = NewState(grid, e.rules.DefaultMoves, score, level, palette.Name, selection)
}
