// Package solver contains automatic players for the flood engine.
// They drive `flood auto` and give tests a way to play long games.
package solver

import (
	"fmt"
	"sort"

	"github.com/vovakirdan/colour-flood/internal/games/flood/core"
)

// Strategy picks the next colour for a playing state.
// It must return a colour from s.Selection that differs from s.ActiveColor.
type Strategy interface {
	Name() string
	Choose(s core.State, multipliers []core.MultiplierRule) core.Color
}

// Greedy picks the colour whose preview absorbs the most tiles.
// Ties go to the earliest colour in the selection.
type Greedy struct{}

func (Greedy) Name() string { return "greedy" }

func (Greedy) Choose(s core.State, multipliers []core.MultiplierRule) core.Color {
	best := core.Color("")
	bestN := -1
	for _, c := range s.Selection {
		if c == s.ActiveColor {
			continue
		}
		n := len(core.Preview(&s, c, multipliers).NewTiles)
		if n > bestN {
			best, bestN = c, n
		}
	}
	return best
}

// Lookahead scores each colour by the best region it can reach in two moves.
type Lookahead struct{}

func (Lookahead) Name() string { return "lookahead" }

func (Lookahead) Choose(s core.State, multipliers []core.MultiplierRule) core.Color {
	best := core.Color("")
	bestScore := -1
	for _, first := range s.Selection {
		if first == s.ActiveColor {
			continue
		}
		next := s.Clone()
		res, err := core.ApplyMove(&next, first, multipliers)
		if err != nil {
			continue
		}

		score := next.Region.Len()*4 + len(res.NewTiles)
		if next.Status == core.StatusPlaying {
			reach := 0
			for _, second := range next.Selection {
				if second == next.ActiveColor {
					continue
				}
				if n := len(core.Preview(&next, second, multipliers).NewTiles); n > reach {
					reach = n
				}
			}
			score += reach * 2
		} else if next.Status == core.StatusWon {
			score += next.Area() * 8
		}

		if score > bestScore {
			best, bestScore = first, score
		}
	}
	return best
}

var strategies = map[string]Strategy{
	"greedy":    Greedy{},
	"lookahead": Lookahead{},
}

// Names returns the registered strategy names, sorted.
func Names() []string {
	names := make([]string, 0, len(strategies))
	for n := range strategies {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// ByName returns a strategy.
func ByName(name string) (Strategy, error) {
	s, ok := strategies[name]
	if !ok {
		return nil, fmt.Errorf("unknown strategy %q (have %v)", name, Names())
	}
	return s, nil
}
