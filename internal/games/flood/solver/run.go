package solver

import "github.com/vovakirdan/colour-flood/internal/games/flood/core"

// LevelResult is the outcome of one played level.
type LevelResult struct {
	Level     int
	Palette   string
	Won       bool
	MovesUsed int
	Score     int
	Bonus     int
}

// RunResult summarizes one auto-played game.
type RunResult struct {
	Levels     []LevelResult
	FinalScore int
	LastLevel  int
}

// LevelCap bounds a run when no level limit is given. Small boards can be
// cleared forever, so "until the first loss" needs a ceiling.
const LevelCap = 1000

// Play drives e with strategy until a level is lost or maxLevels levels are won.
// maxLevels <= 0 means play until the first loss or LevelCap won levels.
func Play(e *core.Engine, strategy Strategy, maxLevels int) RunResult {
	if maxLevels <= 0 || maxLevels > LevelCap {
		maxLevels = LevelCap
	}

	var run RunResult
	mult := e.Rules().Multipliers
	s := e.StartNewGame()

	for {
		for s.Status == core.StatusPlaying {
			var err error
			s, _, err = e.ApplyMove(strategy.Choose(s, mult))
			if err != nil {
				// A strategy that cannot move ends the level.
				break
			}
		}

		lr := LevelResult{
			Level:     s.Level,
			Palette:   s.Palette,
			Won:       s.Status == core.StatusWon,
			MovesUsed: s.MovesUsed(),
			Score:     s.Score,
		}

		if !lr.Won {
			run.Levels = append(run.Levels, lr)
			break
		}

		next := e.StartNextLevel()
		lr.Bonus = next.Score - s.Score
		run.Levels = append(run.Levels, lr)
		s = next
		if len(run.Levels) >= maxLevels {
			break
		}
	}

	run.FinalScore = s.Score
	run.LastLevel = s.Level
	return run
}
