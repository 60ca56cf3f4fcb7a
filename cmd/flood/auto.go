package main

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/colour-flood/internal/games/flood/core"
	"github.com/vovakirdan/colour-flood/internal/games/flood/solver"
	"github.com/vovakirdan/colour-flood/internal/storage"
)

var (
	flagGames    int
	flagStrategy string
	flagLevels   int
	flagTop      int
)

var autoCmd = &cobra.Command{
	Use:   "auto",
	Short: "Let a strategy play and report the results",
	Long: `Play Colour Flood headlessly with a built-in strategy.

Each game runs until a level is lost or --levels levels are won
(1000 at most).
Results go to an in-memory session ledger and a summary is printed.

Strategies:
  greedy     - play the colour that captures the most tiles now
  lookahead  - also weigh the best follow-up move

Examples:
  flood auto
  flood auto --games 50 --strategy lookahead
  flood auto --seed 7 --levels 10 --difficulty hard`,
	Args: cobra.NoArgs,
	Run:  runAuto,
}

func init() {
	autoCmd.Flags().IntVar(&flagGames, "games", 10, "Number of games to play")
	autoCmd.Flags().StringVar(&flagStrategy, "strategy", "greedy", "Strategy: greedy, lookahead")
	autoCmd.Flags().IntVar(&flagLevels, "levels", 0, "Stop a game after this many won levels (0 = until lost, at most 1000)")
	autoCmd.Flags().IntVar(&flagTop, "top", 5, "Number of best runs to list")
}

func runAuto(_ *cobra.Command, _ []string) {
	if flagGames < 1 {
		fail("--games must be at least 1")
	}
	strategy, err := solver.ByName(flagStrategy)
	if err != nil {
		fail("%v", err)
	}
	cfg, err := loadConfig()
	if err != nil {
		fail("%v", err)
	}
	order, err := cfg.CyclePalettes()
	if err != nil {
		fail("%v", err)
	}

	logger, closeLog, err := newLogger(false)
	if err != nil {
		fail("%v", err)
	}
	defer closeLog()

	ledger, err := storage.OpenMemory()
	if err != nil {
		fail("%v", err)
	}
	defer ledger.Close()

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	engine, err := core.NewEngine(cfg.Rules(), order, rand.New(rand.NewSource(seed)))
	if err != nil {
		fail("%v", err)
	}
	logger.Info("auto play", "strategy", strategy.Name(), "games", flagGames, "seed", seed)

	variant := "auto:" + strategy.Name()
	for i := range flagGames {
		run := solver.Play(engine, strategy, flagLevels)
		if err := recordRun(ledger, variant, run); err != nil {
			fail("%v", err)
		}
		logger.Debug("game finished", "game", i+1, "level", run.LastLevel, "score", run.FinalScore)
	}

	if err := printSummary(ledger, strategy.Name(), seed); err != nil {
		fail("%v", err)
	}
}

// recordRun writes one auto-played game to the ledger.
func recordRun(ledger *storage.Ledger, variant string, run solver.RunResult) error {
	if len(run.Levels) == 0 {
		return nil
	}
	id, err := ledger.StartRun(variant, run.Levels[0].Palette)
	if err != nil {
		return err
	}
	for _, l := range run.Levels {
		_, err := ledger.RecordLevel(storage.LevelResult{
			RunID:     id,
			Level:     l.Level,
			Palette:   l.Palette,
			Won:       l.Won,
			MovesUsed: l.MovesUsed,
			Score:     l.Score,
			Bonus:     l.Bonus,
		})
		if err != nil {
			return err
		}
	}
	return ledger.FinishRun(id, run.FinalScore, run.LastLevel)
}

func printSummary(ledger *storage.Ledger, strategy string, seed int64) error {
	stats, err := ledger.Stats()
	if err != nil {
		return err
	}
	runs, err := ledger.TopRuns(flagTop)
	if err != nil {
		return err
	}

	fmt.Printf("Auto play - %s (seed %d)\n", strategy, seed)
	fmt.Println()
	fmt.Printf("  Games          %d\n", stats.Runs)
	fmt.Printf("  Levels played  %d\n", stats.LevelsPlayed)
	fmt.Printf("  Win rate       %.1f%%\n", stats.WinRate()*100)
	fmt.Printf("  Perfect clears %d\n", stats.PerfectClears)
	fmt.Printf("  Avg level      %.2f\n", stats.AvgLastLevel)
	fmt.Printf("  Moves per win  %.2f\n", stats.AvgMovesPerWin)
	fmt.Printf("  Best score     %d\n", stats.HighScore)

	if len(runs) == 0 {
		return nil
	}
	fmt.Println()
	fmt.Println("Best runs:")
	fmt.Printf("  %-4s  %-8s  %-5s  %s\n", "Rank", "Score", "Level", "Palette")
	fmt.Printf("  %-4s  %-8s  %-5s  %s\n", "----", "-----", "-----", "-------")
	for i, r := range runs {
		fmt.Printf("  %-4d  %-8d  %-5d  %s\n", i+1, r.FinalScore, r.LastLevel, r.Palette)
	}
	return nil
}
