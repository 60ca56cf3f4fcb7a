package main

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/colour-flood/internal/games/flood"
	"github.com/vovakirdan/colour-flood/internal/platform/tui"
	"github.com/vovakirdan/colour-flood/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start with the mode picker menu",
	Long: `Start Colour Flood in interactive menu mode.

Use arrow keys or j/k to pick a mode and Left/Right to pick a palette.
Leaving a game with Esc returns you to the menu.

Controls:
  Up/Down/j/k     - Navigate modes
  Left/Right/h/l  - Choose palette
  Enter/Space     - Play
  Tab             - Session scoreboard
  Q               - Quit

Examples:
  flood menu
  flood menu --fps 20
  flood menu --difficulty hard`,
	Run: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) {
	floodCfg, err := loadConfig()
	if err != nil {
		fail("%v", err)
	}
	cat, err := floodCfg.Catalog()
	if err != nil {
		fail("%v", err)
	}

	logger, closeLog, err := newLogger(true)
	if err != nil {
		fail("%v", err)
	}
	defer closeLog()

	ledger := openLedger(logger)
	if ledger != nil {
		defer ledger.Close()
	}

	cfg := runtimeConfig()
	palette := floodCfg.Palette.Start

	// Menu loop
	for {
		menuResult, err := tui.RunMenu(cfg, cat.Palettes(), palette)
		if err != nil {
			logger.Error("menu failed", "err", err)
			break
		}

		// Update config with any size changes
		cfg = menuResult.Config
		palette = menuResult.Palette

		if menuResult.Quit {
			break
		}

		if menuResult.WantsScoreboard {
			goBack, sbErr := tui.RunScoreboard(ledger, cfg.ScreenW, cfg.ScreenH)
			if sbErr != nil {
				logger.Error("scoreboard failed", "err", sbErr)
			}
			if goBack {
				continue // Back to menu
			}
			break // User quit from scoreboard
		}

		if menuResult.GameID == "" {
			break
		}

		game, err := registry.Create(menuResult.GameID)
		if err != nil {
			logger.Error("cannot create game", "id", menuResult.GameID, "err", err)
			continue
		}
		flood.SetPalette(palette)

		// Fresh board each game unless a seed was given
		runCfg := cfg
		if flagSeed == 0 {
			runCfg.Seed = time.Now().UnixNano()
		}

		back, err := tui.Run(game, runCfg, tui.Options{Ledger: ledger, Logger: logger})
		if err != nil {
			logger.Error("game failed", "err", err)
		}
		if !back {
			break
		}
	}
}
