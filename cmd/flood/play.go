package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/colour-flood/internal/platform/tui"
	"github.com/vovakirdan/colour-flood/internal/registry"
	"github.com/vovakirdan/colour-flood/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play [variant]",
	Short: "Play a variant directly",
	Long: `Start playing Colour Flood without the menu.

Controls:
  1-6           - Play a colour
  Left/Right    - Move the colour cursor (preview)
  Enter/Space   - Play the focused colour / confirm
  C             - Cycle palette
  R             - Reset level
  I/?           - How to play
  T             - Toggle light/dark theme
  M             - Mute sound cues
  Esc           - Back to menu
  Q/Ctrl+C      - Quit

Examples:
  flood play
  flood play flood_ascii
  flood play --difficulty easy --palette pastel
  flood play --config ./my-flood.yaml --seed 42`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func runPlay(_ *cobra.Command, args []string) {
	variant := "flood"
	if len(args) == 1 {
		variant = args[0]
	}

	// Check if variant exists
	if !registry.Exists(variant) {
		fmt.Fprintf(os.Stderr, "Error: unknown variant %q\n", variant)
		fmt.Fprintln(os.Stderr, "Run 'flood list' to see available variants.")
		os.Exit(1)
	}

	if _, err := loadConfig(); err != nil {
		fail("%v", err)
	}

	logger, closeLog, err := newLogger(true)
	if err != nil {
		fail("%v", err)
	}
	defer closeLog()

	game, err := registry.Create(variant)
	if err != nil {
		fail("creating game: %v", err)
	}

	ledger := openLedger(logger)
	if ledger != nil {
		defer ledger.Close()
	}

	if _, err := tui.Run(game, runtimeConfig(), tui.Options{Ledger: ledger, Logger: logger}); err != nil {
		fail("running game: %v", err)
	}
}

// openLedger opens the session ledger. The game works without one.
func openLedger(logger *log.Logger) *storage.Ledger {
	ledger, err := storage.OpenMemory()
	if err != nil {
		logger.Warn("session ledger unavailable", "err", err)
		return nil
	}
	return ledger
}
