// flood is the Colour Flood puzzle for the terminal.
//
// Usage:
//
//	flood                    - Start the mode picker menu
//	flood menu               - Same as above
//	flood play [variant]     - Play a variant directly (flood, flood_ascii)
//	flood list               - List available variants
//	flood palettes           - Show the palette catalog
//	flood auto               - Let a strategy play and report the results
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 30)
//	--seed <value>        - Set RNG seed for reproducible boards
//	--config <path>       - Load a custom flood.yaml
//	--difficulty <name>   - Difficulty preset: easy, normal, hard
//	--palette <name>      - Palette to start on
//	--palettes <path>     - Load the palette catalog from a YAML file
//	--log-level <level>   - debug, info, warn, error (default: warn)
//	--log-file <path>     - Write logs to a file
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import the game to register its variants
	_ "github.com/vovakirdan/colour-flood/internal/games/flood"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagConfig     string
	flagDifficulty string
	flagPalette    string
	flagPalettes   string
	flagLogLevel   string
	flagLogFile    string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "flood",
	Short: "Colour Flood - flood the board from the top-left corner",
	Long: `Colour Flood is a region-growing puzzle for the terminal.

Pick a colour each move: every tile of that colour touching your region
joins it. Fill the whole board before the moves run out.

Available commands:
  menu      - Mode picker menu (default)
  play      - Play a variant directly
  list      - Show all variants
  palettes  - Show the palette catalog
  auto      - Let a strategy play

Examples:
  flood
  flood play --palette beach
  flood play flood_ascii --difficulty hard
  flood auto --games 20 --strategy lookahead`,
	Run: runMenu,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 30, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom flood config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	rootCmd.PersistentFlags().StringVar(&flagPalette, "palette", "", "Palette to start on (see 'flood palettes')")
	rootCmd.PersistentFlags().StringVar(&flagPalettes, "palettes", "", "Load the palette catalog from a YAML file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "warn", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	// Add subcommands
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(palettesCmd)
	rootCmd.AddCommand(autoCmd)
}
