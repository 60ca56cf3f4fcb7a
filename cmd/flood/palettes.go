package main

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/colour-flood/internal/games/flood/palettes"
)

var palettesCmd = &cobra.Command{
	Use:   "palettes",
	Short: "Show the palette catalog",
	Long: `Lists the palettes in cycle order with a swatch of each colour.
Use --config to preview palettes from a custom flood.yaml.`,
	Args: cobra.NoArgs,
	Run:  runPalettes,
}

var (
	paletteNameStyle  = lipgloss.NewStyle().Bold(true).Width(12)
	paletteStartStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("226"))
)

func runPalettes(_ *cobra.Command, _ []string) {
	cfg, err := loadConfig()
	if err != nil {
		fail("%v", err)
	}
	cat, err := cfg.Catalog()
	if err != nil {
		fail("%v", err)
	}

	start := cfg.Palette.Start
	if start == "" {
		start = cat.Names()[0]
	}

	fmt.Println("Palettes (cycle order):")
	fmt.Println()
	for _, p := range cat.Palettes() {
		line := "  " + paletteNameStyle.Render(p.Name)
		for i, c := range p.Colors {
			swatch := lipgloss.NewStyle().
				Background(lipgloss.Color(c)).
				Foreground(lipgloss.Color(palettes.Contrast(c))).
				Render(fmt.Sprintf(" %d ", i+1))
			line += swatch
		}
		if p.Name == start {
			line += paletteStartStyle.Render("  < start")
		}
		fmt.Println(line)
	}
}
