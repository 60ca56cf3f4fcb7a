package palettes

import "github.com/vovakirdan/colour-flood/internal/games/flood/core"

// Default returns the built-in palettes in cycle order.
func Default() []core.Palette {
	return []core.Palette{
		{Name: "default", Colors: []core.Color{"#FF5252", "#FFEB3B", "#4CAF50", "#2196F3", "#9C27B0", "#FF9800"}},
		{Name: "pastel", Colors: []core.Color{"#FF9AA2", "#FFD6A5", "#CAFFBF", "#9BF6FF", "#BDB2FF", "#FFC6FF"}},
		{Name: "retrowave", Colors: []core.Color{"#FF00FF", "#00FFFF", "#FFFF00", "#0000FF", "#FF0000", "#00FF00"}},
		{Name: "metallic", Colors: []core.Color{"#A79E70", "#8D8741", "#7D5E2A", "#574932", "#513B29", "#3F2D20"}},
		{Name: "monochrome", Colors: []core.Color{"#FFFFFF", "#D6D6D6", "#ADADAD", "#848484", "#5B5B5B", "#333333"}},
		{Name: "beach", Colors: []core.Color{"#FFDE59", "#3AB4F2", "#FF9966", "#59D8A4", "#FF6B6B", "#C490D1"}},
		{Name: "garden", Colors: []core.Color{"#8BC34A", "#FFEB3B", "#F06292", "#9575CD", "#795548", "#4CAF50"}},
	}
}
