package flood

import "github.com/vovakirdan/colour-flood/internal/games/flood/core"

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying       GameStateType = "playing"
	StateLevelComplete GameStateType = "level_complete"
	StateGameOver      GameStateType = "game_over"
	StateDialog        GameStateType = "dialog"
	StatePausedSmall   GameStateType = "paused_small_window"
	StateError         GameStateType = "error"
)

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	Tick        uint64
	Level       int
	Score       int
	MovesLeft   int
	Palette     string
	ActiveColor core.Color
	RegionSize  int
	Colors      int // colours in play this level
	Cursor      int
	Board       string
	State       GameStateType
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case g.err != nil || g.engine == nil:
		state = StateError
	case g.tooSmall:
		state = StatePausedSmall
	case g.dialog == DialogLevelComplete:
		state = StateLevelComplete
	case g.dialog == DialogGameOver:
		state = StateGameOver
	case g.dialog != DialogNone:
		state = StateDialog
	}

	board := ""
	if g.state.Grid != nil {
		board = g.state.Grid.String()
	}

	return Snapshot{
		Tick:        g.tick,
		Level:       g.state.Level,
		Score:       g.state.Score,
		MovesLeft:   g.state.MovesLeft,
		Palette:     g.state.Palette,
		ActiveColor: g.state.ActiveColor,
		RegionSize:  g.state.Region.Len(),
		Colors:      len(g.state.Selection),
		Cursor:      g.cursor,
		Board:       board,
		State:       state,
	}
}
