package core

// EventKind identifies something that happened during a step.
type EventKind uint8

const (
	EventMoveApplied EventKind = iota + 1
	EventMoveRejected
	EventLevelWon
	EventGameLost
	EventLevelStarted
	EventPaletteChanged
)

// String returns the string representation of an event kind.
func (k EventKind) String() string {
	switch k {
	case EventMoveApplied:
		return "move_applied"
	case EventMoveRejected:
		return "move_rejected"
	case EventLevelWon:
		return "level_won"
	case EventGameLost:
		return "game_lost"
	case EventLevelStarted:
		return "level_started"
	case EventPaletteChanged:
		return "palette_changed"
	default:
		return "unknown"
	}
}

// Event is emitted by a game step so the platform can react (sound, logs,
// ledger) without the game owning those side effects.
type Event struct {
	Kind       EventKind
	Level      int
	Score      int
	MovesUsed  int
	Gained     int     // points scored by the move
	Tiles      int     // tiles absorbed by the move
	Multiplier float64 // combo factor of the move
	Bonus      int     // perfect-clear bonus granted when leaving a won level
	Palette    string
	Color      string
	NewRun     bool // set on the first level of a fresh run
}
