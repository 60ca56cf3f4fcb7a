package core

// MoveResult describes an accepted move.
type MoveResult struct {
	Color      Color
	NewTiles   []Coord
	Multiplier float64
	Gained     int
	Status     Status
}

// ApplyMove recolours the active region of s and grows it.
// On ErrInvalidMove, s is left untouched. Otherwise every field is updated
// before returning, so no partial state is observable.
func ApplyMove(s *State, color Color, multipliers []MultiplierRule) (MoveResult, error) {
	if s.Status != StatusPlaying || color == s.ActiveColor {
		return MoveResult{}, ErrInvalidMove
	}

	prev := s.Region
	s.Grid.Paint(prev.cells, color)
	next := ComputeRegion(s.Grid, Anchor)

	gained := next.Difference(prev)
	inc := ScoreIncrement(len(gained), multipliers)

	s.Score += inc
	s.MovesLeft--
	s.ActiveColor = color
	s.Region = next

	switch {
	case next.Len() == s.Grid.Area():
		s.Status = StatusWon
	case s.MovesLeft <= 0:
		s.Status = StatusLost
	}

	return MoveResult{
		Color:      color,
		NewTiles:   gained,
		Multiplier: Multiplier(len(gained), multipliers),
		Gained:     inc,
		Status:     s.Status,
	}, nil
}
