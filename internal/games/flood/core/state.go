package core

// State is the full game aggregate for one level.
// It is owned by an Engine; callers get copies via Engine.Snapshot.
type State struct {
	Grid        *Grid
	ActiveColor Color
	Region      Region
	MovesLeft   int
	MoveBudget  int
	Score       int
	Level       int
	Status      Status
	Palette     string
	Selection   []Color
}

// MovesUsed returns how many moves were spent on the current level.
func (s *State) MovesUsed() int {
	return s.MoveBudget - s.MovesLeft
}

// Area returns the total number of cells on the board.
func (s *State) Area() int {
	if s.Grid == nil {
		return 0
	}
	return s.Grid.Area()
}

// Progress returns the captured fraction of the board in [0, 1].
func (s *State) Progress() float64 {
	area := s.Area()
	if area == 0 {
		return 0
	}
	return float64(s.Region.Len()) / float64(area)
}

// Clone returns a deep copy of the state.
func (s *State) Clone() State {
	sel := make([]Color, len(s.Selection))
	copy(sel, s.Selection)
	return State{
		Grid:        s.Grid.Clone(),
		ActiveColor: s.ActiveColor,
		Region:      s.Region.Clone(),
		MovesLeft:   s.MovesLeft,
		MoveBudget:  s.MoveBudget,
		Score:       s.Score,
		Level:       s.Level,
		Status:      s.Status,
		Palette:     s.Palette,
		Selection:   sel,
	}
}

// NewState builds a fresh Playing state around grid.
// The region is derived from the anchor, and an already uniform board is
// reported as Won straight away.
func NewState(grid *Grid, moves, score, level int, palette string, selection []Color) State {
	sel := make([]Color, len(selection))
	copy(sel, selection)

	s := State{
		Grid:        grid,
		ActiveColor: grid.At(Anchor),
		Region:      ComputeRegion(grid, Anchor),
		MovesLeft:   moves,
		MoveBudget:  moves,
		Score:       score,
		Level:       level,
		Status:      StatusPlaying,
		Palette:     palette,
		Selection:   sel,
	}
	if s.Region.Len() == grid.Area() {
		s.Status = StatusWon
	}
	return s
}
