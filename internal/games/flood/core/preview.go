package core

// PreviewResult is what a candidate move would add without committing it.
type PreviewResult struct {
	NewTiles   []Coord
	Multiplier float64
}

// Empty reports whether the preview adds nothing.
func (p PreviewResult) Empty() bool {
	return len(p.NewTiles) == 0
}

// Contains reports whether c would be absorbed by the previewed move.
func (p PreviewResult) Contains(c Coord) bool {
	for _, t := range p.NewTiles {
		if t == c {
			return true
		}
	}
	return false
}

// Preview simulates ApplyMove on a scratch grid. It never mutates s.
// Invalid candidates yield an empty result with multiplier 1.
func Preview(s *State, color Color, multipliers []MultiplierRule) PreviewResult {
	if s.Status != StatusPlaying || color == s.ActiveColor || s.Grid == nil {
		return PreviewResult{NewTiles: []Coord{}, Multiplier: 1}
	}

	scratch := s.Grid.Clone()
	scratch.Paint(s.Region.cells, color)
	next := ComputeRegion(scratch, Anchor)
	tiles := next.Difference(s.Region)

	return PreviewResult{
		NewTiles:   tiles,
		Multiplier: Multiplier(len(tiles), multipliers),
	}
}
