package core

// Region is a set of unique coordinates on a grid of a fixed size.
// Membership is tracked in a flat bitmap so lookups are O(1); Cells keeps
// discovery order for callers that want to iterate.
type Region struct {
	size   int
	cells  []Coord
	member []bool
}

// NewRegion creates an empty region for a size×size grid.
func NewRegion(size int) Region {
	return Region{
		size:   size,
		member: make([]bool, size*size),
	}
}

// Add inserts c into the region. Out-of-range and duplicate coordinates are ignored.
func (r *Region) Add(c Coord) bool {
	if c.Row < 0 || c.Row >= r.size || c.Col < 0 || c.Col >= r.size {
		return false
	}
	i := c.Row*r.size + c.Col
	if r.member[i] {
		return false
	}
	r.member[i] = true
	r.cells = append(r.cells, c)
	return true
}

// Contains reports whether c belongs to the region.
func (r Region) Contains(c Coord) bool {
	if c.Row < 0 || c.Row >= r.size || c.Col < 0 || c.Col >= r.size {
		return false
	}
	return r.member[c.Row*r.size+c.Col]
}

// Len returns the number of cells in the region.
func (r Region) Len() int {
	return len(r.cells)
}

// Cells returns a copy of the region's coordinates in discovery order.
func (r Region) Cells() []Coord {
	out := make([]Coord, len(r.cells))
	copy(out, r.cells)
	return out
}

// Difference returns the cells of r that are not in other, in r's order.
func (r Region) Difference(other Region) []Coord {
	out := make([]Coord, 0)
	for _, c := range r.cells {
		if !other.Contains(c) {
			out = append(out, c)
		}
	}
	return out
}

// Clone returns a deep copy.
func (r Region) Clone() Region {
	member := make([]bool, len(r.member))
	copy(member, r.member)
	return Region{
		size:   r.size,
		cells:  r.Cells(),
		member: member,
	}
}

// ComputeRegion returns the maximal 4-connected component of cells sharing
// the anchor's colour. The search uses an explicit stack so depth never
// depends on grid area. An out-of-bounds anchor yields an empty region.
func ComputeRegion(g *Grid, anchor Coord) Region {
	region := NewRegion(g.Size)
	if !g.InBounds(anchor) {
		return region
	}

	target := g.At(anchor)
	stack := make([]Coord, 0, g.Size)
	stack = append(stack, anchor)
	region.Add(anchor)

	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		for _, d := range neighbours {
			next := Coord{Row: cur.Row + d.Row, Col: cur.Col + d.Col}
			if !g.InBounds(next) || g.At(next) != target {
				continue
			}
			if region.Add(next) {
				stack = append(stack, next)
			}
		}
	}

	return region
}
