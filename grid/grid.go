package grid

import "fmt"

// New constructs a Grid from a non-empty, rectangular 2D slice of costs
// indexed values[y][x]. It deep-copies the input to ensure immutability.
// Returns ErrEmptyGrid if values has no rows or no columns,
// ErrNonRectangular if any row length differs, and ErrNegativeCost
// if any cost is below zero.
// Algorithmic complexity: O(W×H) time and memory.
func New(values [][]int) (*Grid, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(values), len(values[0])
	for _, row := range values {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}
	// Deep copy to prevent external mutation
	costs := make([]int, 0, w*h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c := values[y][x]
			if c < 0 {
				return nil, fmt.Errorf("%w: cell (%d,%d) has cost %d", ErrNegativeCost, x, y, c)
			}
			costs = append(costs, c)
		}
	}

	return &Grid{width: w, height: h, costs: costs}, nil
}

// MustNew is like New but panics on error. Intended for tests and examples
// with literal grids.
func MustNew(values [][]int) *Grid {
	g, err := New(values)
	if err != nil {
		panic(err)
	}

	return g
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.height }

// Dimensions returns (width, height).
func (g *Grid) Dimensions() (int, int) { return g.width, g.height }

// Size returns the total number of cells.
func (g *Grid) Size() int { return g.width * g.height }

// InBounds reports whether s lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(s State) bool {
	return s.X >= 0 && s.X < g.width && s.Y >= 0 && s.Y < g.height
}

// CostAt returns the traversal cost of s.
// Callers must check InBounds first; out-of-range states panic.
func (g *Grid) CostAt(s State) int {
	return g.costs[g.Index(s)]
}

// Cost returns the traversal cost of the cell at (x, y), or ErrOutOfBounds.
func (g *Grid) Cost(x, y int) (int, error) {
	s := State{X: x, Y: y}
	if !g.InBounds(s) {
		return 0, fmt.Errorf("%w: %s not in %dx%d", ErrOutOfBounds, s, g.width, g.height)
	}

	return g.CostAt(s), nil
}

// Passable reports whether s is in bounds and has a nonzero cost.
func (g *Grid) Passable(s State) bool {
	return g.InBounds(s) && g.CostAt(s) != Impassable
}

// Neighbors returns the passable 4-connected neighbors of s in the fixed
// order +x, -x, +y, -y.
// Complexity: O(1).
func (g *Grid) Neighbors(s State) []State {
	out := make([]State, 0, len(offsets))
	for _, d := range offsets {
		n := s.Add(d[0], d[1])
		if g.Passable(n) {
			out = append(out, n)
		}
	}

	return out
}

// Index maps s to its row-major index: y*Width + x.
// Complexity: O(1).
func (g *Grid) Index(s State) int {
	return s.Y*g.width + s.X
}

// Coordinate converts a row-major index back to a State.
// Complexity: O(1).
func (g *Grid) Coordinate(idx int) State {
	return State{X: idx % g.width, Y: idx / g.width}
}

// Values returns a fresh copy of the cost table indexed [y][x].
func (g *Grid) Values() [][]int {
	out := make([][]int, g.height)
	for y := range out {
		row := make([]int, g.width)
		copy(row, g.costs[y*g.width:(y+1)*g.width])
		out[y] = row
	}

	return out
}
