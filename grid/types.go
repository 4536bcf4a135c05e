package grid

import (
	"errors"
	"fmt"
)

// Sentinel errors for grid operations.
var (
	// ErrEmptyGrid indicates input grid has no rows or no columns.
	ErrEmptyGrid = errors.New("grid: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("grid: all rows must have the same length")
	// ErrNegativeCost indicates a cell cost below zero.
	ErrNegativeCost = errors.New("grid: cell cost must be non-negative")
	// ErrOutOfBounds indicates a coordinate outside the grid.
	ErrOutOfBounds = errors.New("grid: coordinate out of bounds")
)

// Impassable is the cost value of a cell that can never be entered.
const Impassable = 0

// State identifies a single grid cell. Equality is structural, so two
// States with the same coordinates are interchangeable as map keys.
type State struct {
	X, Y int
}

// S is shorthand for State{X: x, Y: y}.
func S(x, y int) State {
	return State{X: x, Y: y}
}

// Add returns the state offset by (dx, dy).
func (s State) Add(dx, dy int) State {
	return State{X: s.X + dx, Y: s.Y + dy}
}

// Manhattan returns |s.X-o.X| + |s.Y-o.Y|.
func (s State) Manhattan(o State) int {
	return abs(s.X-o.X) + abs(s.Y-o.Y)
}

// String formats the state as "(x,y)".
func (s State) String() string {
	return fmt.Sprintf("(%d,%d)", s.X, s.Y)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}

	return v
}

// offsets lists the 4-connected moves in successor order: +x, -x, +y, -y.
// The order only affects tie-breaking, never correctness.
var offsets = [4][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}

// Grid is an immutable rectangular cost map.
// Width and Height are fixed at construction; costs are stored row-major.
type Grid struct {
	width, height int
	costs         []int
}
