// Package grid holds the immutable 2D cost map that path searches run on.
//
// What:
//
//   - Grid wraps a rectangular [][]int of traversal costs, indexed values[y][x].
//   - A cost of 0 marks an impassable cell; any positive cost is the price
//     of stepping into that cell.
//   - State is a plain {X, Y} coordinate, comparable and usable as a map key.
//
// Why:
//
//   - Searches only ever read the grid, so one Grid may be shared by any
//     number of concurrent searches without locking.
//
// Complexity:
//
//   - New:        O(W×H) time and memory (deep copy).
//   - CostAt:     O(1).
//   - Neighbors:  O(1), at most 4 states.
//
// Errors:
//
//   - ErrEmptyGrid: input grid has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrNegativeCost: a cell holds a cost below zero.
//   - ErrOutOfBounds: a coordinate lies outside the grid.
package grid
