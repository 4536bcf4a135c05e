// Package dijkstra computes exact single-source shortest-path distances on a
// grid.Grid using Dijkstra's algorithm.
//
// The cost model matches package astar: entering a cell costs its grid value,
// the source is never charged, and zero-cost cells are walls. Because the
// algorithm settles every reachable cell, it serves as a reference oracle for
// A* results and as a reachability check for generated grids.
//
// Complexity:
//
//   - Time:  O(V log V) for V = W×H cells (at most 4 relaxations per cell).
//   - Space: O(V) for distance and predecessor maps, plus O(E) heap entries
//     under lazy decrease-key.
//
// Notes on implementation choices:
//
//   - We use a “lazy” decrease-key strategy: pushing duplicates into the heap
//     and ignoring stale entries when popped.
//   - We stop exploring once the minimum distance in the heap exceeds MaxDistance.
//   - Target, when set, stops the search as soon as it is settled.
//
// Errors (sentinel):
//
//	– ErrNilGrid           if the grid pointer is nil.
//	– ErrSourceOutOfBounds if the source lies outside the grid.
//	– ErrBadMaxDistance    if MaxDistance < 0.
//	– ErrUnreachable       from ShortestPath when target cannot be reached.
package dijkstra
