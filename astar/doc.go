// Package astar implements a steppable A* search over a grid.Grid.
//
// The Engine owns one search: the open set (a frontier.Frontier keyed by
// grid.State), the closed set, the start node and the goal. Callers drive
// it one expansion at a time with ExpandOne, or to completion with Run,
// and inspect its state between steps through read-only queries. Nothing
// in this package prints or formats; rendering lives in package render.
//
// Cost model:
//
//	Entering a cell costs grid.CostAt(cell). The start cell is never
//	charged, so a node's path cost is the sum of the costs of every cell on
//	its parent chain except the root. Cells with cost 0 are never entered.
//
// Ordering:
//
//	f(n) = g(n) + h(n.State), where g is the node's path cost and h defaults
//	to the Manhattan distance to the goal. f is computed on demand by the
//	engine (Evaluate) and never stored on the node. Ties are broken by
//	insertion order in the frontier.
//
// Relaxation:
//
//	When a successor is already open, the open node is replaced only if the
//	new path is strictly cheaper. When it is already closed, it is reopened
//	(removed from the closed set and pushed back to the open set) only if the
//	new path is strictly cheaper. With the default heuristic and positive
//	costs reopening never happens; it is there for custom heuristics.
//
// Lifecycle:
//
//	StatusReady → StatusSearching → StatusFound | StatusExhausted
//
// Errors:
//
//   - ErrInvalidState: bad construction arguments (nil/empty grid, start or
//     goal out of bounds, impassable endpoint under WithStrictEndpoints).
//   - ErrExhausted: the open set emptied before the goal was reached.
//   - ErrStepLimit: Run stopped after the WithMaxSteps budget.
//
// Complexity:
//
//   - ExpandOne: O(log N) amortized per relaxed successor.
//   - Run:       O(V log V) for V reachable cells with a consistent heuristic.
//   - Space:     O(V).
package astar
