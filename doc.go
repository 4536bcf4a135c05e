// Package gridstar is a step-wise A* search over weighted 2D grids.
//
// Every cell of a grid holds the non-negative cost of entering it; a cost of
// zero marks a wall. The search moves in four directions, charges the cost
// of each cell it enters, and never charges the start.
//
// The module is split into small packages:
//
//	grid/       immutable cost grid, 4-connected neighbors, reachability
//	frontier/   generic keyed min-priority queue with decrease-key
//	astar/      the engine: single-step expansion, reopening, hooks
//	dijkstra/   reference shortest-path distances used to verify results
//	gridgen/    terrain generators (uniform, random, gradients, boulder)
//	render/     two-panel terminal frames (costs | f-values, path)
//	cmd/gridstar  CLI: run, watch (bubbletea), serve (HTTP API)
//
// Quick example:
//
//	g := grid.MustNew([][]int{
//		{1, 5, 1},
//		{1, 1, 1},
//	})
//	e, _ := astar.New(g, grid.S(0, 0), grid.S(2, 0))
//	for {
//		n, err := e.ExpandOne()
//		if err != nil || n != nil {
//			break
//		}
//	}
//	fmt.Println(astar.ReconstructPath(e.Terminal())) // [(0,0) (0,1) (1,1) (2,1) (2,0)]
package gridstar
