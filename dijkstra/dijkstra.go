package dijkstra

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/gridstar/grid"
)

// Dijkstra computes shortest distances from source to every reachable cell
// of g.
//
// Returns:
//
//   - dist: map from cell to minimum distance; cells never settled are absent
//     (use Distance for an Unreachable-aware lookup).
//   - prev: predecessor map if WithReturnPath was given, nil otherwise.
//     prev[v] == u means the shortest path to v goes through u.
//   - err:  ErrNilGrid or ErrSourceOutOfBounds on invalid input.
func Dijkstra(g *grid.Grid, source grid.State, opts ...Option) (map[grid.State]int64, map[grid.State]grid.State, error) {
	// 1) Build options.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate inputs.
	if g == nil {
		return nil, nil, ErrNilGrid
	}
	if !g.InBounds(source) {
		return nil, nil, fmt.Errorf("%w: %s", ErrSourceOutOfBounds, source)
	}

	// 3) Prepare data structures.
	r := &runner{
		g:       g,
		options: cfg,
		dist:    make(map[grid.State]int64, g.Size()),
		visited: make(map[grid.State]bool, g.Size()),
		pq:      make(nodePQ, 0, g.Size()),
	}
	if cfg.ReturnPath {
		r.prev = make(map[grid.State]grid.State, g.Size())
	}

	// 4) Run.
	r.dist[source] = 0
	heap.Init(&r.pq)
	heap.Push(&r.pq, &nodeItem{state: source, dist: 0})
	r.process()

	return r.dist, r.prev, nil
}

// Distance returns dist[s], or Unreachable when s is absent.
func Distance(dist map[grid.State]int64, s grid.State) int64 {
	d, ok := dist[s]
	if !ok {
		return Unreachable
	}

	return d
}

// ShortestPath returns the cheapest path from source to target (inclusive)
// and its cost, or ErrUnreachable.
func ShortestPath(g *grid.Grid, source, target grid.State) ([]grid.State, int64, error) {
	dist, prev, err := Dijkstra(g, source, WithReturnPath(), WithTarget(target))
	if err != nil {
		return nil, 0, err
	}
	d, ok := dist[target]
	if !ok || !g.InBounds(target) {
		return nil, 0, fmt.Errorf("%w: %s → %s", ErrUnreachable, source, target)
	}
	path := []grid.State{target}
	for cur := target; cur != source; {
		cur = prev[cur]
		path = append(path, cur)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, d, nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	g       *grid.Grid                // read-only input
	options Options                   // configuration
	dist    map[grid.State]int64      // best known distance from source
	prev    map[grid.State]grid.State // predecessor on the shortest path
	visited map[grid.State]bool       // settled cells
	pq      nodePQ                    // lazy min-heap
}

// process is the core loop. It stops when the heap is empty, when the
// minimum distance exceeds MaxDistance, or when Target is settled.
func (r *runner) process() {
	for r.pq.Len() > 0 {
		// 1) Pop the smallest-distance item.
		item := heap.Pop(&r.pq).(*nodeItem)
		u := item.state

		// 2) Skip stale heap entries.
		if r.visited[u] {
			continue
		}

		// 3) Beyond the cap nothing else can be settled.
		if item.dist > r.options.MaxDistance {
			break
		}

		// 4) Settle u.
		r.visited[u] = true
		if r.options.HasTarget && u == r.options.Target {
			return
		}

		// 5) Relax its neighbors.
		r.relax(u)
	}
}

// relax attempts to improve distances to the neighbors of a settled cell.
func (r *runner) relax(u grid.State) {
	for _, v := range r.g.Neighbors(u) {
		if r.visited[v] {
			continue
		}
		newDist := r.dist[u] + int64(r.g.CostAt(v))
		if newDist > r.options.MaxDistance {
			continue
		}
		// Strictly better only, to avoid pushing equal duplicates.
		if cur, ok := r.dist[v]; ok && newDist >= cur {
			continue
		}
		r.dist[v] = newDist
		if r.prev != nil {
			r.prev[v] = u
		}
		// Lazy decrease-key: old entries are skipped when popped.
		heap.Push(&r.pq, &nodeItem{state: v, dist: newDist})
	}
}

// nodeItem represents a cell and its tentative distance from the source.
type nodeItem struct {
	state grid.State
	dist  int64
}

// nodePQ is a min-heap of *nodeItem ordered by dist ascending.
type nodePQ []*nodeItem

// Len returns the number of items in the heap.
func (pq nodePQ) Len() int { return len(pq) }

// Less defines the comparison: smaller dist → higher priority.
func (pq nodePQ) Less(i, j int) bool { return pq[i].dist < pq[j].dist }

// Swap swaps two elements in the heap.
func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap.
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

// Pop removes and returns the last element.
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
