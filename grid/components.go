package grid

// Components partitions the passable cells into 4-connected regions.
// Regions are listed in row-major order of their first cell; cells within
// a region are in BFS order from that cell.
//
// Time:   O(W·H).
// Memory: O(W·H) for visited flags and output.
func (g *Grid) Components() [][]State {
	seen := make([]bool, len(g.costs))
	var comps [][]State

	for i, c := range g.costs {
		if c == Impassable || seen[i] {
			continue
		}
		seen[i] = true
		comps = append(comps, g.flood(g.Coordinate(i), seen))
	}

	return comps
}

// Reachable reports whether a path of passable moves leads from `from` to
// `to`. The origin itself may be impassable, matching the search's
// entry-cost model in which the start cell is never charged.
func (g *Grid) Reachable(from, to State) bool {
	if !g.InBounds(from) || !g.InBounds(to) {
		return false
	}
	if from == to {
		return true
	}
	if !g.Passable(to) {
		return false
	}

	seen := make([]bool, len(g.costs))
	seen[g.Index(from)] = true
	for _, s := range g.flood(from, seen) {
		if s == to {
			return true
		}
	}

	return false
}

// flood collects every state reachable from origin through passable
// neighbors, marking them in seen. origin must already be marked.
func (g *Grid) flood(origin State, seen []bool) []State {
	queue := []State{origin}
	for qi := 0; qi < len(queue); qi++ {
		for _, n := range g.Neighbors(queue[qi]) {
			if ni := g.Index(n); !seen[ni] {
				seen[ni] = true
				queue = append(queue, n)
			}
		}
	}

	return queue
}
