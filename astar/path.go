package astar

import "github.com/katalvlaran/gridstar/grid"

// Backtrace returns the node chain from the root to n, inclusive.
// It walks parent links only and never touches engine state.
// A nil n yields nil.
func Backtrace(n *Node) []*Node {
	if n == nil {
		return nil
	}
	chain := make([]*Node, 0, n.depth+1)
	for cur := n; cur != nil; cur = cur.parent {
		chain = append(chain, cur)
	}
	// reverse to get start → n
	for i, j := 0, len(chain)-1; i < j; i, j = i+1, j-1 {
		chain[i], chain[j] = chain[j], chain[i]
	}

	return chain
}

// ReconstructPath returns the states from the start to n, inclusive.
func ReconstructPath(n *Node) []grid.State {
	chain := Backtrace(n)
	if chain == nil {
		return nil
	}
	path := make([]grid.State, len(chain))
	for i, node := range chain {
		path[i] = node.state
	}

	return path
}
