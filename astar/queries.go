package astar

import (
	"fmt"

	"github.com/katalvlaran/gridstar/grid"
)

// Grid returns the grid being searched.
func (e *Engine) Grid() *grid.Grid { return e.grid }

// Start returns the start state.
func (e *Engine) Start() grid.State { return e.root.state }

// Goal returns the goal state.
func (e *Engine) Goal() grid.State { return e.goal }

// Root returns the start node.
func (e *Engine) Root() *Node { return e.root }

// Status returns the lifecycle state.
func (e *Engine) Status() Status { return e.status }

// Steps returns the number of nodes popped so far, including the goal.
func (e *Engine) Steps() int { return e.steps }

// Terminal returns the goal node once the engine is Found, nil otherwise.
func (e *Engine) Terminal() *Node { return e.terminal }

// InFrontier reports whether s is in the open set.
func (e *Engine) InFrontier(s grid.State) bool { return e.open.Has(s) }

// FrontierNode returns the open node for s. The error wraps
// frontier.ErrNotFound when s is not open.
func (e *Engine) FrontierNode(s grid.State) (*Node, error) {
	n, err := e.open.Get(s)
	if err != nil {
		return nil, fmt.Errorf("astar: frontier lookup: %w", err)
	}

	return n, nil
}

// FrontierLen returns the size of the open set.
func (e *Engine) FrontierLen() int { return e.open.Len() }

// FrontierStates returns a snapshot of the open states (unordered).
func (e *Engine) FrontierStates() []grid.State { return e.open.Keys() }

// InExplored reports whether s is in the closed set.
func (e *Engine) InExplored(s grid.State) bool {
	_, ok := e.closed[s]

	return ok
}

// ExploredNode returns the node s was expanded with, if s is closed.
func (e *Engine) ExploredNode(s grid.State) (*Node, bool) {
	n, ok := e.closed[s]

	return n, ok
}

// ExploredLen returns the size of the closed set.
func (e *Engine) ExploredLen() int { return len(e.closed) }

// ExploredStates returns a snapshot of the closed states (unordered).
func (e *Engine) ExploredStates() []grid.State {
	out := make([]grid.State, 0, len(e.closed))
	for s := range e.closed {
		out = append(out, s)
	}

	return out
}
