package astar

import (
	"errors"
	"log/slog"

	"github.com/katalvlaran/gridstar/grid"
)

// Sentinel errors returned by the Engine.
var (
	// ErrInvalidState indicates invalid construction arguments.
	ErrInvalidState = errors.New("astar: invalid state")

	// ErrExhausted indicates that the open set is empty and the goal was
	// never reached: no path exists.
	ErrExhausted = errors.New("astar: open set exhausted, goal unreachable")

	// ErrStepLimit indicates Run stopped after the configured step budget.
	ErrStepLimit = errors.New("astar: step limit reached")

	// ErrBadMaxSteps indicates a negative step budget.
	ErrBadMaxSteps = errors.New("astar: MaxSteps must be non-negative")
)

// Status is the lifecycle state of an Engine.
type Status int

const (
	// StatusReady means the engine was constructed and nothing was expanded.
	StatusReady Status = iota
	// StatusSearching means at least one node was expanded and the goal was not yet popped.
	StatusSearching
	// StatusFound means the goal node was popped; the search is over.
	StatusFound
	// StatusExhausted means the open set emptied without reaching the goal.
	StatusExhausted
)

// String returns the lowercase name of the status.
func (s Status) String() string {
	switch s {
	case StatusReady:
		return "ready"
	case StatusSearching:
		return "searching"
	case StatusFound:
		return "found"
	case StatusExhausted:
		return "exhausted"
	default:
		return "unknown"
	}
}

// Terminal reports whether no further expansion can change the outcome.
func (s Status) Terminal() bool {
	return s == StatusFound || s == StatusExhausted
}

// Node is one discovered path ending at a state. It is immutable once
// created: a cheaper path to the same state produces a new Node.
type Node struct {
	state    grid.State
	parent   *Node
	pathCost int
	depth    int
}

// State returns the state this path reaches.
func (n *Node) State() grid.State { return n.state }

// Parent returns the node this one was expanded from, or nil for the root.
func (n *Node) Parent() *Node { return n.parent }

// PathCost returns the accumulated cost from the start (g-value).
func (n *Node) PathCost() int { return n.pathCost }

// Depth returns the number of moves from the start.
func (n *Node) Depth() int { return n.depth }

// Heuristic estimates the remaining cost from s to goal.
type Heuristic func(s, goal grid.State) int

// Manhattan is the default heuristic: |dx| + |dy|. It is admissible and
// consistent for 4-connected grids where every passable cell costs ≥ 1.
func Manhattan(s, goal grid.State) int {
	return s.Manhattan(goal)
}

// Zero is the null heuristic; with it the engine behaves like Dijkstra.
func Zero(grid.State, grid.State) int {
	return 0
}

// Options configures an Engine.
//
// Heuristic        – h(s, goal); default Manhattan.
// MaxSteps         – Run budget in expansions; 0 means unlimited.
// StrictEndpoints  – reject start/goal on impassable cells.
// Logger           – structured logger; default discards.
// OnExpand         – called with every node moved to the closed set.
// OnDiscover       – called with every node added fresh to the open set.
// OnReplace        – called when an open node is replaced by a cheaper one.
// OnReopen         – called when a closed node is reopened by a cheaper one.
// OnFinish         – called once when the engine reaches a terminal status.
type Options struct {
	Heuristic       Heuristic
	MaxSteps        int
	StrictEndpoints bool
	Logger          *slog.Logger
	OnExpand        func(n *Node)
	OnDiscover      func(n *Node)
	OnReplace       func(old, candidate *Node)
	OnReopen        func(old, candidate *Node)
	OnFinish        func(status Status, steps int, terminal *Node)
}

// Option represents a functional option for configuring an Engine.
type Option func(*Options)

// DefaultOptions returns Options with Manhattan heuristic, no step limit,
// permissive endpoints, a discarding logger and no-op hooks.
func DefaultOptions() Options {
	return Options{
		Heuristic:  Manhattan,
		Logger:     slog.New(slog.DiscardHandler),
		OnExpand:   func(*Node) {},
		OnDiscover: func(*Node) {},
		OnReplace:  func(_, _ *Node) {},
		OnReopen:   func(_, _ *Node) {},
		OnFinish:   func(Status, int, *Node) {},
	}
}

// WithHeuristic replaces the Manhattan heuristic. Panics on nil.
func WithHeuristic(h Heuristic) Option {
	if h == nil {
		panic("astar: WithHeuristic(nil)")
	}
	return func(o *Options) {
		o.Heuristic = h
	}
}

// WithMaxSteps caps the number of expansions Run performs.
// n == 0 disables the cap; n < 0 panics with ErrBadMaxSteps.
func WithMaxSteps(n int) Option {
	if n < 0 {
		panic(ErrBadMaxSteps.Error())
	}
	return func(o *Options) {
		o.MaxSteps = n
	}
}

// WithStrictEndpoints makes New reject a start or goal that sits on an
// impassable (cost 0) cell.
func WithStrictEndpoints() Option {
	return func(o *Options) {
		o.StrictEndpoints = true
	}
}

// WithLogger sets the structured logger. A nil logger is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithOnExpand registers a callback run for every closed node.
func WithOnExpand(fn func(n *Node)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnExpand = fn
		}
	}
}

// WithOnDiscover registers a callback run for every fresh open node.
func WithOnDiscover(fn func(n *Node)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnDiscover = fn
		}
	}
}

// WithOnReplace registers a callback run on every decrease-key.
func WithOnReplace(fn func(old, candidate *Node)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnReplace = fn
		}
	}
}

// WithOnReopen registers a callback run when a closed state is reopened.
func WithOnReopen(fn func(old, candidate *Node)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnReopen = fn
		}
	}
}

// WithOnFinish registers a callback run once on the terminal transition.
func WithOnFinish(fn func(status Status, steps int, terminal *Node)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnFinish = fn
		}
	}
}
