package astar

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/katalvlaran/gridstar/frontier"
	"github.com/katalvlaran/gridstar/grid"
)

// Engine holds the mutable state of a single A* search.
// It is owned by one caller; it is not safe for concurrent use.
// The Grid it reads is immutable and may be shared between engines.
type Engine struct {
	grid     *grid.Grid
	root     *Node
	goal     grid.State
	open     *frontier.Frontier[grid.State, *Node]
	closed   map[grid.State]*Node
	opts     Options
	status   Status
	steps    int
	terminal *Node
}

// New prepares a search from start to goal on g.
//
// Preconditions and validation (in order):
//  1. g must be non-nil and non-empty.
//  2. start and goal must lie within g.
//  3. with WithStrictEndpoints, start and goal must be passable.
//
// Every violation returns an error wrapping ErrInvalidState.
// On success the open set holds only the root node (start, cost 0) and the
// closed set is empty.
func New(g *grid.Grid, start, goal grid.State, opts ...Option) (*Engine, error) {
	// 1) Build options.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate arguments.
	if g == nil || g.Size() == 0 {
		return nil, fmt.Errorf("%w: grid is nil or empty", ErrInvalidState)
	}
	if !g.InBounds(start) {
		return nil, fmt.Errorf("%w: start %s outside %dx%d grid", ErrInvalidState, start, g.Width(), g.Height())
	}
	if !g.InBounds(goal) {
		return nil, fmt.Errorf("%w: goal %s outside %dx%d grid", ErrInvalidState, goal, g.Width(), g.Height())
	}
	if cfg.StrictEndpoints {
		if !g.Passable(start) {
			return nil, fmt.Errorf("%w: start %s is impassable", ErrInvalidState, start)
		}
		if !g.Passable(goal) {
			return nil, fmt.Errorf("%w: goal %s is impassable", ErrInvalidState, goal)
		}
	}

	// 3) Seed the open set with the root.
	e := &Engine{
		grid:   g,
		goal:   goal,
		closed: make(map[grid.State]*Node),
		opts:   cfg,
		status: StatusReady,
	}
	e.root = &Node{state: start}
	e.open = frontier.New(stateOf, e.Evaluate, e.root)

	e.opts.Logger.Debug("search created",
		slog.String("start", start.String()),
		slog.String("goal", goal.String()),
		slog.Int("width", g.Width()),
		slog.Int("height", g.Height()))

	return e, nil
}

func stateOf(n *Node) grid.State { return n.state }

// Cost returns g(n), the accumulated path cost stored on n.
func (e *Engine) Cost(n *Node) int {
	return n.pathCost
}

// Heuristic returns h(s), the estimated remaining cost from s to the goal.
func (e *Engine) Heuristic(s grid.State) int {
	return e.opts.Heuristic(s, e.goal)
}

// Evaluate returns f(n) = g(n) + h(n.State), the open-set ordering key.
func (e *Engine) Evaluate(n *Node) int {
	return e.Cost(n) + e.Heuristic(n.state)
}

// Successors returns the passable in-bounds neighbors of s in the order
// +x, -x, +y, -y.
func (e *Engine) Successors(s grid.State) []grid.State {
	return e.grid.Neighbors(s)
}

// ExpandOne performs a single search step.
//
// Returns:
//
//   - (goal node, nil) when the goal is popped; the engine is then Found.
//   - (nil, nil) after a regular expansion; call ExpandOne again.
//   - (nil, ErrExhausted) when the open set is empty; the engine is then
//     Exhausted.
//
// Once terminal, ExpandOne keeps returning the same outcome without
// mutating any state.
func (e *Engine) ExpandOne() (*Node, error) {
	// 1) Terminal states are sticky.
	switch e.status {
	case StatusFound:
		return e.terminal, nil
	case StatusExhausted:
		return nil, e.exhaustedErr()
	}

	// 2) Check emptiness before popping so ErrEmptyQueue never leaks.
	if e.open.Len() == 0 {
		e.finish(StatusExhausted, nil)
		return nil, e.exhaustedErr()
	}
	current, err := e.open.PopSmallest()
	if err != nil {
		return nil, fmt.Errorf("astar: pop: %w", err)
	}
	e.steps++
	e.status = StatusSearching

	// 3) Goal test on pop, not on discovery, so the returned cost is optimal.
	if current.state == e.goal {
		e.finish(StatusFound, current)
		return current, nil
	}

	// 4) Close the state and relax its successors.
	e.closed[current.state] = current
	e.opts.OnExpand(current)
	e.opts.Logger.Debug("expand",
		slog.Int("step", e.steps),
		slog.String("state", current.state.String()),
		slog.Int("g", current.pathCost),
		slog.Int("f", e.Evaluate(current)),
		slog.Int("open", e.open.Len()))

	for _, s := range e.Successors(current.state) {
		e.relax(current, s)
	}

	return nil, nil
}

// relax offers the path current→s to the open and closed sets.
func (e *Engine) relax(current *Node, s grid.State) {
	candidate := &Node{
		state:    s,
		parent:   current,
		pathCost: current.pathCost + e.grid.CostAt(s),
		depth:    current.depth + 1,
	}

	// Already open: decrease-key only on a strictly cheaper path.
	if e.open.Has(s) {
		existing, err := e.open.Get(s)
		if err != nil {
			// Has/Get disagree only on a frontier bug.
			panic(err)
		}
		if candidate.pathCost < existing.pathCost {
			e.open.Replace(candidate)
			e.opts.OnReplace(existing, candidate)
		}
		return
	}

	// Already closed: reopen only on a strictly cheaper path.
	if old, ok := e.closed[s]; ok {
		if candidate.pathCost < old.pathCost {
			delete(e.closed, s)
			e.open.Add(candidate)
			e.opts.OnReopen(old, candidate)
			e.opts.Logger.Debug("reopen",
				slog.String("state", s.String()),
				slog.Int("old_g", old.pathCost),
				slog.Int("new_g", candidate.pathCost))
		}
		return
	}

	// Fresh state.
	e.open.Add(candidate)
	e.opts.OnDiscover(candidate)
}

func (e *Engine) finish(status Status, terminal *Node) {
	e.status = status
	e.terminal = terminal
	attrs := []any{
		slog.String("status", status.String()),
		slog.Int("steps", e.steps),
		slog.Int("closed", len(e.closed)),
	}
	if terminal != nil {
		attrs = append(attrs, slog.Int("cost", terminal.pathCost), slog.Int("length", terminal.depth+1))
	}
	e.opts.Logger.Info("search finished", attrs...)
	e.opts.OnFinish(status, e.steps, terminal)
}

func (e *Engine) exhaustedErr() error {
	return fmt.Errorf("%w: %s → %s after %d steps", ErrExhausted, e.root.state, e.goal, e.steps)
}

// Run expands until the goal is found or the open set is exhausted.
// It is equivalent to RunContext(context.Background()).
func (e *Engine) Run() (*Node, error) {
	return e.RunContext(context.Background())
}

// RunContext is Run with cancellation checked between expansions.
// Returns ctx.Err() if the context ends first, and ErrStepLimit if the
// WithMaxSteps budget is spent before a terminal outcome.
func (e *Engine) RunContext(ctx context.Context) (*Node, error) {
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if e.opts.MaxSteps > 0 && e.steps >= e.opts.MaxSteps && !e.status.Terminal() {
			return nil, fmt.Errorf("%w: %d", ErrStepLimit, e.opts.MaxSteps)
		}
		n, err := e.ExpandOne()
		if err != nil {
			return nil, err
		}
		if n != nil {
			return n, nil
		}
	}
}
