package server

import (
	"cmp"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/katalvlaran/gridstar/astar"
	"github.com/katalvlaran/gridstar/grid"
	"github.com/katalvlaran/gridstar/internal/config"
)

// session owns one engine. mu serializes every access to it.
type session struct {
	mu        sync.Mutex
	id        string
	engine    *astar.Engine
	created   time.Time
	reachable bool
}

// step advances the engine by up to n steps and stops early on a terminal
// outcome. Exhaustion is reported through the snapshot status.
func (s *session) step(n int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := 0; i < n && !s.engine.Status().Terminal(); i++ {
		if _, err := s.engine.ExpandOne(); err != nil {
			return
		}
	}
}

func (s *session) snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	e := s.engine
	g := e.Grid()
	snap := Snapshot{
		ID:     s.id,
		Status: e.Status().String(),
		Steps:  e.Steps(),
		Width:  g.Width(),
		Height: g.Height(),
		Costs:  g.Values(),
		Start:  point(e.Start()),
		Goal:   point(e.Goal()),
		Open:   make([]Cell, 0, e.FrontierLen()),
		Closed: make([]Cell, 0, e.ExploredLen()),
	}
	snap.Created = s.created
	snap.Reachable = s.reachable
	for _, st := range e.FrontierStates() {
		if n, err := e.FrontierNode(st); err == nil {
			snap.Open = append(snap.Open, cell(e, n))
		}
	}
	for _, st := range e.ExploredStates() {
		if n, ok := e.ExploredNode(st); ok {
			snap.Closed = append(snap.Closed, cell(e, n))
		}
	}
	sortCells(snap.Open)
	sortCells(snap.Closed)

	if t := e.Terminal(); t != nil {
		for _, st := range astar.ReconstructPath(t) {
			snap.Path = append(snap.Path, point(st))
		}
		cost := t.PathCost()
		snap.Cost = &cost
	}

	return snap
}

func point(s grid.State) config.Point { return config.Point{X: s.X, Y: s.Y} }

func cell(e *astar.Engine, n *astar.Node) Cell {
	s := n.State()
	return Cell{X: s.X, Y: s.Y, G: n.PathCost(), F: e.Evaluate(n)}
}

// sortCells orders cells row-major so snapshots are deterministic.
func sortCells(cells []Cell) {
	slices.SortFunc(cells, func(a, b Cell) int {
		if c := cmp.Compare(a.Y, b.Y); c != 0 {
			return c
		}
		return cmp.Compare(a.X, b.X)
	})
}

// sessionStore is the server's session table.
type sessionStore struct {
	mu       sync.RWMutex
	limit    int
	sessions map[string]*session
}

func newSessionStore(limit int) *sessionStore {
	return &sessionStore{limit: limit, sessions: make(map[string]*session)}
}

func (st *sessionStore) add(e *astar.Engine, id string) (*session, error) {
	st.mu.Lock()
	defer st.mu.Unlock()

	if len(st.sessions) >= st.limit {
		return nil, fmt.Errorf("%w: limit %d", ErrTooManySessions, st.limit)
	}
	s := &session{
		id:        id,
		engine:    e,
		created:   time.Now(),
		reachable: e.Grid().Reachable(e.Start(), e.Goal()),
	}
	st.sessions[id] = s

	return s, nil
}

func (st *sessionStore) get(id string) (*session, error) {
	st.mu.RLock()
	defer st.mu.RUnlock()

	s, ok := st.sessions[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrSessionNotFound, id)
	}

	return s, nil
}

func (st *sessionStore) remove(id string) error {
	st.mu.Lock()
	defer st.mu.Unlock()

	if _, ok := st.sessions[id]; !ok {
		return fmt.Errorf("%w: %s", ErrSessionNotFound, id)
	}
	delete(st.sessions, id)

	return nil
}

func (st *sessionStore) len() int {
	st.mu.RLock()
	defer st.mu.RUnlock()

	return len(st.sessions)
}

func newID() string { return uuid.NewString() }
