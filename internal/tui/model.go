// Package tui animates a search in the terminal with bubbletea: one engine
// step per tick, the current frame redrawn after every step.
package tui

import (
	"errors"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/katalvlaran/gridstar/astar"
	"github.com/katalvlaran/gridstar/render"
)

const helpLine = "space pause/resume · n step · r run to end · q quit"

// tickMsg drives automatic stepping. gen discards ticks scheduled before
// the latest pause/resume.
type tickMsg struct {
	gen int
}

// Model is the bubbletea model for a running search.
type Model struct {
	engine   *astar.Engine
	renderer *render.Renderer
	interval time.Duration

	paused   bool
	gen      int
	err      error
	quitting bool
}

// New returns a model stepping e every interval. interval == 0 starts
// paused; steps are then taken with the n key only.
func New(e *astar.Engine, r *render.Renderer, interval time.Duration) Model {
	return Model{
		engine:   e,
		renderer: r,
		interval: interval,
		paused:   interval <= 0,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	if m.paused {
		return nil
	}
	return m.tick()
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		if msg.gen != m.gen || m.paused || m.Done() {
			return m, nil
		}
		m.step()
		if m.Done() {
			return m, nil
		}
		return m, m.tick()

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			m.quitting = true
			return m, tea.Quit
		case " ", "p":
			if m.interval <= 0 {
				return m, nil
			}
			m.paused = !m.paused
			m.gen++
			if !m.paused && !m.Done() {
				return m, m.tick()
			}
		case "n", "right":
			if m.paused {
				m.step()
			}
		case "r":
			for !m.Done() {
				m.step()
			}
		}
	}

	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	state := m.engine.Status().String()
	if m.paused && !m.Done() {
		state += " (paused)"
	}
	fmt.Fprintf(&b, "%s → %s  status: %s  steps: %d  open: %d  closed: %d\n\n",
		m.engine.Start(), m.engine.Goal(), state,
		m.engine.Steps(), m.engine.FrontierLen(), m.engine.ExploredLen())

	if t := m.engine.Terminal(); t != nil {
		b.WriteString(m.renderer.PathFrame(m.engine, t))
		fmt.Fprintf(&b, "\ncost %d, %d cells\n", t.PathCost(), t.Depth()+1)
	} else {
		b.WriteString(m.renderer.Frame(m.engine))
		if m.err != nil {
			fmt.Fprintf(&b, "\nno path: %v\n", m.err)
		}
	}
	b.WriteString("\n" + helpLine + "\n")

	return b.String()
}

// Done reports whether the search reached a terminal outcome.
func (m Model) Done() bool { return m.engine.Status().Terminal() }

// Result returns the goal node when found, or the exhaustion error.
// Both are nil while the search is unfinished.
func (m Model) Result() (*astar.Node, error) {
	if errors.Is(m.err, astar.ErrExhausted) {
		return nil, m.err
	}
	return m.engine.Terminal(), nil
}

func (m *Model) step() {
	if _, err := m.engine.ExpandOne(); err != nil {
		m.err = err
	}
}

func (m Model) tick() tea.Cmd {
	gen := m.gen
	return tea.Tick(m.interval, func(time.Time) tea.Msg {
		return tickMsg{gen: gen}
	})
}

// Run starts a full-screen program for e and returns the final model.
func Run(e *astar.Engine, r *render.Renderer, interval time.Duration, opts ...tea.ProgramOption) (Model, error) {
	final, err := tea.NewProgram(New(e, r, interval), opts...).Run()
	if err != nil {
		return Model{}, fmt.Errorf("tui: %w", err)
	}
	m, ok := final.(Model)
	if !ok {
		return Model{}, fmt.Errorf("tui: unexpected final model %T", final)
	}

	return m, nil
}
