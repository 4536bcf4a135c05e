package tui

import (
	"io"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridstar/astar"
	"github.com/katalvlaran/gridstar/grid"
	"github.com/katalvlaran/gridstar/render"
)

func newModel(t *testing.T, row []int, interval time.Duration) Model {
	t.Helper()
	g := grid.MustNew([][]int{row})
	e, err := astar.New(g, grid.S(0, 0), grid.S(len(row)-1, 0))
	require.NoError(t, err)
	r := render.New(io.Discard, render.WithColorMode(render.ColorNever))

	return New(e, r, interval)
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	out, ok := next.(Model)
	require.True(t, ok)

	return out, cmd
}

func key(s string) tea.KeyMsg {
	switch s {
	case " ":
		return tea.KeyMsg{Type: tea.KeySpace}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestTicksStepUntilFound(t *testing.T) {
	m := newModel(t, []int{1, 1, 1}, time.Millisecond)
	require.NotNil(t, m.Init())

	var cmd tea.Cmd
	for i := 0; i < 2; i++ {
		m, cmd = update(t, m, tickMsg{gen: 0})
		assert.NotNil(t, cmd, "tick %d reschedules", i)
	}
	m, cmd = update(t, m, tickMsg{gen: 0})
	assert.Nil(t, cmd, "no tick after the goal is popped")
	assert.True(t, m.Done())

	n, err := m.Result()
	require.NoError(t, err)
	require.NotNil(t, n)
	assert.Equal(t, 2, n.PathCost())

	view := m.View()
	assert.Contains(t, view, "status: found")
	assert.Contains(t, view, "cost 2, 3 cells")
}

func TestPauseDiscardsStaleTicks(t *testing.T) {
	m := newModel(t, []int{1, 1, 1}, time.Millisecond)

	m, cmd := update(t, m, key(" "))
	assert.Nil(t, cmd)
	assert.Contains(t, m.View(), "(paused)")

	m, _ = update(t, m, tickMsg{gen: 0})
	assert.Equal(t, 0, m.engine.Steps())

	m, cmd = update(t, m, key(" "))
	assert.NotNil(t, cmd, "resuming schedules a tick")
	m, _ = update(t, m, tickMsg{gen: 1})
	assert.Equal(t, 0, m.engine.Steps(), "generation 1 was the paused one")
	m, _ = update(t, m, tickMsg{gen: 2})
	assert.Equal(t, 1, m.engine.Steps())
}

func TestManualStepping(t *testing.T) {
	m := newModel(t, []int{1, 1, 1}, 0)
	assert.Nil(t, m.Init(), "interval 0 starts paused")

	m, _ = update(t, m, key("n"))
	assert.Equal(t, 1, m.engine.Steps())
	assert.Equal(t, astar.StatusSearching, m.engine.Status())

	m, _ = update(t, m, key("r"))
	assert.True(t, m.Done())
	assert.Equal(t, 3, m.engine.Steps())
}

func TestExhausted(t *testing.T) {
	m := newModel(t, []int{1, grid.Impassable, 1}, 0)
	m, _ = update(t, m, key("r"))

	n, err := m.Result()
	assert.Nil(t, n)
	assert.ErrorIs(t, err, astar.ErrExhausted)
	assert.Contains(t, m.View(), "no path")
}

func TestQuit(t *testing.T) {
	for _, k := range []string{"q", "ctrl+c"} {
		m := newModel(t, []int{1, 1}, time.Millisecond)
		m, cmd := update(t, m, key(k))
		require.NotNil(t, cmd, k)
		assert.IsType(t, tea.QuitMsg{}, cmd(), k)
		assert.Empty(t, m.View())
	}
}
