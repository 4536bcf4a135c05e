package render

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/katalvlaran/gridstar/astar"
	"github.com/katalvlaran/gridstar/grid"
)

const (
	panelSeparator   = "   ||   "
	defaultCellWidth = 3
)

// Renderer formats search frames and writes them to an output.
type Renderer struct {
	out       io.Writer
	mode      ColorMode
	cellWidth int
	styles    Styles
}

// New creates a Renderer writing to out.
func New(out io.Writer, opts ...Option) *Renderer {
	r := &Renderer{out: out, mode: ColorAuto, cellWidth: defaultCellWidth}
	for _, opt := range opts {
		opt(r)
	}

	lr := lipgloss.NewRenderer(out)
	switch r.mode {
	case ColorAlways:
		lr.SetColorProfile(termenv.ANSI)
	case ColorNever:
		lr.SetColorProfile(termenv.Ascii)
	}
	if lr.ColorProfile() == termenv.Ascii {
		r.mode = ColorNever
	}
	r.styles = DefaultStyles(lr)

	return r
}

// Colored reports whether frames carry ANSI styling.
func (r *Renderer) Colored() bool { return r.mode != ColorNever }

// Draw writes the current search frame: costs, then f-values.
func (r *Renderer) Draw(v View) error {
	_, err := io.WriteString(r.out, r.Frame(v))

	return err
}

// DrawPath writes the final frame with the path ending at terminal
// highlighted, showing g-values in the right panel.
func (r *Renderer) DrawPath(v View, terminal *astar.Node) error {
	_, err := io.WriteString(r.out, r.PathFrame(v, terminal))

	return err
}

// Frame returns the frame Draw would write.
func (r *Renderer) Frame(v View) string {
	return r.frame(v, nil, func(n *astar.Node) int { return v.Evaluate(n) })
}

// PathFrame returns the frame DrawPath would write.
func (r *Renderer) PathFrame(v View, terminal *astar.Node) string {
	path := make(map[grid.State]*astar.Node)
	for _, n := range astar.Backtrace(terminal) {
		path[n.State()] = n
	}

	return r.frame(v, path, (*astar.Node).PathCost)
}

// frame renders both panels. value picks the number shown in the right
// panel for a node (f for progress frames, g for path frames).
func (r *Renderer) frame(v View, path map[grid.State]*astar.Node, value func(*astar.Node) int) string {
	g := v.Grid()
	var b strings.Builder
	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			s := grid.S(x, y)
			role, _ := r.classify(v, s, path)
			b.WriteString(r.cell(g.CostAt(s), role))
		}
		b.WriteString(panelSeparator)
		for x := 0; x < g.Width(); x++ {
			s := grid.S(x, y)
			role, node := r.classify(v, s, path)
			shown := g.CostAt(s)
			if node != nil && role != RoleStart && role != RoleGoal {
				shown = value(node)
			}
			b.WriteString(r.cell(shown, role))
		}
		b.WriteByte('\n')
	}

	return b.String()
}

// classify returns the display role of s and the node backing it, if any.
// Precedence: path, start, goal, open, closed.
func (r *Renderer) classify(v View, s grid.State, path map[grid.State]*astar.Node) (Role, *astar.Node) {
	if n, ok := path[s]; ok {
		return RolePath, n
	}
	switch {
	case s == v.Start():
		return RoleStart, nil
	case s == v.Goal():
		return RoleGoal, nil
	case v.InFrontier(s):
		n, err := v.FrontierNode(s)
		if err != nil {
			return RolePlain, nil
		}
		return RoleOpen, n
	}
	if n, ok := v.ExploredNode(s); ok {
		return RoleClosed, n
	}

	return RolePlain, nil
}

// cell formats one value padded or truncated to cellWidth, followed by a
// separator (a space when colored, the role marker otherwise).
func (r *Renderer) cell(value int, role Role) string {
	text := fit(strconv.Itoa(value), r.cellWidth)
	if !r.Colored() {
		return text + marker[role]
	}
	style, ok := r.styles.forRole(role)
	if !ok {
		return text + " "
	}

	return style.Render(text) + " "
}

func fit(s string, width int) string {
	if len(s) > width {
		return s[:width]
	}

	return fmt.Sprintf("%-*s", width, s)
}
