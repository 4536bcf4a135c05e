package render

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/katalvlaran/gridstar/astar"
	"github.com/katalvlaran/gridstar/grid"
)

// View is the read-only surface of a search that the renderer needs.
// *astar.Engine satisfies it.
type View interface {
	Grid() *grid.Grid
	Start() grid.State
	Goal() grid.State
	InFrontier(s grid.State) bool
	FrontierNode(s grid.State) (*astar.Node, error)
	ExploredNode(s grid.State) (*astar.Node, bool)
	Evaluate(n *astar.Node) int
}

// ColorMode selects whether ANSI styling is emitted.
type ColorMode string

const (
	// ColorAuto styles output only when the writer is a terminal.
	ColorAuto ColorMode = "auto"
	// ColorAlways always emits ANSI styling.
	ColorAlways ColorMode = "always"
	// ColorNever emits plain text with role markers.
	ColorNever ColorMode = "never"
)

// Role is the display role of a cell.
type Role int

const (
	RolePlain Role = iota
	RoleStart
	RoleGoal
	RoleOpen
	RoleClosed
	RolePath
)

// marker is the plain-text stand-in for each role.
var marker = map[Role]string{
	RolePlain:  " ",
	RoleStart:  "S",
	RoleGoal:   "G",
	RoleOpen:   "+",
	RoleClosed: ".",
	RolePath:   "*",
}

// Palette mirrors the classic ANSI scheme: 0 black, 1 red, 2 green, 7 white.
var (
	ColorBlack = lipgloss.Color("0")
	ColorRed   = lipgloss.Color("1")
	ColorGreen = lipgloss.Color("2")
	ColorWhite = lipgloss.Color("7")
)

// Styles holds one lipgloss style per role.
type Styles struct {
	Start  lipgloss.Style
	Goal   lipgloss.Style
	Open   lipgloss.Style
	Closed lipgloss.Style
	Path   lipgloss.Style
}

// DefaultStyles builds the role styles on the given lipgloss renderer.
func DefaultStyles(r *lipgloss.Renderer) Styles {
	return Styles{
		Start:  r.NewStyle().Bold(true).Foreground(ColorBlack).Background(ColorWhite),
		Goal:   r.NewStyle().Bold(true).Foreground(ColorWhite).Background(ColorRed),
		Open:   r.NewStyle().Bold(true).Foreground(ColorRed),
		Closed: r.NewStyle().Bold(true).Foreground(ColorGreen),
		Path:   r.NewStyle().Bold(true).Foreground(ColorBlack).Background(ColorWhite),
	}
}

func (s Styles) forRole(r Role) (lipgloss.Style, bool) {
	switch r {
	case RoleStart:
		return s.Start, true
	case RoleGoal:
		return s.Goal, true
	case RoleOpen:
		return s.Open, true
	case RoleClosed:
		return s.Closed, true
	case RolePath:
		return s.Path, true
	default:
		return lipgloss.Style{}, false
	}
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithColorMode sets the color mode (default ColorAuto).
func WithColorMode(m ColorMode) Option {
	return func(r *Renderer) {
		r.mode = m
	}
}

// WithCellWidth sets the printed width of a cell value (default 3).
// Panics if n < 1.
func WithCellWidth(n int) Option {
	if n < 1 {
		panic("render: WithCellWidth must be ≥ 1")
	}
	return func(r *Renderer) {
		r.cellWidth = n
	}
}
