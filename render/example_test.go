package render_test

import (
	"os"

	"github.com/katalvlaran/gridstar/astar"
	"github.com/katalvlaran/gridstar/grid"
	"github.com/katalvlaran/gridstar/render"
)

// ExampleRenderer_DrawPath prints the final frame of a small search without
// color: '*' marks the path, '.' closed cells and '+' open cells.
func ExampleRenderer_DrawPath() {
	g := grid.MustNew([][]int{
		{1, 5, 1},
		{1, 1, 1},
	})
	e, _ := astar.New(g, grid.S(0, 0), grid.S(2, 0))
	n, _ := e.Run()

	r := render.New(os.Stdout, render.WithColorMode(render.ColorNever))
	_ = r.DrawPath(e, n)

	// Output:
	// 1  *5  +1  *   ||   0  *5  +4  *
	// 1  *1  *1  *   ||   1  *2  *3  *
}
