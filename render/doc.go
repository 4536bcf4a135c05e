// Package render draws the state of an A* search on a terminal.
//
// Each frame shows two panels side by side, separated by "   ||   ":
//
//   - the left panel shows the cost of every cell;
//   - the right panel shows, for open and closed cells, the f-value of the
//     node held for that cell (Draw) or its g-value (DrawPath).
//
// Cells are styled by role: start (black on white), goal (white on red),
// open (red), closed (green) and, for DrawPath, cells on the final path
// (black on white). With color disabled, a one-character marker replaces
// the cell separator instead: S start, G goal, + open, . closed, * path.
//
// The renderer only reads the search through the View interface; it never
// mutates it.
package render
