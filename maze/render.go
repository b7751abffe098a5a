package maze

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/lvmaze/bfs"
	"github.com/katalvlaran/lvmaze/builder"
)

// ErrNotRenderable is returned by Render for layouts without square cells.
var ErrNotRenderable = errors.New("maze: text rendering needs a rectangular or masked grid")

// Render draws a rectangular or masked maze as text, one "+---+" row of
// walls between each row of cells. S marks Start, F marks Finish and "."
// marks the cells of path (which may be nil). Positions outside a mask are
// filled with "#".
func (m *Maze) Render(path *bfs.ShortestPathInfo) (string, error) {
	if m.grid == nil || (m.grid.Shape() != builder.ShapeRectangular && m.grid.Shape() != builder.ShapeMasked) {
		return "", fmt.Errorf("Render: %s: %w", m.def.Topology, ErrNotRenderable)
	}
	g := m.grid

	var sb strings.Builder
	sb.WriteString("+" + strings.Repeat("---+", g.Columns()) + "\n")
	for r := 0; r < g.Rows(); r++ {
		sb.WriteString("|")
		for c := 0; c < g.Columns(); c++ {
			sb.WriteString(m.glyph(r, c, path))
			if m.open(r, c, r, c+1) {
				sb.WriteString(" ")
			} else {
				sb.WriteString("|")
			}
		}
		sb.WriteString("\n+")
		for c := 0; c < g.Columns(); c++ {
			if m.open(r, c, r+1, c) {
				sb.WriteString("   +")
			} else {
				sb.WriteString("---+")
			}
		}
		sb.WriteString("\n")
	}

	return sb.String(), nil
}

func (m *Maze) glyph(r, c int, path *bfs.ShortestPathInfo) string {
	id, ok := m.grid.CellAt(r, c)
	switch {
	case !ok:
		return "###"
	case id == m.start:
		return " S "
	case id == m.finish:
		return " F "
	case path != nil && path.Contains(id):
		return " . "
	}

	return "   "
}

// open reports whether the wall between (r1,c1) and (r2,c2) is passable.
func (m *Maze) open(r1, c1, r2, c2 int) bool {
	a, ok := m.grid.CellAt(r1, c1)
	if !ok {
		return false
	}
	b, ok := m.grid.CellAt(r2, c2)
	if !ok {
		return false
	}
	w, ok := m.grid.WallBetween(a, b)
	if !ok {
		return false
	}
	rec, err := m.grid.Wall(w)

	return err == nil && rec.Passable
}
