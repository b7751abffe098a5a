// SPDX-License-Identifier: MIT
// Package: lvmaze/builder
//
// grid.go: the row/column topology shared by Rectangular, Hex, Triangle
// and Masked.
//
// Model:
//   • Positions are row-major: index = row*cols + col.
//   • Cells are allocated in row-major order, skipping masked-out positions,
//     so CellID order equals position order.
//   • Each constructor links a new cell only to neighbours that already
//     exist, which fixes the wall insertion order per shape.

package builder

import (
	"github.com/katalvlaran/lvmaze/core"
)

// Shape identifies how a Grid's walls were laid out.
type Shape int

const (
	// ShapeRectangular is the 4-neighbour orthogonal lattice.
	ShapeRectangular Shape = iota
	// ShapeHex is the 6-neighbour lattice with offset columns.
	ShapeHex
	// ShapeTriangle alternates up- and down-pointing triangles.
	ShapeTriangle
	// ShapeMasked is an orthogonal lattice with disabled positions.
	ShapeMasked
)

// String returns the lowercase shape name.
func (s Shape) String() string {
	switch s {
	case ShapeRectangular:
		return "rectangular"
	case ShapeHex:
		return "hex"
	case ShapeTriangle:
		return "triangle"
	case ShapeMasked:
		return "masked"
	}

	return "unknown"
}

// Grid is a rows×cols topology. It embeds the cell arena and adds the
// coordinate lookups the carvers and endpoint placement need.
type Grid struct {
	*core.Maze

	shape Shape
	rows  int
	cols  int
	index []core.CellID // position → cell, core.NoCell when absent
	pos   []int         // cell → position
}

func newGrid(shape Shape, rows, cols, capacity int) *Grid {
	g := &Grid{
		Maze:  core.NewMaze(capacity),
		shape: shape,
		rows:  rows,
		cols:  cols,
		index: make([]core.CellID, rows*cols),
		pos:   make([]int, 0, capacity),
	}
	for i := range g.index {
		g.index[i] = core.NoCell
	}

	return g
}

// place allocates the cell at (row, col).
func (g *Grid) place(row, col int) core.CellID {
	c := g.AddCell()
	p := row*g.cols + col
	g.index[p] = c
	g.pos = append(g.pos, p)

	return c
}

// linkTo joins c with the cell at (row, col) if that cell exists.
func (g *Grid) linkTo(c core.CellID, row, col int) error {
	other, ok := g.CellAt(row, col)
	if !ok {
		return nil
	}
	_, _, err := g.LinkIfAbsent(c, other)

	return err
}

// Shape returns the layout this grid was built with.
func (g *Grid) Shape() Shape { return g.shape }

// Rows returns the number of rows.
func (g *Grid) Rows() int { return g.rows }

// Columns returns the number of columns.
func (g *Grid) Columns() int { return g.cols }

// CellAt returns the cell at (row, col). ok is false when the position is
// outside the grid, masked out, or not allocated yet during construction.
func (g *Grid) CellAt(row, col int) (core.CellID, bool) {
	if row < 0 || col < 0 || row >= g.rows || col >= g.cols {
		return core.NoCell, false
	}
	c := g.index[row*g.cols+col]

	return c, c != core.NoCell
}

// Position returns the row and column of c.
func (g *Grid) Position(c core.CellID) (row, col int, ok bool) {
	if c < 0 || int(c) >= len(g.pos) {
		return 0, 0, false
	}
	p := g.pos[c]

	return p / g.cols, p % g.cols, true
}

// Orthogonal reports whether every interior cell has exactly the four
// axis neighbours and no position is masked out.
func (g *Grid) Orthogonal() bool {
	return g.shape == ShapeRectangular
}

// PointsUp reports the orientation of the triangle at (row, col).
// Only meaningful for ShapeTriangle.
func PointsUp(row, col int) bool {
	return row%2 == col%2
}

// PointsUp reports whether the triangle at (row, col) points up.
func (g *Grid) PointsUp(row, col int) bool {
	return PointsUp(row, col)
}

// column returns the cells in col, top to bottom.
func (g *Grid) column(col int) []core.CellID {
	var out []core.CellID
	for r := 0; r < g.rows; r++ {
		if c, ok := g.CellAt(r, col); ok {
			out = append(out, c)
		}
	}

	return out
}

// row returns the cells in row, left to right.
func (g *Grid) row(row int) []core.CellID {
	var out []core.CellID
	for c := 0; c < g.cols; c++ {
		if id, ok := g.CellAt(row, c); ok {
			out = append(out, id)
		}
	}

	return out
}

// StartCandidates returns the cells of the leftmost occupied column,
// top to bottom.
func (g *Grid) StartCandidates() []core.CellID {
	for col := 0; col < g.cols; col++ {
		if cells := g.column(col); len(cells) > 0 {
			return cells
		}
	}

	return nil
}

// FinishCandidates returns the boundary cells in the order left column,
// right column, top row, bottom row, each cell listed once. For masked
// grids the boundary is the outermost occupied column or row.
func (g *Grid) FinishCandidates() []core.CellID {
	var left, right, top, bottom []core.CellID
	for col := 0; col < g.cols; col++ {
		if cells := g.column(col); len(cells) > 0 {
			if left == nil {
				left = cells
			}
			right = cells
		}
	}
	for r := 0; r < g.rows; r++ {
		if cells := g.row(r); len(cells) > 0 {
			if top == nil {
				top = cells
			}
			bottom = cells
		}
	}

	seen := make(map[core.CellID]struct{}, 2*(g.rows+g.cols))
	out := make([]core.CellID, 0, 2*(g.rows+g.cols))
	for _, group := range [][]core.CellID{left, right, top, bottom} {
		for _, c := range group {
			if _, dup := seen[c]; dup {
				continue
			}
			seen[c] = struct{}{}
			out = append(out, c)
		}
	}

	return out
}
