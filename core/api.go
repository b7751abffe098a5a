// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: the Graph capability consumed by carvers and solvers.

package core

// Graph is the generic maze capability: enumerate cells, list a cell's walls,
// find the far side of a wall and open it. Every topology embeds *Maze and
// therefore satisfies Graph.
type Graph interface {
	// Cells returns every cell handle in allocation order.
	Cells() []CellID

	// CellCount returns the number of cells.
	CellCount() int

	// Walls returns a snapshot of c's incident walls; nil if c is unknown.
	Walls(c CellID) []Link

	// Other returns the endpoint of w opposite to c.
	Other(w WallID, c CellID) (CellID, error)

	// OpenWall marks w passable.
	OpenWall(w WallID) error
}

var _ Graph = (*Maze)(nil)
