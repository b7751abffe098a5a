// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: CellID/WallID handles, the Wall record, the Link view, sentinel errors
//       and the Maze arena constructor.

package core

import "errors"

// Sentinel errors for core maze operations.
var (
	// ErrCellNotFound indicates an operation referenced a cell outside the arena.
	ErrCellNotFound = errors.New("core: cell not found")

	// ErrWallNotFound indicates an operation referenced a wall outside the arena.
	ErrWallNotFound = errors.New("core: wall not found")

	// ErrSelfLink indicates an attempt to link a cell to itself.
	ErrSelfLink = errors.New("core: cannot link a cell to itself")

	// ErrDuplicateWall indicates a second wall between the same unordered cell pair.
	ErrDuplicateWall = errors.New("core: wall already exists between cells")

	// ErrWallAlreadyOpen indicates OpenWall was called on a passable wall.
	ErrWallAlreadyOpen = errors.New("core: wall already passable")

	// ErrCellNotOnWall indicates Other was asked for the far side of a wall
	// from a cell that is not one of its endpoints.
	ErrCellNotOnWall = errors.New("core: cell is not an endpoint of wall")
)

// CellID is a handle to a cell owned by a Maze. Handles are dense: the n-th
// AddCell call returns CellID(n).
type CellID int

// WallID is a handle to a wall owned by a Maze. Handles are dense in link order.
type WallID int

// NoCell is the zero-information handle returned alongside a false ok flag.
const NoCell CellID = -1

// Wall is an undirected connection between two distinct cells.
//
// A and B are stored in link order; the wall has no orientation.
// Passable is false until a carver opens it.
type Wall struct {
	A        CellID
	B        CellID
	Passable bool
}

// Other returns the endpoint of w that is not c. The result is meaningless
// if c is not an endpoint; use Maze.Other for a checked lookup.
func (w Wall) Other(c CellID) CellID {
	if w.A == c {
		return w.B
	}
	return w.A
}

// Link is one entry of a cell's adjacency view: the shared wall, the cell on
// the other side and the wall's passability at the time of the call.
type Link struct {
	Wall     WallID
	Neighbor CellID
	Passable bool
}

// Maze is the cell arena of one topology instance.
//
// walls holds every wall record; adjacency[c] lists the ids of walls incident
// to c in link order. Both incident cells reference the same record.
type Maze struct {
	walls     []Wall
	adjacency [][]WallID
}

// NewMaze creates an empty Maze with room for capacity cells.
// A non-positive capacity is treated as zero.
// Complexity: O(capacity) for the preallocation.
func NewMaze(capacity int) *Maze {
	if capacity < 0 {
		capacity = 0
	}
	return &Maze{
		walls:     make([]Wall, 0, 2*capacity),
		adjacency: make([][]WallID, 0, capacity),
	}
}
