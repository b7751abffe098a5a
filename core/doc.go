// SPDX-License-Identifier: MIT

// Package core provides the cell/wall arena every maze topology is built on,
// together with the minimal Graph capability shared by carvers and solvers.
//
// The Maze M = (C,W) is an undirected simple graph:
//
//   - Cells are opaque handles (CellID) allocated by AddCell and never removed.
//   - Walls are undirected records {A, B, Passable} addressed by WallID.
//   - Each wall id appears in the adjacency list of both incident cells, so
//     passability is stored exactly once and both sides always agree.
//   - A wall starts impassable; OpenWall flips it to passable at most once.
//   - Self walls and duplicate walls between the same unordered pair are
//     rejected (ErrSelfLink, ErrDuplicateWall). LinkIfAbsent is the
//     check-then-insert variant used by topology builders.
//
// Iteration order:
//
//   - Cells() returns handles in allocation order.
//   - Walls(c) returns links in the order they were inserted.
//
// Core Methods:
//
//	// Cells
//	AddCell() CellID                 // O(1) amortized
//	HasCell(c CellID) bool           // O(1)
//	Cells() []CellID                 // O(C)
//	CellCount() int                  // O(1)
//
//	// Walls
//	Link(a, b CellID) (WallID, error)              // O(deg(a))
//	LinkIfAbsent(a, b CellID) (WallID, bool, error) // O(deg(a))
//	Wall(w WallID) (Wall, error)                   // O(1)
//	Other(w WallID, c CellID) (CellID, error)      // O(1)
//	WallBetween(a, b CellID) (WallID, bool)        // O(deg(a))
//	OpenWall(w WallID) error                       // O(1)
//
//	// Queries
//	Walls(c CellID) []Link           // O(deg(c)), fresh snapshot
//	Degree / PassableDegree          // O(deg(c))
//	WallCount / PassableCount        // O(1) / O(W)
//	DeadEnds() int                   // O(C + W)
//
// Errors:
//
//	ErrCellNotFound   : handle outside the arena
//	ErrWallNotFound   : wall handle outside the arena
//	ErrSelfLink       : Link(a, a)
//	ErrDuplicateWall  : Link(a, b) when a wall between a and b already exists
//	ErrWallAlreadyOpen: OpenWall on a passable wall
//	ErrCellNotOnWall  : Other(w, c) where c is not an endpoint of w
//
// Concurrency: a Maze is built, carved and read by one goroutine. There are
// no locks; share a Maze across goroutines only after carving finishes and
// only for reads.
package core
