// SPDX-License-Identifier: MIT
//
// File: methods_walls.go
// Role: wall insertion, lookup and the single mutation a carver may perform.

package core

import "fmt"

// Link inserts an impassable wall between a and b and returns its handle.
//
// Errors:
//   - ErrCellNotFound if either endpoint is unknown.
//   - ErrSelfLink if a == b.
//   - ErrDuplicateWall if a wall between {a, b} already exists.
//
// Complexity: O(min(deg(a), deg(b))).
func (m *Maze) Link(a, b CellID) (WallID, error) {
	if err := m.checkPair("Link", a, b); err != nil {
		return 0, err
	}
	if _, ok := m.WallBetween(a, b); ok {
		return 0, fmt.Errorf("Link: %d-%d: %w", a, b, ErrDuplicateWall)
	}

	return m.insert(a, b), nil
}

// LinkIfAbsent inserts a wall between a and b unless one already exists.
// It returns the wall handle and whether a new wall was created.
// Endpoint errors are the same as for Link.
func (m *Maze) LinkIfAbsent(a, b CellID) (WallID, bool, error) {
	if err := m.checkPair("LinkIfAbsent", a, b); err != nil {
		return 0, false, err
	}
	if w, ok := m.WallBetween(a, b); ok {
		return w, false, nil
	}

	return m.insert(a, b), true, nil
}

// Wall returns a copy of the wall record w.
func (m *Maze) Wall(w WallID) (Wall, error) {
	if !m.hasWall(w) {
		return Wall{}, fmt.Errorf("Wall: %d: %w", w, ErrWallNotFound)
	}

	return m.walls[w], nil
}

// Other returns the endpoint of w opposite to c.
//
// Errors: ErrWallNotFound for an unknown wall, ErrCellNotOnWall when c is
// not one of its endpoints.
// Complexity: O(1).
func (m *Maze) Other(w WallID, c CellID) (CellID, error) {
	if !m.hasWall(w) {
		return NoCell, fmt.Errorf("Other: wall %d: %w", w, ErrWallNotFound)
	}
	rec := m.walls[w]
	switch c {
	case rec.A:
		return rec.B, nil
	case rec.B:
		return rec.A, nil
	}

	return NoCell, fmt.Errorf("Other: wall %d, cell %d: %w", w, c, ErrCellNotOnWall)
}

// WallBetween returns the wall joining a and b, if any.
// Complexity: O(min(deg(a), deg(b))).
func (m *Maze) WallBetween(a, b CellID) (WallID, bool) {
	if !m.HasCell(a) || !m.HasCell(b) {
		return 0, false
	}
	// scan the shorter list
	from, to := a, b
	if len(m.adjacency[b]) < len(m.adjacency[a]) {
		from, to = b, a
	}
	for _, w := range m.adjacency[from] {
		if m.walls[w].Other(from) == to {
			return w, true
		}
	}

	return 0, false
}

// OpenWall marks w passable. A wall opens at most once.
//
// Errors: ErrWallNotFound, ErrWallAlreadyOpen.
func (m *Maze) OpenWall(w WallID) error {
	if !m.hasWall(w) {
		return fmt.Errorf("OpenWall: %d: %w", w, ErrWallNotFound)
	}
	if m.walls[w].Passable {
		return fmt.Errorf("OpenWall: %d: %w", w, ErrWallAlreadyOpen)
	}
	m.walls[w].Passable = true

	return nil
}

// WallCount returns the number of walls, passable or not.
func (m *Maze) WallCount() int {
	return len(m.walls)
}

// PassableCount returns the number of passable walls.
// Complexity: O(W).
func (m *Maze) PassableCount() int {
	n := 0
	for i := range m.walls {
		if m.walls[i].Passable {
			n++
		}
	}

	return n
}

func (m *Maze) insert(a, b CellID) WallID {
	id := WallID(len(m.walls))
	m.walls = append(m.walls, Wall{A: a, B: b})
	m.adjacency[a] = append(m.adjacency[a], id)
	m.adjacency[b] = append(m.adjacency[b], id)

	return id
}

func (m *Maze) hasWall(w WallID) bool {
	return w >= 0 && int(w) < len(m.walls)
}

func (m *Maze) checkPair(method string, a, b CellID) error {
	if !m.HasCell(a) {
		return fmt.Errorf("%s: cell %d: %w", method, a, ErrCellNotFound)
	}
	if !m.HasCell(b) {
		return fmt.Errorf("%s: cell %d: %w", method, b, ErrCellNotFound)
	}
	if a == b {
		return fmt.Errorf("%s: cell %d: %w", method, a, ErrSelfLink)
	}

	return nil
}
