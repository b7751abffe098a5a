// SPDX-License-Identifier: MIT
//
// File: methods_adjacent.go
// Role: per-cell adjacency views and degree queries.

package core

// Walls returns the walls incident to c with their far-side cell and current
// passability, in insertion order. The slice is a fresh snapshot: mutating it
// does not affect m, and later OpenWall calls are not reflected in it.
// Returns nil if c is not a cell of m.
// Complexity: O(deg(c)).
func (m *Maze) Walls(c CellID) []Link {
	if !m.HasCell(c) {
		return nil
	}
	ids := m.adjacency[c]
	out := make([]Link, len(ids))
	for i, w := range ids {
		rec := m.walls[w]
		out[i] = Link{Wall: w, Neighbor: rec.Other(c), Passable: rec.Passable}
	}

	return out
}

// Degree returns the number of walls incident to c, or 0 for an unknown cell.
func (m *Maze) Degree(c CellID) int {
	if !m.HasCell(c) {
		return 0
	}

	return len(m.adjacency[c])
}

// PassableDegree returns the number of passable walls incident to c.
func (m *Maze) PassableDegree(c CellID) int {
	if !m.HasCell(c) {
		return 0
	}
	n := 0
	for _, w := range m.adjacency[c] {
		if m.walls[w].Passable {
			n++
		}
	}

	return n
}

// DeadEnds counts cells with exactly one passable wall.
// Complexity: O(C + W).
func (m *Maze) DeadEnds() int {
	n := 0
	for c := range m.adjacency {
		if m.PassableDegree(CellID(c)) == 1 {
			n++
		}
	}

	return n
}
