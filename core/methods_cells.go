// SPDX-License-Identifier: MIT
//
// File: methods_cells.go
// Role: cell allocation and enumeration.

package core

// AddCell allocates a new cell with no walls and returns its handle.
// Complexity: O(1) amortized.
func (m *Maze) AddCell() CellID {
	id := CellID(len(m.adjacency))
	m.adjacency = append(m.adjacency, nil)

	return id
}

// HasCell reports whether c is a cell of m.
func (m *Maze) HasCell(c CellID) bool {
	return c >= 0 && int(c) < len(m.adjacency)
}

// CellCount returns the number of allocated cells.
func (m *Maze) CellCount() int {
	return len(m.adjacency)
}

// Cells returns every cell handle in allocation order.
// The returned slice is freshly allocated.
// Complexity: O(C).
func (m *Maze) Cells() []CellID {
	out := make([]CellID, len(m.adjacency))
	for i := range out {
		out[i] = CellID(i)
	}

	return out
}
