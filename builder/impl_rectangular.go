// SPDX-License-Identifier: MIT
// Package: lvmaze/builder
//
// impl_rectangular.go: implementation of Rectangular(rows, cols).
//
// Contract:
//   • rows ≥ 1 and cols ≥ 1 (else ErrBadDimension).
//   • Cells are allocated row-major; cell (r,c) has CellID r*cols+c.
//   • Each new cell links North (r-1,c) then West (r,c-1) when present,
//     so every axis-neighbour pair gets exactly one wall.
//
// Complexity:
//   • Time: O(rows*cols). Space: O(rows*cols) for the coordinate tables.

package builder

import "fmt"

// Rectangular builds a rows×cols orthogonal grid with every wall closed.
func Rectangular(rows, cols int) (*Grid, error) {
	if err := validateDims(MethodRectangular, rows, cols); err != nil {
		return nil, err
	}

	g := newGrid(ShapeRectangular, rows, cols, rows*cols)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			id := g.place(r, c)
			if err := g.linkTo(id, r-1, c); err != nil {
				return nil, fmt.Errorf("%s: north of (%d,%d): %w", MethodRectangular, r, c, err)
			}
			if err := g.linkTo(id, r, c-1); err != nil {
				return nil, fmt.Errorf("%s: west of (%d,%d): %w", MethodRectangular, r, c, err)
			}
		}
	}

	return g, nil
}
