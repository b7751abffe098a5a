// SPDX-License-Identifier: MIT
// Package: lvmaze/builder
//
// impl_triangle.go: implementation of Triangle(rows, cols).
//
// Canonical model:
//   • The triangle at (r,c) points up when r%2 == c%2.
//   • Horizontal neighbours always share a slanted edge.
//   • A down-pointing triangle shares its flat top with the cell above;
//     an up-pointing one shares its flat bottom with the cell below.
//   • Each new cell links Left, then Up only when pointing down.
//
// Complexity:
//   • Time: O(rows*cols). Every cell has degree ≤ 3.

package builder

import "fmt"

// Triangle builds a rows×cols triangular grid with every wall closed.
func Triangle(rows, cols int) (*Grid, error) {
	if err := validateDims(MethodTriangle, rows, cols); err != nil {
		return nil, err
	}

	g := newGrid(ShapeTriangle, rows, cols, rows*cols)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			id := g.place(r, c)
			if err := g.linkTo(id, r, c-1); err != nil {
				return nil, fmt.Errorf("%s: left of (%d,%d): %w", MethodTriangle, r, c, err)
			}
			if PointsUp(r, c) {
				continue
			}
			if err := g.linkTo(id, r-1, c); err != nil {
				return nil, fmt.Errorf("%s: above (%d,%d): %w", MethodTriangle, r, c, err)
			}
		}
	}

	return g, nil
}
