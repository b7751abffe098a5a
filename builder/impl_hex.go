// SPDX-License-Identifier: MIT
// Package: lvmaze/builder
//
// impl_hex.go: implementation of Hex(rows, cols).
//
// Canonical model:
//   • Flat-topped hexagons in straight columns; odd columns sit half a cell
//     lower than even ones. (0,0) is the top-left cell.
//   • Each new cell links to its already-allocated neighbours among
//     NW, N, NE, SW. Rows of NW/NE/SW depend on column parity:
//
//         column   NW        N         NE        SW
//         odd      (r,c-1)   (r-1,c)   (r,c+1)   (r+1,c-1)
//         even     (r-1,c-1) (r-1,c)   (r-1,c+1) (r,c-1)
//
//     Positions not yet allocated are skipped; the remaining neighbours link
//     back when they are allocated. Pairs are inserted once (LinkIfAbsent).
//
// Complexity:
//   • Time: O(rows*cols). Interior cells end with degree 6.

package builder

import "fmt"

// hexOffset is a (row, col) delta relative to the current cell.
type hexOffset struct{ dr, dc int }

var (
	hexOddColumn  = [...]hexOffset{{0, -1}, {-1, 0}, {0, 1}, {1, -1}}
	hexEvenColumn = [...]hexOffset{{-1, -1}, {-1, 0}, {-1, 1}, {0, -1}}
)

// Hex builds a rows×cols hexagonal grid with every wall closed.
func Hex(rows, cols int) (*Grid, error) {
	if err := validateDims(MethodHex, rows, cols); err != nil {
		return nil, err
	}

	g := newGrid(ShapeHex, rows, cols, rows*cols)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			id := g.place(r, c)
			offsets := hexEvenColumn
			if c%2 == 1 {
				offsets = hexOddColumn
			}
			for _, o := range offsets {
				if err := g.linkTo(id, r+o.dr, c+o.dc); err != nil {
					return nil, fmt.Errorf("%s: (%d,%d)→(%d,%d): %w", MethodHex, r, c, r+o.dr, c+o.dc, err)
				}
			}
		}
	}

	return g, nil
}
