// SPDX-License-Identifier: MIT
// Package: lvmaze/builder
//
// impl_masked.go: implementation of Masked(rows, cols, mask) and ParseMask.
//
// Contract:
//   • rows ≥ 1, cols ≥ 1 (ErrBadDimension); len(mask) == rows*cols
//     (ErrMaskSize); at least one true entry (ErrEmptyMask).
//   • mask is row-major; only true positions become cells.
//   • North/West links are made only between two enabled positions.
//   • The enabled region must be connected through those links, else
//     ErrDisconnectedMask (also matching bfs.ErrDisconnected).
//
// Complexity:
//   • Time: O(rows*cols) build + O(C + W) connectivity check.

package builder

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/lvmaze/bfs"
)

// Masked builds an orthogonal grid containing only the enabled positions of
// mask, with every wall closed.
func Masked(rows, cols int, mask []bool) (*Grid, error) {
	if err := validateDims(MethodMasked, rows, cols); err != nil {
		return nil, err
	}
	if len(mask) != rows*cols {
		return nil, builderErrorf(MethodMasked, "len(mask)=%d, want %d: %w", len(mask), rows*cols, ErrMaskSize)
	}
	enabled := 0
	for _, on := range mask {
		if on {
			enabled++
		}
	}
	if enabled == 0 {
		return nil, builderErrorf(MethodMasked, "%dx%d: %w", rows, cols, ErrEmptyMask)
	}

	g := newGrid(ShapeMasked, rows, cols, enabled)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			if !mask[r*cols+c] {
				continue
			}
			id := g.place(r, c)
			if err := g.linkTo(id, r-1, c); err != nil {
				return nil, fmt.Errorf("%s: north of (%d,%d): %w", MethodMasked, r, c, err)
			}
			if err := g.linkTo(id, r, c-1); err != nil {
				return nil, fmt.Errorf("%s: west of (%d,%d): %w", MethodMasked, r, c, err)
			}
		}
	}

	if err := bfs.Connected(g); err != nil {
		return nil, fmt.Errorf("%s: %w: %w", MethodMasked, ErrDisconnectedMask, err)
	}

	return g, nil
}

// ParseMask converts mask art into a row-major mask. Each string is one row;
// 'X' or 'x' enables a position, '.' or ' ' disables it. All rows must have
// the same rune count.
//
// Errors: ErrBadDimension for no rows or an empty first row, ErrMaskSyntax
// for ragged rows or any other rune.
func ParseMask(art []string) (mask []bool, rows, cols int, err error) {
	if len(art) == 0 {
		return nil, 0, 0, builderErrorf(MethodParseMask, "no rows: %w", ErrBadDimension)
	}
	cols = len([]rune(art[0]))
	if cols == 0 {
		return nil, 0, 0, builderErrorf(MethodParseMask, "row 0 is empty: %w", ErrBadDimension)
	}

	mask = make([]bool, 0, len(art)*cols)
	for r, line := range art {
		runes := []rune(line)
		if len(runes) != cols {
			return nil, 0, 0, builderErrorf(MethodParseMask, "row %d has %d runes, want %d: %w",
				r, len(runes), cols, ErrMaskSyntax)
		}
		for c, ch := range runes {
			switch ch {
			case MaskOn, MaskOnAlt:
				mask = append(mask, true)
			case MaskOff, MaskOffAlt:
				mask = append(mask, false)
			default:
				return nil, 0, 0, builderErrorf(MethodParseMask, "rune %q at (%d,%d): %w", ch, r, c, ErrMaskSyntax)
			}
		}
	}

	return mask, len(art), cols, nil
}

// FormatMask renders mask back into art using 'X' and '.'.
// It is the inverse of ParseMask for well-formed input.
func FormatMask(mask []bool, cols int) []string {
	if cols < minDim {
		return nil
	}
	out := make([]string, 0, (len(mask)+cols-1)/cols)
	var sb strings.Builder
	for i, on := range mask {
		if on {
			sb.WriteRune(MaskOn)
		} else {
			sb.WriteRune(MaskOff)
		}
		if (i+1)%cols == 0 {
			out = append(out, sb.String())
			sb.Reset()
		}
	}
	if sb.Len() > 0 {
		out = append(out, sb.String())
	}

	return out
}
