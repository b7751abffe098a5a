// SPDX-License-Identifier: MIT
// Package: lvmaze/builder
//
// errors.go: sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables (package-level) are exposed.
//   • Callers use errors.Is(err, ErrX) to branch on semantics.
//   • Call sites attach the method and parameters with %w wrapping.
//   • Builders never panic at runtime.

package builder

import (
	"errors"
	"fmt"
)

// ErrBadDimension indicates a non-positive shape parameter (rows, columns,
// rings, scale or halve factor).
// Usage: if errors.Is(err, ErrBadDimension) { /* report invalid size */ }.
var ErrBadDimension = errors.New("builder: dimension must be positive")

// ErrTooLarge indicates shape parameters whose cell count exceeds MaxCells.
var ErrTooLarge = errors.New("builder: topology exceeds the cell limit")

// ErrMaskSize indicates that a mask length differs from rows×columns.
var ErrMaskSize = errors.New("builder: mask length does not match rows*columns")

// ErrEmptyMask indicates a mask with no enabled position.
var ErrEmptyMask = errors.New("builder: mask enables no cells")

// ErrDisconnectedMask indicates that the enabled positions of a mask do not
// form one connected region. Errors carrying it also wrap bfs.ErrDisconnected.
var ErrDisconnectedMask = errors.New("builder: mask cells are not connected")

// ErrMaskSyntax indicates malformed mask art (ragged rows or an unknown rune).
var ErrMaskSyntax = errors.New("builder: invalid mask art")

// builderErrorf wraps an inner error message with the given method context.
// It returns an error of the form "<Method>: <formatted message>".
// %w verbs in format are preserved for errors.Is.
func builderErrorf(method, format string, args ...interface{}) error {
	return fmt.Errorf("%s: "+format, append([]interface{}{method}, args...)...)
}
