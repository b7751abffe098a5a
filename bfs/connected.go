package bfs

import (
	"fmt"

	"github.com/katalvlaran/lvmaze/core"
)

// Connected reports whether every cell of g is reachable from the first cell
// through its walls, open or closed.
//
// Returns ErrGraphNil, ErrEmptyGraph, or ErrDisconnected wrapped with the
// reached and total counts.
func Connected(g core.Graph) error {
	if g == nil {
		return ErrGraphNil
	}
	cells := g.Cells()
	if len(cells) == 0 {
		return ErrEmptyGraph
	}
	info, err := Distances(g, cells[0], WithStructural())
	if err != nil {
		return err
	}
	if reached := len(info.Distance); reached != len(cells) {
		return fmt.Errorf("Connected: reached %d of %d cells (%d unreachable): %w",
			reached, len(cells), len(cells)-reached, ErrDisconnected)
	}

	return nil
}
