package carve

import (
	"github.com/katalvlaran/lvmaze/core"
)

const methodBinaryTree = "BinaryTree"

// RunBinaryTree carves g cell by cell: open the straight (column+1) or turn
// (row-1) wall, whichever exists; when both exist a fair coin picks, 0 meaning
// straight. The cell with neither is skipped.
//
// Requires an orthogonal Lattice (ErrUnsupportedTopology otherwise).
// Draws exactly one value per cell that has both walls.
// Complexity: O(C · Δ).
func RunBinaryTree(g core.Graph, rng Rand) error {
	cells, err := prepare(methodBinaryTree, g, rng)
	if err != nil {
		return err
	}
	lat, err := lattice(methodBinaryTree, g)
	if err != nil {
		return err
	}

	for _, c := range rowMajor(lat, cells) {
		straight, hasStraight, turn, hasTurn := straightAndTurn(lat, c)
		var w core.WallID
		switch {
		case hasStraight && hasTurn:
			coin, err := draw(methodBinaryTree, rng, 2)
			if err != nil {
				return err
			}
			w = turn
			if coin == 0 {
				w = straight
			}
		case hasStraight:
			w = straight
		case hasTurn:
			w = turn
		default:
			continue
		}
		if err := open(methodBinaryTree, lat, w); err != nil {
			return err
		}
	}

	return nil
}
