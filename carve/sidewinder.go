package carve

import (
	"cmp"
	"slices"

	"github.com/katalvlaran/lvmaze/core"
)

const methodSidewinder = "Sidewinder"

// RunSidewinder carves g row by row, keeping a run of cells in the current
// row:
//
//   - first row (no turn wall): open straight.
//   - last column (no straight wall): add the cell to the run, open the turn
//     wall of one run cell chosen uniformly, clear the run.
//   - otherwise: add the cell to the run and flip a coin; 0 opens straight,
//     1 closes the run as in the last-column case.
//
// Requires an orthogonal Lattice (ErrUnsupportedTopology otherwise).
// Complexity: O(C · Δ).
func RunSidewinder(g core.Graph, rng Rand) error {
	cells, err := prepare(methodSidewinder, g, rng)
	if err != nil {
		return err
	}
	lat, err := lattice(methodSidewinder, g)
	if err != nil {
		return err
	}

	var run []core.WallID // turn walls of the cells in the current run
	closeRun := func() error {
		i, err := draw(methodSidewinder, rng, len(run))
		if err != nil {
			return err
		}
		w := run[i]
		run = run[:0]
		return open(methodSidewinder, lat, w)
	}

	for _, c := range rowMajor(lat, cells) {
		straight, hasStraight, turn, hasTurn := straightAndTurn(lat, c)
		switch {
		case !hasTurn && !hasStraight:
			// top-right corner or a 1×1 grid
		case !hasTurn:
			if err := open(methodSidewinder, lat, straight); err != nil {
				return err
			}
		case !hasStraight:
			run = append(run, turn)
			if err := closeRun(); err != nil {
				return err
			}
		default:
			run = append(run, turn)
			coin, err := draw(methodSidewinder, rng, 2)
			if err != nil {
				return err
			}
			if coin == 0 {
				if err := open(methodSidewinder, lat, straight); err != nil {
					return err
				}
				continue
			}
			if err := closeRun(); err != nil {
				return err
			}
		}
	}

	return nil
}

// rowMajor returns cells ordered by (row, column).
func rowMajor(lat Lattice, cells []core.CellID) []core.CellID {
	type rc struct {
		id       core.CellID
		row, col int
	}
	keyed := make([]rc, len(cells))
	for i, c := range cells {
		r, col, _ := lat.Position(c)
		keyed[i] = rc{id: c, row: r, col: col}
	}
	slices.SortFunc(keyed, func(a, b rc) int {
		if a.row != b.row {
			return cmp.Compare(a.row, b.row)
		}
		return cmp.Compare(a.col, b.col)
	})

	out := make([]core.CellID, len(keyed))
	for i, k := range keyed {
		out[i] = k.id
	}

	return out
}
