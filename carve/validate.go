package carve

import (
	"fmt"

	"github.com/katalvlaran/lvmaze/bfs"
	"github.com/katalvlaran/lvmaze/core"
)

// Lattice is the rectangular-coordinate capability BinaryTree and Sidewinder
// need on top of core.Graph. builder.Grid implements it.
type Lattice interface {
	core.Graph

	// CellAt returns the cell at (row, col), if any.
	CellAt(row, col int) (core.CellID, bool)

	// Position returns the coordinates of c.
	Position(c core.CellID) (row, col int, ok bool)

	// Orthogonal reports whether the lattice is a full 4-neighbour grid.
	Orthogonal() bool
}

// prepare checks the preconditions shared by every carver and returns the
// cell list. Nothing is mutated.
//
// Order of checks: nil graph, nil rng, empty graph, already carved,
// structural connectivity.
func prepare(method string, g core.Graph, rng Rand) ([]core.CellID, error) {
	if g == nil {
		return nil, fmt.Errorf("%s: %w", method, ErrGraphNil)
	}
	if rng == nil {
		return nil, fmt.Errorf("%s: %w", method, ErrNeedRand)
	}
	cells := g.Cells()
	if len(cells) == 0 {
		return nil, fmt.Errorf("%s: %w", method, ErrEmptyGraph)
	}
	for _, c := range cells {
		for _, l := range g.Walls(c) {
			if l.Passable {
				return nil, fmt.Errorf("%s: wall %d already open: %w", method, l.Wall, ErrAlreadyCarved)
			}
		}
	}
	if err := bfs.Connected(g); err != nil {
		return nil, fmt.Errorf("%s: %w: %w", method, ErrDisconnected, err)
	}

	return cells, nil
}

// lattice asserts g is an orthogonal Lattice whose (0,0) corner touches
// exactly the in-bounds cells among (0,1) and (1,0).
func lattice(method string, g core.Graph) (Lattice, error) {
	lat, ok := g.(Lattice)
	if !ok || !lat.Orthogonal() {
		return nil, fmt.Errorf("%s: no orthogonal row/column layout: %w", method, ErrUnsupportedTopology)
	}
	corner, ok := lat.CellAt(0, 0)
	if !ok {
		return nil, fmt.Errorf("%s: no cell at (0,0): %w", method, ErrUnsupportedTopology)
	}

	want := make(map[core.CellID]struct{}, 2)
	for _, p := range [][2]int{{0, 1}, {1, 0}} {
		if c, ok := lat.CellAt(p[0], p[1]); ok {
			want[c] = struct{}{}
		}
	}
	links := lat.Walls(corner)
	if len(links) != len(want) {
		return nil, fmt.Errorf("%s: corner degree %d, want %d: %w", method, len(links), len(want), ErrUnsupportedTopology)
	}
	for _, l := range links {
		if _, ok := want[l.Neighbor]; !ok {
			return nil, fmt.Errorf("%s: corner linked to cell %d: %w", method, l.Neighbor, ErrUnsupportedTopology)
		}
	}

	return lat, nil
}

// wallTo returns the wall from c to the cell at (row, col), if both exist
// and share a wall.
func wallTo(lat Lattice, c core.CellID, row, col int) (core.WallID, bool) {
	target, ok := lat.CellAt(row, col)
	if !ok {
		return 0, false
	}
	for _, l := range lat.Walls(c) {
		if l.Neighbor == target {
			return l.Wall, true
		}
	}

	return 0, false
}

// straightAndTurn returns c's straight (column+1) and turn (row-1) walls.
func straightAndTurn(lat Lattice, c core.CellID) (straight core.WallID, hasStraight bool, turn core.WallID, hasTurn bool) {
	r, col, _ := lat.Position(c)
	straight, hasStraight = wallTo(lat, c, r, col+1)
	turn, hasTurn = wallTo(lat, c, r-1, col)

	return straight, hasStraight, turn, hasTurn
}

// visitSet tracks visited cells.
type visitSet map[core.CellID]struct{}

func (v visitSet) has(c core.CellID) bool {
	_, ok := v[c]
	return ok
}

func (v visitSet) add(c core.CellID) {
	v[c] = struct{}{}
}

// linksWhere returns the links of c whose neighbour visited-state equals
// want.
func linksWhere(g core.Graph, c core.CellID, visited visitSet, want bool) []core.Link {
	var out []core.Link
	for _, l := range g.Walls(c) {
		if visited.has(l.Neighbor) == want {
			out = append(out, l)
		}
	}

	return out
}

// open opens w and attaches method context to a failure.
func open(method string, g core.Graph, w core.WallID) error {
	if err := g.OpenWall(w); err != nil {
		return fmt.Errorf("%s: %w", method, err)
	}

	return nil
}
