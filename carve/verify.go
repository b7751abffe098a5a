package carve

import (
	"fmt"

	"github.com/katalvlaran/lvmaze/core"
)

const methodVerify = "Verify"

// Verify checks that the passable walls of g form a spanning tree:
//  1. no passable wall closes a cycle (union-find);
//  2. exactly one component remains.
//
// Together these imply passable count == cells - 1.
//
// Returns ErrNotPerfect wrapped with the first violated condition.
// Complexity: O((C + W) · α(C)).
func Verify(g core.Graph) error {
	if g == nil {
		return fmt.Errorf("%s: %w", methodVerify, ErrGraphNil)
	}
	cells := g.Cells()
	if len(cells) == 0 {
		return fmt.Errorf("%s: %w", methodVerify, ErrEmptyGraph)
	}

	// Initialize disjoint-set (union-find) structures.
	// parent maps each cell to its parent in the DSU; initially parent[c] = c.
	parent := make(map[core.CellID]core.CellID, len(cells))
	// rank keeps track of tree depth to optimize unions.
	rank := make(map[core.CellID]int, len(cells))
	for _, c := range cells {
		parent[c] = c
	}

	// Iterative find with path compression.
	find := func(u core.CellID) core.CellID {
		for parent[u] != u {
			parent[u] = parent[parent[u]]
			u = parent[u]
		}
		return u
	}

	seen := make(map[core.WallID]struct{})
	components := len(cells)
	for _, c := range cells {
		for _, l := range g.Walls(c) {
			if !l.Passable {
				continue
			}
			if _, dup := seen[l.Wall]; dup {
				continue
			}
			seen[l.Wall] = struct{}{}

			ru, rv := find(c), find(l.Neighbor)
			if ru == rv {
				return fmt.Errorf("%s: wall %d (%d-%d) closes a cycle: %w",
					methodVerify, l.Wall, c, l.Neighbor, ErrNotPerfect)
			}
			// Union by rank.
			switch {
			case rank[ru] < rank[rv]:
				parent[ru] = rv
			case rank[ru] > rank[rv]:
				parent[rv] = ru
			default:
				parent[rv] = ru
				rank[ru]++
			}
			components--
		}
	}

	if components != 1 {
		return fmt.Errorf("%s: %d components over %d passable walls, want 1: %w",
			methodVerify, components, len(seen), ErrNotPerfect)
	}

	return nil
}
