package carve

import (
	"fmt"

	"github.com/katalvlaran/lvmaze/core"
)

const methodHuntAndKill = "HuntAndKill"

// RunHuntAndKill walks from a random start through unvisited neighbours,
// opening each wall it takes. When stuck it hunts: scanning g.Cells() in
// order, the first unvisited cell with a visited neighbour is joined to one
// of them (chosen uniformly) and the walk resumes there.
//
// Complexity: O(C²) worst case because of the hunt scans.
func RunHuntAndKill(g core.Graph, rng Rand) error {
	cells, err := prepare(methodHuntAndKill, g, rng)
	if err != nil {
		return err
	}

	visited := make(visitSet, len(cells))
	i, err := draw(methodHuntAndKill, rng, len(cells))
	if err != nil {
		return err
	}
	cur := cells[i]
	visited.add(cur)

	for len(visited) < len(cells) {
		if fresh := linksWhere(g, cur, visited, false); len(fresh) > 0 {
			i, err := draw(methodHuntAndKill, rng, len(fresh))
			if err != nil {
				return err
			}
			l := fresh[i]
			if err := open(methodHuntAndKill, g, l.Wall); err != nil {
				return err
			}
			visited.add(l.Neighbor)
			cur = l.Neighbor
			continue
		}

		next, err := hunt(g, cells, visited, rng)
		if err != nil {
			return err
		}
		cur = next
	}

	return nil
}

// hunt finds the first unvisited cell bordering the visited region, opens a
// random wall into the region and returns the cell.
func hunt(g core.Graph, cells []core.CellID, visited visitSet, rng Rand) (core.CellID, error) {
	for _, c := range cells {
		if visited.has(c) {
			continue
		}
		border := linksWhere(g, c, visited, true)
		if len(border) == 0 {
			continue
		}
		i, err := draw(methodHuntAndKill, rng, len(border))
		if err != nil {
			return core.NoCell, err
		}
		l := border[i]
		if err := open(methodHuntAndKill, g, l.Wall); err != nil {
			return core.NoCell, err
		}
		visited.add(c)

		return c, nil
	}

	// unreachable once prepare has checked connectivity
	return core.NoCell, fmt.Errorf("%s: hunt found no frontier cell: %w", methodHuntAndKill, ErrDisconnected)
}
