package carve

import (
	"fmt"

	"github.com/katalvlaran/lvmaze/core"
)

const methodWilson = "Wilson"

// RunWilson carves a uniform spanning tree with loop-erased random walks.
//
// One uniformly chosen cell seeds the tree. While cells remain outside it, a
// walk starts at a uniformly chosen outside cell and steps through uniformly
// chosen walls. Revisiting a cell already on the walk erases the loop back
// to that cell. Reaching the tree opens every wall of the walk and adds its
// cells to the tree.
func RunWilson(g core.Graph, rng Rand) error {
	cells, err := prepare(methodWilson, g, rng)
	if err != nil {
		return err
	}

	// outside holds cells not yet in the tree; slot gives O(1) removal.
	outside := make([]core.CellID, len(cells))
	copy(outside, cells)
	slot := make(map[core.CellID]int, len(cells))
	for i, c := range outside {
		slot[c] = i
	}
	remove := func(c core.CellID) {
		i, ok := slot[c]
		if !ok {
			return
		}
		last := outside[len(outside)-1]
		outside[i] = last
		slot[last] = i
		outside = outside[:len(outside)-1]
		delete(slot, c)
	}
	inTree := func(c core.CellID) bool {
		_, out := slot[c]
		return !out
	}

	first, err := draw(methodWilson, rng, len(outside))
	if err != nil {
		return err
	}
	remove(outside[first])

	var (
		path   []core.CellID // walk cells, path[0] is the walk start
		walls  []core.WallID // walls[i] joins path[i] and path[i+1]
		onPath = make(map[core.CellID]int)
	)
	for len(outside) > 0 {
		i, err := draw(methodWilson, rng, len(outside))
		if err != nil {
			return err
		}
		start := outside[i]
		path = append(path[:0], start)
		walls = walls[:0]
		clear(onPath)
		onPath[start] = 0

		cur := start
		for !inTree(cur) {
			links := g.Walls(cur)
			i, err := draw(methodWilson, rng, len(links))
			if err != nil {
				return err
			}
			l := links[i]
			next := l.Neighbor

			if idx, looped := onPath[next]; looped {
				// erase the loop: keep path[:idx+1]
				for _, c := range path[idx+1:] {
					delete(onPath, c)
				}
				path = path[:idx+1]
				walls = walls[:idx]
				cur = next
				continue
			}

			walls = append(walls, l.Wall)
			path = append(path, next)
			if !inTree(next) {
				onPath[next] = len(path) - 1
			}
			cur = next
		}

		// carve the walk into the tree, following each wall from its near side
		at := start
		for _, w := range walls {
			if err := open(methodWilson, g, w); err != nil {
				return err
			}
			remove(at)
			nxt, err := g.Other(w, at)
			if err != nil {
				return fmt.Errorf("%s: %w", methodWilson, err)
			}
			at = nxt
		}
	}

	return nil
}
