package carve

import "github.com/katalvlaran/lvmaze/core"

const methodAldousBroder = "AldousBroder"

// RunAldousBroder performs the unbiased random walk: from a uniformly chosen
// start, repeatedly step through a uniformly chosen incident wall, opening it
// only when the far cell is new. Ends when every cell has been visited.
//
// The expected walk length is the cover time of the graph, so this is the
// slowest carver on large mazes; the result is a uniform spanning tree.
func RunAldousBroder(g core.Graph, rng Rand) error {
	cells, err := prepare(methodAldousBroder, g, rng)
	if err != nil {
		return err
	}

	visited := make(visitSet, len(cells))
	i, err := draw(methodAldousBroder, rng, len(cells))
	if err != nil {
		return err
	}
	cur := cells[i]
	visited.add(cur)

	for len(visited) < len(cells) {
		links := g.Walls(cur)
		i, err := draw(methodAldousBroder, rng, len(links))
		if err != nil {
			return err
		}
		l := links[i]
		if !visited.has(l.Neighbor) {
			if err := open(methodAldousBroder, g, l.Wall); err != nil {
				return err
			}
			visited.add(l.Neighbor)
		}
		cur = l.Neighbor
	}

	return nil
}
