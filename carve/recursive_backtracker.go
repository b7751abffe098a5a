package carve

import "github.com/katalvlaran/lvmaze/core"

const methodRecursiveBackTracker = "RecursiveBackTracker"

// RunRecursiveBackTracker carves depth-first from a random start. The stack
// lives on the heap, so depth is bounded by cell count, not goroutine stack.
//
// At the stack top: if unvisited neighbours exist, open the wall to one
// chosen uniformly and push it; otherwise pop. Stops once every cell is
// visited.
func RunRecursiveBackTracker(g core.Graph, rng Rand) error {
	cells, err := prepare(methodRecursiveBackTracker, g, rng)
	if err != nil {
		return err
	}

	visited := make(visitSet, len(cells))
	i, err := draw(methodRecursiveBackTracker, rng, len(cells))
	if err != nil {
		return err
	}
	start := cells[i]
	visited.add(start)
	stack := make([]core.CellID, 0, len(cells))
	stack = append(stack, start)

	for len(stack) > 0 && len(visited) < len(cells) {
		top := stack[len(stack)-1]
		fresh := linksWhere(g, top, visited, false)
		if len(fresh) == 0 {
			stack = stack[:len(stack)-1]
			continue
		}
		i, err := draw(methodRecursiveBackTracker, rng, len(fresh))
		if err != nil {
			return err
		}
		l := fresh[i]
		if err := open(methodRecursiveBackTracker, g, l.Wall); err != nil {
			return err
		}
		visited.add(l.Neighbor)
		stack = append(stack, l.Neighbor)
	}

	return nil
}
