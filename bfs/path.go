package bfs

import (
	"fmt"

	"github.com/katalvlaran/lvmaze/core"
)

// ShortestPath walks downhill from finish through info's distance field:
// at each step it moves to the first passable neighbour whose distance is
// exactly one less, stops at distance 0 and returns the path start→finish.
//
// Errors:
//   - ErrGraphNil if g or info is nil.
//   - ErrCellNotInDistances if finish was not reached.
//   - ErrBrokenGradient if a cell above distance 0 has no lower neighbour;
//     this only happens when info does not belong to g.
//
// Complexity: O(len(path) · max degree).
func ShortestPath(g core.Graph, finish core.CellID, info *DistanceInfo) (*ShortestPathInfo, error) {
	if g == nil || info == nil {
		return nil, ErrGraphNil
	}
	d, ok := info.Distance[finish]
	if !ok {
		return nil, fmt.Errorf("ShortestPath: cell %d: %w", finish, ErrCellNotInDistances)
	}

	path := make([]core.CellID, 0, d+1)
	path = append(path, finish)
	cur := finish
	for d > 0 {
		next, found := core.NoCell, false
		for _, l := range g.Walls(cur) {
			if !l.Passable {
				continue
			}
			if nd, ok := info.Distance[l.Neighbor]; ok && nd == d-1 {
				next, found = l.Neighbor, true
				break
			}
		}
		if !found {
			return nil, fmt.Errorf("ShortestPath: cell %d at distance %d: %w", cur, d, ErrBrokenGradient)
		}
		path = append(path, next)
		cur, d = next, d-1
	}

	// reverse to get start → finish
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	members := make(map[core.CellID]struct{}, len(path))
	for _, c := range path {
		members[c] = struct{}{}
	}

	return &ShortestPathInfo{Path: path, members: members}, nil
}
