// Package bfs provides breadth-first distance search, shortest-path descent
// and a structural connectivity check over a core.Graph.
//
// What
//
//   - Distances explores cells in non-decreasing hop count from a start cell
//     and returns a DistanceInfo:
//   - Distance: map from cell → hops from start (domain = reached cells)
//   - Order: discovery sequence
//   - Farthest / MaxDistance: first cell discovered at the largest distance
//   - ShortestPath descends the distance field from a finish cell back to the
//     start, one passable wall at a time, and returns the path start→finish.
//   - Connected runs a structural walk (every wall, open or closed) from the
//     first cell and fails with ErrDisconnected if any cell is missed.
//
// Determinism
//
//	Neighbours are enqueued in wall insertion order (core.Maze.Walls), so
//	Order, Farthest and the chosen path are reproducible for a given maze.
//
// Complexity (C = |Cells|, W = |Walls|)
//
//   - Distances / Connected: O(C + W) time, O(C) memory.
//   - ShortestPath:          O(L · Δ) where L is path length, Δ max degree.
//
// Usage
//
//	info, err := bfs.Distances(g, start)
//	if err != nil {
//	    // ErrGraphNil, ErrStartNotFound, ErrOptionViolation, or a hook error
//	}
//	path, err := bfs.ShortestPath(g, finish, info)
//	if err != nil {
//	    // ErrCellNotInDistances, ErrBrokenGradient
//	}
//
// Options
//
//   - DefaultOptions(): passable walls only, no-op hooks, no depth limit.
//   - WithStructural():  follow every wall regardless of passability.
//   - WithMaxDepth(d):   stop exploring beyond depth d (>0).
//   - WithOnEnqueue(fn): hook when a cell is discovered.
//   - WithOnVisit(fn):   hook during visit; returning error aborts BFS.
//
// Errors
//
//   - ErrGraphNil            if the graph (or DistanceInfo) is nil.
//   - ErrStartNotFound       if the start cell does not exist.
//   - ErrOptionViolation     if invalid Option (e.g. negative MaxDepth).
//   - ErrEmptyGraph          Connected on a graph with no cells.
//   - ErrDisconnected        Connected found unreachable cells.
//   - ErrCellNotInDistances  ShortestPath finish was never reached.
//   - ErrBrokenGradient      ShortestPath found no lower neighbour.
//   - Wrapped user-supplied hook errors from OnVisit.
package bfs
