// Package bfs provides breadth-first search over a core.Graph,
// returning hop distances, discovery order and the farthest reached cell.
//
// By default only passable walls are followed. WithStructural follows every
// wall and is used before carving to check that a topology is connected.
package bfs

import (
	"fmt"

	"github.com/katalvlaran/lvmaze/core"
)

// queueItem pairs a cell with its BFS depth.
type queueItem struct {
	id    core.CellID
	depth int
}

// walker encapsulates mutable BFS state.
type walker struct {
	graph core.Graph
	opts  BFSOptions
	queue []queueItem
	head  int
	res   *DistanceInfo
}

// Distances runs breadth-first search on g from start,
// applying any number of functional Options.
// Returns ErrGraphNil or ErrStartNotFound for invalid input,
// ErrOptionViolation for bad options, or any user-supplied hook error.
//
// Farthest is the first cell discovered at a strictly new maximum distance,
// so ties resolve to discovery order.
func Distances(g core.Graph, start core.CellID, opts ...Option) (*DistanceInfo, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	// Build options and catch any invalid ones immediately
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	// Walls returns nil for a cell the graph does not own
	if g.Walls(start) == nil {
		return nil, fmt.Errorf("Distances: cell %d: %w", start, ErrStartNotFound)
	}
	n := g.CellCount()

	w := &walker{
		graph: g,
		opts:  o,
		queue: make([]queueItem, 0, n),
		res: &DistanceInfo{
			Start:    start,
			Distance: make(map[core.CellID]int, n),
			Order:    make([]core.CellID, 0, n),
			Farthest: start,
		},
	}

	w.enqueue(start, 0)

	return w.res, w.loop()
}

// enqueue records c at depth d, tracks the farthest cell, calls OnEnqueue
// and adds c to the queue.
func (w *walker) enqueue(c core.CellID, d int) {
	w.res.Distance[c] = d
	w.res.Order = append(w.res.Order, c)
	if d > w.res.MaxDistance {
		w.res.MaxDistance = d
		w.res.Farthest = c
	}
	w.opts.OnEnqueue(c, d)
	w.queue = append(w.queue, queueItem{id: c, depth: d})
}

// loop processes the queue until empty or a hook error.
func (w *walker) loop() error {
	for w.head < len(w.queue) {
		item := w.queue[w.head]
		w.head++
		if err := w.opts.OnVisit(item.id, item.depth); err != nil {
			return fmt.Errorf("bfs: OnVisit error at cell %d: %w", item.id, err)
		}
		w.enqueueNeighbors(item)
	}

	return nil
}

// enqueueNeighbors applies the passability rule and MaxDepth, and enqueues
// each unseen neighbour in wall insertion order.
func (w *walker) enqueueNeighbors(item queueItem) {
	nextDepth := item.depth + 1
	if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
		return
	}
	for _, l := range w.graph.Walls(item.id) {
		if !l.Passable && !w.opts.Structural {
			continue
		}
		if _, seen := w.res.Distance[l.Neighbor]; !seen {
			w.enqueue(l.Neighbor, nextDepth)
		}
	}
}
