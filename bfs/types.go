// Package bfs provides tunable options, result types and error definitions
// for breadth-first search over a core.Graph.
package bfs

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvmaze/core"
)

// Sentinel errors for BFS execution.
var (
	// ErrGraphNil is returned if a nil graph is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrStartNotFound is returned when the start cell is absent.
	ErrStartNotFound = errors.New("bfs: start cell not found")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")

	// ErrEmptyGraph is returned by Connected for a graph with no cells.
	ErrEmptyGraph = errors.New("bfs: graph has no cells")

	// ErrDisconnected is returned by Connected when some cell is unreachable
	// through the structural walls.
	ErrDisconnected = errors.New("bfs: graph is not connected")

	// ErrCellNotInDistances is returned when the finish cell has no distance.
	ErrCellNotInDistances = errors.New("bfs: cell not in distance map")

	// ErrBrokenGradient is returned when a cell on the descent has no
	// passable neighbour exactly one step closer to the start.
	ErrBrokenGradient = errors.New("bfs: no neighbour one step closer to start")
)

// Option configures BFS behavior via functional arguments.
// If an Option is invalid (e.g. negative depth), it is recorded
// internally and surfaced as ErrOptionViolation when Distances is invoked.
type Option func(*BFSOptions)

// BFSOptions holds parameters and callbacks to customize BFS execution.
type BFSOptions struct {
	// Structural makes the walk follow every wall regardless of passability.
	Structural bool

	// OnEnqueue is called when a cell is discovered, with its distance.
	OnEnqueue func(c core.CellID, depth int)

	// OnVisit is called when visiting a cell. If it returns an error,
	// BFS aborts and propagates that error.
	OnVisit func(c core.CellID, depth int) error

	// MaxDepth, if > 0, stops exploring beyond this depth.
	// A value of 0 explicitly disables any depth limit.
	MaxDepth int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns a BFSOptions with sane defaults:
//   - passable walls only
//   - no depth limit (MaxDepth == 0)
//   - no-op hooks (OnEnqueue, OnVisit)
func DefaultOptions() BFSOptions {
	return BFSOptions{
		OnEnqueue: func(core.CellID, int) {},
		OnVisit:   func(core.CellID, int) error { return nil },
	}
}

// WithStructural walks every wall, open or closed. Used to validate
// connectivity of a topology before it is carved.
func WithStructural() Option {
	return func(o *BFSOptions) {
		o.Structural = true
	}
}

// WithOnEnqueue registers a callback to run when a cell is discovered.
func WithOnEnqueue(fn func(c core.CellID, depth int)) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// WithOnVisit registers a callback to run on visit; returning an error
// from this callback stops the BFS.
func WithOnVisit(fn func(c core.CellID, depth int) error) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth stops the search at the given depth (inclusive).
//
//	d > 0: limit to depth d
//	d == 0: explicit no depth limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *BFSOptions) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// DistanceInfo is the outcome of Distances:
//   - Start: the cell the search began at.
//   - Distance: hop count from Start for every reached cell.
//   - Order: cells in discovery order.
//   - Farthest/MaxDistance: the first cell discovered at the largest distance.
type DistanceInfo struct {
	Start       core.CellID
	Distance    map[core.CellID]int
	Order       []core.CellID
	Farthest    core.CellID
	MaxDistance int
}

// Reached reports whether c has a distance.
func (d *DistanceInfo) Reached(c core.CellID) bool {
	_, ok := d.Distance[c]
	return ok
}

// ShortestPathInfo holds a start→finish path, both ends included.
type ShortestPathInfo struct {
	Path []core.CellID

	members map[core.CellID]struct{}
}

// Contains reports whether c lies on the path.
func (p *ShortestPathInfo) Contains(c core.CellID) bool {
	_, ok := p.members[c]
	return ok
}

// Len returns the number of cells on the path.
func (p *ShortestPathInfo) Len() int {
	return len(p.Path)
}
