package maze

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/lvmaze/bfs"
	"github.com/katalvlaran/lvmaze/builder"
	"github.com/katalvlaran/lvmaze/carve"
	"github.com/katalvlaran/lvmaze/core"
)

// shape is what every built topology offers the facade.
type shape interface {
	core.Graph
	DeadEnds() int
	StartCandidates() []core.CellID
	FinishCandidates() []core.CellID
}

// Maze is a generated, carved maze with its endpoints.
// It is immutable after New returns.
type Maze struct {
	id      uuid.UUID
	def     Definition
	shape   shape
	grid    *builder.Grid   // nil for Circular
	circle  *builder.Circle // nil for grid topologies
	start   core.CellID
	finish  core.CellID
	elapsed time.Duration
}

// New builds the topology described by def, carves it, verifies the result
// is a perfect maze and places the start and finish cells.
//
// Errors: anything def.Validate reports, builder errors (for example
// builder.ErrDisconnectedMask), carve errors, and carve.ErrNotPerfect if
// verification fails.
func New(def Definition, opts ...Option) (*Maze, error) {
	o, err := resolve(opts)
	if err != nil {
		return nil, fmt.Errorf("New: id: %w", err)
	}
	log := o.Logger.WithFields(logrus.Fields{
		"maze_id":   o.ID.String(),
		"topology":  def.Topology.String(),
		"algorithm": def.Algorithm.String(),
	})

	m, err := generate(def, o)
	if err != nil {
		log.WithError(err).Warn("maze generation failed")
		return nil, err
	}

	log.WithFields(logrus.Fields{
		"cells":     m.shape.CellCount(),
		"dead_ends": m.shape.DeadEnds(),
		"elapsed":   m.elapsed.String(),
	}).Debug("maze generated")

	return m, nil
}

func generate(def Definition, o Options) (*Maze, error) {
	if err := def.Validate(); err != nil {
		return nil, fmt.Errorf("New: %w", err)
	}

	began := time.Now()
	m := &Maze{id: o.ID, def: def}
	if err := m.build(); err != nil {
		return nil, fmt.Errorf("New: %w", err)
	}
	if err := def.Algorithm.Carve(m.shape, o.Rand); err != nil {
		return nil, fmt.Errorf("New: %w", err)
	}
	if err := carve.Verify(m.shape); err != nil {
		return nil, fmt.Errorf("New: %w", err)
	}
	if err := m.placeEndpoints(o.Rand); err != nil {
		return nil, fmt.Errorf("New: %w", err)
	}
	m.elapsed = time.Since(began)

	return m, nil
}

// build constructs the uncarved topology.
func (m *Maze) build() error {
	d := m.def
	var err error
	switch d.Topology {
	case Rectangular:
		m.grid, err = builder.Rectangular(d.Rows, d.Columns)
	case Hex:
		m.grid, err = builder.Hex(d.Rows, d.Columns)
	case Triangle:
		m.grid, err = builder.Triangle(d.Rows, d.Columns)
	case Masked:
		m.grid, err = builder.Masked(d.Rows, d.Columns, d.Mask)
	case Circular:
		m.circle, err = builder.Circular(d.Rings, d.ScaleFactor, d.HalveFactor)
	default:
		return ErrUnknownTopology
	}
	if err != nil {
		return err
	}

	if m.circle != nil {
		m.shape = m.circle
	} else {
		m.shape = m.grid
	}

	return nil
}

// ID returns the maze id.
func (m *Maze) ID() uuid.UUID { return m.id }

// Topology returns the layout the maze was built with.
func (m *Maze) Topology() Topology { return m.def.Topology }

// Algorithm returns the carver that shaped the maze.
func (m *Maze) Algorithm() carve.Algorithm { return m.def.Algorithm }

// Definition returns a copy of the definition the maze was built from.
func (m *Maze) Definition() Definition {
	d := m.def
	if d.Mask != nil {
		d.Mask = append([]bool(nil), d.Mask...)
	}

	return d
}

// Graph returns the carved topology.
func (m *Maze) Graph() core.Graph { return m.shape }

// Grid returns the grid topology; ok is false for circular mazes.
func (m *Maze) Grid() (*builder.Grid, bool) { return m.grid, m.grid != nil }

// Circle returns the ring topology; ok is false for grid mazes.
func (m *Maze) Circle() (*builder.Circle, bool) { return m.circle, m.circle != nil }

// Cells returns every cell in allocation order.
func (m *Maze) Cells() []core.CellID { return m.shape.Cells() }

// Walls returns a snapshot of c's walls; nil for an unknown cell.
func (m *Maze) Walls(c core.CellID) []core.Link { return m.shape.Walls(c) }

// Start returns the start cell.
func (m *Maze) Start() core.CellID { return m.start }

// Finish returns the finish cell.
func (m *Maze) Finish() core.CellID { return m.finish }

// GenerationTime returns how long New spent building and carving.
func (m *Maze) GenerationTime() time.Duration { return m.elapsed }

// Position returns the row and column of c for grid topologies.
func (m *Maze) Position(c core.CellID) (row, col int, ok bool) {
	if m.grid == nil {
		return 0, 0, false
	}

	return m.grid.Position(c)
}

// Polar returns the ring position of c for circular mazes.
func (m *Maze) Polar(c core.CellID) (builder.Polar, error) {
	if m.circle == nil {
		return builder.Polar{}, fmt.Errorf("Polar: %s: %w", m.def.Topology, ErrNotCircular)
	}
	p, ok := m.circle.Polar(c)
	if !ok {
		return builder.Polar{}, fmt.Errorf("Polar: cell %d: %w", c, core.ErrCellNotFound)
	}

	return p, nil
}

// DistancesFrom runs the distance solver from c over passable walls.
func (m *Maze) DistancesFrom(c core.CellID) (*bfs.DistanceInfo, error) {
	return bfs.Distances(m.shape, c)
}

// ShortestPath descends info from finish back to its start.
func (m *Maze) ShortestPath(finish core.CellID, info *bfs.DistanceInfo) (*bfs.ShortestPathInfo, error) {
	return bfs.ShortestPath(m.shape, finish, info)
}

// Solve returns the path from Start to Finish.
func (m *Maze) Solve() (*bfs.ShortestPathInfo, error) {
	info, err := m.DistancesFrom(m.start)
	if err != nil {
		return nil, err
	}

	return m.ShortestPath(m.finish, info)
}
