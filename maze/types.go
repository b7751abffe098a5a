package maze

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/lvmaze/builder"
	"github.com/katalvlaran/lvmaze/carve"
)

// Sentinel errors for the maze facade.
var (
	// ErrUnknownTopology is returned for an unrecognised topology.
	ErrUnknownTopology = errors.New("maze: unknown topology")

	// ErrNotCircular is returned by circular-only queries on grid mazes.
	ErrNotCircular = errors.New("maze: not a circular maze")
)

// Topology selects the cell layout.
type Topology int

const (
	// Rectangular is the orthogonal rows×columns grid.
	Rectangular Topology = iota
	// Hex is the hexagonal rows×columns grid.
	Hex
	// Triangle is the triangular rows×columns grid.
	Triangle
	// Circular is the concentric-ring layout.
	Circular
	// Masked is a rectangular grid restricted to a mask.
	Masked
)

var topologyNames = [...]string{
	Rectangular: "Rectangular",
	Hex:         "Hex",
	Triangle:    "Triangle",
	Circular:    "Circular",
	Masked:      "Masked",
}

// String returns the display name, e.g. "Hex".
func (t Topology) String() string {
	if t < Rectangular || t > Masked {
		return fmt.Sprintf("Topology(%d)", int(t))
	}

	return topologyNames[t]
}

// ParseTopology resolves a name case-insensitively. "hexagonal" and
// "triangular" are accepted as aliases.
func ParseTopology(s string) (Topology, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "rectangular", "rect":
		return Rectangular, nil
	case "hex", "hexagonal":
		return Hex, nil
	case "triangle", "triangular":
		return Triangle, nil
	case "circular", "circle", "polar":
		return Circular, nil
	case "masked", "mask":
		return Masked, nil
	}

	return 0, fmt.Errorf("ParseTopology: %q: %w", s, ErrUnknownTopology)
}

// Definition describes a maze to generate.
//
// Rows and Columns apply to the grid topologies; Mask (row-major,
// len == Rows*Columns) only to Masked; Rings, ScaleFactor and HalveFactor
// only to Circular.
type Definition struct {
	Topology    Topology
	Rows        int
	Columns     int
	Mask        []bool
	Rings       int
	ScaleFactor int
	HalveFactor int
	Algorithm   carve.Algorithm
}

// Validate checks the parameters New would reject, without building.
// Connectivity of a mask is only known after building and is left to New.
func (d Definition) Validate() error {
	if _, err := d.Algorithm.Func(); err != nil {
		return fmt.Errorf("Validate: %w", err)
	}

	switch d.Topology {
	case Rectangular, Hex, Triangle, Masked:
		if _, err := builder.GridCells(d.Rows, d.Columns); err != nil {
			return fmt.Errorf("Validate: %w", err)
		}
	case Circular:
		if _, err := builder.CircularCells(d.Rings, d.ScaleFactor, d.HalveFactor); err != nil {
			return fmt.Errorf("Validate: %w", err)
		}
	default:
		return fmt.Errorf("Validate: %w", ErrUnknownTopology)
	}

	if d.Topology == Masked && len(d.Mask) != d.Rows*d.Columns {
		return fmt.Errorf("Validate: len(mask)=%d, want %d: %w", len(d.Mask), d.Rows*d.Columns, builder.ErrMaskSize)
	}
	if d.Algorithm.RequiresLattice() && d.Topology != Rectangular {
		return fmt.Errorf("Validate: %s on %s: %w", d.Algorithm, d.Topology, carve.ErrUnsupportedTopology)
	}

	return nil
}

// Algorithms returns the algorithms valid for t, in carve.Algorithms order.
func (t Topology) Algorithms() []carve.Algorithm {
	var out []carve.Algorithm
	for _, a := range carve.Algorithms() {
		if a.RequiresLattice() && t != Rectangular {
			continue
		}
		out = append(out, a)
	}

	return out
}
