package config

import (
	"fmt"

	"github.com/katalvlaran/lvmaze/builder"
	"github.com/katalvlaran/lvmaze/carve"
	"github.com/katalvlaran/lvmaze/maze"
)

// Defaults applied to omitted attributes.
const (
	DefaultRows        = 29
	DefaultColumns     = 29
	DefaultRings       = 12
	DefaultScaleFactor = 6
	DefaultHalveFactor = 3
)

// fileRoot is the top level of a maze file.
type fileRoot struct {
	Mazes []*mazeBlock `hcl:"maze,block"`
}

// mazeBlock is one `maze "name" { ... }` block as written.
type mazeBlock struct {
	Name        string   `hcl:"name,label"`
	Topology    string   `hcl:"topology"`
	Algorithm   string   `hcl:"algorithm"`
	Rows        *int     `hcl:"rows,optional"`
	Columns     *int     `hcl:"columns,optional"`
	Mask        []string `hcl:"mask,optional"`
	Rings       *int     `hcl:"rings,optional"`
	ScaleFactor *int     `hcl:"scale_factor,optional"`
	HalveFactor *int     `hcl:"halve_factor,optional"`
	Seed        *int64   `hcl:"seed,optional"`
}

func orDefault(v *int, def int) int {
	if v == nil {
		return def
	}

	return *v
}

// invalid formats an ErrInvalidEntry for block name.
func invalid(name, format string, args ...interface{}) error {
	return fmt.Errorf("maze %q: %s: %w", name, fmt.Sprintf(format, args...), ErrInvalidEntry)
}

// entry translates the block into an Entry.
func (b *mazeBlock) entry() (Entry, error) {
	topo, err := maze.ParseTopology(b.Topology)
	if err != nil {
		return Entry{}, fmt.Errorf("maze %q: %w: %w", b.Name, ErrInvalidEntry, err)
	}
	alg, err := carve.ParseAlgorithm(b.Algorithm)
	if err != nil {
		return Entry{}, fmt.Errorf("maze %q: %w: %w", b.Name, ErrInvalidEntry, err)
	}

	def := maze.Definition{Topology: topo, Algorithm: alg}
	switch topo {
	case maze.Circular:
		if b.Rows != nil || b.Columns != nil || b.Mask != nil {
			return Entry{}, invalid(b.Name, "rows, columns and mask do not apply to %s", topo)
		}
		def.Rings = orDefault(b.Rings, DefaultRings)
		def.ScaleFactor = orDefault(b.ScaleFactor, DefaultScaleFactor)
		def.HalveFactor = orDefault(b.HalveFactor, DefaultHalveFactor)

	case maze.Masked:
		if err := b.rejectRingAttrs(topo); err != nil {
			return Entry{}, err
		}
		if len(b.Mask) == 0 {
			return Entry{}, invalid(b.Name, "masked topology needs a mask")
		}
		mask, rows, cols, err := builder.ParseMask(b.Mask)
		if err != nil {
			return Entry{}, fmt.Errorf("maze %q: %w: %w", b.Name, ErrInvalidEntry, err)
		}
		if (b.Rows != nil && *b.Rows != rows) || (b.Columns != nil && *b.Columns != cols) {
			return Entry{}, invalid(b.Name, "mask is %d×%d, attributes say %d×%d",
				rows, cols, orDefault(b.Rows, rows), orDefault(b.Columns, cols))
		}
		def.Rows, def.Columns, def.Mask = rows, cols, mask

	default:
		if err := b.rejectRingAttrs(topo); err != nil {
			return Entry{}, err
		}
		if b.Mask != nil {
			return Entry{}, invalid(b.Name, "mask does not apply to %s", topo)
		}
		def.Rows = orDefault(b.Rows, DefaultRows)
		def.Columns = orDefault(b.Columns, DefaultColumns)
	}

	if err := def.Validate(); err != nil {
		return Entry{}, fmt.Errorf("maze %q: %w: %w", b.Name, ErrInvalidEntry, err)
	}

	e := Entry{Name: b.Name, Definition: def}
	if b.Seed != nil {
		e.Seed = *b.Seed
	}

	return e, nil
}

func (b *mazeBlock) rejectRingAttrs(topo maze.Topology) error {
	if b.Rings != nil || b.ScaleFactor != nil || b.HalveFactor != nil {
		return invalid(b.Name, "rings, scale_factor and halve_factor do not apply to %s", topo)
	}

	return nil
}
