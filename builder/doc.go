// Package builder constructs the uncarved maze topologies: every cell and
// every wall a carver may later open, all walls closed.
//
// The package offers the following constructors:
//
//   - Rectangular(rows, cols): 4-neighbour orthogonal lattice.
//   - Hex(rows, cols):         6-neighbour lattice, odd columns offset down.
//   - Triangle(rows, cols):    alternating up/down triangles, degree ≤ 3.
//   - Masked(rows, cols, mask): orthogonal lattice restricted to enabled
//     positions; the region must be connected.
//   - Circular(rings, scaleFactor, halveFactor): concentric rings around a
//     centre cell, cell count doubling every halveFactor rings.
//
// Grid-shaped results are *Grid (Shape, Rows, Columns, CellAt, Position,
// Orthogonal); circular results are *Circle (Rings, Ring, Polar). Both embed
// *core.Maze and therefore satisfy core.Graph, and both expose
// StartCandidates/FinishCandidates for endpoint placement:
//
//   - grids start in the leftmost occupied column and finish on the outer
//     boundary (left, right, top, bottom; deduplicated);
//   - circles start at the centre and finish on the outermost ring.
//
// Helpers:
//
//   - ParseMask / FormatMask convert between mask art ("X.X") and []bool.
//   - OverlapRange / Overlaps expose the integer ring-overlap test.
//
// Errors:
//
//   - ErrBadDimension     non-positive rows, cols, rings or factors.
//   - ErrTooLarge         more than MaxCells positions.
//   - ErrMaskSize         len(mask) != rows*cols.
//   - ErrEmptyMask        mask enables nothing.
//   - ErrDisconnectedMask enabled positions are not one region.
//   - ErrMaskSyntax       ragged or unknown mask art.
//
// Determinism: cell ids and wall insertion order depend only on the shape
// parameters. No randomness is involved in building.
package builder
