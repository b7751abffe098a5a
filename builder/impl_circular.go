// SPDX-License-Identifier: MIT
// Package: lvmaze/builder
//
// impl_circular.go: implementation of Circular(rings, scaleFactor, halveFactor).
//
// Canonical model:
//   • Ring 0 is a single centre cell.
//   • Ring r > 0 holds 2^(r/halveFactor) * scaleFactor cells (integer r/h),
//     each spanning 360/size degrees, index 0 starting at 0°.
//   • Cell i of an n-cell ring covers the fraction [i/n, (i+1)/n). Cells of
//     adjacent rings are linked when their open spans intersect:
//         i*m < (j+1)*n  &&  j*n < (i+1)*m
//     evaluated in integers, so no floating point decides adjacency.
//   • Built ring by ring outward. Each non-centre cell links inward, then to
//     its clockwise ring neighbour, then outward; LinkIfAbsent keeps one wall
//     per pair (a 2-cell ring gets a single lateral wall).
//
// Complexity:
//   • Time: O(C + W) where W ≤ C * (degree bound of the ring ratio).

package builder

import (
	"fmt"
	"math/bits"

	"github.com/katalvlaran/lvmaze/core"
)

// Polar is the position of a cell in a circular maze.
type Polar struct {
	Ring        int
	Index       int
	StartDegree float64
	EndDegree   float64
}

// Circle is a concentric-ring topology.
type Circle struct {
	*core.Maze

	scale int
	halve int
	rings [][]core.CellID
	polar []Polar
}

// RingSize returns the number of cells of ring r for the given factors.
// Ring 0 always has one cell. It returns 0 for parameters below 1 and for
// rings that would hold more than MaxCells cells.
func RingSize(r, scaleFactor, halveFactor int) int {
	if r < 0 || scaleFactor < minDim || halveFactor < minDim {
		return 0
	}
	if r == 0 {
		return 1
	}
	shift := r / halveFactor
	if shift >= bits.UintSize-2 || 1<<shift > MaxCells/scaleFactor {
		return 0
	}

	return (1 << shift) * scaleFactor
}

// Circular builds a concentric-ring maze with every wall closed.
//
// Errors: ErrBadDimension if any parameter is < 1, ErrTooLarge if the rings
// hold more than MaxCells cells.
func Circular(rings, scaleFactor, halveFactor int) (*Circle, error) {
	total, err := CircularCells(rings, scaleFactor, halveFactor)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", MethodCircular, err)
	}

	g := &Circle{
		Maze:  core.NewMaze(total),
		scale: scaleFactor,
		halve: halveFactor,
		rings: make([][]core.CellID, rings),
		polar: make([]Polar, 0, total),
	}

	// 1) Allocate every cell ring by ring with its angular span.
	for r := 0; r < rings; r++ {
		n := RingSize(r, scaleFactor, halveFactor)
		step := FullCircle / float64(n)
		g.rings[r] = make([]core.CellID, n)
		for i := 0; i < n; i++ {
			g.rings[r][i] = g.AddCell()
			g.polar = append(g.polar, Polar{
				Ring:        r,
				Index:       i,
				StartDegree: float64(i) * step,
				EndDegree:   float64(i+1) * step,
			})
		}
	}

	// 2) Link inward, lateral, outward for every non-centre cell.
	for r := 1; r < rings; r++ {
		n := len(g.rings[r])
		for i := 0; i < n; i++ {
			if err := g.linkAcross(r, i, r-1); err != nil {
				return nil, err
			}
			if n > 1 {
				if err := g.link(g.rings[r][i], g.rings[r][(i+1)%n]); err != nil {
					return nil, err
				}
			}
			if r+1 < rings {
				if err := g.linkAcross(r, i, r+1); err != nil {
					return nil, err
				}
			}
		}
	}

	return g, nil
}

// linkAcross joins cell i of ring from with every overlapping cell of ring to.
func (g *Circle) linkAcross(from, i, to int) error {
	n, m := len(g.rings[from]), len(g.rings[to])
	lo, hi := OverlapRange(i, n, m)
	for j := lo; j <= hi; j++ {
		if err := g.link(g.rings[from][i], g.rings[to][j]); err != nil {
			return err
		}
	}

	return nil
}

func (g *Circle) link(a, b core.CellID) error {
	if _, _, err := g.LinkIfAbsent(a, b); err != nil {
		return fmt.Errorf("%s: link %d-%d: %w", MethodCircular, a, b, err)
	}

	return nil
}

// OverlapRange returns the inclusive index range [lo, hi] of the cells of an
// m-cell ring whose spans intersect cell i of an n-cell ring.
func OverlapRange(i, n, m int) (lo, hi int) {
	return i * m / n, ((i+1)*m - 1) / n
}

// Overlaps reports whether cell i of an n-cell ring and cell j of an m-cell
// ring share angular extent.
func Overlaps(i, n, j, m int) bool {
	return i*m < (j+1)*n && j*n < (i+1)*m
}

// Rings returns the number of rings, centre included.
func (g *Circle) Rings() int { return len(g.rings) }

// ScaleFactor returns the cell count multiplier of ring 1.
func (g *Circle) ScaleFactor() int { return g.scale }

// HalveFactor returns how many rings share a cell count before it doubles.
func (g *Circle) HalveFactor() int { return g.halve }

// Ring returns a copy of the cells of ring r in clockwise order, or nil if r
// is out of range.
func (g *Circle) Ring(r int) []core.CellID {
	if r < 0 || r >= len(g.rings) {
		return nil
	}
	out := make([]core.CellID, len(g.rings[r]))
	copy(out, g.rings[r])

	return out
}

// Polar returns the ring position of c.
func (g *Circle) Polar(c core.CellID) (Polar, bool) {
	if c < 0 || int(c) >= len(g.polar) {
		return Polar{}, false
	}

	return g.polar[c], true
}

// Centre returns the ring 0 cell.
func (g *Circle) Centre() core.CellID {
	return g.rings[0][0]
}

// StartCandidates returns the centre cell.
func (g *Circle) StartCandidates() []core.CellID {
	return []core.CellID{g.Centre()}
}

// FinishCandidates returns the cells of the outermost ring.
func (g *Circle) FinishCandidates() []core.CellID {
	return g.Ring(len(g.rings) - 1)
}
