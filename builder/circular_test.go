package builder_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvmaze/bfs"
	"github.com/katalvlaran/lvmaze/builder"
	"github.com/katalvlaran/lvmaze/core"
)

func TestRingSize(t *testing.T) {
	// scale 6, halve 2: 1, 6, 12, 12, 24, 24
	want := []int{1, 6, 12, 12, 24, 24}
	for r, n := range want {
		assert.Equal(t, n, builder.RingSize(r, 6, 2), "ring %d", r)
	}
}

func TestRingSize_Limits(t *testing.T) {
	assert.Zero(t, builder.RingSize(63, 6, 1))
	assert.Zero(t, builder.RingSize(64, 6, 1))
	assert.Zero(t, builder.RingSize(-1, 6, 1))
	assert.Zero(t, builder.RingSize(3, 0, 1))
	assert.Equal(t, 1<<20*6, builder.RingSize(20, 6, 1))
}

func TestCircular_TooLarge(t *testing.T) {
	cases := []struct {
		name                string
		rings, scale, halve int
	}{
		{"shift overflow", 70, 6, 1},
		{"huge scale", 3, builder.MaxCells, 1},
		{"many rings", builder.MaxCells + 1, 1, builder.MaxCells},
		{"sum over limit", 25, 6, 1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g, err := builder.Circular(tc.rings, tc.scale, tc.halve)
			assert.Nil(t, g)
			assert.ErrorIs(t, err, builder.ErrTooLarge)

			_, err = builder.CircularCells(tc.rings, tc.scale, tc.halve)
			assert.ErrorIs(t, err, builder.ErrTooLarge)
		})
	}
}

func TestCircularCells(t *testing.T) {
	n, err := builder.CircularCells(4, 6, 2)
	require.NoError(t, err)
	assert.Equal(t, 1+6+12+12, n)

	_, err = builder.CircularCells(0, 6, 2)
	assert.ErrorIs(t, err, builder.ErrBadDimension)
}

func TestCircular_Structure(t *testing.T) {
	g, err := builder.Circular(4, 6, 2)
	require.NoError(t, err)

	assert.Equal(t, 4, g.Rings())
	assert.Equal(t, 1+6+12+12, g.CellCount())
	assert.NoError(t, bfs.Connected(g))

	centre := g.Centre()
	assert.Equal(t, g.Ring(1), neighbours(g, centre))
	assert.Equal(t, []core.CellID{centre}, g.StartCandidates())
	assert.Equal(t, g.Ring(3), g.FinishCandidates())
	assert.Nil(t, g.Ring(4))

	// every adjacent pair is linked exactly when spans overlap
	for r := 1; r < g.Rings(); r++ {
		inner, outer := g.Ring(r-1), g.Ring(r)
		for j, b := range outer {
			for i, a := range inner {
				_, ok := g.WallBetween(a, b)
				assert.Equal(t, builder.Overlaps(i, len(inner), j, len(outer)), ok,
					"ring %d cell %d vs ring %d cell %d", r-1, i, r, j)
			}
		}
	}

	// lateral neighbours within a ring
	ring2 := g.Ring(2)
	_, ok := g.WallBetween(ring2[11], ring2[0])
	assert.True(t, ok)
}

func TestCircular_Polar(t *testing.T) {
	g, err := builder.Circular(3, 4, 1)
	require.NoError(t, err)

	// ring 2 has 2^2*4 = 16 cells of 22.5°
	ring := g.Ring(2)
	require.Len(t, ring, 16)
	p, ok := g.Polar(ring[3])
	require.True(t, ok)
	assert.Equal(t, builder.Polar{Ring: 2, Index: 3, StartDegree: 67.5, EndDegree: 90}, p)

	c, ok := g.Polar(g.Centre())
	require.True(t, ok)
	assert.Equal(t, 0, c.Ring)
	assert.Equal(t, 360.0, c.EndDegree)

	_, ok = g.Polar(-1)
	assert.False(t, ok)
}

func TestCircular_TwoCellRing(t *testing.T) {
	g, err := builder.Circular(2, 2, 5)
	require.NoError(t, err)
	// centre + 2 cells; one lateral wall, two spokes
	assert.Equal(t, 3, g.CellCount())
	assert.Equal(t, 3, g.WallCount())
}

func TestCircular_SingleRing(t *testing.T) {
	g, err := builder.Circular(1, 6, 2)
	require.NoError(t, err)
	assert.Equal(t, 1, g.CellCount())
	assert.Equal(t, g.StartCandidates(), g.FinishCandidates())
}

func TestOverlapRange_MatchesOverlaps(t *testing.T) {
	sizes := []int{1, 2, 3, 6, 7, 12, 24}
	for _, n := range sizes {
		for _, m := range sizes {
			for i := 0; i < n; i++ {
				lo, hi := builder.OverlapRange(i, n, m)
				for j := 0; j < m; j++ {
					want := builder.Overlaps(i, n, j, m)
					assert.Equal(t, want, j >= lo && j <= hi, "n=%d m=%d i=%d j=%d", n, m, i, j)
				}
			}
		}
	}
}

func neighbours(g *builder.Circle, c core.CellID) []core.CellID {
	var out []core.CellID
	for _, l := range g.Walls(c) {
		out = append(out, l.Neighbor)
	}

	return out
}
