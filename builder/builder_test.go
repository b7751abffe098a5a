package builder_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvmaze/bfs"
	"github.com/katalvlaran/lvmaze/builder"
	"github.com/katalvlaran/lvmaze/core"
)

// mustCell fetches (r,c) or fails.
func mustCell(t *testing.T, g *builder.Grid, r, c int) core.CellID {
	t.Helper()
	id, ok := g.CellAt(r, c)
	require.True(t, ok, "no cell at (%d,%d)", r, c)

	return id
}

// linked reports whether (r1,c1) and (r2,c2) share a wall.
func linked(t *testing.T, g *builder.Grid, r1, c1, r2, c2 int) bool {
	t.Helper()
	_, ok := g.WallBetween(mustCell(t, g, r1, c1), mustCell(t, g, r2, c2))

	return ok
}

func TestDimensions_Rejected(t *testing.T) {
	cases := []struct {
		name string
		fn   func() error
	}{
		{"rect rows", func() error { _, err := builder.Rectangular(0, 3); return err }},
		{"rect cols", func() error { _, err := builder.Rectangular(3, -1); return err }},
		{"hex", func() error { _, err := builder.Hex(0, 0); return err }},
		{"triangle", func() error { _, err := builder.Triangle(2, 0); return err }},
		{"masked", func() error { _, err := builder.Masked(0, 2, nil); return err }},
		{"circ rings", func() error { _, err := builder.Circular(0, 6, 2); return err }},
		{"circ scale", func() error { _, err := builder.Circular(3, 0, 2); return err }},
		{"circ halve", func() error { _, err := builder.Circular(3, 6, 0); return err }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.ErrorIs(t, tc.fn(), builder.ErrBadDimension)
		})
	}
}

func TestDimensions_TooLarge(t *testing.T) {
	huge := builder.MaxCells/2 + 1
	cases := []struct {
		name string
		fn   func() error
	}{
		{"rect", func() error { _, err := builder.Rectangular(huge, 2); return err }},
		{"hex", func() error { _, err := builder.Hex(2, huge); return err }},
		{"triangle", func() error { _, err := builder.Triangle(1<<30, 1<<30); return err }},
		{"masked wraps", func() error { _, err := builder.Masked(1<<30, 1<<30, []bool{true}); return err }},
		{"grid cells", func() error { _, err := builder.GridCells(builder.MaxCells, 2); return err }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.ErrorIs(t, tc.fn(), builder.ErrTooLarge)
		})
	}

	n, err := builder.GridCells(builder.MaxCells, 1)
	require.NoError(t, err)
	assert.Equal(t, builder.MaxCells, n)
}

func TestRectangular_Structure(t *testing.T) {
	g, err := builder.Rectangular(3, 4)
	require.NoError(t, err)

	assert.Equal(t, builder.ShapeRectangular, g.Shape())
	assert.True(t, g.Orthogonal())
	assert.Equal(t, 12, g.CellCount())
	// horizontal 3*(4-1) + vertical (3-1)*4
	assert.Equal(t, 17, g.WallCount())
	assert.Equal(t, 0, g.PassableCount())

	assert.True(t, linked(t, g, 1, 1, 0, 1))
	assert.True(t, linked(t, g, 1, 1, 1, 0))
	assert.False(t, linked(t, g, 1, 1, 0, 0))

	// corner (0,0) has exactly its east and south neighbours
	corner := mustCell(t, g, 0, 0)
	assert.Equal(t, 2, g.Degree(corner))
	assert.Equal(t, 4, g.Degree(mustCell(t, g, 1, 1)))

	r, c, ok := g.Position(core.CellID(7))
	require.True(t, ok)
	assert.Equal(t, [2]int{1, 3}, [2]int{r, c})
	_, _, ok = g.Position(99)
	assert.False(t, ok)

	assert.NoError(t, bfs.Connected(g))
}

func TestRectangular_SingleCell(t *testing.T) {
	g, err := builder.Rectangular(1, 1)
	require.NoError(t, err)
	assert.Equal(t, 1, g.CellCount())
	assert.Equal(t, 0, g.WallCount())
	assert.Equal(t, []core.CellID{0}, g.StartCandidates())
	assert.Equal(t, []core.CellID{0}, g.FinishCandidates())
}

func TestHex_Neighbourhood(t *testing.T) {
	g, err := builder.Hex(4, 4)
	require.NoError(t, err)
	assert.False(t, g.Orthogonal())

	// interior odd column (1,1): N(0,1) S(2,1) NW(1,0) NE(1,2) SW(2,0) SE(2,2)
	center := mustCell(t, g, 1, 1)
	assert.Equal(t, 6, g.Degree(center))
	for _, p := range [][2]int{{0, 1}, {2, 1}, {1, 0}, {1, 2}, {2, 0}, {2, 2}} {
		assert.True(t, linked(t, g, 1, 1, p[0], p[1]), "missing (1,1)-(%d,%d)", p[0], p[1])
	}

	// interior even column (2,2): N(1,2) S(3,2) NW(1,1) NE(1,3) SW(2,1) SE(2,3)
	assert.Equal(t, 6, g.Degree(mustCell(t, g, 2, 2)))
	for _, p := range [][2]int{{1, 2}, {3, 2}, {1, 1}, {1, 3}, {2, 1}, {2, 3}} {
		assert.True(t, linked(t, g, 2, 2, p[0], p[1]), "missing (2,2)-(%d,%d)", p[0], p[1])
	}

	for _, c := range g.Cells() {
		assert.LessOrEqual(t, g.Degree(c), 6)
	}
	assert.NoError(t, bfs.Connected(g))
}

func TestTriangle_Orientation(t *testing.T) {
	g, err := builder.Triangle(3, 5)
	require.NoError(t, err)

	assert.True(t, g.PointsUp(0, 0))
	assert.False(t, g.PointsUp(0, 1))
	assert.False(t, g.PointsUp(1, 0))
	assert.True(t, g.PointsUp(1, 1))

	// (1,0) points down: linked to (0,0) above
	assert.True(t, linked(t, g, 1, 0, 0, 0))
	// (1,1) points up: not linked to (0,1) above
	assert.False(t, linked(t, g, 1, 1, 0, 1))

	for _, c := range g.Cells() {
		assert.LessOrEqual(t, g.Degree(c), 3)
	}
	assert.Equal(t, 3, g.Degree(mustCell(t, g, 1, 2)))
	assert.NoError(t, bfs.Connected(g))
}

func TestMasked_Build(t *testing.T) {
	mask, rows, cols, err := builder.ParseMask([]string{
		"XXX",
		"X.X",
		"XXX",
	})
	require.NoError(t, err)

	g, err := builder.Masked(rows, cols, mask)
	require.NoError(t, err)
	assert.Equal(t, builder.ShapeMasked, g.Shape())
	assert.False(t, g.Orthogonal())
	assert.Equal(t, 8, g.CellCount())
	assert.Equal(t, 8, g.WallCount())

	_, ok := g.CellAt(1, 1)
	assert.False(t, ok)

	// ids skip the hole: (2,0) is the sixth allocated cell
	assert.Equal(t, core.CellID(5), mustCell(t, g, 2, 0))
}

func TestMasked_Errors(t *testing.T) {
	_, err := builder.Masked(2, 2, []bool{true})
	assert.ErrorIs(t, err, builder.ErrMaskSize)

	_, err = builder.Masked(2, 2, make([]bool, 4))
	assert.ErrorIs(t, err, builder.ErrEmptyMask)

	// only the four corners of a 3×3
	corners := []bool{
		true, false, true,
		false, false, false,
		true, false, true,
	}
	_, err = builder.Masked(3, 3, corners)
	assert.ErrorIs(t, err, builder.ErrDisconnectedMask)
	assert.ErrorIs(t, err, bfs.ErrDisconnected)
	assert.Contains(t, err.Error(), "3 unreachable")
}

func TestParseMask(t *testing.T) {
	mask, rows, cols, err := builder.ParseMask([]string{"x. ", "XXX"})
	require.NoError(t, err)
	assert.Equal(t, 2, rows)
	assert.Equal(t, 3, cols)
	assert.Equal(t, []bool{true, false, false, true, true, true}, mask)
	assert.Equal(t, []string{"X..", "XXX"}, builder.FormatMask(mask, cols))

	_, _, _, err = builder.ParseMask(nil)
	assert.ErrorIs(t, err, builder.ErrBadDimension)
	_, _, _, err = builder.ParseMask([]string{"XX", "X"})
	assert.ErrorIs(t, err, builder.ErrMaskSyntax)
	_, _, _, err = builder.ParseMask([]string{"X#"})
	assert.ErrorIs(t, err, builder.ErrMaskSyntax)
}

func TestGridCandidates(t *testing.T) {
	g, err := builder.Rectangular(3, 3)
	require.NoError(t, err)
	assert.Equal(t, []core.CellID{0, 3, 6}, g.StartCandidates())
	// left, right, top (new: 1), bottom (new: 7)
	assert.Equal(t, []core.CellID{0, 3, 6, 2, 5, 8, 1, 7}, g.FinishCandidates())

	// leftmost occupied column is column 1
	mask, rows, cols, err := builder.ParseMask([]string{
		".XX",
		".X.",
	})
	require.NoError(t, err)
	m, err := builder.Masked(rows, cols, mask)
	require.NoError(t, err)
	assert.Equal(t, []core.CellID{0, 2}, m.StartCandidates())
	assert.ElementsMatch(t, []core.CellID{0, 1, 2}, m.FinishCandidates())
}
