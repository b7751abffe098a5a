package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zclconf/go-cty/cty"

	"github.com/katalvlaran/lvmaze/builder"
	"github.com/katalvlaran/lvmaze/carve"
	"github.com/katalvlaran/lvmaze/config"
	"github.com/katalvlaran/lvmaze/maze"
)

const playground = `
maze "lobby" {
  topology  = "rectangular"
  rows      = 10
  columns   = var.width
  algorithm = "wilson"
  seed      = 42
}

maze "donut" {
  topology  = "masked"
  mask      = ["XXX", "X.X", "XXX"]
  algorithm = "recursive_backtracker"
}

maze "target" {
  topology  = "circular"
  rings     = 6
  algorithm = "Hunt And Kill"
}
`

func TestParse_Playground(t *testing.T) {
	got, err := config.Parse([]byte(playground), "playground.hcl", map[string]cty.Value{
		"width": cty.NumberIntVal(20),
	})
	require.NoError(t, err)

	want := []config.Entry{
		{
			Name: "lobby",
			Definition: maze.Definition{
				Topology: maze.Rectangular, Rows: 10, Columns: 20, Algorithm: carve.Wilson,
			},
			Seed: 42,
		},
		{
			Name: "donut",
			Definition: maze.Definition{
				Topology: maze.Masked, Rows: 3, Columns: 3, Algorithm: carve.RecursiveBackTracker,
				Mask: []bool{true, true, true, true, false, true, true, true, true},
			},
		},
		{
			Name: "target",
			Definition: maze.Definition{
				Topology: maze.Circular, Rings: 6, Algorithm: carve.HuntAndKill,
				ScaleFactor: config.DefaultScaleFactor, HalveFactor: config.DefaultHalveFactor,
			},
		},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Parse() mismatch (-want +got):\n%s", diff)
	}
}

func TestParse_GridDefaults(t *testing.T) {
	got, err := config.Parse([]byte(`
maze "plain" {
  topology  = "hex"
  algorithm = "aldous-broder"
}
`), "plain.hcl", nil)
	require.NoError(t, err)
	require.Len(t, got, 1)

	want := maze.Definition{
		Topology: maze.Hex, Rows: config.DefaultRows, Columns: config.DefaultColumns, Algorithm: carve.AldousBroder,
	}
	if diff := cmp.Diff(want, got[0].Definition); diff != "" {
		t.Errorf("Definition mismatch (-want +got):\n%s", diff)
	}
	assert.Zero(t, got[0].Seed)
}

func TestParse_Empty(t *testing.T) {
	got, err := config.Parse(nil, "empty.hcl", nil)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestParse_Errors(t *testing.T) {
	cases := []struct {
		name string
		src  string
		want []error
	}{
		{"syntax", `maze "x" {`, []error{config.ErrDecode}},
		{"missing algorithm", `maze "x" { topology = "hex" }`, []error{config.ErrDecode}},
		{"unknown attribute", `maze "x" {
  topology  = "hex"
  algorithm = "wilson"
  colour    = "red"
}`, []error{config.ErrDecode}},
		{"undefined variable", `maze "x" {
  topology  = "hex"
  algorithm = "wilson"
  rows      = var.missing
}`, []error{config.ErrDecode}},
		{"unknown topology", `maze "x" {
  topology  = "spiral"
  algorithm = "wilson"
}`, []error{config.ErrInvalidEntry, maze.ErrUnknownTopology}},
		{"unknown algorithm", `maze "x" {
  topology  = "hex"
  algorithm = "prim"
}`, []error{config.ErrInvalidEntry, carve.ErrUnknownAlgorithm}},
		{"duplicate", `maze "x" {
  topology  = "hex"
  algorithm = "wilson"
}
maze "x" {
  topology  = "triangle"
  algorithm = "wilson"
}`, []error{config.ErrDuplicateName}},
		{"mask on grid", `maze "x" {
  topology  = "rectangular"
  algorithm = "wilson"
  mask      = ["XX"]
}`, []error{config.ErrInvalidEntry}},
		{"rings on grid", `maze "x" {
  topology  = "triangle"
  algorithm = "wilson"
  rings     = 3
}`, []error{config.ErrInvalidEntry}},
		{"rows on circle", `maze "x" {
  topology  = "circular"
  algorithm = "wilson"
  rows      = 3
}`, []error{config.ErrInvalidEntry}},
		{"masked without mask", `maze "x" {
  topology  = "masked"
  algorithm = "wilson"
}`, []error{config.ErrInvalidEntry}},
		{"bad mask rune", `maze "x" {
  topology  = "masked"
  algorithm = "wilson"
  mask      = ["X#"]
}`, []error{config.ErrInvalidEntry, builder.ErrMaskSyntax}},
		{"mask size disagrees", `maze "x" {
  topology  = "masked"
  algorithm = "wilson"
  rows      = 4
  mask      = ["XX", "XX"]
}`, []error{config.ErrInvalidEntry}},
		{"rings overflow", `maze "x" {
  topology     = "circular"
  algorithm    = "wilson"
  rings        = 70
  halve_factor = 1
}`, []error{config.ErrInvalidEntry, builder.ErrTooLarge}},
		{"lattice only", `maze "x" {
  topology  = "hex"
  algorithm = "binary_tree"
}`, []error{config.ErrInvalidEntry, carve.ErrUnsupportedTopology}},
		{"zero rows", `maze "x" {
  topology  = "rectangular"
  algorithm = "sidewinder"
  rows      = 0
}`, []error{config.ErrInvalidEntry, builder.ErrBadDimension}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := config.Parse([]byte(tc.src), "bad.hcl", nil)
			assert.Nil(t, got)
			require.Error(t, err)
			for _, want := range tc.want {
				assert.ErrorIs(t, err, want)
			}
		})
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mazes.hcl")
	require.NoError(t, os.WriteFile(path, []byte(playground), 0o600))

	got, err := config.Load(path, map[string]cty.Value{"width": cty.NumberIntVal(5)})
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, 5, got[0].Definition.Columns)

	_, err = config.Load(filepath.Join(t.TempDir(), "absent.hcl"), nil)
	assert.ErrorIs(t, err, config.ErrDecode)
}

func TestEntry_Build(t *testing.T) {
	entries, err := config.Parse([]byte(playground), "playground.hcl", map[string]cty.Value{
		"width": cty.NumberIntVal(6),
	})
	require.NoError(t, err)

	for _, e := range entries {
		t.Run(e.Name, func(t *testing.T) {
			m, err := e.Build(maze.WithSeed(3))
			require.NoError(t, err)
			assert.Equal(t, m.Graph().CellCount()-1, countOpen(m))
		})
	}

	lobby := entries[0]
	a, err := lobby.Build()
	require.NoError(t, err)
	b, err := lobby.Build()
	require.NoError(t, err)
	assert.Equal(t, a.Start(), b.Start())
	assert.Equal(t, a.Finish(), b.Finish())
}

func TestEntry_BuildDisconnectedMask(t *testing.T) {
	entries, err := config.Parse([]byte(`maze "split" {
  topology  = "masked"
  algorithm = "wilson"
  mask      = ["X.X"]
}`), "split.hcl", nil)
	require.NoError(t, err)

	_, err = entries[0].Build()
	assert.ErrorIs(t, err, builder.ErrDisconnectedMask)
	assert.Contains(t, err.Error(), `Build "split"`)
}

// countOpen counts passable walls once each.
func countOpen(m *maze.Maze) int {
	n := 0
	for _, c := range m.Cells() {
		for _, l := range m.Walls(c) {
			if l.Passable && c < l.Neighbor {
				n++
			}
		}
	}

	return n
}
