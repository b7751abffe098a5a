package maze_test

import (
	"testing"

	"github.com/katalvlaran/lvmaze/carve"
	"github.com/katalvlaran/lvmaze/maze"
)

func BenchmarkNew(b *testing.B) {
	defs := map[string]maze.Definition{
		"rect/wilson":     {Topology: maze.Rectangular, Rows: 40, Columns: 40, Algorithm: carve.Wilson},
		"hex/backtrack":   {Topology: maze.Hex, Rows: 40, Columns: 40, Algorithm: carve.RecursiveBackTracker},
		"circle/hunt":     {Topology: maze.Circular, Rings: 12, ScaleFactor: 6, HalveFactor: 2, Algorithm: carve.HuntAndKill},
		"rect/sidewinder": {Topology: maze.Rectangular, Rows: 40, Columns: 40, Algorithm: carve.Sidewinder},
	}
	for name, def := range defs {
		b.Run(name, func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				if _, err := maze.New(def, maze.WithSeed(int64(i+1))); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
