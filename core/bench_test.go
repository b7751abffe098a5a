package core_test

import (
	"testing"

	"github.com/katalvlaran/lvmaze/core"
)

// BenchmarkLink measures building a 100×100 lattice wall by wall.
func BenchmarkLink(b *testing.B) {
	const side = 100
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		m := core.NewMaze(side * side)
		for c := 0; c < side*side; c++ {
			m.AddCell()
		}
		for r := 0; r < side; r++ {
			for c := 0; c < side; c++ {
				id := core.CellID(r*side + c)
				if r > 0 {
					_, _ = m.Link(id, id-side)
				}
				if c > 0 {
					_, _ = m.Link(id, id-1)
				}
			}
		}
	}
}
