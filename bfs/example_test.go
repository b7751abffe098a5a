package bfs_test

import (
	"fmt"

	"github.com/katalvlaran/lvmaze/bfs"
	"github.com/katalvlaran/lvmaze/core"
)

// ExampleDistances carves an L-shaped corridor by hand and measures it.
//
//	0 - 1 - 2
//	        |
//	        3
func ExampleDistances() {
	m := core.NewMaze(4)
	for i := 0; i < 4; i++ {
		m.AddCell()
	}
	for _, p := range [][2]core.CellID{{0, 1}, {1, 2}, {2, 3}} {
		w, _ := m.Link(p[0], p[1])
		_ = m.OpenWall(w)
	}

	info, err := bfs.Distances(m, 0)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(info.Order, info.Farthest, info.MaxDistance)
	// Output:
	// [0 1 2 3] 3 3
}

// ExampleShortestPath descends the distance field from a finish cell.
func ExampleShortestPath() {
	m := core.NewMaze(5)
	for i := 0; i < 5; i++ {
		m.AddCell()
	}
	// a fork: 0-1-2 and 1-3-4; only the open walls count
	for _, p := range [][2]core.CellID{{0, 1}, {1, 2}, {1, 3}, {3, 4}} {
		w, _ := m.Link(p[0], p[1])
		_ = m.OpenWall(w)
	}
	_, _ = m.Link(2, 4) // closed

	info, _ := bfs.Distances(m, 0)
	path, err := bfs.ShortestPath(m, 4, info)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(path.Path, path.Len(), path.Contains(2))
	// Output:
	// [0 1 3 4] 4 false
}

// ExampleConnected validates a topology before any wall is opened.
func ExampleConnected() {
	m := core.NewMaze(3)
	a, b, _ := m.AddCell(), m.AddCell(), m.AddCell()
	_, _ = m.Link(a, b)

	fmt.Println(bfs.Connected(m))
	// Output:
	// Connected: reached 2 of 3 cells (1 unreachable): bfs: graph is not connected
}
