package maze_test

import (
	"fmt"

	"github.com/katalvlaran/lvmaze/builder"
	"github.com/katalvlaran/lvmaze/carve"
	"github.com/katalvlaran/lvmaze/maze"
)

// ExampleNew generates a seeded Wilson maze and solves it.
func ExampleNew() {
	m, err := maze.New(maze.Definition{
		Topology:  maze.Rectangular,
		Rows:      8,
		Columns:   8,
		Algorithm: carve.Wilson,
	}, maze.WithSeed(7))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	path, _ := m.Solve()
	fmt.Println(m.Graph().CellCount(), path.Path[0] == m.Start(), path.Contains(m.Finish()))
	// Output:
	// 64 true true
}

// ExampleNew_rejected shows a carver refusing a non-orthogonal layout.
func ExampleNew_rejected() {
	_, err := maze.New(maze.Definition{
		Topology:  maze.Triangle,
		Rows:      3,
		Columns:   3,
		Algorithm: carve.Sidewinder,
	})
	fmt.Println(err)
	// Output:
	// New: Validate: Sidewinder on Triangle: carve: algorithm unsupported for this topology
}

// ExampleMaze_Stats prints the summary of a fixed corridor.
func ExampleMaze_Stats() {
	m, _ := maze.New(maze.Definition{
		Topology:  maze.Rectangular,
		Rows:      1,
		Columns:   5,
		Algorithm: carve.Sidewinder,
	}, maze.WithSeed(1))
	for _, s := range m.Stats()[1:6] {
		fmt.Printf("%s: %s\n", s.Key, s.Value)
	}
	// Output:
	// Maze Type: Rectangular Maze
	// Algorithm: Sidewinder
	// Rows: 1
	// Columns: 5
	// Total Cells: 5
}

// ExampleMaze_Polar reads ring coordinates from a circular maze.
func ExampleMaze_Polar() {
	def := maze.Definition{Topology: maze.Circular, Rings: 3, ScaleFactor: 6, HalveFactor: 2, Algorithm: carve.HuntAndKill}
	m, _ := maze.New(def, maze.WithSeed(2))
	p, _ := m.Polar(m.Start())
	fmt.Println(p.Ring, p.StartDegree, p.EndDegree, builder.FullCircle)
	// Output:
	// 0 0 360 360
}
