package core_test

import (
	"fmt"

	"github.com/katalvlaran/lvmaze/core"
)

// ExampleMaze_OpenWall builds two cells, links them and opens the wall.
func ExampleMaze_OpenWall() {
	m := core.NewMaze(2)
	a, b := m.AddCell(), m.AddCell()
	w, _ := m.Link(a, b)

	fmt.Println(m.Walls(a)[0].Passable)
	_ = m.OpenWall(w)
	fmt.Println(m.Walls(b)[0].Passable, m.PassableCount())
	// Output:
	// false
	// true 1
}
