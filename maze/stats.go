package maze

import (
	"fmt"
	"strconv"
)

// Stat is one labelled summary value.
type Stat struct {
	Key   string
	Value string
}

// Stats returns the summary shown alongside a maze, in display order:
// Maze ID, Maze Type, Algorithm, Rows and Columns (or Rings), Total Cells,
// Dead Ends and Generation Time.
//
// Dead Ends is "n (p%)" where p is the truncated percentage of all cells.
func (m *Maze) Stats() []Stat {
	total := m.shape.CellCount()
	dead := m.shape.DeadEnds()

	out := []Stat{
		{Key: "Maze ID", Value: m.id.String()},
		{Key: "Maze Type", Value: m.def.Topology.String() + " Maze"},
		{Key: "Algorithm", Value: m.def.Algorithm.String()},
	}
	if m.circle != nil {
		out = append(out, Stat{Key: "Rings", Value: strconv.Itoa(m.circle.Rings())})
	} else {
		out = append(out,
			Stat{Key: "Rows", Value: strconv.Itoa(m.grid.Rows())},
			Stat{Key: "Columns", Value: strconv.Itoa(m.grid.Columns())},
		)
	}

	return append(out,
		Stat{Key: "Total Cells", Value: strconv.Itoa(total)},
		Stat{Key: "Dead Ends", Value: fmt.Sprintf("%d (%d%%)", dead, dead*100/total)},
		Stat{Key: "Generation Time", Value: m.elapsed.String()},
	)
}

// StatsMap returns Stats keyed by label.
func (m *Maze) StatsMap() map[string]string {
	stats := m.Stats()
	out := make(map[string]string, len(stats))
	for _, s := range stats {
		out[s.Key] = s.Value
	}

	return out
}
