// SPDX-License-Identifier: MIT

// Package maze ties the topology builders, carvers and solvers together:
// describe a maze with a Definition, call New, then read, solve and
// summarise the result.
//
// Generation
//
//	New validates the Definition, builds the uncarved topology (package
//	builder), runs the chosen carver (package carve), verifies the result is
//	a perfect maze and places the endpoints:
//
//	  - Start: a uniformly random start candidate. For grids these are the
//	    cells of the leftmost occupied column; for circular mazes the centre.
//	  - Finish: the first finish candidate at the greatest distance from
//	    Start. Grids offer their boundary cells (left, right, top, bottom,
//	    deduplicated); circular mazes their outer ring.
//
// Randomness
//
//	Every random decision draws from one carve.Rand. WithSeed makes a run
//	reproducible; WithRand injects any source, including carve.Sequence for
//	scripted tests. Without either, the source is time-seeded.
//
// Logging
//
//	New logs through a logrus.FieldLogger (WithLogger). Successful runs are
//	logged at debug level with maze_id, topology, algorithm, cells,
//	dead_ends and elapsed fields; failures at warn level with the error.
//	The default logger discards everything.
//
// Usage
//
//	m, err := maze.New(maze.Definition{
//	    Topology:  maze.Rectangular,
//	    Rows:      10,
//	    Columns:   10,
//	    Algorithm: carve.Wilson,
//	}, maze.WithSeed(7))
//	if err != nil {
//	    // builder.ErrBadDimension, carve.ErrUnsupportedTopology, ...
//	}
//	path, _ := m.Solve()
//	for _, s := range m.Stats() {
//	    fmt.Println(s.Key+":", s.Value)
//	}
package maze
