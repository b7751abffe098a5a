// Package lvmaze is an in-memory maze playground: build a cell graph in one
// of five layouts, carve it into a perfect maze with one of six classic
// algorithms, then measure and solve it.
//
// 🚀 What is lvmaze?
//
//	A small, dependency-light library that brings together:
//		• Cell graphs: cells joined by shared walls that open exactly once
//		• Layouts: rectangular, hexagonal, triangular, masked and circular
//		• Carvers: Aldous-Broder, Binary Tree, Hunt and Kill,
//		  Recursive Back Tracker, Sidewinder, Wilson
//		• Solvers: BFS distance maps and shortest-path descent
//		• Stats: dead ends, cell counts, generation time
//		• HCL definitions: describe mazes in files, build them on demand
//
// ✨ Why choose lvmaze?
//
//   - Reproducible: every random decision flows through one injectable source
//   - Verified: every generated maze is checked to be connected and acyclic
//   - Pure Go: no cgo
//
// Packages:
//
//	core/    - Maze arena: cells, shared walls, adjacency snapshots
//	bfs/     - Distances, ShortestPath, structural Connected check
//	builder/ - Rectangular, Hex, Triangle, Masked and Circular layouts
//	carve/   - the six carving algorithms, Rand injection, Verify
//	maze/    - New, endpoints, Solve, Stats, logging
//	config/  - HCL maze blocks decoded into maze definitions
//
// Quick ASCII example (2×3 rectangular, carved):
//
//	+---+---+---+
//	| S         |
//	+---+---+   +
//	| F         |
//	+---+---+---+
//
//	go get github.com/katalvlaran/lvmaze
package lvmaze
