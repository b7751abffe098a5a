// SPDX-License-Identifier: MIT
// Package: lvmaze/carve
//
// errors.go: sentinel errors for the carve package.
//
// Error policy:
//   • Only sentinel variables are exposed; branch with errors.Is.
//   • Every precondition is checked before the first wall is opened, so a
//     failed carve leaves the graph untouched.
//   • ErrNotPerfect is an internal-consistency failure and is never retried.

package carve

import "errors"

var (
	// ErrGraphNil indicates a nil graph.
	ErrGraphNil = errors.New("carve: graph is nil")

	// ErrNeedRand indicates a nil random source.
	ErrNeedRand = errors.New("carve: random source is required")

	// ErrEmptyGraph indicates a graph with no cells.
	ErrEmptyGraph = errors.New("carve: graph has no cells")

	// ErrDisconnected indicates the structural graph is not connected, so no
	// spanning tree exists. Errors carrying it also wrap bfs.ErrDisconnected.
	ErrDisconnected = errors.New("carve: structural graph is not connected")

	// ErrAlreadyCarved indicates that some wall is already passable.
	ErrAlreadyCarved = errors.New("carve: graph already has passable walls")

	// ErrUnsupportedTopology indicates the algorithm cannot run on this
	// topology (BinaryTree and Sidewinder need an orthogonal lattice with a
	// valid starting corner).
	ErrUnsupportedTopology = errors.New("carve: algorithm unsupported for this topology")

	// ErrBadRand indicates a random source that answered Intn(n) outside
	// [0, n).
	ErrBadRand = errors.New("carve: random source out of range")

	// ErrUnknownAlgorithm indicates an unrecognised algorithm name or value.
	ErrUnknownAlgorithm = errors.New("carve: unknown algorithm")

	// ErrNotPerfect indicates the passable subgraph is not a spanning tree.
	ErrNotPerfect = errors.New("carve: maze is not perfect")
)
