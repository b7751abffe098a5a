// Package carve turns an uncarved topology into a perfect maze: it opens
// exactly cells-1 walls so that every pair of cells is joined by one simple
// passable path.
//
// What
//
//   - Six carvers share the signature Func(g core.Graph, rng Rand) error:
//   - RunAldousBroder:          unbiased random walk.
//   - RunWilson:                unbiased loop-erased random walks.
//   - RunHuntAndKill:           random walk, hunt in Cells() order when stuck.
//   - RunRecursiveBackTracker:  depth-first with an explicit stack.
//   - RunBinaryTree:            per-cell coin between straight and turn.
//   - RunSidewinder:            row runs closed by a random turn.
//   - Algorithm enumerates them (String, ParseAlgorithm, Carve).
//   - Verify checks the spanning-tree property with union-find.
//
// Topology requirements
//
//	BinaryTree and Sidewinder need a Lattice whose Orthogonal() is true and
//	whose (0,0) corner touches exactly its in-bounds (0,1) and (1,0) cells.
//	Straight is column+1, turn is row-1. The other four accept any
//	core.Graph.
//
// Randomness
//
//	Every decision goes through Rand.Intn. Coins are Intn(2) with 0 meaning
//	straight; wall and cell choices are Intn(len) over the candidate slice
//	in wall insertion order. NewRand(seed) gives a reproducible carve for a
//	non-zero seed; Sequence replays fixed values in tests.
//
// Errors
//
//   - ErrGraphNil / ErrNeedRand     nil inputs.
//   - ErrEmptyGraph                 no cells.
//   - ErrAlreadyCarved              a wall is already passable.
//   - ErrDisconnected               structural graph not connected.
//   - ErrBadRand                    the source answered Intn(n) outside [0, n).
//   - ErrUnsupportedTopology        BinaryTree/Sidewinder on a non-lattice.
//   - ErrUnknownAlgorithm           ParseAlgorithm / Func on a bad value.
//   - ErrNotPerfect                 Verify found a cycle or a split.
//
// All preconditions are checked before the first wall opens.
package carve
