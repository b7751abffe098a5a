// SPDX-License-Identifier: MIT

// Package config decodes maze definitions from HCL.
//
// A file holds any number of labelled maze blocks:
//
//	maze "lobby" {
//	  topology  = "rectangular"
//	  rows      = 10
//	  columns   = var.width
//	  algorithm = "wilson"
//	  seed      = 42
//	}
//
//	maze "donut" {
//	  topology  = "masked"
//	  mask      = ["XXX", "X.X", "XXX"]
//	  algorithm = "recursive_backtracker"
//	}
//
// Attributes
//
//   - topology, algorithm: required; names as accepted by maze.ParseTopology
//     and carve.ParseAlgorithm.
//   - rows, columns: grid topologies; default 29. For masked mazes they are
//     derived from the mask art and, if given, must agree with it.
//   - mask: masked only; rows of 'X'/'x' (cell) and '.'/' ' (no cell).
//   - rings, scale_factor, halve_factor: circular only; default 12, 6, 3.
//   - seed: optional; 0 or absent means time-seeded.
//
// Expressions are evaluated with the caller's variables under var.<name>.
//
// Errors
//
//   - ErrDecode: syntax or decoding diagnostics (the hcl.Diagnostics are
//     wrapped too).
//   - ErrInvalidEntry: unknown names, misplaced attributes or bad mask art.
//   - ErrDuplicateName: two blocks share a label.
package config
