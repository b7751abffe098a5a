package config

import "errors"

// Sentinel errors returned by Parse and Load.
var (
	// ErrDecode wraps HCL syntax and decoding diagnostics.
	ErrDecode = errors.New("config: cannot decode")

	// ErrInvalidEntry is returned for a maze block that cannot describe a maze.
	ErrInvalidEntry = errors.New("config: invalid maze entry")

	// ErrDuplicateName is returned when two maze blocks share a label.
	ErrDuplicateName = errors.New("config: duplicate maze name")
)
