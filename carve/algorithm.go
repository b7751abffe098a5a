package carve

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/lvmaze/core"
)

// Algorithm selects a carver.
type Algorithm int

const (
	// AldousBroder is the unbiased random-walk carver.
	AldousBroder Algorithm = iota
	// BinaryTree opens straight or turn per cell on an orthogonal lattice.
	BinaryTree
	// HuntAndKill random-walks through unvisited cells and hunts when stuck.
	HuntAndKill
	// RecursiveBackTracker is depth-first carving with an explicit stack.
	RecursiveBackTracker
	// Sidewinder carves row runs on an orthogonal lattice.
	Sidewinder
	// Wilson is the unbiased loop-erased random-walk carver.
	Wilson
)

// Func is the signature every carver implements.
type Func func(g core.Graph, rng Rand) error

var algorithmNames = [...]string{
	AldousBroder:         "Aldous Broder",
	BinaryTree:           "Binary Tree",
	HuntAndKill:          "Hunt And Kill",
	RecursiveBackTracker: "Recursive Back Tracker",
	Sidewinder:           "Sidewinder",
	Wilson:               "Wilson",
}

// String returns the display name, e.g. "Aldous Broder".
func (a Algorithm) String() string {
	if !a.valid() {
		return fmt.Sprintf("Algorithm(%d)", int(a))
	}

	return algorithmNames[a]
}

func (a Algorithm) valid() bool {
	return a >= AldousBroder && a <= Wilson
}

// Algorithms returns every algorithm in declaration order.
func Algorithms() []Algorithm {
	return []Algorithm{AldousBroder, BinaryTree, HuntAndKill, RecursiveBackTracker, Sidewinder, Wilson}
}

// RequiresLattice reports whether the algorithm only runs on an orthogonal
// Lattice.
func (a Algorithm) RequiresLattice() bool {
	return a == BinaryTree || a == Sidewinder
}

// normalizeName lowercases s and drops spaces, '_' and '-'.
func normalizeName(s string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case ' ', '_', '-':
			return -1
		}
		return r
	}, strings.ToLower(strings.TrimSpace(s)))
}

// ParseAlgorithm resolves a name case-insensitively, ignoring spaces,
// underscores and hyphens: "wilson", "Hunt And Kill", "recursive_backtracker"
// and "binary-tree" are all accepted.
func ParseAlgorithm(s string) (Algorithm, error) {
	key := normalizeName(s)
	for _, a := range Algorithms() {
		if normalizeName(algorithmNames[a]) == key {
			return a, nil
		}
	}

	return 0, fmt.Errorf("ParseAlgorithm: %q: %w", s, ErrUnknownAlgorithm)
}

// Func returns the carver implementing a.
func (a Algorithm) Func() (Func, error) {
	switch a {
	case AldousBroder:
		return RunAldousBroder, nil
	case BinaryTree:
		return RunBinaryTree, nil
	case HuntAndKill:
		return RunHuntAndKill, nil
	case RecursiveBackTracker:
		return RunRecursiveBackTracker, nil
	case Sidewinder:
		return RunSidewinder, nil
	case Wilson:
		return RunWilson, nil
	}

	return nil, fmt.Errorf("Func: %d: %w", int(a), ErrUnknownAlgorithm)
}

// Carve runs the algorithm on g.
func (a Algorithm) Carve(g core.Graph, rng Rand) error {
	fn, err := a.Func()
	if err != nil {
		return err
	}

	return fn(g, rng)
}

// MarshalText implements encoding.TextMarshaler with the display name.
func (a Algorithm) MarshalText() ([]byte, error) {
	if !a.valid() {
		return nil, fmt.Errorf("MarshalText: %d: %w", int(a), ErrUnknownAlgorithm)
	}

	return []byte(a.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler via ParseAlgorithm.
func (a *Algorithm) UnmarshalText(b []byte) error {
	v, err := ParseAlgorithm(string(b))
	if err != nil {
		return err
	}
	*a = v

	return nil
}
