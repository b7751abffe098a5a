// Package carve - random source utilities shared by every carver.
//
// Policy:
//   - A carver draws every random decision through Rand.Intn, so the whole
//     carve is reproducible when the source is.
//   - An answer outside [0, n) is a fault of the source: the carve stops
//     with ErrBadRand.
//   - seed == 0 asks NewRand for a time-seeded source; any other seed is used
//     verbatim.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe. Give each maze its own source.
package carve

import (
	"fmt"
	"math/rand"
	"time"
)

// Rand is the random capability carvers need. Intn returns a uniform value
// in [0, n) and is only called with n > 0. *rand.Rand satisfies it.
type Rand interface {
	Intn(n int) int
}

// NewRand returns a *rand.Rand seeded with seed, or with the current time
// when seed == 0.
//
// Complexity: O(1).
func NewRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	return rand.New(rand.NewSource(seed))
}

// Sequence replays a fixed list of values. Intn(n) returns the next value
// modulo n, wrapping around at the end of the list; an empty Sequence
// always returns 0. Intended for tests that need exact control over every
// decision.
type Sequence struct {
	values []int
	next   int
}

// NewSequence returns a Sequence over values. Negative values are folded
// to their absolute value.
func NewSequence(values ...int) *Sequence {
	vs := make([]int, len(values))
	for i, v := range values {
		if v < 0 {
			v = -v
		}
		vs[i] = v
	}

	return &Sequence{values: vs}
}

// Intn implements Rand.
func (s *Sequence) Intn(n int) int {
	if len(s.values) == 0 || n <= 0 {
		return 0
	}
	v := s.values[s.next%len(s.values)]
	s.next++

	return v % n
}

// Calls reports how many values have been consumed.
func (s *Sequence) Calls() int { return s.next }

// Draw returns rng.Intn(n), or ErrBadRand if the source answers outside
// [0, n). n must be positive.
func Draw(rng Rand, n int) (int, error) {
	v := rng.Intn(n)
	if v < 0 || v >= n {
		return 0, fmt.Errorf("Intn(%d) = %d: %w", n, v, ErrBadRand)
	}

	return v, nil
}

// draw is Draw with the carver's method name attached.
func draw(method string, rng Rand, n int) (int, error) {
	v, err := Draw(rng, n)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", method, err)
	}

	return v, nil
}
