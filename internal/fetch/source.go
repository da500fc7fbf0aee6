//go:generate mockgen -source=source.go -destination=mocks/mock_source.go -package=mocks

package fetch

import (
	"math/rand/v2"
	"time"
)

// Source supplies the randomness consumed by Simulate. *rand.Rand from
// math/rand/v2 satisfies it. A Source is owned by a single task and is not
// required to be safe for concurrent use.
type Source interface {
	// Int64N returns a uniform value in [0, n). n must be positive.
	Int64N(n int64) int64
	// IntN returns a uniform value in [0, n). n must be positive.
	IntN(n int) int
}

// NewSeededSource returns a deterministic Source. Different streams from the
// same seed are independent, which lets every task own its own generator.
func NewSeededSource(seed, stream uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, stream))
}

// SourceFactory hands out one Source per task index.
type SourceFactory func(index int) Source

// NewSourceFactory derives per-task sources from seed. A zero seed is
// replaced by the current time so unseeded runs differ from each other.
func NewSourceFactory(seed uint64) SourceFactory {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return func(index int) Source {
		return NewSeededSource(seed, uint64(index))
	}
}
