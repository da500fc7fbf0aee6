package fetch

import (
	"math"
	"time"

	apperrors "github.com/agbru/fetchsim/internal/errors"
)

// Default delay bounds of a simulated fetch.
const (
	DefaultMinDelay = 500 * time.Millisecond
	DefaultMaxDelay = 1500 * time.Millisecond
)

// DelayRange is an inclusive [Min, Max] interval of simulated latency.
type DelayRange struct {
	Min time.Duration
	Max time.Duration
}

// DefaultDelayRange returns the 500ms-1500ms range.
func DefaultDelayRange() DelayRange {
	return DelayRange{Min: DefaultMinDelay, Max: DefaultMaxDelay}
}

// Validate rejects negative bounds and inverted ranges.
func (r DelayRange) Validate() error {
	if r.Min < 0 || r.Max < 0 {
		return apperrors.ValidationError{Field: "delay", Message: "bounds must be non-negative"}
	}
	if r.Min > r.Max {
		return apperrors.ValidationError{
			Field:   "delay",
			Message: "min " + r.Min.String() + " exceeds max " + r.Max.String(),
		}
	}
	return nil
}

// Contains reports whether d lies within the range, bounds included.
func (r DelayRange) Contains(d time.Duration) bool {
	return d >= r.Min && d <= r.Max
}

// Draw picks a delay uniformly from the range. The range must be valid.
func (r DelayRange) Draw(rng Source) time.Duration {
	span := int64(r.Max - r.Min)
	if span == math.MaxInt64 {
		return r.Min + time.Duration(rng.Int64N(span))
	}
	return r.Min + time.Duration(rng.Int64N(span+1))
}

// String renders the range as "min-max".
func (r DelayRange) String() string {
	return r.Min.String() + "-" + r.Max.String()
}
