package fetch

import (
	"context"
	"time"
)

// ErrorChanceBuckets is the size of the uniform draw deciding the outcome.
// Draw 0 is a network failure, draw 1 a server failure, everything else
// succeeds, giving an 80% success rate.
const ErrorChanceBuckets = 10

// Simulate pretends to fetch payload from endpoint.
//
// It validates delays, draws a delay from rng, reports the start to n,
// waits, then draws the error chance from rng. On success the payload's
// clone is returned and completion is reported; on failure a *Error is
// returned and the zero T. An invalid range is rejected before anything is
// drawn. If ctx ends during the wait, ctx.Err() is returned.
func Simulate[T Payload[T]](ctx context.Context, endpoint string, payload T, delays DelayRange, rng Source, n Notifier) (T, error) {
	var zero T
	if err := delays.Validate(); err != nil {
		return zero, err
	}
	if n == nil {
		n = NullNotifier{}
	}

	delay := delays.Draw(rng)
	n.TaskStarted(endpoint, delay)
	if err := sleep(ctx, delay); err != nil {
		return zero, err
	}

	switch rng.IntN(ErrorChanceBuckets) {
	case 0:
		return zero, NewNetworkError(NetworkFailureMessage)
	case 1:
		return zero, NewServerError(ServerFailureStatus)
	}

	n.TaskCompleted(endpoint)
	return payload.Clone(), nil
}

func sleep(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
