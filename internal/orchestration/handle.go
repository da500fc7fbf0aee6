package orchestration

import (
	"fmt"
	"sync/atomic"
	"time"
)

// Outcome is the typed terminal result of one task: exactly one of a
// successful Value, a typed fetch failure, or a crash.
type Outcome[T any] struct {
	Index    int
	Endpoint string
	State    State
	Value    T
	Err      error
	Elapsed  time.Duration
}

func (o Outcome[T]) result(render func(T) string) TaskResult {
	res := TaskResult{
		Index:    o.Index,
		Endpoint: o.Endpoint,
		State:    o.State,
		Err:      o.Err,
		Elapsed:  o.Elapsed,
	}
	if o.State == StateSucceeded {
		res.Payload = render(o.Value)
	}
	return res
}

// Handle owns one running task until its outcome is collected. The outcome
// is written once by the task goroutine and read once by Wait.
type Handle[T any] struct {
	index     int
	endpoint  string
	done      chan struct{}
	outcome   Outcome[T]
	collected atomic.Bool
}

func newHandle[T any](index int, endpoint string) *Handle[T] {
	return &Handle[T]{index: index, endpoint: endpoint, done: make(chan struct{})}
}

// Endpoint returns the endpoint the task was launched for.
func (h *Handle[T]) Endpoint() string { return h.endpoint }

// Done is closed once the task has reached a terminal state.
func (h *Handle[T]) Done() <-chan struct{} { return h.done }

// Wait blocks until the task finishes and returns its outcome. A handle
// must be collected exactly once; a second Wait panics.
func (h *Handle[T]) Wait() Outcome[T] {
	if !h.collected.CompareAndSwap(false, true) {
		panic(fmt.Sprintf("orchestration: handle for %q collected twice", h.endpoint))
	}
	<-h.done
	return h.outcome
}

func (h *Handle[T]) resolve(o Outcome[T]) {
	o.Index = h.index
	o.Endpoint = h.endpoint
	h.outcome = o
	close(h.done)
}
