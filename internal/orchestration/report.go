package orchestration

import (
	"fmt"
	"time"
)

// State is the lifecycle position of a single task.
//
//	Pending -> Running -> {Succeeded | Failed | Crashed}
//
// No transition is reversible and no task is relaunched.
type State int

const (
	StatePending State = iota
	StateRunning
	StateSucceeded
	StateFailed
	StateCrashed
)

// String returns the lower-case name of the state.
func (s State) String() string {
	switch s {
	case StatePending:
		return "pending"
	case StateRunning:
		return "running"
	case StateSucceeded:
		return "succeeded"
	case StateFailed:
		return "failed"
	case StateCrashed:
		return "crashed"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Terminal reports whether s is a final state.
func (s State) Terminal() bool {
	return s >= StateSucceeded
}

// TaskResult is the rendered, type-erased outcome of one task as seen by
// presenters and stored in the Report.
type TaskResult struct {
	// Index is the task's position in the input sequence.
	Index int
	// Endpoint identifies the simulated resource.
	Endpoint string
	// State is the terminal state of the task.
	State State
	// Payload is the rendered payload. Empty unless State is StateSucceeded.
	Payload string
	// Err is the *fetch.Error for StateFailed and the crash cause for StateCrashed.
	Err error
	// Elapsed is the wall time from launch to terminal state.
	Elapsed time.Duration
}

// Report aggregates all task outcomes of a run. Counters always satisfy
// Succeeded+Failed+Crashed == len(Results).
type Report struct {
	Succeeded int
	Failed    int
	Crashed   int
	// Results holds one entry per task, in input order.
	Results []TaskResult
	// Elapsed is the wall time of the whole run.
	Elapsed time.Duration
}

// Total returns the number of collected outcomes.
func (r Report) Total() int {
	return r.Succeeded + r.Failed + r.Crashed
}

// Summary renders the counter line printed at the end of a run.
func (r Report) Summary() string {
	s := fmt.Sprintf("success: %d, failed: %d", r.Succeeded, r.Failed)
	if r.Crashed > 0 {
		s += fmt.Sprintf(", crashed: %d", r.Crashed)
	}
	return s
}

func (r *Report) record(res TaskResult) {
	switch res.State {
	case StateSucceeded:
		r.Succeeded++
	case StateFailed:
		r.Failed++
	default:
		r.Crashed++
	}
	r.Results = append(r.Results, res)
}
