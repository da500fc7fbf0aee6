//go:generate mockgen -source=interfaces.go -destination=mocks/mock_presenter.go -package=mocks

package orchestration

// Presenter defines the interface for reporting a run as its outcomes are
// collected. This interface decouples the orchestration layer from the
// presentation layer: the CLI prints lines, the TUI updates a table, the
// metrics collector increments counters.
//
// All methods are called from the single collecting goroutine, in order:
// RunStarted, one Task* call per task in input order, then RunFinished.
type Presenter interface {
	// RunStarted is called before any task is launched.
	RunStarted(endpoints []string)
	// TaskSucceeded is called when a successful outcome is collected.
	TaskSucceeded(result TaskResult)
	// TaskFailed is called when a typed fetch failure is collected.
	TaskFailed(result TaskResult)
	// TaskCrashed is called when a task terminated abnormally.
	TaskCrashed(result TaskResult)
	// RunFinished is called once with the final report.
	RunFinished(report Report)
}

// NullPresenter is a no-op implementation of Presenter.
// Useful for quiet mode or testing.
type NullPresenter struct{}

// RunStarted does nothing.
func (NullPresenter) RunStarted([]string) {}

// TaskSucceeded does nothing.
func (NullPresenter) TaskSucceeded(TaskResult) {}

// TaskFailed does nothing.
func (NullPresenter) TaskFailed(TaskResult) {}

// TaskCrashed does nothing.
func (NullPresenter) TaskCrashed(TaskResult) {}

// RunFinished does nothing.
func (NullPresenter) RunFinished(Report) {}

// Presenters combines several presenters into one that forwards every call
// to each non-nil presenter in order.
func Presenters(ps ...Presenter) Presenter {
	out := make(multiPresenter, 0, len(ps))
	for _, p := range ps {
		if p != nil {
			out = append(out, p)
		}
	}
	return out
}

type multiPresenter []Presenter

func (m multiPresenter) RunStarted(endpoints []string) {
	for _, p := range m {
		p.RunStarted(endpoints)
	}
}

func (m multiPresenter) TaskSucceeded(r TaskResult) {
	for _, p := range m {
		p.TaskSucceeded(r)
	}
}

func (m multiPresenter) TaskFailed(r TaskResult) {
	for _, p := range m {
		p.TaskFailed(r)
	}
}

func (m multiPresenter) TaskCrashed(r TaskResult) {
	for _, p := range m {
		p.TaskCrashed(r)
	}
}

func (m multiPresenter) RunFinished(r Report) {
	for _, p := range m {
		p.RunFinished(r)
	}
}

// present dispatches a collected result to the matching Presenter method.
func present(p Presenter, r TaskResult) {
	switch r.State {
	case StateSucceeded:
		p.TaskSucceeded(r)
	case StateFailed:
		p.TaskFailed(r)
	default:
		p.TaskCrashed(r)
	}
}
