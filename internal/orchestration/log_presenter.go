package orchestration

import (
	"time"

	"github.com/agbru/fetchsim/internal/logging"
)

// LogPresenter records the lifecycle of a run as structured log events.
// It implements both Presenter and fetch.Notifier; the Notifier methods are
// safe for concurrent use as long as the underlying Logger is.
type LogPresenter struct {
	log logging.Logger
}

// NewLogPresenter returns a presenter writing to log.
func NewLogPresenter(log logging.Logger) *LogPresenter {
	return &LogPresenter{log: log}
}

// TaskStarted logs the drawn delay of a task.
func (p *LogPresenter) TaskStarted(endpoint string, delay time.Duration) {
	p.log.Debug("task started", logging.String("endpoint", endpoint), logging.Duration("delay", delay))
}

// TaskCompleted logs a successful fetch from inside the task.
func (p *LogPresenter) TaskCompleted(endpoint string) {
	p.log.Debug("task completed", logging.String("endpoint", endpoint))
}

// RunStarted logs the size of the run.
func (p *LogPresenter) RunStarted(endpoints []string) {
	p.log.Info("run started", logging.Int("tasks", len(endpoints)))
}

// TaskSucceeded logs a collected success.
func (p *LogPresenter) TaskSucceeded(r TaskResult) {
	p.log.Info("task succeeded", resultFields(r)...)
}

// TaskFailed logs a collected fetch failure.
func (p *LogPresenter) TaskFailed(r TaskResult) {
	p.log.Warn("task failed", append(resultFields(r), logging.Err(r.Err))...)
}

// TaskCrashed logs an abnormal termination.
func (p *LogPresenter) TaskCrashed(r TaskResult) {
	p.log.Error("task crashed", r.Err, resultFields(r)...)
}

// RunFinished logs the final counters.
func (p *LogPresenter) RunFinished(r Report) {
	p.log.Info("run finished",
		logging.Int("succeeded", r.Succeeded),
		logging.Int("failed", r.Failed),
		logging.Int("crashed", r.Crashed),
		logging.Duration("elapsed", r.Elapsed),
	)
}

func resultFields(r TaskResult) []logging.Field {
	return []logging.Field{
		logging.String("endpoint", r.Endpoint),
		logging.Int("index", r.Index),
		logging.Duration("elapsed", r.Elapsed),
	}
}
