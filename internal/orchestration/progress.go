package orchestration

import (
	"sync"
	"time"
)

// ProgressTracker aggregates the progress of a run from both sides of the
// orchestration: start notices arrive from task goroutines through the
// fetch.Notifier methods, collected outcomes through the Presenter methods.
// Both the CLI spinner and the TUI read it via Snapshot.
type ProgressTracker struct {
	mu        sync.Mutex
	total     int
	started   int
	collected int
	startTime time.Time
	now       func() time.Time
}

// ProgressSnapshot is a consistent view of a ProgressTracker.
type ProgressSnapshot struct {
	Total     int
	Started   int
	Collected int
	// Fraction is Collected/Total, in [0, 1].
	Fraction float64
	// ETA estimates the remaining time from the average collection rate.
	// Zero until at least one outcome has been collected.
	ETA time.Duration
}

// NewProgressTracker creates an empty tracker. The total is set by RunStarted.
func NewProgressTracker() *ProgressTracker {
	return &ProgressTracker{now: time.Now}
}

// TaskStarted implements fetch.Notifier.
func (p *ProgressTracker) TaskStarted(string, time.Duration) {
	p.mu.Lock()
	p.started++
	p.mu.Unlock()
}

// TaskCompleted implements fetch.Notifier. Completion is counted when the
// outcome is collected, so that failures and crashes advance progress too.
func (p *ProgressTracker) TaskCompleted(string) {}

// RunStarted implements Presenter.
func (p *ProgressTracker) RunStarted(endpoints []string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.total = len(endpoints)
	p.started = 0
	p.collected = 0
	p.startTime = p.now()
}

// TaskSucceeded implements Presenter.
func (p *ProgressTracker) TaskSucceeded(TaskResult) { p.collect() }

// TaskFailed implements Presenter.
func (p *ProgressTracker) TaskFailed(TaskResult) { p.collect() }

// TaskCrashed implements Presenter.
func (p *ProgressTracker) TaskCrashed(TaskResult) { p.collect() }

// RunFinished implements Presenter.
func (p *ProgressTracker) RunFinished(Report) {}

func (p *ProgressTracker) collect() {
	p.mu.Lock()
	p.collected++
	p.mu.Unlock()
}

// Snapshot returns the current progress.
func (p *ProgressTracker) Snapshot() ProgressSnapshot {
	p.mu.Lock()
	defer p.mu.Unlock()

	s := ProgressSnapshot{Total: p.total, Started: p.started, Collected: p.collected}
	if p.total > 0 {
		s.Fraction = float64(p.collected) / float64(p.total)
	}
	if p.collected > 0 && p.collected < p.total {
		elapsed := p.now().Sub(p.startTime)
		perTask := elapsed / time.Duration(p.collected)
		s.ETA = perTask * time.Duration(p.total-p.collected)
	}
	return s
}
