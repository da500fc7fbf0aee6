//go:generate mockgen -source=ui.go -destination=mocks/mock_ui.go -package=mocks

package cli

import (
	"fmt"
	"io"
	"time"

	"github.com/briandowns/spinner"

	"github.com/agbru/fetchsim/internal/format"
	"github.com/agbru/fetchsim/internal/orchestration"
)

// ProgressRefreshRate defines the refresh frequency of the spinner.
const ProgressRefreshRate = 100 * time.Millisecond

// Spinner is an interface that abstracts the behavior of a terminal spinner.
// This decouples SpinnerPresenter from a specific spinner implementation,
// facilitating easier testing.
type Spinner interface {
	// Start begins the spinner animation.
	Start()
	// Stop halts the spinner animation.
	Stop()
	// UpdateSuffix sets the text that is displayed after the spinner.
	UpdateSuffix(suffix string)
}

// realSpinner adapts *spinner.Spinner to the Spinner interface.
type realSpinner struct {
	s *spinner.Spinner
}

func (rs *realSpinner) Start() { rs.s.Start() }

func (rs *realSpinner) Stop() { rs.s.Stop() }

// UpdateSuffix takes the spinner's lock since its render loop reads Suffix
// concurrently.
func (rs *realSpinner) UpdateSuffix(suffix string) {
	rs.s.Lock()
	rs.s.Suffix = suffix
	rs.s.Unlock()
}

var newSpinner = func(options ...spinner.Option) Spinner {
	s := spinner.New(spinner.CharSets[11], ProgressRefreshRate, options...)
	return &realSpinner{s}
}

// SpinnerPresenter animates a spinner on w while a run is in progress. Its
// suffix shows how many outcomes have been collected and an ETA derived from
// an orchestration.ProgressTracker.
type SpinnerPresenter struct {
	spinner Spinner
	tracker *orchestration.ProgressTracker
}

// NewSpinnerPresenter creates a spinner writing to w. Callers only install
// it when w is a terminal.
func NewSpinnerPresenter(w io.Writer) *SpinnerPresenter {
	return &SpinnerPresenter{
		spinner: newSpinner(spinner.WithWriter(w), spinner.WithHiddenCursor(true)),
		tracker: orchestration.NewProgressTracker(),
	}
}

// TaskStarted implements fetch.Notifier.
func (p *SpinnerPresenter) TaskStarted(endpoint string, delay time.Duration) {
	p.tracker.TaskStarted(endpoint, delay)
}

// TaskCompleted implements fetch.Notifier.
func (p *SpinnerPresenter) TaskCompleted(endpoint string) {
	p.tracker.TaskCompleted(endpoint)
}

// RunStarted starts the animation.
func (p *SpinnerPresenter) RunStarted(endpoints []string) {
	p.tracker.RunStarted(endpoints)
	p.refresh()
	p.spinner.Start()
}

// TaskSucceeded advances the suffix.
func (p *SpinnerPresenter) TaskSucceeded(r orchestration.TaskResult) {
	p.tracker.TaskSucceeded(r)
	p.refresh()
}

// TaskFailed advances the suffix.
func (p *SpinnerPresenter) TaskFailed(r orchestration.TaskResult) {
	p.tracker.TaskFailed(r)
	p.refresh()
}

// TaskCrashed advances the suffix.
func (p *SpinnerPresenter) TaskCrashed(r orchestration.TaskResult) {
	p.tracker.TaskCrashed(r)
	p.refresh()
}

// RunFinished stops the animation.
func (p *SpinnerPresenter) RunFinished(orchestration.Report) {
	p.spinner.Stop()
}

func (p *SpinnerPresenter) refresh() {
	p.spinner.UpdateSuffix(FormatSpinnerSuffix(p.tracker.Snapshot()))
}

// FormatSpinnerSuffix renders the text shown next to the spinner.
func FormatSpinnerSuffix(s orchestration.ProgressSnapshot) string {
	return fmt.Sprintf(" collected %s, ETA %s",
		format.FormatFraction(s.Collected, s.Total), format.FormatETA(s.ETA))
}
