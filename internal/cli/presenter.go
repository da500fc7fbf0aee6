package cli

import (
	"io"
	"time"

	"github.com/agbru/fetchsim/internal/fetch"
	"github.com/agbru/fetchsim/internal/orchestration"
)

// ConsolePresenter prints the line-oriented progress of a run. It implements
// orchestration.Presenter for collected outcomes and fetch.Notifier for the
// start and completion notices emitted from inside tasks.
type ConsolePresenter struct {
	out   *lockedWriter
	quiet bool
}

// Verify interface compliance.
var (
	_ orchestration.Presenter = (*ConsolePresenter)(nil)
	_ fetch.Notifier          = (*ConsolePresenter)(nil)
)

// NewConsolePresenter returns a presenter writing to out. In quiet mode the
// banner and the per-task start and completion notices are suppressed; one
// line per outcome and the summary are always printed.
func NewConsolePresenter(out io.Writer, quiet bool) *ConsolePresenter {
	return &ConsolePresenter{out: &lockedWriter{w: out}, quiet: quiet}
}

// TaskStarted prints "[START] fetching: ep (delay)".
func (c *ConsolePresenter) TaskStarted(endpoint string, delay time.Duration) {
	if c.quiet {
		return
	}
	c.out.println(FormatStartNotice(endpoint, delay))
}

// TaskCompleted prints "[DONE] fetched: ep".
func (c *ConsolePresenter) TaskCompleted(endpoint string) {
	if c.quiet {
		return
	}
	c.out.println(FormatCompletionNotice(endpoint))
}

// RunStarted prints the banner.
func (c *ConsolePresenter) RunStarted(endpoints []string) {
	if c.quiet {
		return
	}
	c.out.do(func(w io.Writer) { DisplayBanner(w, len(endpoints)) })
}

// TaskSucceeded prints the payload.
func (c *ConsolePresenter) TaskSucceeded(r orchestration.TaskResult) {
	c.out.println(FormatOutcome(r))
}

// TaskFailed prints the rendered fetch error.
func (c *ConsolePresenter) TaskFailed(r orchestration.TaskResult) {
	c.out.println(FormatOutcome(r))
}

// TaskCrashed prints the crash cause.
func (c *ConsolePresenter) TaskCrashed(r orchestration.TaskResult) {
	c.out.println(FormatOutcome(r))
}

// RunFinished prints "=== done ===" and the counters.
func (c *ConsolePresenter) RunFinished(r orchestration.Report) {
	c.out.do(func(w io.Writer) { DisplaySummary(w, r) })
}
