// # Naming Conventions
//
// Functions in this package follow consistent naming patterns based on their behavior:
//
//   - Display* functions write formatted output to an [io.Writer].
//     They handle presentation logic and colorization.
//     Examples: [DisplayBanner], [DisplaySummary].
//
//   - Format* functions return a formatted string without performing I/O.
//     They are pure functions suitable for composition.
//     Examples: [FormatStartNotice], [FormatOutcome].

package cli

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/agbru/fetchsim/internal/format"
	"github.com/agbru/fetchsim/internal/orchestration"
	"github.com/agbru/fetchsim/internal/ui"
)

// FormatBanner returns the line printed before any task is launched.
func FormatBanner(n int) string {
	return fmt.Sprintf("=== fetching %d endpoints ===", n)
}

// FormatStartNotice returns the line printed when a task has drawn its delay.
func FormatStartNotice(endpoint string, delay time.Duration) string {
	return fmt.Sprintf("[START] fetching: %s (%s)",
		ui.Paint(ui.ColorPrimary(), endpoint),
		ui.Paint(ui.ColorSecondary(), format.FormatExecutionDuration(delay)))
}

// FormatCompletionNotice returns the line printed when a task's fetch succeeded.
func FormatCompletionNotice(endpoint string) string {
	return "[DONE] fetched: " + ui.Paint(ui.ColorPrimary(), endpoint)
}

// FormatOutcome returns the single line printed for a collected outcome.
func FormatOutcome(r orchestration.TaskResult) string {
	switch r.State {
	case orchestration.StateSucceeded:
		return ui.Paint(ui.ColorSuccess(), fmt.Sprintf("✅ success: %s: %s", r.Endpoint, r.Payload))
	case orchestration.StateFailed:
		return ui.Paint(ui.ColorWarning(), fmt.Sprintf("❌ failed: %s: %v", r.Endpoint, r.Err))
	default:
		return ui.Paint(ui.ColorError(), fmt.Sprintf("💥 crashed: %s: %v", r.Endpoint, r.Err))
	}
}

// DisplayBanner writes the start banner.
func DisplayBanner(out io.Writer, n int) {
	fmt.Fprintln(out, ui.Paint(ui.ColorBold(), FormatBanner(n)))
}

// DisplaySummary writes the closing marker and the report counters.
func DisplaySummary(out io.Writer, r orchestration.Report) {
	fmt.Fprintln(out, ui.Paint(ui.ColorBold(), "=== done ==="))
	fmt.Fprintln(out, r.Summary())
}

// lockedWriter serializes writes from task goroutines and the collector so
// that notices never interleave within a line.
type lockedWriter struct {
	mu sync.Mutex
	w  io.Writer
}

func (l *lockedWriter) println(s string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintln(l.w, s)
}

func (l *lockedWriter) do(fn func(io.Writer)) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fn(l.w)
}
