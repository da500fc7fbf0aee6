package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/agbru/fetchsim/internal/format"
	"github.com/agbru/fetchsim/internal/sysmon"
)

// HeaderModel renders the top bar: title, version, collected count, elapsed time.
type HeaderModel struct {
	startTime time.Time
	endTime   time.Time
	version   string
	total     int
	collected int
	width     int
	sys       sysmon.Stats
	sysOK     bool
}

// NewHeaderModel creates a new header.
func NewHeaderModel(version string) HeaderModel {
	return HeaderModel{
		startTime: time.Now(),
		version:   version,
	}
}

// SetTotal records the number of tasks in the run and restarts the timer.
func (h *HeaderModel) SetTotal(n int) {
	h.total = n
	h.collected = 0
	h.startTime = time.Now()
	h.endTime = time.Time{}
}

// Collect advances the collected counter.
func (h *HeaderModel) Collect() {
	h.collected++
}

// SetDone freezes the elapsed timer at the current time.
func (h *HeaderModel) SetDone() {
	h.endTime = time.Now()
}

// SetSysStats records the latest host sample.
func (h *HeaderModel) SetSysStats(s sysmon.Stats) {
	h.sys = s
	h.sysOK = true
}

// SetWidth updates the available width.
func (h *HeaderModel) SetWidth(w int) {
	h.width = w
}

// View renders the header.
func (h HeaderModel) View() string {
	titleText := "fetchsim"
	if h.version != "" && h.version != "dev" {
		titleText += " " + h.version
	}
	title := titleStyle.Render(titleText)

	pipe := dimStyle.Render(" | ")

	var duration time.Duration
	if !h.endTime.IsZero() {
		duration = h.endTime.Sub(h.startTime)
	} else {
		duration = time.Since(h.startTime)
	}
	elapsed := elapsedStyle.Render(fmt.Sprintf("Elapsed: %s", format.FormatExecutionDuration(duration)))
	progress := dimStyle.Render("Collected: " + format.FormatFraction(h.collected, h.total))

	row := title + pipe + progress + pipe + elapsed
	if h.sysOK {
		row += pipe + dimStyle.Render(h.sys.String())
	}
	if gap := h.width - 2 - lipgloss.Width(row); gap > 0 {
		row += spaces(gap)
	}
	return headerStyle.Render(row)
}

// spaces returns a string of n space characters.
func spaces(n int) string {
	if n <= 0 {
		return ""
	}
	b := make([]byte, n)
	for i := range b {
		b[i] = ' '
	}
	return string(b)
}
