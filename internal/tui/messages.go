package tui

import (
	"time"

	"github.com/agbru/fetchsim/internal/orchestration"
	"github.com/agbru/fetchsim/internal/sysmon"
)

// RunStartedMsg announces the endpoints of a run, in launch order.
type RunStartedMsg struct {
	Endpoints []string
}

// TaskStartedMsg reports the delay drawn by a task.
type TaskStartedMsg struct {
	Endpoint string
	Delay    time.Duration
}

// TaskResultMsg carries one collected outcome.
type TaskResultMsg struct {
	Result orchestration.TaskResult
}

// RunFinishedMsg carries the final report.
type RunFinishedMsg struct {
	Report orchestration.Report
}

// ContextCancelledMsg is sent when the run's context ends.
type ContextCancelledMsg struct {
	Err error
}

// SysStatsMsg carries a host CPU/memory sample for the header.
type SysStatsMsg struct {
	Stats sysmon.Stats
	Err   error
}
