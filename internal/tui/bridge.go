package tui

import (
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/agbru/fetchsim/internal/fetch"
	"github.com/agbru/fetchsim/internal/orchestration"
)

// sender is the part of *tea.Program the bridge needs.
type sender interface {
	Send(msg tea.Msg)
}

// programRef is a shared reference to the tea.Program.
// Because bubbletea copies the model on every Update, we need a pointer
// that survives copies so the bridge can send messages from task goroutines.
type programRef struct {
	mu     sync.RWMutex
	target sender
}

// SetProgram sets the tea.Program reference (thread-safe).
func (r *programRef) SetProgram(p *tea.Program) {
	r.set(p)
}

func (r *programRef) set(s sender) {
	r.mu.Lock()
	r.target = s
	r.mu.Unlock()
}

// Send sends a message to the bubbletea program (thread-safe). Messages sent
// before a program is attached are dropped.
func (r *programRef) Send(msg tea.Msg) {
	r.mu.RLock()
	s := r.target
	r.mu.RUnlock()
	if s != nil {
		s.Send(msg)
	}
}

// Bridge forwards orchestration events to the TUI as bubbletea messages. It
// implements orchestration.Presenter and fetch.Notifier.
type Bridge struct {
	ref *programRef
}

// Verify interface compliance.
var (
	_ orchestration.Presenter = (*Bridge)(nil)
	_ fetch.Notifier          = (*Bridge)(nil)
)

// TaskStarted sends a TaskStartedMsg.
func (b *Bridge) TaskStarted(endpoint string, delay time.Duration) {
	b.ref.Send(TaskStartedMsg{Endpoint: endpoint, Delay: delay})
}

// TaskCompleted implements fetch.Notifier. The row is updated when the
// outcome is collected.
func (b *Bridge) TaskCompleted(string) {}

// RunStarted sends a RunStartedMsg.
func (b *Bridge) RunStarted(endpoints []string) {
	b.ref.Send(RunStartedMsg{Endpoints: append([]string(nil), endpoints...)})
}

// TaskSucceeded sends a TaskResultMsg.
func (b *Bridge) TaskSucceeded(r orchestration.TaskResult) { b.ref.Send(TaskResultMsg{Result: r}) }

// TaskFailed sends a TaskResultMsg.
func (b *Bridge) TaskFailed(r orchestration.TaskResult) { b.ref.Send(TaskResultMsg{Result: r}) }

// TaskCrashed sends a TaskResultMsg.
func (b *Bridge) TaskCrashed(r orchestration.TaskResult) { b.ref.Send(TaskResultMsg{Result: r}) }

// RunFinished sends a RunFinishedMsg.
func (b *Bridge) RunFinished(r orchestration.Report) { b.ref.Send(RunFinishedMsg{Report: r}) }
