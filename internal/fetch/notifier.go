//go:generate mockgen -source=notifier.go -destination=mocks/mock_notifier.go -package=mocks

package fetch

import "time"

// Notifier observes a simulated fetch. It is called from the task's own
// goroutine, so implementations shared between tasks must be safe for
// concurrent use. Notices never influence the outcome.
type Notifier interface {
	// TaskStarted is called once the delay has been drawn, before waiting.
	TaskStarted(endpoint string, delay time.Duration)
	// TaskCompleted is called after a successful fetch.
	TaskCompleted(endpoint string)
}

// NullNotifier discards every notice.
type NullNotifier struct{}

// TaskStarted does nothing.
func (NullNotifier) TaskStarted(string, time.Duration) {}

// TaskCompleted does nothing.
func (NullNotifier) TaskCompleted(string) {}

// Notifiers fans every notice out to each non-nil notifier in order.
func Notifiers(ns ...Notifier) Notifier {
	out := make(multiNotifier, 0, len(ns))
	for _, n := range ns {
		if n != nil {
			out = append(out, n)
		}
	}
	return out
}

type multiNotifier []Notifier

func (m multiNotifier) TaskStarted(endpoint string, delay time.Duration) {
	for _, n := range m {
		n.TaskStarted(endpoint, delay)
	}
}

func (m multiNotifier) TaskCompleted(endpoint string) {
	for _, n := range m {
		n.TaskCompleted(endpoint)
	}
}
