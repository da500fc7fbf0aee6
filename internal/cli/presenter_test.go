package cli

import (
	"bytes"
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/agbru/fetchsim/internal/errors"
	"github.com/agbru/fetchsim/internal/fetch"
	"github.com/agbru/fetchsim/internal/orchestration"
	"github.com/agbru/fetchsim/internal/ui"
)

func noColor(t *testing.T) {
	t.Helper()
	orig := ui.GetCurrentTheme()
	ui.SetCurrentTheme(ui.NoColorTheme)
	t.Cleanup(func() { ui.SetCurrentTheme(orig) })
}

func TestFormatOutcome(t *testing.T) {
	noColor(t)

	tests := []struct {
		name string
		in   orchestration.TaskResult
		want string
	}{
		{
			name: "success",
			in:   orchestration.TaskResult{Endpoint: "api/users", State: orchestration.StateSucceeded, Payload: "Data from api/users"},
			want: "✅ success: api/users: Data from api/users",
		},
		{
			name: "network failure",
			in:   orchestration.TaskResult{Endpoint: "api/products", State: orchestration.StateFailed, Err: fetch.NewNetworkError(fetch.NetworkFailureMessage)},
			want: "❌ failed: api/products: Network Error: Connection failed",
		},
		{
			name: "server failure",
			in:   orchestration.TaskResult{Endpoint: "api/orders", State: orchestration.StateFailed, Err: fetch.NewServerError(500)},
			want: "❌ failed: api/orders: Server Error: Status Code 500",
		},
		{
			name: "crash",
			in: orchestration.TaskResult{
				Endpoint: "api/orders",
				State:    orchestration.StateCrashed,
				Err:      &apperrors.TaskPanicError{Endpoint: "api/orders", Value: "boom"},
			},
			want: `💥 crashed: api/orders: task "api/orders" panicked: boom`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatOutcome(tt.in))
		})
	}
}

func TestFormatNotices(t *testing.T) {
	noColor(t)
	assert.Equal(t, "[START] fetching: api/users (742ms)", FormatStartNotice("api/users", 742*time.Millisecond))
	assert.Equal(t, "[DONE] fetched: api/users", FormatCompletionNotice("api/users"))
	assert.Equal(t, "=== fetching 3 endpoints ===", FormatBanner(3))
}

func TestConsolePresenter_Run(t *testing.T) {
	noColor(t)
	var buf bytes.Buffer
	c := NewConsolePresenter(&buf, false)

	endpoints := []string{"api/users", "api/products", "api/orders"}
	orchestration.RunAll(context.Background(), endpoints, orchestration.Options{
		Delays:    fetch.DelayRange{Min: time.Millisecond, Max: time.Millisecond},
		Sources:   func(i int) fetch.Source { return fetch.NewSeededSource(1, uint64(i)) },
		Notifier:  c,
		Presenter: c,
	})

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.NotEmpty(t, lines)
	assert.Equal(t, "=== fetching 3 endpoints ===", lines[0])
	assert.Equal(t, "=== done ===", lines[len(lines)-2])
	assert.Regexp(t, `^success: \d, failed: \d(, crashed: \d)?$`, lines[len(lines)-1])

	starts, outcomes := 0, 0
	for _, l := range lines {
		switch {
		case strings.HasPrefix(l, "[START] fetching: "):
			starts++
			assert.Contains(t, l, "(1ms)")
		case strings.HasPrefix(l, "✅ success: "), strings.HasPrefix(l, "❌ failed: "):
			outcomes++
		}
	}
	assert.Equal(t, 3, starts)
	assert.Equal(t, 3, outcomes, "every outcome prints exactly one line")
}

// bucketSource draws the minimum delay and a fixed error-chance bucket.
type bucketSource struct{ bucket int }

func (bucketSource) Int64N(int64) int64 { return 0 }
func (s bucketSource) IntN(int) int     { return s.bucket }

func TestConsolePresenter_OutcomeNamesEndpoint(t *testing.T) {
	noColor(t)
	var buf bytes.Buffer
	c := NewConsolePresenter(&buf, true)

	endpoints := []string{"api/users", "api/products", "api/orders"}
	buckets := []int{5, 0, 1}
	report := orchestration.RunAll(context.Background(), endpoints, orchestration.Options{
		Sources:   func(i int) fetch.Source { return bucketSource{bucket: buckets[i]} },
		Notifier:  c,
		Presenter: c,
	})
	require.Equal(t, 1, report.Succeeded)
	require.Equal(t, 2, report.Failed)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, len(endpoints)+2)
	for i, ep := range endpoints {
		assert.Contains(t, lines[i], ": "+ep+": ", "outcome line %d must name its endpoint", i)
	}
	assert.Equal(t, "❌ failed: api/products: Network Error: Connection failed", lines[1])
	assert.Equal(t, "❌ failed: api/orders: Server Error: Status Code 500", lines[2])
}

func TestFormatOutcome_CustomPayloadNamesEndpoint(t *testing.T) {
	noColor(t)
	got := FormatOutcome(orchestration.TaskResult{Endpoint: "cache/42", State: orchestration.StateSucceeded, Payload: "7"})
	assert.Equal(t, "✅ success: cache/42: 7", got)
}

func TestConsolePresenter_Quiet(t *testing.T) {
	noColor(t)
	var buf bytes.Buffer
	c := NewConsolePresenter(&buf, true)

	c.RunStarted([]string{"a"})
	c.TaskStarted("a", time.Second)
	c.TaskCompleted("a")
	c.TaskSucceeded(orchestration.TaskResult{Endpoint: "a", State: orchestration.StateSucceeded, Payload: "Data from a"})
	c.RunFinished(orchestration.Report{Succeeded: 1})

	assert.Equal(t, "✅ success: a: Data from a\n=== done ===\nsuccess: 1, failed: 0\n", buf.String())
}

func TestConsolePresenter_CrashSummary(t *testing.T) {
	noColor(t)
	var buf bytes.Buffer
	c := NewConsolePresenter(&buf, true)
	c.RunFinished(orchestration.Report{Succeeded: 1, Failed: 1, Crashed: 1})
	assert.Contains(t, buf.String(), "success: 1, failed: 1, crashed: 1")
}

func TestConsolePresenter_ConcurrentNotices(t *testing.T) {
	noColor(t)
	var buf bytes.Buffer
	c := NewConsolePresenter(&buf, false)

	const n = 50
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			c.TaskStarted("ep", time.Millisecond)
			c.TaskCompleted("ep")
		}()
	}
	wg.Wait()

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2*n)
	for _, l := range lines {
		ok := l == "[START] fetching: ep (1ms)" || l == "[DONE] fetched: ep"
		assert.True(t, ok, "interleaved line %q", l)
	}
}
