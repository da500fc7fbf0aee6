package metrics

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agbru/fetchsim/internal/fetch"
	"github.com/agbru/fetchsim/internal/orchestration"
)

type bucketSource int

func (bucketSource) Int64N(int64) int64 { return 0 }
func (b bucketSource) IntN(int) int     { return int(b) }

func TestCollector_CountsOutcomes(t *testing.T) {
	t.Parallel()
	c := NewCollector()

	buckets := []int{5, 0, 1, 7}
	jobs := []orchestration.Job[fetch.Text]{
		{Endpoint: "a", Payload: "A"},
		{Endpoint: "b", Payload: "B"},
		{Endpoint: "c", Payload: "C"},
		{Endpoint: "d", Payload: "D"},
		{Endpoint: "e", Fetch: func(context.Context, string, fetch.Text, fetch.Source, fetch.Notifier) (fetch.Text, error) {
			return "", errors.New("broken")
		}},
	}
	orchestration.Run(context.Background(), jobs, orchestration.Options{
		Delays: fetch.DelayRange{Min: time.Millisecond, Max: time.Millisecond},
		Sources: func(i int) fetch.Source {
			if i < len(buckets) {
				return bucketSource(buckets[i])
			}
			return bucketSource(5)
		},
		Notifier:  c,
		Presenter: c,
	})

	assert.Equal(t, 2.0, testutil.ToFloat64(c.tasksTotal.WithLabelValues(OutcomeSucceeded)))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.tasksTotal.WithLabelValues(OutcomeNetwork)))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.tasksTotal.WithLabelValues(OutcomeServer)))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.tasksTotal.WithLabelValues(OutcomeCrashed)))
	assert.Equal(t, 4.0, testutil.ToFloat64(c.started))
	assert.Equal(t, 1, testutil.CollectAndCount(c.delay))
}

func TestCollector_Lint(t *testing.T) {
	t.Parallel()
	c := NewCollector()
	problems, err := testutil.GatherAndLint(c.Registry())
	require.NoError(t, err)
	assert.Empty(t, problems)
}

func TestCollector_ZeroOutcomesExported(t *testing.T) {
	t.Parallel()
	c := NewCollector()
	expected := `
# HELP fetchsim_tasks_total Total number of collected tasks by outcome
# TYPE fetchsim_tasks_total counter
fetchsim_tasks_total{outcome="crashed"} 0
fetchsim_tasks_total{outcome="network_error"} 0
fetchsim_tasks_total{outcome="server_error"} 0
fetchsim_tasks_total{outcome="succeeded"} 0
`
	err := testutil.GatherAndCompare(c.Registry(), strings.NewReader(expected), "fetchsim_tasks_total")
	assert.NoError(t, err)
}

func TestCollector_RunFinished(t *testing.T) {
	t.Parallel()
	c := NewCollector()
	c.RunStarted([]string{"a"})
	c.RunFinished(orchestration.Report{Elapsed: 1500 * time.Millisecond})
	assert.Equal(t, 1.5, testutil.ToFloat64(c.lastRun))
}

func TestWriteTextfile(t *testing.T) {
	t.Parallel()
	c := NewCollector()
	c.TaskStarted("a", 600*time.Millisecond)
	c.TaskSucceeded(orchestration.TaskResult{Endpoint: "a", State: orchestration.StateSucceeded, Elapsed: 600 * time.Millisecond})

	path := filepath.Join(t.TempDir(), "nested", "fetchsim.prom")
	require.NoError(t, c.WriteTextfile(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	out := string(data)
	assert.Contains(t, out, `fetchsim_tasks_total{outcome="succeeded"} 1`)
	assert.Contains(t, out, "fetchsim_tasks_delay_seconds_count 1")
	assert.Contains(t, out, "fetchsim_tasks_started_total 1")
}

func TestWriteTextfile_EmptyPath(t *testing.T) {
	t.Parallel()
	assert.NoError(t, NewCollector().WriteTextfile(""))
}
