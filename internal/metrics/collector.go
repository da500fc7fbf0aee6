package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/agbru/fetchsim/internal/fetch"
	"github.com/agbru/fetchsim/internal/orchestration"
)

const (
	namespace = "fetchsim"
	subsystem = "tasks"
)

// Outcome label values for the tasks_total counter.
const (
	OutcomeSucceeded = "succeeded"
	OutcomeNetwork   = "network_error"
	OutcomeServer    = "server_error"
	OutcomeCrashed   = "crashed"
)

// Collector records per-task metrics on its own registry, so that several
// runs in one process (tests in particular) never collide on the default
// registry.
type Collector struct {
	registry *prometheus.Registry

	tasksTotal *prometheus.CounterVec
	delay      prometheus.Histogram
	duration   prometheus.Histogram
	started    prometheus.Counter
	lastRun    prometheus.Gauge
}

// Verify interface compliance.
var (
	_ orchestration.Presenter = (*Collector)(nil)
	_ fetch.Notifier          = (*Collector)(nil)
)

// NewCollector creates a collector with all metrics registered.
func NewCollector() *Collector {
	c := &Collector{
		registry: prometheus.NewRegistry(),
		tasksTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "total",
				Help:      "Total number of collected tasks by outcome",
			},
			[]string{"outcome"},
		),
		delay: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "delay_seconds",
			Help:      "Simulated delay drawn by each task in seconds",
			Buckets:   prometheus.LinearBuckets(0.25, 0.25, 8), // 250ms to 2s
		}),
		duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "duration_seconds",
			Help:      "Wall time from launch to terminal state in seconds",
			Buckets:   prometheus.ExponentialBuckets(0.01, 2, 10), // 10ms to ~10s
		}),
		started: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "started_total",
			Help:      "Total number of tasks that drew a delay and began waiting",
		}),
		lastRun: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "last_run_duration_seconds",
			Help:      "Wall time of the last completed run in seconds",
		}),
	}
	c.registry.MustRegister(c.tasksTotal, c.delay, c.duration, c.started, c.lastRun)
	for _, o := range []string{OutcomeSucceeded, OutcomeNetwork, OutcomeServer, OutcomeCrashed} {
		c.tasksTotal.WithLabelValues(o)
	}
	return c
}

// Registry exposes the collector's registry.
func (c *Collector) Registry() *prometheus.Registry { return c.registry }

// TaskStarted records the drawn delay.
func (c *Collector) TaskStarted(_ string, delay time.Duration) {
	c.delay.Observe(delay.Seconds())
	c.started.Inc()
}

// TaskCompleted implements fetch.Notifier.
func (c *Collector) TaskCompleted(string) {}

// RunStarted implements orchestration.Presenter.
func (c *Collector) RunStarted([]string) {}

// TaskSucceeded implements orchestration.Presenter.
func (c *Collector) TaskSucceeded(r orchestration.TaskResult) {
	c.collect(OutcomeSucceeded, r)
}

// TaskFailed implements orchestration.Presenter.
func (c *Collector) TaskFailed(r orchestration.TaskResult) {
	outcome := OutcomeServer
	if fetch.IsNetworkError(r.Err) {
		outcome = OutcomeNetwork
	}
	c.collect(outcome, r)
}

// TaskCrashed implements orchestration.Presenter.
func (c *Collector) TaskCrashed(r orchestration.TaskResult) {
	c.collect(OutcomeCrashed, r)
}

// RunFinished records the run's wall time.
func (c *Collector) RunFinished(r orchestration.Report) {
	c.lastRun.Set(r.Elapsed.Seconds())
}

func (c *Collector) collect(outcome string, r orchestration.TaskResult) {
	c.tasksTotal.WithLabelValues(outcome).Inc()
	c.duration.Observe(r.Elapsed.Seconds())
}
