package orchestration

import (
	"context"
	"runtime/debug"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	apperrors "github.com/agbru/fetchsim/internal/errors"
	"github.com/agbru/fetchsim/internal/fetch"
)

// TracerName identifies the spans emitted by this package.
const TracerName = "github.com/agbru/fetchsim/internal/orchestration"

// FetchFunc performs one unit of work. The default is fetch.Simulate bound
// to Options.Delays; tests substitute their own to script crashes.
type FetchFunc[T any] func(ctx context.Context, endpoint string, payload T, rng fetch.Source, n fetch.Notifier) (T, error)

// Job describes one task to launch.
type Job[T fetch.Payload[T]] struct {
	Endpoint string
	Payload  T
	// Fetch overrides the simulated fetch for this job when non-nil.
	Fetch FetchFunc[T]
}

// Options configures a run. The zero value is usable: instant fetches, one
// goroutine per task, time-seeded sources and no observers. DefaultOptions
// applies the standard delay range.
type Options struct {
	// Delays bounds each simulated fetch.
	Delays fetch.DelayRange
	// Workers caps the number of tasks running at once. Zero means no cap.
	Workers int
	// Sources hands every task its own random source.
	Sources fetch.SourceFactory
	// Notifier receives start/completion notices from inside the tasks.
	Notifier fetch.Notifier
	// Presenter receives collected outcomes and the final report.
	Presenter Presenter
	// Tracer creates one span per task. Defaults to the global provider.
	Tracer trace.Tracer
}

// DefaultOptions returns Options with the standard 500ms-1500ms delay range.
func DefaultOptions() Options {
	return Options{Delays: fetch.DefaultDelayRange()}
}

func (o Options) withDefaults() Options {
	if o.Sources == nil {
		o.Sources = fetch.NewSourceFactory(0)
	}
	if o.Notifier == nil {
		o.Notifier = fetch.NullNotifier{}
	}
	if o.Presenter == nil {
		o.Presenter = NullPresenter{}
	}
	if o.Tracer == nil {
		o.Tracer = otel.Tracer(TracerName)
	}
	return o
}

// RunAll fetches "Data from {endpoint}" from every endpoint concurrently and
// returns the aggregated report.
func RunAll(ctx context.Context, endpoints []string, opts Options) Report {
	jobs := make([]Job[fetch.Text], len(endpoints))
	for i, endpoint := range endpoints {
		jobs[i] = Job[fetch.Text]{Endpoint: endpoint, Payload: fetch.PayloadFor(endpoint)}
	}
	return Run(ctx, jobs, opts)
}

// Run orchestrates the concurrent execution of jobs.
//
// Every job is launched in input order and gets its own Handle. Handles are
// then collected one by one in the same order; the Report counters and the
// Presenter are only touched from this goroutine. A failed or crashed task
// never cancels its siblings.
func Run[T fetch.Payload[T]](ctx context.Context, jobs []Job[T], opts Options) Report {
	opts = opts.withDefaults()
	start := time.Now()

	endpoints := make([]string, len(jobs))
	for i, job := range jobs {
		endpoints[i] = job.Endpoint
	}
	opts.Presenter.RunStarted(endpoints)

	// A plain Group: errgroup.WithContext would cancel siblings on failure.
	var g errgroup.Group
	if opts.Workers > 0 {
		g.SetLimit(opts.Workers)
	}

	handles := make([]*Handle[T], len(jobs))
	for i, job := range jobs {
		handles[i] = launch(ctx, &g, i, job, opts)
	}

	report := Report{Results: make([]TaskResult, 0, len(jobs))}
	for _, h := range handles {
		res := h.Wait().result(func(v T) string { return v.String() })
		report.record(res)
		present(opts.Presenter, res)
	}
	_ = g.Wait()

	report.Elapsed = time.Since(start)
	opts.Presenter.RunFinished(report)
	return report
}

func launch[T fetch.Payload[T]](ctx context.Context, g *errgroup.Group, index int, job Job[T], opts Options) *Handle[T] {
	h := newHandle[T](index, job.Endpoint)
	run := job.Fetch
	if run == nil {
		delays := opts.Delays
		run = func(ctx context.Context, endpoint string, payload T, rng fetch.Source, n fetch.Notifier) (T, error) {
			return fetch.Simulate(ctx, endpoint, payload, delays, rng, n)
		}
	}
	rng := opts.Sources(index)

	g.Go(func() error {
		h.resolve(execute(ctx, index, job, run, rng, opts))
		return nil
	})
	return h
}

// execute runs one job and converts whatever happens, including a panic,
// into an Outcome.
func execute[T fetch.Payload[T]](ctx context.Context, index int, job Job[T], run FetchFunc[T], rng fetch.Source, opts Options) (outcome Outcome[T]) {
	ctx, span := opts.Tracer.Start(ctx, "fetch "+job.Endpoint, trace.WithAttributes(
		attribute.String("fetchsim.endpoint", job.Endpoint),
		attribute.Int("fetchsim.index", index),
	))
	start := time.Now()

	defer func() {
		if r := recover(); r != nil {
			var zero T
			outcome = Outcome[T]{
				State: StateCrashed,
				Value: zero,
				Err:   &apperrors.TaskPanicError{Endpoint: job.Endpoint, Value: r, Stack: debug.Stack()},
			}
		}
		outcome.Elapsed = time.Since(start)
		endSpan(span, outcome.State, outcome.Err)
	}()

	value, err := run(ctx, job.Endpoint, job.Payload, rng, opts.Notifier)
	return classify(value, err)
}

// classify maps a fetch result onto the three terminal states. Only a
// *fetch.Error is a simulated failure; any other error means the unit of
// work itself broke.
func classify[T any](value T, err error) Outcome[T] {
	switch {
	case err == nil:
		return Outcome[T]{State: StateSucceeded, Value: value}
	default:
		var zero T
		if _, ok := fetch.AsError(err); ok {
			return Outcome[T]{State: StateFailed, Value: zero, Err: err}
		}
		return Outcome[T]{State: StateCrashed, Value: zero, Err: err}
	}
}

func endSpan(span trace.Span, state State, err error) {
	span.SetAttributes(attribute.String("fetchsim.state", state.String()))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}
