package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/agbru/fetchsim/internal/cli"
	"github.com/agbru/fetchsim/internal/config"
	apperrors "github.com/agbru/fetchsim/internal/errors"
	"github.com/agbru/fetchsim/internal/fetch"
	"github.com/agbru/fetchsim/internal/logging"
	"github.com/agbru/fetchsim/internal/metrics"
	"github.com/agbru/fetchsim/internal/orchestration"
	"github.com/agbru/fetchsim/internal/tui"
	"github.com/agbru/fetchsim/internal/ui"
)

// Application represents the fetchsim application instance.
type Application struct {
	Config    config.AppConfig
	Out       io.Writer
	ErrWriter io.Writer

	sources  fetch.SourceFactory
	progress io.Writer
	runTUI   func(ctx context.Context, opts orchestration.Options) (orchestration.Report, error)
}

// AppOption configures an Application during construction.
type AppOption func(*Application)

// WithSources replaces the seed-derived random sources, mainly for tests.
func WithSources(f fetch.SourceFactory) AppOption {
	return func(a *Application) { a.sources = f }
}

// WithProgressWriter sets where the progress spinner is drawn. The spinner
// is only shown in quiet mode and only when this writer is a terminal.
func WithProgressWriter(w io.Writer) AppOption {
	return func(a *Application) { a.progress = w }
}

// New creates a new Application for an already resolved configuration.
func New(cfg config.AppConfig, out, errWriter io.Writer, opts ...AppOption) *Application {
	app := &Application{Config: cfg, Out: out, ErrWriter: errWriter, progress: os.Stderr}
	for _, opt := range opts {
		opt(app)
	}
	if app.sources == nil {
		app.sources = fetch.NewSourceFactory(cfg.Seed)
	}
	if app.runTUI == nil {
		app.runTUI = func(ctx context.Context, opts orchestration.Options) (orchestration.Report, error) {
			return tui.Run(ctx, app.Config.Endpoints, opts, Version)
		}
	}
	return app
}

// Run executes one simulated fetch run and returns the process exit code.
func (a *Application) Run(ctx context.Context) int {
	ctx, stopSignals := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	ui.InitTheme(a.Config.NoColor, a.Out)

	level, err := logging.ParseLevel(a.Config.LogLevel)
	if err != nil {
		fmt.Fprintf(a.ErrWriter, "Error: %v\n", err)
		return apperrors.ExitErrorConfig
	}
	logWriter := a.ErrWriter
	if a.Config.TUI {
		// The dashboard owns the terminal.
		logWriter = io.Discard
	}
	logger := logging.NewConsoleLogger(logWriter, "fetchsim", level)
	logger.Debug("configuration resolved",
		logging.Int("endpoints", len(a.Config.Endpoints)),
		logging.String("delay", a.Config.DelayRange().String()),
		logging.Int("workers", a.Config.Workers),
		logging.Uint64("seed", a.Config.Seed),
	)

	collector := metrics.NewCollector()
	logPresenter := orchestration.NewLogPresenter(logger)
	opts := orchestration.Options{
		Delays:  a.Config.DelayRange(),
		Workers: a.Config.Workers,
		Sources: a.sources,
	}

	var report orchestration.Report
	var runErr error
	if a.Config.TUI {
		opts.Presenter = orchestration.Presenters(collector, logPresenter)
		opts.Notifier = fetch.Notifiers(collector, logPresenter)
		report, err = a.runTUI(ctx, opts)
		switch {
		case errors.Is(err, tui.ErrQuit):
			runErr = err
		case err != nil:
			logger.Error("dashboard failed", err)
			return apperrors.ExitErrorGeneric
		}
		cli.DisplaySummary(a.Out, report)
	} else {
		console := cli.NewConsolePresenter(a.Out, a.Config.Quiet)
		presenters := []orchestration.Presenter{console, collector, logPresenter}
		notifiers := []fetch.Notifier{console, collector, logPresenter}
		if a.Config.Quiet && ui.IsTerminal(a.progress) {
			sp := cli.NewSpinnerPresenter(a.progress)
			presenters = append(presenters, sp)
			notifiers = append(notifiers, sp)
		}
		opts.Presenter = orchestration.Presenters(presenters...)
		opts.Notifier = fetch.Notifiers(notifiers...)
		report = orchestration.RunAll(ctx, a.Config.Endpoints, opts)
	}

	if err := collector.WriteTextfile(a.Config.MetricsFile); err != nil {
		logger.Error("metrics export failed", err, logging.String("path", a.Config.MetricsFile))
		return apperrors.ExitErrorGeneric
	}

	if runErr == nil {
		runErr = ctx.Err()
	}
	return apperrors.ExitCodeForRun(report.Crashed, runErr)
}
