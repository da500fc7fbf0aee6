package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/agbru/fetchsim/internal/fetch"
	"github.com/agbru/fetchsim/internal/format"
	"github.com/agbru/fetchsim/internal/orchestration"
	"github.com/agbru/fetchsim/internal/sysmon"
)

// SysSampleInterval is the refresh period of the host stats in the header.
const SysSampleInterval = time.Second

// row is the display state of one task.
type row struct {
	endpoint string
	state    orchestration.State
	delay    time.Duration
	detail   string
}

// Model is the root bubbletea model: one row per endpoint, updated as the
// run progresses.
type Model struct {
	header  HeaderModel
	spinner spinner.Model
	help    help.Model
	keymap  KeyMap

	rows   []row
	done   bool
	quit   bool
	report orchestration.Report

	ctx    context.Context
	cancel context.CancelFunc
	width  int
}

// NewModel creates a new TUI model for a run whose context is ctx.
func NewModel(ctx context.Context, version string) Model {
	ctx, cancel := context.WithCancel(ctx)

	sp := spinner.New(spinner.WithSpinner(spinner.Dot), spinner.WithStyle(spinnerStyle))

	return Model{
		header:  NewHeaderModel(version),
		spinner: sp,
		help:    help.New(),
		keymap:  DefaultKeyMap(),
		ctx:     ctx,
		cancel:  cancel,
	}
}

// Init returns the initial commands.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, watchContextCmd(m.ctx), sampleSysCmd(m.ctx, 0))
}

// Update handles all incoming messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.header.SetWidth(msg.Width)
		m.help.Width = msg.Width
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case RunStartedMsg:
		m.rows = make([]row, len(msg.Endpoints))
		for i, ep := range msg.Endpoints {
			m.rows[i] = row{endpoint: ep, state: orchestration.StatePending}
		}
		m.header.SetTotal(len(msg.Endpoints))
		return m, nil

	case TaskStartedMsg:
		// Duplicate endpoints start in launch order; take the first pending row.
		for i := range m.rows {
			if m.rows[i].endpoint == msg.Endpoint && m.rows[i].state == orchestration.StatePending {
				m.rows[i].state = orchestration.StateRunning
				m.rows[i].delay = msg.Delay
				break
			}
		}
		return m, nil

	case TaskResultMsg:
		r := msg.Result
		if r.Index >= 0 && r.Index < len(m.rows) {
			m.rows[r.Index].state = r.State
			m.rows[r.Index].detail = resultDetail(r)
		}
		m.header.Collect()
		return m, nil

	case RunFinishedMsg:
		m.done = true
		m.report = msg.Report
		m.header.SetDone()
		return m, nil

	case SysStatsMsg:
		if msg.Err == nil {
			m.header.SetSysStats(msg.Stats)
		}
		return m, sampleSysCmd(m.ctx, SysSampleInterval)

	case ContextCancelledMsg:
		m.header.SetDone()
		return m, tea.Quit
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keymap.Quit):
		if m.cancel != nil {
			m.cancel()
		}
		m.quit = true
		return m, tea.Quit

	case key.Matches(msg, m.keymap.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}
	return m, nil
}

// View renders the header, the task table and the footer.
func (m Model) View() string {
	var b strings.Builder
	width := 0
	for _, r := range m.rows {
		if w := lipgloss.Width(r.endpoint); w > width {
			width = w
		}
	}
	for i, r := range m.rows {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(m.renderRow(r, width))
	}
	if len(m.rows) == 0 {
		b.WriteString(dimStyle.Render("waiting for tasks..."))
	}

	footer := m.help.View(m.keymap)
	if m.done {
		footer = statusDoneStyle.Render("=== done === "+m.report.Summary()) + "  " + footer
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		m.header.View(),
		panelStyle.Render(b.String()),
		footer,
	)
}

func (m Model) renderRow(r row, width int) string {
	var icon, status string
	switch r.state {
	case orchestration.StatePending:
		icon, status = statusPendingStyle.Render("·"), statusPendingStyle.Render("pending")
	case orchestration.StateRunning:
		icon, status = m.spinner.View(), statusRunningStyle.Render("running")
	case orchestration.StateSucceeded:
		icon, status = statusDoneStyle.Render("✔"), statusDoneStyle.Render("succeeded")
	case orchestration.StateFailed:
		icon, status = statusFailedStyle.Render("✘"), statusFailedStyle.Render("failed")
	default:
		icon, status = statusCrashedStyle.Render("!"), statusCrashedStyle.Render("crashed")
	}

	delay := ""
	if r.delay > 0 {
		delay = format.FormatExecutionDuration(r.delay)
	}
	pad := spaces(width - lipgloss.Width(r.endpoint))
	line := fmt.Sprintf("%s %s%s  %-9s  %7s", icon, endpointStyle.Render(r.endpoint), pad, status, dimStyle.Render(delay))
	if r.detail != "" {
		line += "  " + dimStyle.Render(r.detail)
	}
	return line
}

func resultDetail(r orchestration.TaskResult) string {
	if r.State == orchestration.StateSucceeded {
		return r.Payload
	}
	if r.Err != nil {
		return r.Err.Error()
	}
	return ""
}

// ErrQuit reports that the dashboard was closed while tasks were still
// running. It wraps context.Canceled.
var ErrQuit = fmt.Errorf("tui: dashboard closed before the run finished: %w", context.Canceled)

// Run is the public entry point for the TUI mode. It runs the endpoints
// through the orchestrator while the dashboard renders their progress and
// returns the final report once both the run and the program have ended.
// Quitting early cancels the run; the remaining tasks then end as crashed
// and the returned error is ErrQuit.
func Run(ctx context.Context, endpoints []string, opts orchestration.Options, version string) (orchestration.Report, error) {
	return run(ctx, endpoints, opts, version, tea.WithAltScreen())
}

func run(ctx context.Context, endpoints []string, opts orchestration.Options, version string, progOpts ...tea.ProgramOption) (orchestration.Report, error) {
	// Rebuild styles from the current ui theme (set by app.Run via InitTheme).
	initTUIStyles()

	model := NewModel(ctx, version)
	defer model.cancel()

	ref := &programRef{}
	bridge := &Bridge{ref: ref}
	opts.Presenter = orchestration.Presenters(opts.Presenter, bridge)
	opts.Notifier = fetch.Notifiers(opts.Notifier, bridge)

	p := tea.NewProgram(model, progOpts...)
	// Inject the program reference before running so the bridge can Send.
	ref.SetProgram(p)

	reports := make(chan orchestration.Report, 1)
	go func() {
		reports <- orchestration.RunAll(model.ctx, endpoints, opts)
	}()

	final, err := p.Run()
	model.cancel()
	report := <-reports
	if err != nil {
		return report, fmt.Errorf("tui: %w", err)
	}
	if quitEarly(final) {
		return report, ErrQuit
	}
	return report, nil
}

// quitEarly reports whether the user closed the dashboard before the final
// report arrived.
func quitEarly(final tea.Model) bool {
	m, ok := final.(Model)
	return ok && m.quit && !m.done
}

// sampleSysCmd samples host usage after the given delay.
func sampleSysCmd(ctx context.Context, after time.Duration) tea.Cmd {
	sample := func(time.Time) tea.Msg {
		stats, err := sysmon.Sample(ctx)
		return SysStatsMsg{Stats: stats, Err: err}
	}
	if after <= 0 {
		return func() tea.Msg { return sample(time.Now()) }
	}
	return tea.Tick(after, sample)
}

// watchContextCmd waits for context cancellation and sends a message.
func watchContextCmd(ctx context.Context) tea.Cmd {
	return func() tea.Msg {
		<-ctx.Done()
		return ContextCancelledMsg{Err: ctx.Err()}
	}
}
