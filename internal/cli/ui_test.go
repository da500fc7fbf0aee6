package cli

import (
	"bytes"
	"errors"
	"testing"
	"time"

	"github.com/briandowns/spinner"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/agbru/fetchsim/internal/cli/mocks"
	"github.com/agbru/fetchsim/internal/orchestration"
)

func TestRealSpinner(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	s := spinner.New(spinner.CharSets[11], 10*time.Millisecond, spinner.WithWriter(&buf))
	rs := &realSpinner{s}

	// Just verify these methods don't panic
	rs.Start()
	rs.UpdateSuffix(" test")
	rs.Stop()
	assert.Equal(t, " test", s.Suffix)
}

func TestSpinnerPresenter_Lifecycle(t *testing.T) {
	originalNewSpinner := newSpinner
	t.Cleanup(func() { newSpinner = originalNewSpinner })

	ctrl := gomock.NewController(t)
	mockS := mocks.NewMockSpinner(ctrl)
	newSpinner = func(options ...spinner.Option) Spinner { return mockS }

	gomock.InOrder(
		mockS.EXPECT().UpdateSuffix(" collected 0/2, ETA calculating..."),
		mockS.EXPECT().Start(),
		mockS.EXPECT().UpdateSuffix(gomock.Any()),
		mockS.EXPECT().UpdateSuffix(" collected 2/2, ETA calculating..."),
		mockS.EXPECT().Stop(),
	)

	p := NewSpinnerPresenter(&bytes.Buffer{})
	p.RunStarted([]string{"a", "b"})
	p.TaskStarted("a", time.Millisecond)
	p.TaskCompleted("a")
	p.TaskSucceeded(orchestration.TaskResult{Endpoint: "a", State: orchestration.StateSucceeded})
	p.TaskCrashed(orchestration.TaskResult{Endpoint: "b", State: orchestration.StateCrashed, Err: errors.New("x")})
	p.RunFinished(orchestration.Report{})
}

func TestSpinnerPresenter_FailedAdvances(t *testing.T) {
	originalNewSpinner := newSpinner
	t.Cleanup(func() { newSpinner = originalNewSpinner })

	ctrl := gomock.NewController(t)
	mockS := mocks.NewMockSpinner(ctrl)
	newSpinner = func(options ...spinner.Option) Spinner { return mockS }

	mockS.EXPECT().Start()
	mockS.EXPECT().UpdateSuffix(gomock.Any()).Times(2)

	p := NewSpinnerPresenter(&bytes.Buffer{})
	p.RunStarted([]string{"a"})
	p.TaskFailed(orchestration.TaskResult{Endpoint: "a", State: orchestration.StateFailed})
	assert.Equal(t, 1, p.tracker.Snapshot().Collected)
}

func TestFormatSpinnerSuffix(t *testing.T) {
	t.Parallel()
	got := FormatSpinnerSuffix(orchestration.ProgressSnapshot{Total: 3, Collected: 1, ETA: 2 * time.Second})
	assert.Equal(t, " collected 1/3, ETA 2s", got)
}
