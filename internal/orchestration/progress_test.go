package orchestration

import (
	"sync"
	"testing"
	"time"
)

func TestProgressTracker_Empty(t *testing.T) {
	p := NewProgressTracker()
	s := p.Snapshot()
	if s.Total != 0 || s.Fraction != 0 || s.ETA != 0 {
		t.Errorf("expected zero snapshot, got %+v", s)
	}
}

func TestProgressTracker_Fraction(t *testing.T) {
	p := NewProgressTracker()
	p.RunStarted([]string{"a", "b", "c", "d"})

	p.TaskSucceeded(TaskResult{})
	if s := p.Snapshot(); s.Fraction != 0.25 {
		t.Errorf("expected Fraction=0.25, got %f", s.Fraction)
	}

	p.TaskFailed(TaskResult{})
	p.TaskCrashed(TaskResult{})
	s := p.Snapshot()
	if s.Collected != 3 {
		t.Errorf("expected Collected=3, got %d", s.Collected)
	}
	if s.Fraction != 0.75 {
		t.Errorf("expected Fraction=0.75, got %f", s.Fraction)
	}
}

func TestProgressTracker_ETA(t *testing.T) {
	p := NewProgressTracker()
	clock := time.Unix(0, 0)
	p.now = func() time.Time { return clock }

	p.RunStarted([]string{"a", "b", "c"})
	if eta := p.Snapshot().ETA; eta != 0 {
		t.Errorf("expected no ETA before the first outcome, got %v", eta)
	}

	clock = clock.Add(2 * time.Second)
	p.TaskSucceeded(TaskResult{})
	if eta := p.Snapshot().ETA; eta != 4*time.Second {
		t.Errorf("expected ETA=4s, got %v", eta)
	}

	p.TaskSucceeded(TaskResult{})
	p.TaskSucceeded(TaskResult{})
	if eta := p.Snapshot().ETA; eta != 0 {
		t.Errorf("expected ETA=0 once complete, got %v", eta)
	}
}

func TestProgressTracker_RunStartedResets(t *testing.T) {
	p := NewProgressTracker()
	p.RunStarted([]string{"a"})
	p.TaskStarted("a", time.Millisecond)
	p.TaskSucceeded(TaskResult{})

	p.RunStarted([]string{"x", "y"})
	s := p.Snapshot()
	if s.Total != 2 || s.Started != 0 || s.Collected != 0 {
		t.Errorf("expected reset snapshot, got %+v", s)
	}
}

func TestProgressTracker_ConcurrentStarts(t *testing.T) {
	p := NewProgressTracker()
	const n = 64
	endpoints := make([]string, n)
	p.RunStarted(endpoints)

	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			p.TaskStarted("ep", 0)
			p.TaskCompleted("ep")
		}()
	}
	wg.Wait()

	if s := p.Snapshot(); s.Started != n {
		t.Errorf("expected Started=%d, got %d", n, s.Started)
	}
}
