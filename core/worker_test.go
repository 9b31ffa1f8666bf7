package core

import (
	"testing"
	"time"
)

// TestWorker_PillResolvesFutureAndTerminates verifies the sentinel path
// Given: A worker blocked on an empty queue
// When: A pill with an attached Future is pushed
// Then: The worker resolves the Future with nil and terminates
func TestWorker_PillResolvesFutureAndTerminates(t *testing.T) {
	// Arrange
	q := NewJobQueue()
	cfg := DefaultThreadPoolConfig()
	cfg.Logger = NewNoOpLogger()
	w := newWorker(0, "pill-test - 0", "pill-test", q, cfg)

	done := make(chan struct{})
	go func() {
		w.run()
		close(done)
	}()

	// Act
	pillDone := NewFuture()
	q.Push(Job{Future: pillDone})

	// Assert
	val, err := pillDone.Get()
	if err != nil || val != nil {
		t.Errorf("pill future = (%v, %v), want (nil, nil)", val, err)
	}

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("worker did not terminate after pill")
	}
	if w.IsAlive() {
		t.Error("IsAlive() = true after termination")
	}
}

// TestWorker_IdleIntrospection verifies busy/job state transitions
func TestWorker_IdleIntrospection(t *testing.T) {
	q := NewJobQueue()
	cfg := DefaultThreadPoolConfig()
	cfg.Logger = NewNoOpLogger()
	w := newWorker(3, "intro - 3", "intro", q, cfg)

	if w.IsBusy() {
		t.Error("fresh worker reports busy")
	}
	if w.Job() != nil {
		t.Error("fresh worker reports a current job")
	}
	if w.ID() != 3 || w.Name() != "intro - 3" {
		t.Errorf("identity = (%d, %q), want (3, intro - 3)", w.ID(), w.Name())
	}

	go w.run()

	started := make(chan struct{})
	release := make(chan struct{})
	future := NewFuture()
	q.Push(Job{
		Call: func() (any, error) {
			close(started)
			<-release
			return nil, nil
		},
		Future:     future,
		Associated: 42,
	})

	<-started
	if !w.IsBusy() {
		t.Error("worker not busy while executing")
	}
	if got := w.AssociatedValue(); got != 42 {
		t.Errorf("AssociatedValue() = %v, want 42", got)
	}

	close(release)
	if _, err := future.Get(); err != nil {
		t.Fatalf("job failed: %v", err)
	}

	// Busy flag clears once the job resolves; poll briefly since the
	// worker updates it just after resolving the future.
	deadline := time.Now().Add(time.Second)
	for w.IsBusy() && time.Now().Before(deadline) {
		time.Sleep(time.Millisecond)
	}
	if w.IsBusy() {
		t.Error("worker still busy after job completion")
	}

	q.Push(Job{})
}
