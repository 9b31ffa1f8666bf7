package core

import (
	"errors"
	"sync"
	"testing"
	"time"
)

// TestAsync_NonBlockingDispatch verifies Async submits and returns a
// Future immediately
func TestAsync_NonBlockingDispatch(t *testing.T) {
	pool := newTestPool(t, "async", 1, 2)

	release := make(chan struct{})
	call := Async(func() (any, error) {
		<-release
		return "async result", nil
	}, pool)

	start := time.Now()
	future, err := call()
	if err != nil {
		t.Fatalf("Async call failed: %v", err)
	}
	if elapsed := time.Since(start); elapsed > 50*time.Millisecond {
		t.Errorf("Async call blocked for %v", elapsed)
	}
	if future.IsResolved() {
		t.Error("future resolved before the job ran")
	}

	close(release)
	val, err := future.Get()
	if err != nil || val != "async result" {
		t.Errorf("future = (%v, %v), want (async result, nil)", val, err)
	}
}

// TestAsync_PoolShutDown verifies the wrapper surfaces submission errors
func TestAsync_PoolShutDown(t *testing.T) {
	cfg := DefaultThreadPoolConfig()
	cfg.Logger = NewNoOpLogger()
	pool := NewThreadPoolWithConfig("async-down", 1, 1, cfg)
	call := Async(func() (any, error) { return nil, nil }, pool)

	pool.Shutdown()
	pool.Join()

	if _, err := call(); !errors.Is(err, ErrPoolShutDown) {
		t.Errorf("Async after shutdown = %v, want ErrPoolShutDown", err)
	}
}

// TestLocked_SerializesExecution verifies two Locked wrappers around the
// same lock never run concurrently
// Given: Two goroutines calling Locked(f, lock)() repeatedly
// When: Both run to completion
// Then: The critical section is never entered twice at once
func TestLocked_SerializesExecution(t *testing.T) {
	// Arrange
	lock := NewVLock()
	var inCritical int
	var violations int

	call := Locked(func() (any, error) {
		inCritical++
		if inCritical != 1 {
			violations++
		}
		time.Sleep(time.Millisecond)
		inCritical--
		return nil, nil
	}, lock)

	// Act
	var wg sync.WaitGroup
	for g := 0; g < 2; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 20; i++ {
				if _, err := call(); err != nil {
					t.Errorf("Locked call failed: %v", err)
				}
			}
		}()
	}
	wg.Wait()

	// Assert
	if violations != 0 {
		t.Errorf("critical section overlapped %d times", violations)
	}
	if lock.IsLocked() {
		t.Error("lock still held after all calls returned")
	}
}

// TestLocked_ReleasesOnPanic verifies the lock is released on every exit
// path, including panics in the wrapped callable
func TestLocked_ReleasesOnPanic(t *testing.T) {
	lock := NewVLock()
	call := Locked(func() (any, error) {
		panic("inside locked section")
	}, lock)

	func() {
		defer func() {
			if recover() == nil {
				t.Error("panic did not propagate through Locked")
			}
		}()
		_, _ = call()
	}()

	if lock.IsLocked() {
		t.Fatal("lock leaked after panic in wrapped callable")
	}

	// The lock remains usable.
	lock.Acquire()
	if _, err := lock.Release(); err != nil {
		t.Errorf("Release after recovery failed: %v", err)
	}
}

// TestLocked_PropagatesResult verifies value and error pass through
func TestLocked_PropagatesResult(t *testing.T) {
	lock := NewVLock()
	want := errors.New("wrapped failure")

	okCall := Locked(func() (any, error) { return 99, nil }, lock)
	if val, err := okCall(); err != nil || val != 99 {
		t.Errorf("okCall = (%v, %v), want (99, nil)", val, err)
	}

	errCall := Locked(func() (any, error) { return nil, want }, lock)
	if _, err := errCall(); !errors.Is(err, want) {
		t.Errorf("errCall error = %v, want %v", err, want)
	}
}
