package core

import (
	"context"
	"sync"
)

// Future is a single-assignment, blocking result container.
//
// A Future is created empty by Submit and written exactly once by the
// worker that executes the job. Get blocks until that write happens;
// every call after resolution returns the same cached value without
// re-executing anything.
type Future struct {
	mu       sync.Mutex
	done     chan struct{}
	value    any
	err      error
	resolved bool
}

// NewFuture creates an unresolved Future.
func NewFuture() *Future {
	return &Future{done: make(chan struct{})}
}

// Resolve completes the Future with a value, waking all blocked readers.
// Resolving twice (by either Resolve or Fail) returns ErrAlreadyResolved.
func (f *Future) Resolve(value any) error {
	return f.complete(value, nil)
}

// Fail completes the Future with an error. Get re-surfaces the error to
// every reader.
func (f *Future) Fail(err error) error {
	return f.complete(nil, err)
}

func (f *Future) complete(value any, err error) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.resolved {
		return ErrAlreadyResolved
	}
	f.value = value
	f.err = err
	f.resolved = true
	close(f.done)
	return nil
}

// Get blocks until the Future is resolved, then returns the stored value
// or error. Multiple goroutines may call Get concurrently; all observe
// the same resolution.
func (f *Future) Get() (any, error) {
	<-f.done
	return f.value, f.err
}

// GetContext is Get with a cancellation point. The default Get path
// blocks indefinitely, matching the source semantics; GetContext lets
// callers bound the wait with a deadline or cancellation.
func (f *Future) GetContext(ctx context.Context) (any, error) {
	select {
	case <-f.done:
		return f.value, f.err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// IsResolved reports whether the Future has been resolved, without blocking.
func (f *Future) IsResolved() bool {
	select {
	case <-f.done:
		return true
	default:
		return false
	}
}
