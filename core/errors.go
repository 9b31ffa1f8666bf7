package core

import (
	"errors"
	"fmt"
)

// Sentinel errors surfaced by the pool and lock primitives.
var (
	// ErrPoolShutDown is returned by Submit after Shutdown has begun.
	ErrPoolShutDown = errors.New("threadpool: pool has been shut down")

	// ErrAlreadyResolved is returned when a Future is resolved twice.
	// Correct worker code never triggers this; seeing it means two
	// goroutines tried to complete the same job.
	ErrAlreadyResolved = errors.New("threadpool: future already resolved")

	// ErrNotOwner is returned by VLock.Release when the calling goroutine
	// does not hold the lock.
	ErrNotOwner = errors.New("threadpool: lock released by non-owner")
)

// PanicError wraps a panic captured at the worker boundary so it can be
// stored in a Future and inspected by whichever goroutine calls Get,
// arbitrarily far from where the panic occurred.
type PanicError struct {
	Value any
	Stack []byte
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("threadpool: job panicked: %v", e.Value)
}
