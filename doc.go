// Package threadpool provides an elastic pool of worker goroutines with
// blocking futures and visible reentrant locks.
//
// After creating a ThreadPool, callers queue no-argument functions for
// execution. The pool dispatches them to waiting workers and hands back a
// Future per submission.
//
// # Quick Start
//
// Initialize the global thread pool at application startup:
//
//	threadpool.InitGlobalThreadPool("app", 2, 10)
//	defer threadpool.ShutdownGlobalThreadPool()
//
// Submit work and wait on the Future:
//
//	future, err := threadpool.GlobalThreadPool().Submit(func() (any, error) {
//		return compute(), nil
//	})
//	if err != nil {
//		// pool already shut down
//	}
//	result, err := future.Get() // blocks until the worker resolves it
//
// # Key Concepts
//
// Future: a single-assignment, blocking result handle returned at
// submission time. Get blocks until the executing worker resolves it and
// re-surfaces any application error the job returned. The Future can be
// stored or passed to other goroutines in the meantime.
//
// ThreadPool: owns the job queue and the worker set. The pool grows
// lazily toward the queue backlog, bounded by its configured maximum, and
// shrinks only through natural worker death. Shutdown drains gracefully
// via poison pills; a job that has started always runs to completion.
//
// VLock: an alternative to a plain reentrant mutex that additionally
// exposes its owner and the ordered queue of goroutines waiting to
// acquire it, for diagnostics and deadlock analysis.
//
// LockRegistry: maps arbitrary keys to VLocks, created on first use.
// Registry instances are explicit values owned by the caller, not
// process-wide state.
//
// Async and Locked are callable wrappers around a function. Async calls
// return a Future immediately after queueing their function on a pool,
// while Locked calls first acquire the lock they were given, call their
// function, and release the lock on every exit path.
//
// # Error Handling
//
// An error returned by a job is captured by the worker, stored in the
// Future, and handed to whichever goroutine later calls Get. Panics are
// classified by a configurable PanicPolicy: captured panics surface as
// *core.PanicError through the Future; fatal ones terminate the worker
// without resolving it, which leaves waiters blocked — bound the wait
// with Future.GetContext when that policy is in use.
package threadpool
