package core

// Async wraps a callable and a pool. Calling the returned function
// submits the callable to the pool and returns the resulting Future
// immediately, while the work runs on a worker goroutine.
func Async(call Callable, pool *ThreadPool) func() (*Future, error) {
	return func() (*Future, error) {
		return pool.Submit(call)
	}
}

// Locked wraps a callable and a VLock. The returned callable acquires
// the lock, invokes the wrapped function, and releases the lock on every
// exit path, including panics. Calls from goroutines that do not hold
// the lock block until it is available; only functions sharing the same
// lock are serialized.
func Locked(call Callable, lock *VLock) Callable {
	return func() (any, error) {
		lock.Acquire()
		defer lock.Release()
		return call()
	}
}
