package core

import "sync"

// LockRegistry maps arbitrary comparable keys to VLocks, creating each
// lock lazily on first use. It can be more convenient than handing lock
// objects around directly.
//
// A registry is an explicit instance rather than process-global state:
// callers own its lifetime, and tests run in isolation. Entries persist
// until DeleteLockFor removes them; nothing is garbage-collected behind
// the caller's back.
type LockRegistry struct {
	// mu guards the mapping itself and is distinct from every stored
	// VLock, so lazy creation can never deadlock against lock users.
	mu    sync.Mutex
	locks map[any]*VLock
}

// NewLockRegistry creates an empty registry.
func NewLockRegistry() *LockRegistry {
	return &LockRegistry{locks: make(map[any]*VLock)}
}

// LockFor returns the VLock registered for key, creating and registering
// one if absent. Lookup and creation are atomic with respect to
// concurrent first use of the same key.
func (r *LockRegistry) LockFor(key any) *VLock {
	r.mu.Lock()
	defer r.mu.Unlock()

	l, ok := r.locks[key]
	if !ok {
		l = NewVLock()
		r.locks[key] = l
	}
	return l
}

// Lock acquires the VLock for key, creating it if necessary. Note that
// this only protects against other goroutines that coordinate through
// the same registry and key.
func (r *LockRegistry) Lock(key any) {
	r.LockFor(key).Acquire()
}

// Unlock releases a held lock on key. Every Lock must be balanced by an
// Unlock before another goroutine may acquire the key. Unlocking a key
// with no registered lock is a no-op.
func (r *LockRegistry) Unlock(key any) error {
	r.mu.Lock()
	l, ok := r.locks[key]
	r.mu.Unlock()

	if !ok {
		return nil
	}
	_, err := l.Release()
	return err
}

// DeleteLockFor removes the registry entry for key, if one exists.
// Goroutines still holding a reference to the removed VLock keep using
// it; the registry just stops handing it out.
func (r *LockRegistry) DeleteLockFor(key any) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.locks, key)
}

// Len returns the number of registered locks.
func (r *LockRegistry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.locks)
}
