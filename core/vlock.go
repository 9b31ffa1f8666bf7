package core

import (
	"fmt"
	"sync"

	"github.com/petermattis/goid"
)

// VLock is a reentrant mutex with a (V)isible queue of waiting
// goroutines. At any time it exposes the identity of its owner and the
// ordered set of goroutines blocked trying to acquire it, for
// diagnostics and deadlock analysis.
//
// Goroutine identity comes from the runtime goroutine id. The wait queue
// reflects attempt order; the underlying primitive determines actual
// grant order, so the queue is an observability structure, not a
// fairness guarantee.
type VLock struct {
	// mu guards owner, holds, and waiting. It is never held while
	// blocking on sem, so readers can always inspect the lock.
	mu      sync.Mutex
	owner   int64
	holds   int
	waiting []int64

	// sem is the underlying exclusive primitive: a capacity-1 channel,
	// chosen over sync.Mutex for its non-blocking acquire path.
	sem chan struct{}
}

// NewVLock creates an unlocked VLock.
func NewVLock() *VLock {
	return &VLock{sem: make(chan struct{}, 1)}
}

// Acquire blocks until the calling goroutine holds the lock. If the
// caller already owns the lock, the hold count is incremented and
// Acquire returns immediately; Release must be called once per Acquire.
// While blocked, the caller's goroutine id appears in Waiting.
func (l *VLock) Acquire() {
	gid := goid.Get()

	l.mu.Lock()
	if l.holds > 0 && l.owner == gid {
		l.holds++
		l.mu.Unlock()
		return
	}
	l.waiting = append(l.waiting, gid)
	l.mu.Unlock()

	l.sem <- struct{}{}

	l.mu.Lock()
	l.removeWaiterLocked(gid)
	l.owner = gid
	l.holds = 1
	l.mu.Unlock()
}

// TryAcquire attempts the lock without blocking. On failure it returns
// false without ever joining the wait queue. Reentrant attempts by the
// owner always succeed.
func (l *VLock) TryAcquire() bool {
	gid := goid.Get()

	l.mu.Lock()
	defer l.mu.Unlock()

	if l.holds > 0 && l.owner == gid {
		l.holds++
		return true
	}

	select {
	case l.sem <- struct{}{}:
		l.owner = gid
		l.holds = 1
		return true
	default:
		return false
	}
}

// Release undoes one Acquire by the owning goroutine. It returns true
// only when the hold count reaches zero and the lock is actually
// released; intermediate releases of nested holds return false. Calling
// Release from a goroutine that is not the owner fails with ErrNotOwner.
func (l *VLock) Release() (bool, error) {
	gid := goid.Get()

	l.mu.Lock()
	defer l.mu.Unlock()

	if l.holds == 0 || l.owner != gid {
		return false, ErrNotOwner
	}

	l.holds--
	if l.holds > 0 {
		return false, nil
	}

	l.owner = 0
	<-l.sem
	return true, nil
}

// IsLocked reports whether any goroutine currently owns the lock.
func (l *VLock) IsLocked() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.holds > 0
}

// Owner returns the goroutine id of the current owner, if any.
func (l *VLock) Owner() (int64, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.holds == 0 {
		return 0, false
	}
	return l.owner, true
}

// Waiting returns the goroutine ids currently blocked in Acquire, in
// attempt order.
func (l *VLock) Waiting() []int64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]int64, len(l.waiting))
	copy(out, l.waiting)
	return out
}

func (l *VLock) removeWaiterLocked(gid int64) {
	for i, w := range l.waiting {
		if w == gid {
			l.waiting = append(l.waiting[:i], l.waiting[i+1:]...)
			return
		}
	}
}

func (l *VLock) String() string {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.holds == 0 {
		return fmt.Sprintf("<VLock unlocked waiting=%v>", l.waiting)
	}
	return fmt.Sprintf("<VLock owner=%d holds=%d waiting=%v>", l.owner, l.holds, l.waiting)
}
