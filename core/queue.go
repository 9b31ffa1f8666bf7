package core

import (
	"sync"

	"github.com/eapache/queue"
)

const defaultSignalCap = 64

// Callable is the unit of work: a no-argument function returning a value
// or an application-level error. Anything callable can be adapted to this
// shape with a closure.
type Callable func() (any, error)

// Job pairs a Callable with the Future that will carry its result, plus
// an optional caller-supplied associated value for introspection.
//
// A Job whose Call is nil is the poison pill: a worker that dequeues it
// resolves the attached Future (if any) with nil and terminates.
type Job struct {
	Call       Callable
	Future     *Future
	Associated any
}

// IsPill reports whether the job is a termination command.
func (j Job) IsPill() bool {
	return j.Call == nil
}

// JobQueue is an unbounded, thread-safe FIFO of jobs shared by all
// workers of a pool. Jobs are dequeued in submission order across the
// whole pool; completion order is up to the workers.
type JobQueue struct {
	mu   sync.Mutex
	jobs *queue.Queue

	// Wake hint for blocked workers. Buffered: a dropped signal is fine
	// because Pop always re-checks the queue before waiting.
	signal chan struct{}
}

// NewJobQueue creates an empty JobQueue.
func NewJobQueue() *JobQueue {
	return &JobQueue{
		jobs:   queue.New(),
		signal: make(chan struct{}, defaultSignalCap),
	}
}

// Push enqueues a job and wakes at most one blocked worker.
func (q *JobQueue) Push(j Job) {
	q.mu.Lock()
	q.jobs.Add(j)
	q.mu.Unlock()

	select {
	case q.signal <- struct{}{}:
	default:
		// Signal channel full; enough wakeups are already pending.
	}
}

// TryPop dequeues the oldest job without blocking.
func (q *JobQueue) TryPop() (Job, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.jobs.Length() == 0 {
		return Job{}, false
	}
	return q.jobs.Remove().(Job), true
}

// Pop dequeues the oldest job, blocking while the queue is empty.
// A blocked worker is only ever released by a new job or a poison pill;
// there is no other way out of the wait.
func (q *JobQueue) Pop() Job {
	for {
		if j, ok := q.TryPop(); ok {
			return j
		}
		<-q.signal
	}
}

// Len returns the number of queued jobs.
func (q *JobQueue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.jobs.Length()
}

// Clear drops all queued jobs and releases their references.
func (q *JobQueue) Clear() {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.jobs = queue.New()
}
