package core

import (
	"runtime/debug"
	"sync"
	"sync/atomic"
	"time"
)

// Worker pulls jobs from a shared JobQueue, executes them, and resolves
// the associated Future, then returns to the queue to wait for more work.
//
// Lifecycle: Idle -> Running -> Idle -> ... -> Terminated. The only way a
// worker stops is by dequeuing a poison pill; a dequeued real job always
// runs to completion. Workers are never reused after termination.
type Worker struct {
	id    int
	name  string
	pool  string
	queue *JobQueue

	busy  atomic.Bool
	alive atomic.Bool

	jobMu sync.Mutex
	job   *Job // nil while idle

	panicHandler PanicHandler
	panicPolicy  PanicPolicy
	metrics      Metrics
	logger       Logger
}

func newWorker(id int, name, pool string, queue *JobQueue, cfg *ThreadPoolConfig) *Worker {
	w := &Worker{
		id:           id,
		name:         name,
		pool:         pool,
		queue:        queue,
		panicHandler: cfg.PanicHandler,
		panicPolicy:  cfg.PanicPolicy,
		metrics:      cfg.Metrics,
		logger:       cfg.Logger,
	}
	w.alive.Store(true)
	return w
}

// ID returns the worker's numeric id within its pool.
func (w *Worker) ID() int {
	return w.id
}

// Name returns the worker's diagnostic name ("<pool> - <n>").
func (w *Worker) Name() string {
	return w.name
}

// IsBusy reports whether the worker is currently executing a job.
func (w *Worker) IsBusy() bool {
	return w.busy.Load()
}

// IsAlive reports whether the worker's loop is still running.
func (w *Worker) IsAlive() bool {
	return w.alive.Load()
}

// Job returns the job currently being executed, or nil while idle.
func (w *Worker) Job() *Job {
	w.jobMu.Lock()
	defer w.jobMu.Unlock()
	return w.job
}

// AssociatedValue returns the associated value of the current job, or nil
// while idle.
func (w *Worker) AssociatedValue() any {
	w.jobMu.Lock()
	defer w.jobMu.Unlock()
	if w.job == nil {
		return nil
	}
	return w.job.Associated
}

// run is the worker main loop. It exits only on a poison pill.
func (w *Worker) run() {
	defer w.alive.Store(false)

	for {
		job := w.queue.Pop()

		if job.IsPill() {
			// Resolving a pill's future lets shutdown observers wait on
			// termination without polling.
			if job.Future != nil {
				_ = job.Future.Resolve(nil)
			}
			w.logger.Debug("worker terminated", F("worker", w.name))
			return
		}

		w.setJob(&job)
		fatal := w.execute(job)
		w.setJob(nil)

		if fatal {
			w.logger.Error("worker terminated by fatal panic", F("worker", w.name))
			return
		}
	}
}

func (w *Worker) setJob(j *Job) {
	w.jobMu.Lock()
	w.job = j
	w.busy.Store(j != nil)
	w.jobMu.Unlock()
}

// execute runs a single job and resolves its future. It returns true when
// the job panicked and the policy classified the panic as fatal; in that
// case the future is deliberately left unresolved and the worker dies.
func (w *Worker) execute(job Job) (fatal bool) {
	start := time.Now()
	defer func() {
		w.metrics.RecordJobDuration(w.pool, time.Since(start))
	}()

	defer func() {
		r := recover()
		if r == nil {
			return
		}
		stack := debug.Stack()
		w.panicHandler.HandlePanic(w.pool, w.name, r, stack)
		w.metrics.RecordJobPanic(w.pool, r)

		if w.panicPolicy(r) {
			if job.Future != nil {
				_ = job.Future.Fail(&PanicError{Value: r, Stack: stack})
			}
			return
		}
		fatal = true
	}()

	val, err := job.Call()
	if job.Future == nil {
		return false
	}
	if err != nil {
		// Application-level failure: captured here, re-surfaced to
		// whichever goroutine later calls Get.
		_ = job.Future.Fail(err)
	} else {
		_ = job.Future.Resolve(val)
	}
	return false
}
