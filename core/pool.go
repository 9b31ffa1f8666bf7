package core

import (
	"fmt"
	"sync"
	"time"
)

const restartPollInterval = 10 * time.Millisecond

// ThreadPool creates and maintains an elastic set of workers draining a
// shared JobQueue. Jobs are queued by calling Submit, which returns a
// Future for the job's eventual result.
//
// Elasticity law: the pool prunes dead workers and fills back up to
// minThreads on every submission, then grows one worker at a time while
// the number of idle workers is below the queue depth, never exceeding
// maxThreads. Excess work simply waits in the queue.
type ThreadPool struct {
	name       string
	minThreads int
	maxThreads int
	daemon     bool

	queue *JobQueue

	// mu serializes all worker-set mutation and the shutdown flag. It is
	// internal to the pool and unrelated to any user-facing VLock.
	mu          sync.Mutex
	workers     []*Worker
	nameCounter int
	shutDown    bool

	wg sync.WaitGroup

	config             *ThreadPoolConfig
	metrics            Metrics
	rejectedJobHandler RejectedJobHandler
	logger             Logger
}

// NewThreadPool creates a pool with default handlers and spawns the
// initial minThreads workers immediately.
func NewThreadPool(name string, minThreads, maxThreads int) *ThreadPool {
	return NewThreadPoolWithConfig(name, minThreads, maxThreads, DefaultThreadPoolConfig())
}

// NewThreadPoolWithConfig creates a pool with custom handlers.
// minThreads must be >= 0 and maxThreads >= minThreads; out-of-range
// values are clamped.
func NewThreadPoolWithConfig(name string, minThreads, maxThreads int, config *ThreadPoolConfig) *ThreadPool {
	if config == nil {
		config = DefaultThreadPoolConfig()
	}
	applyConfigDefaults(config)

	if minThreads < 0 {
		minThreads = 0
	}
	if maxThreads < minThreads {
		maxThreads = minThreads
	}

	p := &ThreadPool{
		name:               name,
		minThreads:         minThreads,
		maxThreads:         maxThreads,
		daemon:             config.Daemon,
		queue:              NewJobQueue(),
		config:             config,
		metrics:            config.Metrics,
		rejectedJobHandler: config.RejectedJobHandler,
		logger:             config.Logger,
	}

	p.mu.Lock()
	p.checkThreadsLocked()
	p.mu.Unlock()

	return p
}

func applyConfigDefaults(config *ThreadPoolConfig) {
	if config.PanicHandler == nil {
		config.PanicHandler = &DefaultPanicHandler{}
	}
	if config.PanicPolicy == nil {
		config.PanicPolicy = CaptureAllPanics
	}
	if config.Metrics == nil {
		config.Metrics = &NilMetrics{}
	}
	if config.RejectedJobHandler == nil {
		config.RejectedJobHandler = &DefaultRejectedJobHandler{}
	}
	if config.Logger == nil {
		config.Logger = NewDefaultLogger()
	}
}

// Name returns the pool's diagnostic label.
func (p *ThreadPool) Name() string {
	return p.name
}

// IsDaemon reports the recorded daemon flag. Goroutines never keep the
// process alive, so this is informational only.
func (p *ThreadPool) IsDaemon() bool {
	return p.daemon
}

// IsShutDown reports whether Shutdown has been called.
func (p *ThreadPool) IsShutDown() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.shutDown
}

// Submit queues call for execution and returns a Future that resolves
// with the call's result. It never blocks on execution; the returned
// Future is where callers wait. After Shutdown it fails with
// ErrPoolShutDown.
func (p *ThreadPool) Submit(call Callable) (*Future, error) {
	return p.SubmitWithValue(call, nil)
}

// SubmitWithValue is Submit with an associated value attached to the job
// for introspection (visible through Worker.AssociatedValue while the job
// runs).
func (p *ThreadPool) SubmitWithValue(call Callable, associated any) (*Future, error) {
	if call == nil {
		return nil, fmt.Errorf("threadpool: nil callable submitted to pool %q", p.name)
	}

	p.mu.Lock()
	if p.shutDown {
		p.mu.Unlock()
		p.rejectedJobHandler.HandleRejectedJob(p.name, "shut down")
		p.metrics.RecordJobRejected(p.name, "shut down")
		return nil, ErrPoolShutDown
	}

	future := NewFuture()
	p.queue.Push(Job{Call: call, Future: future, Associated: associated})
	p.metrics.RecordQueueDepth(p.name, p.queue.Len())
	p.checkThreadsLocked()
	p.mu.Unlock()

	return future, nil
}

// checkThreadsLocked enforces the thread-count policy. Callers must hold
// p.mu.
func (p *ThreadPool) checkThreadsLocked() {
	// Prune workers that died (pill or fatal panic).
	live := p.workers[:0]
	for _, w := range p.workers {
		if w.IsAlive() {
			live = append(live, w)
		}
	}
	p.workers = live

	for len(p.workers) < p.minThreads {
		p.addThreadLocked()
	}

	// Grow lazily toward the backlog, bounded above by maxThreads.
	for p.idleCountLocked() < p.queue.Len() {
		if len(p.workers) >= p.maxThreads {
			break
		}
		p.addThreadLocked()
	}
}

func (p *ThreadPool) idleCountLocked() int {
	idle := 0
	for _, w := range p.workers {
		if w.IsAlive() && !w.IsBusy() {
			idle++
		}
	}
	return idle
}

func (p *ThreadPool) addThreadLocked() {
	name := fmt.Sprintf("%s - %d", p.name, p.nameCounter)
	w := newWorker(p.nameCounter, name, p.name, p.queue, p.config)
	p.nameCounter++
	p.workers = append(p.workers, w)

	p.wg.Add(1)
	go func() {
		defer p.wg.Done()
		w.run()
	}()

	p.logger.Debug("worker started", F("pool", p.name), F("worker", name))
}

// Shutdown causes the pool to drain gracefully: no further submissions
// are accepted, and one poison pill is queued per tracked worker so each
// exits after finishing its current work. Shutdown does not wait; use
// Join to block until every worker has terminated.
func (p *ThreadPool) Shutdown() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.shutDown {
		return
	}
	p.shutDown = true

	for range p.workers {
		p.queue.Push(Job{})
	}
	p.logger.Info("pool shutting down", F("pool", p.name), F("workers", len(p.workers)))
}

// Join blocks until every worker goroutine the pool ever started has
// terminated. Meaningful only after Shutdown; before that, idle workers
// wait forever.
func (p *ThreadPool) Join() {
	p.wg.Wait()
}

// Restart shuts the pool down, waits for every worker to terminate, and
// then re-arms it so new submissions are accepted again. The source
// material's restart left the pool permanently dead; this variant
// completes the cycle (see DESIGN.md).
func (p *ThreadPool) Restart() {
	p.mu.Lock()
	alreadyDown := p.shutDown
	p.mu.Unlock()
	if !alreadyDown {
		p.Shutdown()
	}

	for len(p.LiveThreads()) > 0 {
		time.Sleep(restartPollInterval)
	}

	p.mu.Lock()
	// Drop leftover pills: shutdown queues one per tracked worker, and
	// workers that died before shutdown never consume theirs.
	p.queue.Clear()
	p.shutDown = false
	p.workers = p.workers[:0]
	p.checkThreadsLocked()
	p.mu.Unlock()

	p.logger.Info("pool restarted", F("pool", p.name))
}

// Threads returns a snapshot of all tracked workers, whether alive, dead,
// busy, or idle.
func (p *ThreadPool) Threads() []*Worker {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]*Worker, len(p.workers))
	copy(out, p.workers)
	return out
}

// BusyThreads returns a snapshot of workers currently executing a job.
func (p *ThreadPool) BusyThreads() []*Worker {
	return p.filterThreads(func(w *Worker) bool { return w.IsBusy() })
}

// IdleThreads returns a snapshot of live workers not executing a job.
func (p *ThreadPool) IdleThreads() []*Worker {
	return p.filterThreads(func(w *Worker) bool { return w.IsAlive() && !w.IsBusy() })
}

// LiveThreads returns a snapshot of workers whose loops are still running.
func (p *ThreadPool) LiveThreads() []*Worker {
	return p.filterThreads(func(w *Worker) bool { return w.IsAlive() })
}

func (p *ThreadPool) filterThreads(keep func(*Worker) bool) []*Worker {
	p.mu.Lock()
	defer p.mu.Unlock()
	var out []*Worker
	for _, w := range p.workers {
		if keep(w) {
			out = append(out, w)
		}
	}
	return out
}

// QueuedJobCount returns the number of jobs waiting in the queue.
func (p *ThreadPool) QueuedJobCount() int {
	return p.queue.Len()
}

// Stats returns a consistent snapshot of the pool's state.
func (p *ThreadPool) Stats() PoolStats {
	p.mu.Lock()
	defer p.mu.Unlock()

	live, busy := 0, 0
	for _, w := range p.workers {
		if w.IsAlive() {
			live++
			if w.IsBusy() {
				busy++
			}
		}
	}

	return PoolStats{
		Name:       p.name,
		MinThreads: p.minThreads,
		MaxThreads: p.maxThreads,
		Workers:    len(p.workers),
		Live:       live,
		Busy:       busy,
		Idle:       live - busy,
		Queued:     p.queue.Len(),
		Daemon:     p.daemon,
		ShutDown:   p.shutDown,
	}
}
