package threadpool

import "github.com/turbidsoul/go-thread-pool/core"

// Re-export commonly used types from core package for convenience.
// This allows users to import only the threadpool package for most use cases.

// Callable is the unit of work (Closure)
type Callable = core.Callable

// Job pairs a callable with its Future and optional associated value
type Job = core.Job

// Future is the single-assignment blocking result handle
type Future = core.Future

// ThreadPool manages the job queue and the elastic worker set
type ThreadPool = core.ThreadPool

// ThreadPoolConfig configures handlers, policies, and the daemon flag
type ThreadPoolConfig = core.ThreadPoolConfig

// Worker executes jobs pulled from the shared queue
type Worker = core.Worker

// VLock is a reentrant lock with a visible waiter queue
type VLock = core.VLock

// LockRegistry maps arbitrary keys to lazily created VLocks
type LockRegistry = core.LockRegistry

// PoolStats is a consistent snapshot of pool state
type PoolStats = core.PoolStats

// PanicPolicy classifies panics as capturable or worker-fatal
type PanicPolicy = core.PanicPolicy

// PanicError wraps a panic captured at the worker boundary
type PanicError = core.PanicError

// Sentinel errors
var (
	ErrPoolShutDown    = core.ErrPoolShutDown
	ErrAlreadyResolved = core.ErrAlreadyResolved
	ErrNotOwner        = core.ErrNotOwner
)

// Constructors and wrappers, re-exported for single-import use
var (
	NewThreadPool           = core.NewThreadPool
	NewThreadPoolWithConfig = core.NewThreadPoolWithConfig
	DefaultThreadPoolConfig = core.DefaultThreadPoolConfig
	NewFuture               = core.NewFuture
	NewVLock                = core.NewVLock
	NewLockRegistry         = core.NewLockRegistry
	Async                   = core.Async
	Locked                  = core.Locked
	CaptureAllPanics        = core.CaptureAllPanics
	PropagateAllPanics      = core.PropagateAllPanics
)
