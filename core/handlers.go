package core

import (
	"fmt"
	"time"
)

// =============================================================================
// PanicHandler: Interface for handling job panics
// =============================================================================

// PanicHandler is called when a job panics during execution, whether the
// panic is captured into the job's Future or terminates the worker.
// This allows custom panic handling, logging, and recovery strategies.
//
// Implementations should be thread-safe as they may be called concurrently.
type PanicHandler interface {
	// HandlePanic is called when a job panics.
	//
	// Parameters:
	// - poolName: The name of the pool whose worker hit the panic
	// - workerName: The name of the worker executing the job
	// - panicInfo: The panic value recovered from the job
	// - stackTrace: The stack trace at the time of panic
	HandlePanic(poolName, workerName string, panicInfo any, stackTrace []byte)
}

// DefaultPanicHandler provides a basic panic handler that logs to stdout.
type DefaultPanicHandler struct{}

// HandlePanic prints panic information to stdout.
func (h *DefaultPanicHandler) HandlePanic(poolName, workerName string, panicInfo any, stackTrace []byte) {
	fmt.Printf("[%s @ %s] Panic: %v\nStack trace:\n%s",
		workerName, poolName, panicInfo, stackTrace)
}

// =============================================================================
// PanicPolicy: fatal-vs-capturable classification
// =============================================================================

// PanicPolicy decides, per panic value, whether the panic is captured into
// the job's Future as a *PanicError or treated as fatal to the worker.
// A fatal panic terminates the worker without resolving the Future, so any
// goroutine awaiting that Future blocks until it applies its own deadline.
//
// The source material hard-coded this split; here it is an explicit policy.
type PanicPolicy func(panicInfo any) bool

// CaptureAllPanics routes every panic into the job's Future. This is the
// default: no job outcome is ever silently lost.
func CaptureAllPanics(any) bool { return true }

// PropagateAllPanics treats every panic as fatal to its worker.
func PropagateAllPanics(any) bool { return false }

// =============================================================================
// Metrics: Interface for observability and monitoring
// =============================================================================

// Metrics defines the interface for collecting pool execution metrics.
// Implementations can send metrics to monitoring systems (Prometheus, StatsD, etc.).
//
// Methods should be non-blocking and fast to avoid impacting job execution
// performance.
type Metrics interface {
	// RecordJobDuration records how long a job took to execute.
	RecordJobDuration(poolName string, duration time.Duration)

	// RecordJobPanic records that a job panicked during execution.
	RecordJobPanic(poolName string, panicInfo any)

	// RecordQueueDepth records the current queue depth.
	RecordQueueDepth(poolName string, depth int)

	// RecordJobRejected records that a job was rejected (e.g., during shutdown).
	RecordJobRejected(poolName string, reason string)
}

// NilMetrics provides a no-op metrics implementation that does nothing.
// This is the default when no metrics interface is provided.
type NilMetrics struct{}

// RecordJobDuration is a no-op.
func (m *NilMetrics) RecordJobDuration(poolName string, duration time.Duration) {}

// RecordJobPanic is a no-op.
func (m *NilMetrics) RecordJobPanic(poolName string, panicInfo any) {}

// RecordQueueDepth is a no-op.
func (m *NilMetrics) RecordQueueDepth(poolName string, depth int) {}

// RecordJobRejected is a no-op.
func (m *NilMetrics) RecordJobRejected(poolName string, reason string) {}

// =============================================================================
// RejectedJobHandler: Interface for handling rejected jobs
// =============================================================================

// RejectedJobHandler is called when a job is rejected by the pool.
// Today that only happens when the pool is shutting down.
//
// Implementations should be thread-safe as they may be called concurrently.
type RejectedJobHandler interface {
	// HandleRejectedJob is called when a job is rejected.
	HandleRejectedJob(poolName string, reason string)
}

// DefaultRejectedJobHandler provides a basic handler that logs rejected jobs.
type DefaultRejectedJobHandler struct{}

// HandleRejectedJob logs the rejected job.
func (h *DefaultRejectedJobHandler) HandleRejectedJob(poolName string, reason string) {
	fmt.Printf("[Pool %s] Job rejected: %s\n", poolName, reason)
}

// =============================================================================
// ThreadPoolConfig: Configuration for ThreadPool
// =============================================================================

// ThreadPoolConfig holds configuration options for ThreadPool.
// All handlers are optional; if not provided, default implementations will
// be used.
type ThreadPoolConfig struct {
	// PanicHandler is called when a job panics. Defaults to DefaultPanicHandler.
	PanicHandler PanicHandler

	// PanicPolicy classifies panics as capturable or worker-fatal.
	// Defaults to CaptureAllPanics.
	PanicPolicy PanicPolicy

	// Metrics is called to record job execution metrics. Defaults to NilMetrics.
	Metrics Metrics

	// RejectedJobHandler is called when a job is rejected. Defaults to
	// DefaultRejectedJobHandler.
	RejectedJobHandler RejectedJobHandler

	// Logger receives pool lifecycle events. Defaults to DefaultLogger.
	Logger Logger

	// Daemon mirrors the source pool's daemon flag. Goroutines never keep
	// a Go process alive, so the flag is diagnostic only; it is recorded
	// and exposed through IsDaemon and PoolStats.
	Daemon bool
}

// DefaultThreadPoolConfig returns a config with default handlers.
func DefaultThreadPoolConfig() *ThreadPoolConfig {
	return &ThreadPoolConfig{
		PanicHandler:       &DefaultPanicHandler{},
		PanicPolicy:        CaptureAllPanics,
		Metrics:            &NilMetrics{},
		RejectedJobHandler: &DefaultRejectedJobHandler{},
		Logger:             NewDefaultLogger(),
		Daemon:             true,
	}
}
