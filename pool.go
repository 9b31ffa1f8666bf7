package threadpool

import (
	"sync"

	"github.com/turbidsoul/go-thread-pool/core"
)

// =============================================================================
// Global Thread Pool Helper (Singleton)
// =============================================================================

var (
	globalThreadPool *core.ThreadPool
	globalMu         sync.Mutex
)

// InitGlobalThreadPool initializes the global thread pool with the given
// bounds. The initial minThreads workers start immediately.
func InitGlobalThreadPool(name string, minThreads, maxThreads int) {
	globalMu.Lock()
	defer globalMu.Unlock()

	if globalThreadPool != nil {
		return // Already initialized
	}

	globalThreadPool = core.NewThreadPool(name, minThreads, maxThreads)
}

// GlobalThreadPool returns the global thread pool instance.
// It panics if InitGlobalThreadPool has not been called.
func GlobalThreadPool() *core.ThreadPool {
	globalMu.Lock()
	defer globalMu.Unlock()

	if globalThreadPool == nil {
		panic("GlobalThreadPool not initialized. Call InitGlobalThreadPool() first.")
	}
	return globalThreadPool
}

// ShutdownGlobalThreadPool shuts down the global thread pool and waits
// for its workers to terminate.
func ShutdownGlobalThreadPool() {
	globalMu.Lock()
	defer globalMu.Unlock()

	if globalThreadPool != nil {
		globalThreadPool.Shutdown()
		globalThreadPool.Join()
		globalThreadPool = nil
	}
}
