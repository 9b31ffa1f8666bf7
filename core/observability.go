package core

// PoolStats represents runtime observability state for a thread pool.
type PoolStats struct {
	Name       string
	MinThreads int
	MaxThreads int
	Workers    int
	Live       int
	Busy       int
	Idle       int
	Queued     int
	Daemon     bool
	ShutDown   bool
}
