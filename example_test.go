package threadpool_test

import (
	"fmt"

	threadpool "github.com/turbidsoul/go-thread-pool"
)

// ExampleNewThreadPool demonstrates submitting work and waiting on the result.
func ExampleNewThreadPool() {
	pool := threadpool.NewThreadPool("example", 2, 4)
	defer func() {
		pool.Shutdown()
		pool.Join()
	}()

	future, err := pool.Submit(func() (any, error) {
		return 6 * 7, nil
	})
	if err != nil {
		fmt.Println("submit failed:", err)
		return
	}

	value, err := future.Get()
	fmt.Println(value, err)

	// Output:
	// 42 <nil>
}

// ExampleAsync demonstrates turning a callable into a future-returning function.
func ExampleAsync() {
	threadpool.InitGlobalThreadPool("example-async", 1, 2)
	defer threadpool.ShutdownGlobalThreadPool()

	greet := threadpool.Async(func() (any, error) {
		return "hello from the pool", nil
	}, threadpool.GlobalThreadPool())

	future, err := greet()
	if err != nil {
		fmt.Println("submit failed:", err)
		return
	}

	value, _ := future.Get()
	fmt.Println(value)

	// Output:
	// hello from the pool
}

// ExampleLocked demonstrates guarding a callable with a visible lock.
func ExampleLocked() {
	pool := threadpool.NewThreadPool("example-locked", 2, 2)
	defer func() {
		pool.Shutdown()
		pool.Join()
	}()

	lock := threadpool.NewVLock()
	counter := 0

	bump := threadpool.Locked(func() (any, error) {
		counter++
		return counter, nil
	}, lock)

	first, _ := pool.Submit(bump)
	if _, err := first.Get(); err != nil {
		fmt.Println("bump failed:", err)
		return
	}
	second, _ := pool.Submit(bump)
	if _, err := second.Get(); err != nil {
		fmt.Println("bump failed:", err)
		return
	}

	fmt.Println(counter)

	// Output:
	// 2
}
