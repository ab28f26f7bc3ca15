/*
Package workerpool provides a fixed-size pool of background workers
consuming an unbounded FIFO task queue.

A pool is the execution tier beneath the await bridge: callers submit
plain functions with captured arguments, get back a *task.Task handle
immediately, and read the outcome from the handle once it reports done.

Basic usage:

	pool := workerpool.New(10)

	t, err := pool.Submit(func(args task.Args, kwargs task.Kwargs) (any, error) {
		return args[0].(int) * 2, nil
	}, 21)
	if err != nil {
		log.Fatal(err)
	}

	for !t.Done() {
		time.Sleep(time.Millisecond)
	}
	fmt.Println(t.Result()) // 42

Semantics:

  - Workers are started at construction and there are always exactly
    Size() of them. There is no dynamic resizing.
  - The queue is FIFO and unbounded by default: Submit never blocks and
    tasks queue without limit under sustained overload. Bounding the
    queue (Config.QueueDepth) is opt-in backpressure that makes
    submitters block for space instead.
  - A task that returns an error or panics marks its handle failed; the
    worker moves on to the next task. Failures never crash a worker and
    there are no retries.
  - FIFO order is the order tasks become eligible to start, not the
    order they complete.
  - Workers are non-joinable background goroutines. A pool that is
    never shut down keeps them until process exit, abandoning whatever
    is in flight at that point; this mirrors daemon-thread semantics
    and is a documented limitation, not an error condition. Shutdown
    is the optional drain for programs that want a clean exit.

Rate limiting:

	limited := workerpool.NewWithConfig(workerpool.Config{
		Workers:   4,
		RateLimit: rate.NewLimiter(rate.Limit(100), 1),
	})

Prometheus metrics:

	pool := workerpool.NewWithMetrics(8, "crunch")

Thread safety: all pool operations are safe for concurrent use. The
queue is the only shared mutable structure; a task is enqueued exactly
once and dequeued by exactly one worker.
*/
package workerpool
