/*
Package await bridges pool-executed tasks into ordinary blocking call
shape for goroutines: a wrapped function submits to a room's worker
pool, then suspends the calling goroutine by polling the task's done
flag at a fixed interval until the result or failure is ready.

Wrapping and calling:

	double, err := await.Wrap(func(args task.Args, kwargs task.Kwargs) (any, error) {
		return args[0].(int) * 2, nil
	})
	if err != nil {
		log.Fatal(err)
	}

	v, err := double(ctx, 21) // runs on the "base" room, v == 42

Configuration is captured at wrap time:

	slowPoll, err := await.Wrap(fetch,
		await.WithRoom("io"),
		await.WithDelay(50*time.Millisecond),
	)

Fire-and-forget:

	logHit, err := await.Shoot(recordHit, await.WithRoom("telemetry"))
	...
	t, _ := logHit(userID) // returns immediately; poll t or drop it

Why polling: each poll that finds the task unfinished parks the caller
on a timer, so the scheduler is free to run anything else meanwhile;
when the flag flips, the next poll picks the result up. Resolution
latency is therefore bounded by the configured delay. This is a
deliberate trade of wakeup latency for having no callback or channel
plumbing between workers and waiters, and callers may rely on the
bounded-latency behavior.

Cancellation only abandons the wait. A task already handed to a worker
runs to completion; nobody is left polling it, and it becomes garbage
once done.
*/
package await
