/*
Package awaitpool runs ordinary functions on background worker pools and
hands the results back either through pollable task handles or through
awaitable wrapped functions that suspend the caller until the pool is
done.

Execution tier (pkg/scheduling):
  - task: deferred function call plus its write-once outcome
  - workerpool: fixed worker set over an unbounded FIFO queue
  - room: name-keyed registry of lazily created shared pools
  - scheduler: timed, repeating and cron submission

Caller tier:
  - await: wraps functions so a call submits to a room and polls the
    task to resolution (Wrap), or fires and forgets (Shoot)
  - config: process-wide defaults for pool size and poll delay

Example usage:

	import (
		"github.com/vnykmshr/awaitpool/pkg/await"
		"github.com/vnykmshr/awaitpool/pkg/scheduling/task"
	)

	multiply, err := await.Wrap(func(args task.Args, kwargs task.Kwargs) (any, error) {
		return args[0].(int) * args[1].(int), nil
	})
	if err != nil {
		log.Fatal(err)
	}

	v, err := multiply(ctx, 5, 5) // executes on the "base" room, v == 25
*/
package awaitpool
