/*
Package task defines the unit of deferred computation executed by worker
pools: a function, its captured arguments, and a write-once outcome
record.

A task exposes four read-only views of its state:

	t.Done()   // has execution finished?
	t.Failed() // did it finish with an error?
	t.Result() // return value, valid when Done && !Failed
	t.Err()    // failure, valid when Failed

Reading before completion is allowed and yields zero values, not an
error. The completion flag is written last with release semantics, so a
poller that observes Done()==true always sees the fully populated
result or error. This is what makes busy-polling a task from another
goroutine safe without additional locking.

Tasks are usually created by workerpool.Pool.Submit rather than
directly. Direct construction is useful for synchronous execution in
tests:

	t := task.New(fn, task.Args{2, 3}, nil)
	t.Execute()
	if t.Failed() {
		// inspect t.Err()
	}
*/
package task
