package await

import (
	"context"
	"fmt"
	"time"

	apcontext "github.com/vnykmshr/awaitpool/pkg/common/context"
	aperrors "github.com/vnykmshr/awaitpool/pkg/common/errors"
	"github.com/vnykmshr/awaitpool/pkg/common/validation"
	"github.com/vnykmshr/awaitpool/pkg/scheduling/task"
)

// AwaitedFunc is a wrapped function: calling it submits the underlying
// function to a room's pool and suspends the calling goroutine until
// the task resolves, without ever blocking a worker.
type AwaitedFunc func(ctx context.Context, args ...any) (any, error)

// Wrap turns fn into an AwaitedFunc. Options are captured now, not per
// call; invalid options are reported here. Each invocation of the
// returned function submits one task and resolves it exactly once: a
// failed task's error becomes the call's error, otherwise the task's
// result is returned.
func Wrap(fn task.Func, opts ...Option) (AwaitedFunc, error) {
	if err := validation.ValidateNotNil("await", "fn", fn); err != nil {
		return nil, err
	}
	o, err := newOptions(opts)
	if err != nil {
		return nil, err
	}

	return func(ctx context.Context, args ...any) (any, error) {
		pool := o.registry.Get(o.room)
		start := time.Now()

		t, err := pool.Submit(fn, args...)
		if err != nil {
			return nil, err
		}

		result, polls, err := awaitPolling(ctx, t, o.delay)
		if o.metrics != nil {
			o.metrics.AwaitDuration.WithLabelValues(o.room).Observe(time.Since(start).Seconds())
			o.metrics.AwaitPolls.WithLabelValues(o.room).Observe(float64(polls))
		}
		return result, err
	}, nil
}

// Await polls t until it is done, suspending the calling goroutine for
// delay between checks. It is the building block behind Wrap, exported
// for callers that hold a raw task handle (e.g. from Shoot).
//
// Cancelling ctx abandons the wait, not the task: the task has already
// been dispatched and will still run to completion unobserved.
func Await(ctx context.Context, t *task.Task, delay time.Duration) (any, error) {
	if err := validation.ValidatePositiveDuration("await", "delay", delay); err != nil {
		return nil, err
	}
	result, _, err := awaitPolling(ctx, t, delay)
	return result, err
}

// awaitPolling is the Polling state of the bridge: check done, suspend
// for delay, re-check. The timer yield is what keeps the poll loop
// cooperative; there is deliberately no completion channel or condition
// variable, so wakeup latency is bounded by delay and nothing holds a
// reference into the worker side.
func awaitPolling(ctx context.Context, t *task.Task, delay time.Duration) (any, int, error) {
	if apcontext.IsCanceled(ctx) {
		return nil, 0, abandonErr(ctx)
	}

	polls := 1
	timer := time.NewTimer(delay)
	defer timer.Stop()

	for !t.Done() {
		select {
		case <-ctx.Done():
			return nil, polls, abandonErr(ctx)
		case <-timer.C:
			polls++
			timer.Reset(delay)
		}
	}

	if t.Failed() {
		return nil, polls, t.Err()
	}
	return t.Result(), polls, nil
}

// abandonErr reports why the wait was given up. A deadline expiry also
// matches ErrTimeout so callers can treat timeouts uniformly.
func abandonErr(ctx context.Context) error {
	err := ctx.Err()
	if apcontext.IsTimedOut(ctx) {
		return fmt.Errorf("%w: %w", aperrors.ErrTimeout, err)
	}
	return err
}
