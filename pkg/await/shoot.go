package await

import (
	"github.com/vnykmshr/awaitpool/pkg/common/validation"
	"github.com/vnykmshr/awaitpool/pkg/scheduling/task"
)

// ShotFunc is a fire-and-forget wrapper: calling it submits the
// underlying function and returns the task handle immediately, without
// awaiting completion.
type ShotFunc func(args ...any) (*task.Task, error)

// Shoot turns fn into a ShotFunc. The caller may poll the returned
// handle at will or ignore it entirely; an ignored handle means an
// ignored failure, and nothing guarantees the task completes before
// process exit. Options are captured and validated now, as in Wrap
// (WithDelay is accepted but unused here since nothing polls).
func Shoot(fn task.Func, opts ...Option) (ShotFunc, error) {
	if err := validation.ValidateNotNil("await", "fn", fn); err != nil {
		return nil, err
	}
	o, err := newOptions(opts)
	if err != nil {
		return nil, err
	}

	return func(args ...any) (*task.Task, error) {
		t, err := o.registry.Get(o.room).Submit(fn, args...)
		if err != nil {
			return nil, err
		}
		if o.metrics != nil {
			o.metrics.ShotsFired.WithLabelValues(o.room).Inc()
		}
		return t, nil
	}, nil
}
