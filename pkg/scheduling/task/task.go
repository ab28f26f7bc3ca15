package task

import (
	"fmt"
	"runtime/debug"
	"sync/atomic"
)

// Args is the ordered positional arguments of a deferred call.
type Args []any

// Kwargs is the named arguments of a deferred call.
type Kwargs map[string]any

// Func is the shape of a function that can run on a pool. Positional
// and named arguments are captured at submission time and passed back
// with the same shape; values are opaque to the pool.
type Func func(args Args, kwargs Kwargs) (any, error)

// Task pairs a deferred function call with its eventual outcome. It is
// created by a submitter, executed exactly once by a single worker, and
// polled by any number of readers via Done.
//
// A Task is never reused after completion.
type Task struct {
	fn     Func
	args   Args
	kwargs Kwargs

	result any
	err    error

	// failed is set before done; done is written last so that a reader
	// observing Done()==true also observes result and err.
	failed atomic.Bool
	done   atomic.Bool
}

// New creates a Task holding fn and its captured arguments.
func New(fn Func, args Args, kwargs Kwargs) *Task {
	return &Task{
		fn:     fn,
		args:   args,
		kwargs: kwargs,
	}
}

// Execute runs the wrapped function synchronously on the calling
// goroutine. A returned error or a recovered panic is captured on the
// task; Execute itself never panics. Exactly one goroutine may call
// Execute on a given task.
func (t *Task) Execute() {
	defer func() {
		if r := recover(); r != nil {
			t.err = fmt.Errorf("task panicked: %v\nStack trace:\n%s", r, debug.Stack())
			t.failed.Store(true)
		}
		t.done.Store(true)
	}()

	result, err := t.fn(t.args, t.kwargs)
	if err != nil {
		t.err = err
		t.failed.Store(true)
		return
	}
	t.result = result
}

// Done reports whether execution has finished. It transitions from
// false to true exactly once and never reverts.
func (t *Task) Done() bool {
	return t.done.Load()
}

// Failed reports whether execution finished with an error. Meaningful
// once Done is true.
func (t *Task) Failed() bool {
	return t.failed.Load()
}

// Result returns the function's return value. It is meaningful only
// when Done is true and Failed is false; before that it is nil.
func (t *Task) Result() any {
	return t.result
}

// Err returns the captured failure. It is meaningful only when Failed
// is true; before that it is nil.
func (t *Task) Err() error {
	return t.err
}
