package workerpool

import (
	"context"
	"sync"

	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"

	"github.com/vnykmshr/awaitpool/pkg/scheduling/task"
)

// Pool is a fixed set of background workers consuming a shared FIFO
// task queue. Workers are started at construction and, unless Shutdown
// is called, live for the lifetime of the process; exiting the process
// abandons in-flight tasks.
type Pool interface {
	// Submit captures fn with positional arguments, enqueues the task
	// and returns its handle immediately. The returned error is only
	// non-nil for a nil fn or a shut-down pool; task execution failures
	// are reported on the handle, never here.
	Submit(fn task.Func, args ...any) (*task.Task, error)

	// SubmitNamed is Submit with both positional and named arguments.
	SubmitNamed(fn task.Func, args task.Args, kwargs task.Kwargs) (*task.Task, error)

	// Size returns the number of workers in the pool.
	Size() int

	// QueueDepth returns the current number of tasks waiting for a worker.
	QueueDepth() int

	// ActiveWorkers returns the number of workers currently executing tasks.
	ActiveWorkers() int

	// TotalSubmitted returns the total number of tasks submitted to the pool.
	TotalSubmitted() int64

	// TotalCompleted returns the total number of tasks finished by the pool,
	// counting both successes and failures.
	TotalCompleted() int64

	// Shutdown stops intake, lets workers drain the queue and returns a
	// channel that closes once all workers have exited. Calling it is
	// optional; a pool that is never shut down keeps its workers until
	// process exit.
	Shutdown() <-chan struct{}
}

// Config holds configuration options for creating a worker pool.
type Config struct {
	// Workers is the number of workers in the pool. Must be greater than 0.
	Workers int

	// QueueDepth bounds the task queue. 0 (the default) means unbounded:
	// submission never blocks and never fails for lack of space. A
	// positive depth is opt-in backpressure: submitters block until a
	// slot frees up.
	QueueDepth int

	// RateLimit, when set, throttles how often workers start tasks.
	// Queued tasks wait for the limiter, they are never dropped.
	RateLimit *rate.Limiter

	// OnTaskStart is called on the worker goroutine before a task runs.
	OnTaskStart func(workerID int, t *task.Task)

	// OnTaskDone is called on the worker goroutine after a task
	// finishes, whether it succeeded or failed.
	OnTaskDone func(workerID int, t *task.Task)
}

// pool implements the Pool interface.
type pool struct {
	config Config
	queue  *taskQueue

	// limitCtx unblocks rate-limiter waits when the pool shuts down.
	limitCtx    context.Context
	limitCancel context.CancelFunc

	workers      errgroup.Group
	shutdownOnce sync.Once
	shutdownDone chan struct{}

	mu             sync.RWMutex
	isShutdown     bool
	activeWorkers  int
	totalSubmitted int64
	totalCompleted int64
}

// New creates a pool with the given number of workers and an unbounded
// queue. It panics if size is not positive.
func New(size int) Pool {
	return NewWithConfig(Config{Workers: size})
}

// NewWithConfig creates a pool with the specified configuration.
// It panics on an invalid worker count or queue depth.
func NewWithConfig(config Config) Pool {
	if config.Workers <= 0 {
		panic("worker count must be positive")
	}
	if config.QueueDepth < 0 {
		panic("queue depth must be >= 0")
	}

	limitCtx, limitCancel := context.WithCancel(context.Background())

	p := &pool{
		config:       config,
		queue:        newTaskQueue(config.QueueDepth),
		limitCtx:     limitCtx,
		limitCancel:  limitCancel,
		shutdownDone: make(chan struct{}),
	}

	for i := 0; i < config.Workers; i++ {
		id := i
		p.workers.Go(func() error {
			p.run(id)
			return nil
		})
	}

	return p
}
