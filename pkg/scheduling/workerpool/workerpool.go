package workerpool

import (
	"fmt"

	aperrors "github.com/vnykmshr/awaitpool/pkg/common/errors"
	"github.com/vnykmshr/awaitpool/pkg/scheduling/task"
)

// Submit captures fn with positional arguments and enqueues it.
func (p *pool) Submit(fn task.Func, args ...any) (*task.Task, error) {
	return p.SubmitNamed(fn, task.Args(args), nil)
}

// SubmitNamed captures fn with positional and named arguments and
// enqueues it. The task handle is returned immediately; with an
// unbounded queue the call never blocks. Submission from any number of
// goroutines is safe.
func (p *pool) SubmitNamed(fn task.Func, args task.Args, kwargs task.Kwargs) (*task.Task, error) {
	if fn == nil {
		return nil, fmt.Errorf("cannot submit task: fn cannot be nil")
	}

	p.mu.RLock()
	isShutdown := p.isShutdown
	p.mu.RUnlock()
	if isShutdown {
		return nil, fmt.Errorf("cannot submit task: %w", aperrors.ErrClosed)
	}

	t := task.New(fn, args, kwargs)
	if !p.queue.push(t) {
		// Shutdown raced with the push.
		return nil, fmt.Errorf("cannot submit task: %w", aperrors.ErrClosed)
	}

	p.mu.Lock()
	p.totalSubmitted++
	p.mu.Unlock()

	return t, nil
}

// run is the main loop for a worker. Task failures are captured on the
// task by Execute; nothing a task does can take the worker down.
func (p *pool) run(id int) {
	for {
		t, ok := p.queue.pop()
		if !ok {
			return
		}

		if p.config.RateLimit != nil {
			// Returns early on shutdown; the dequeued task still runs
			// so it is not lost.
			_ = p.config.RateLimit.Wait(p.limitCtx)
		}

		p.executeTask(id, t)
	}
}

// executeTask runs a single task and maintains pool counters around it.
func (p *pool) executeTask(id int, t *task.Task) {
	p.mu.Lock()
	p.activeWorkers++
	p.mu.Unlock()

	if p.config.OnTaskStart != nil {
		p.config.OnTaskStart(id, t)
	}

	t.Execute()

	p.mu.Lock()
	p.activeWorkers--
	p.totalCompleted++
	p.mu.Unlock()

	if p.config.OnTaskDone != nil {
		p.config.OnTaskDone(id, t)
	}
}

// Size returns the number of workers in the pool.
func (p *pool) Size() int {
	return p.config.Workers
}

// QueueDepth returns the current number of queued tasks waiting for a worker.
func (p *pool) QueueDepth() int {
	return p.queue.len()
}

// ActiveWorkers returns the number of workers currently executing tasks.
func (p *pool) ActiveWorkers() int {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.activeWorkers
}

// TotalSubmitted returns the total number of tasks submitted to the pool.
func (p *pool) TotalSubmitted() int64 {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.totalSubmitted
}

// TotalCompleted returns the total number of tasks finished by the pool.
func (p *pool) TotalCompleted() int64 {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.totalCompleted
}

// Shutdown initiates a drain: no new tasks are accepted, queued tasks
// still run to completion, and the returned channel closes once every
// worker has exited.
func (p *pool) Shutdown() <-chan struct{} {
	p.shutdownOnce.Do(func() {
		p.mu.Lock()
		p.isShutdown = true
		p.mu.Unlock()

		p.queue.close()
		p.limitCancel()

		go func() {
			_ = p.workers.Wait()
			close(p.shutdownDone)
		}()
	})

	return p.shutdownDone
}
