package workerpool

import (
	"sync"

	"github.com/vnykmshr/awaitpool/pkg/scheduling/task"
)

// taskQueue is the single concurrently-mutated structure in a pool: a
// FIFO of pending tasks safe for any number of enqueuers and dequeuers.
// A bound of 0 means unbounded growth; a positive bound makes push
// block until space frees up.
//
// Built on a mutex and condition variable rather than a channel because
// the default queue has no capacity limit.
type taskQueue struct {
	mu     sync.Mutex
	cond   *sync.Cond
	items  []*task.Task
	bound  int
	closed bool
}

func newTaskQueue(bound int) *taskQueue {
	q := &taskQueue{bound: bound}
	q.cond = sync.NewCond(&q.mu)
	return q
}

// push appends t to the queue, blocking while a bounded queue is full.
// It reports false once the queue is closed.
func (q *taskQueue) push(t *task.Task) bool {
	q.mu.Lock()
	defer q.mu.Unlock()

	for q.bound > 0 && len(q.items) >= q.bound && !q.closed {
		q.cond.Wait()
	}
	if q.closed {
		return false
	}

	q.items = append(q.items, t)
	q.cond.Broadcast()
	return true
}

// pop removes and returns the oldest task, blocking while the queue is
// empty. It reports false once the queue is closed and fully drained.
func (q *taskQueue) pop() (*task.Task, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()

	for len(q.items) == 0 && !q.closed {
		q.cond.Wait()
	}
	if len(q.items) == 0 {
		return nil, false
	}

	t := q.items[0]
	q.items[0] = nil
	q.items = q.items[1:]
	q.cond.Broadcast()
	return t, true
}

// close stops intake and wakes every blocked pusher and popper. Queued
// tasks remain poppable until drained.
func (q *taskQueue) close() {
	q.mu.Lock()
	defer q.mu.Unlock()

	q.closed = true
	q.cond.Broadcast()
}

func (q *taskQueue) len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.items)
}
