// File: internal/concurrency/queue.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Pending-task descriptors and the FIFO queue that holds them. The queue is
// not safe for concurrent use on its own; every call happens under the pool
// mutex.

package concurrency

import (
	"sync/atomic"

	"github.com/eapache/queue"

	"github.com/momentics/threadpool/api"
)

// taskInfo describes one pending execution. It is created at submit, moved
// through the queue, copied out by a worker, and dropped on its final
// disposition: completion, requeue re-insertion, or purge.
type taskInfo struct {
	fn         api.TaskFunc
	param0     any
	param1     any
	taskNumber int

	// outstanding points at the submitter's stack-resident batch counter for
	// blocking submissions; nil otherwise. It is decremented exactly once,
	// when this descriptor completes with DirectiveOK.
	outstanding *atomic.Int32
}

// taskQueue is a strict FIFO of descriptors. Dequeue order is insertion
// order; requeued descriptors go to the tail.
type taskQueue struct {
	q *queue.Queue
}

func newTaskQueue() *taskQueue {
	return &taskQueue{q: queue.New()}
}

func (tq *taskQueue) push(t taskInfo) {
	tq.q.Add(t)
}

// pop removes and returns the front descriptor; ok is false when empty.
func (tq *taskQueue) pop() (t taskInfo, ok bool) {
	if tq.q.Length() == 0 {
		return t, false
	}
	return tq.q.Remove().(taskInfo), true
}

func (tq *taskQueue) len() int {
	return tq.q.Length()
}

// reset discards every queued descriptor.
func (tq *taskQueue) reset() {
	tq.q = queue.New()
}
