// File: api/pool.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Pool is the abstract thread-pool handle exposed to embedding applications.

package api

import "time"

// Pool dispatches caller-supplied tasks to a fixed population of worker
// threads sharing one FIFO queue. A pool may be constructed with zero
// workers, in which case the queue acts as a deferred task list that the
// owning thread drains with Flush.
//
// All methods except Release are safe for concurrent use. Release must not
// be called concurrently with any other method, and no method may be called
// after it returns.
type Pool interface {
	// RunTask enqueues numTimes copies of fn, task-numbered 0..numTimes-1 in
	// order. numTimes == 0 is a successful no-op. If block is true the call
	// returns only after every descriptor of this batch has completed with
	// DirectiveOK; on a zero-worker pool a blocking submission drains the
	// queue inline on the calling thread instead.
	//
	// The return value is a success indicator kept for API symmetry; it is
	// false only for invalid input (nil fn, negative numTimes).
	RunTask(fn TaskFunc, param0, param1 any, numTimes int, block bool) bool

	// WaitForAllTasks returns once the queue has been observed empty at least
	// once since entry, or after timeout elapses. A negative timeout waits
	// forever. It does not wait for tasks already executing, and it does not
	// block submissions: tasks enqueued meanwhile may extend the wait. On a
	// zero-worker pool it delegates to Flush.
	WaitForAllTasks(timeout time.Duration)

	// PurgeAllPendingTasks discards every descriptor still in the queue.
	// Tasks already dispatched to a worker run to completion. Discarded
	// descriptors bound to a blocking submission are not accounted for;
	// purging while a blocking RunTask is in flight hangs that caller.
	PurgeAllPendingTasks()

	// Flush executes every queued descriptor on the calling goroutine in
	// FIFO order, holding the queue lock for the whole drain. It must not be
	// called from within a task.
	Flush()

	// NumThreads returns the number of worker threads in the pool.
	NumThreads() int

	// Control exposes runtime configuration and stats probes for this pool.
	Control() Control

	// Release purges pending tasks, stops and joins every worker, and frees
	// the pool. It returns only after all workers have terminated.
	Release()
}
