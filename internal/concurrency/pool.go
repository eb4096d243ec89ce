// File: internal/concurrency/pool.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// ThreadPool is the dispatch engine behind api.Pool: a fixed worker
// population consuming one mutex-guarded FIFO queue, signalled through a
// run/quit counting-semaphore pair. With zero workers only the queue and its
// mutex exist and Flush drains tasks on the owning thread.

package concurrency

import (
	"runtime"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"github.com/momentics/threadpool/api"
)

// ThreadPool implements the task dispatch engine. Construct it with
// NewThreadPool; the zero value is not usable.
type ThreadPool struct {
	mu    sync.Mutex
	tasks *taskQueue

	// run is released once per submission and once per requeue; quit is
	// released exactly numThreads times, once, during Release. Workers wait
	// on both in a single select.
	run  semaphore
	quit semaphore

	workers    sync.WaitGroup
	numThreads int
	pinWorkers bool

	log *zap.Logger

	submitted atomic.Int64
	completed atomic.Int64
	reruns    atomic.Int64
	requeued  atomic.Int64
	purged    atomic.Int64
}

// NewThreadPool creates a pool with exactly threadCount workers. threadCount
// may be zero. When pinWorkers is set, each worker locks itself to an OS
// thread and binds round-robin to a logical CPU on supported platforms.
func NewThreadPool(threadCount int, pinWorkers bool, log *zap.Logger) *ThreadPool {
	if log == nil {
		log = zap.NewNop()
	}
	p := &ThreadPool{
		tasks:      newTaskQueue(),
		numThreads: threadCount,
		pinWorkers: pinWorkers,
		log:        log,
	}
	if threadCount > 0 {
		p.run = newSemaphore(threadCount)
		p.quit = newSemaphore(threadCount)
		p.workers.Add(threadCount)
		for i := 0; i < threadCount; i++ {
			go p.workerLoop(i)
		}
	}
	p.log.Debug("pool created",
		zap.Int("workers", threadCount),
		zap.Bool("cpu_affinity", pinWorkers))
	return p
}

// NumThreads returns the number of worker threads in the pool.
func (p *ThreadPool) NumThreads() int {
	return p.numThreads
}

// RunTask appends numTimes descriptors to the queue, task-numbered
// 0..numTimes-1, then arms every worker. With block set it returns only
// after all of them have completed with DirectiveOK; on a zero-worker pool a
// blocking call drains the queue inline instead, so it cannot deadlock.
func (p *ThreadPool) RunTask(fn api.TaskFunc, param0, param1 any, numTimes int, block bool) bool {
	if fn == nil || numTimes < 0 {
		return false
	}
	if numTimes == 0 {
		return true
	}

	// The batch counter lives on this stack frame. Descriptors keep a
	// reference to it only while block guarantees the frame stays live.
	var outstanding atomic.Int32
	var ref *atomic.Int32
	if block {
		ref = &outstanding
	}

	p.mu.Lock()
	for i := 0; i < numTimes; i++ {
		if ref != nil {
			ref.Add(1)
		}
		p.tasks.push(taskInfo{
			fn:          fn,
			param0:      param0,
			param1:      param1,
			taskNumber:  i,
			outstanding: ref,
		})
	}
	p.mu.Unlock()

	p.submitted.Add(int64(numTimes))

	// Arm every worker regardless of batch size; surplus wakeups observe an
	// empty queue and re-wait.
	if p.numThreads > 0 {
		p.run.release(p.numThreads)
	}

	if block {
		if p.numThreads == 0 {
			p.Flush()
			return true
		}
		for outstanding.Load() != 0 {
			runtime.Gosched()
		}
	}
	return true
}

// WaitForAllTasks returns once the queue has been observed empty at least
// once since entry, or when timeout elapses; a negative timeout waits
// forever. Tasks already executing are not waited for, and concurrent
// submissions may extend the wait. A zero-worker pool drains inline.
func (p *ThreadPool) WaitForAllTasks(timeout time.Duration) {
	if p.numThreads == 0 {
		p.Flush()
		return
	}
	var deadline time.Time
	if timeout >= 0 {
		deadline = time.Now().Add(timeout)
	}
	for p.pending() > 0 {
		if !deadline.IsZero() && !time.Now().Before(deadline) {
			return
		}
		runtime.Gosched()
	}
}

// PurgeAllPendingTasks discards every queued descriptor. Tasks already
// picked up by a worker run to completion. Bound outstanding counters are
// not decremented for discarded descriptors.
func (p *ThreadPool) PurgeAllPendingTasks() {
	p.mu.Lock()
	n := p.tasks.len()
	p.tasks.reset()
	p.mu.Unlock()

	if n > 0 {
		p.purged.Add(int64(n))
		p.log.Debug("purged pending tasks", zap.Int("count", n))
	}
}

// Flush executes every queued descriptor on the calling goroutine in FIFO
// order, holding the queue mutex for the entire drain. Rerun and requeue
// directives are honored exactly as in the worker loop, including running a
// requeued descriptor again within the same drain. Must not be called from
// within a task.
func (p *ThreadPool) Flush() {
	p.mu.Lock()
	defer p.mu.Unlock()

	for {
		task, ok := p.tasks.pop()
		if !ok {
			return
		}

		ret := p.invoke(task)
		if ret == api.DirectiveRequeue {
			p.tasks.push(task)
			p.requeued.Add(1)
			continue
		}

		if task.outstanding != nil {
			task.outstanding.Add(-1)
		}
		p.completed.Add(1)
	}
}

// Release purges the queue, wakes every worker with the quit signal, and
// joins them. No task runs after it returns. Release must not be called
// concurrently with any other method, and no method may be called after it.
func (p *ThreadPool) Release() {
	if p.numThreads > 0 {
		p.PurgeAllPendingTasks()
		p.quit.release(p.numThreads)
		p.workers.Wait()
	}
	p.log.Debug("pool released", zap.Int("workers", p.numThreads))
}

// Stats returns a snapshot of engine counters.
func (p *ThreadPool) Stats() map[string]int64 {
	return map[string]int64{
		"submitted": p.submitted.Load(),
		"completed": p.completed.Load(),
		"reruns":    p.reruns.Load(),
		"requeued":  p.requeued.Load(),
		"purged":    p.purged.Load(),
		"pending":   int64(p.pending()),
		"workers":   int64(p.numThreads),
	}
}

// invoke runs one descriptor until it returns a non-rerun directive.
func (p *ThreadPool) invoke(task taskInfo) api.Directive {
	for {
		ret := task.fn(task.param0, task.param1, task.taskNumber)
		if ret != api.DirectiveRerun {
			return ret
		}
		p.reruns.Add(1)
	}
}

func (p *ThreadPool) pending() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.tasks.len()
}
