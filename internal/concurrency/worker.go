// File: internal/concurrency/worker.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// The worker loop: wait on the run/quit signal pair, drain the shared queue
// front-first, honor per-task directives, yield between descriptors.

package concurrency

import (
	"runtime"

	"go.uber.org/zap"

	"github.com/momentics/threadpool/api"
)

func (p *ThreadPool) workerLoop(id int) {
	defer p.workers.Done()

	if p.pinWorkers {
		runtime.LockOSThread()
		if err := pinThread(id); err != nil {
			p.log.Debug("worker pin failed", zap.Int("worker", id), zap.Error(err))
		}
	}
	p.log.Debug("worker started", zap.Int("worker", id))

	for {
		// Quit wins over pending run signals so shutdown is never starved.
		select {
		case <-p.quit:
			p.log.Debug("worker exiting", zap.Int("worker", id))
			return
		default:
		}

		select {
		case <-p.quit:
			p.log.Debug("worker exiting", zap.Int("worker", id))
			return
		case <-p.run:
			p.drain()
		}
	}
}

// drain consumes descriptors until the queue is observed empty, yielding
// after each one.
func (p *ThreadPool) drain() {
	for {
		task, ok := p.nextTask()
		if !ok {
			return
		}
		p.dispatch(task)
		runtime.Gosched()
	}
}

// nextTask takes the front descriptor under the queue mutex.
func (p *ThreadPool) nextTask() (taskInfo, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.tasks.pop()
}

// dispatch runs one descriptor to its final disposition. A requeue preserves
// the task number and any counter binding, and must re-arm the workers:
// they may already be back on the semaphore by the time the copy lands on
// the queue tail.
func (p *ThreadPool) dispatch(task taskInfo) {
	ret := p.invoke(task)

	if ret == api.DirectiveRequeue {
		p.mu.Lock()
		p.tasks.push(task)
		p.mu.Unlock()

		p.requeued.Add(1)
		p.run.release(p.numThreads)
		return
	}

	if task.outstanding != nil {
		task.outstanding.Add(-1)
	}
	p.completed.Add(1)
}
