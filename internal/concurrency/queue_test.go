// File: internal/concurrency/queue_test.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package concurrency

import (
	"testing"

	"github.com/momentics/threadpool/api"
)

func TestTaskQueueFIFO(t *testing.T) {
	tq := newTaskQueue()
	noop := func(param0, param1 any, taskNumber int) api.Directive {
		return api.DirectiveOK
	}

	for i := 0; i < 10; i++ {
		tq.push(taskInfo{fn: noop, taskNumber: i})
	}
	if got := tq.len(); got != 10 {
		t.Fatalf("len = %d, want 10", got)
	}

	for i := 0; i < 10; i++ {
		task, ok := tq.pop()
		if !ok {
			t.Fatalf("queue empty at %d", i)
		}
		if task.taskNumber != i {
			t.Fatalf("popped task number %d, want %d", task.taskNumber, i)
		}
	}
	if _, ok := tq.pop(); ok {
		t.Fatal("pop succeeded on empty queue")
	}
}

func TestTaskQueueReset(t *testing.T) {
	tq := newTaskQueue()
	for i := 0; i < 5; i++ {
		tq.push(taskInfo{taskNumber: i})
	}
	tq.reset()
	if got := tq.len(); got != 0 {
		t.Fatalf("len = %d after reset, want 0", got)
	}
	if _, ok := tq.pop(); ok {
		t.Fatal("pop succeeded after reset")
	}
}
