// File: api/task.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Task contracts: the callable signature, the directive values a task may
// return, and the legacy directive-less form.

package api

// Directive is the value a task returns from each invocation. It tells the
// pool what to do with the descriptor afterwards.
type Directive int

const (
	// DirectiveOK marks the task complete; the descriptor is dropped.
	DirectiveOK Directive = iota

	// DirectiveRerun re-invokes the same descriptor immediately on the same
	// worker, with the same task number, without re-entering the queue.
	DirectiveRerun

	// DirectiveRequeue appends a copy of the descriptor to the queue tail;
	// it will be picked up again by any worker.
	DirectiveRequeue
)

// String returns a human-readable directive name for logs and probes.
func (d Directive) String() string {
	switch d {
	case DirectiveOK:
		return "ok"
	case DirectiveRerun:
		return "rerun"
	case DirectiveRequeue:
		return "requeue"
	default:
		return "unknown"
	}
}

// TaskFunc is one unit of work. param0 and param1 are caller-supplied values
// the pool never inspects; taskNumber is the index of this repetition within
// its submission batch (0..numTimes-1). The callable must be safe to invoke
// from a worker thread, and any data it references must outlive the task.
type TaskFunc func(param0, param1 any, taskNumber int) Directive

// SimpleTaskFunc is the older callable form that returns no directive. It
// behaves as if it always returned DirectiveOK; rerun and requeue are only
// available on the directive-returning form.
type SimpleTaskFunc func(param0, param1 any, taskNumber int)

// Simple adapts a SimpleTaskFunc to the directive-returning form.
func Simple(fn SimpleTaskFunc) TaskFunc {
	return func(param0, param1 any, taskNumber int) Directive {
		fn(param0, param1, taskNumber)
		return DirectiveOK
	}
}
