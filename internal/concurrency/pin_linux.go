//go:build linux

// File: internal/concurrency/pin_linux.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Linux CPU pinning for worker threads via sched_setaffinity. The caller
// must have locked its goroutine to an OS thread first.

package concurrency

import "golang.org/x/sys/unix"

// pinThread binds the calling OS thread to one logical CPU, chosen
// round-robin from the worker index.
func pinThread(workerID int) error {
	cpu := workerID % CoreCount()

	var set unix.CPUSet
	set.Zero()
	set.Set(cpu)
	return unix.SchedSetaffinity(0, &set)
}
