//go:build !linux

// File: internal/concurrency/pin_stub.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// No-op pinning fallback for platforms without sched_setaffinity support.
// Workers still lock their OS threads; placement is left to the scheduler.

package concurrency

func pinThread(workerID int) error {
	return nil
}
