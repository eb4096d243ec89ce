// File: internal/concurrency/semaphore_test.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package concurrency

import "testing"

func TestSemaphoreReleaseSaturates(t *testing.T) {
	s := newSemaphore(4)

	s.release(10)
	if got := len(s); got != 4 {
		t.Fatalf("count = %d after over-release, want 4", got)
	}

	for i := 0; i < 4; i++ {
		<-s
	}
	if got := len(s); got != 0 {
		t.Fatalf("count = %d after draining, want 0", got)
	}
}

func TestSemaphoreReleaseZero(t *testing.T) {
	s := newSemaphore(2)
	s.release(0)
	if got := len(s); got != 0 {
		t.Fatalf("count = %d, want 0", got)
	}
}

func TestSemaphoreAccumulates(t *testing.T) {
	s := newSemaphore(3)
	s.release(1)
	s.release(1)
	if got := len(s); got != 2 {
		t.Fatalf("count = %d, want 2", got)
	}
}
