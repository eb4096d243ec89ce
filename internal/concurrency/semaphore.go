// File: internal/concurrency/semaphore.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Counting semaphore with a fixed maximum count. Releases beyond the maximum
// are silently dropped, so releasing once per worker is always safe: workers
// woken with nothing to do observe an empty queue and wait again.

package concurrency

// semaphore is a counting semaphore backed by a buffered channel. Receiving
// from it is a wait; the channel is sized to the maximum count.
type semaphore chan struct{}

func newSemaphore(max int) semaphore {
	return make(semaphore, max)
}

// release increments the count n times, saturating at the maximum.
func (s semaphore) release(n int) {
	for i := 0; i < n; i++ {
		select {
		case s <- struct{}{}:
		default:
			return
		}
	}
}
