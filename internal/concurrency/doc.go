// File: internal/concurrency/doc.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Concurrent task dispatch engine: the worker population, the shared FIFO
// task queue, run/quit counting-semaphore signalling, the rerun/requeue
// feedback loop, and blocking-submission tracking. Cross-platform, with
// optional CPU pinning of worker threads on Linux.
package concurrency
