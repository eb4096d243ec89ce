// Package pool
// Author: momentics <momentics@gmail.com>
//
// Public entry point of the threadpool library. Create builds a pool with a
// fixed worker count; CreatePerCore sizes it from the CPU topology. Both
// return the abstract api.Pool handle backed by the dispatch engine in
// internal/concurrency.
//
// A pool created with zero workers never spawns threads: the queue then
// behaves as a deferred action list that the owning thread drains with
// Flush, useful when work must run on one specific thread (for example a
// GPU-owning thread).
package pool
