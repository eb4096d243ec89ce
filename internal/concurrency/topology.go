// File: internal/concurrency/topology.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// CPU topology probe used to size per-core pools.

package concurrency

import "runtime"

// CoreCount returns the number of logical CPUs available to the process.
func CoreCount() int {
	return runtime.NumCPU()
}

// ThreadCountFor computes the worker population for a per-core request:
// threadsPerCore * max(1, cores + coreCountAdjustment). The adjustment is
// typically negative, reserving cores for the host application's own
// threads.
func ThreadCountFor(threadsPerCore, coreCountAdjustment int) int {
	cores := CoreCount() + coreCountAdjustment
	if cores < 1 {
		cores = 1
	}
	return threadsPerCore * cores
}
