// control/runtime.go
// Author: momentics <momentics@gmail.com>
//
// Process-level debug probes registered alongside per-pool probes.

package control

import "runtime"

// RegisterRuntimeProbes adds scheduler-level metrics to a probe registry.
func RegisterRuntimeProbes(dp *DebugProbes) {
	dp.RegisterProbe("runtime.cpus", func() any {
		return runtime.NumCPU()
	})
	dp.RegisterProbe("runtime.gomaxprocs", func() any {
		return runtime.GOMAXPROCS(0)
	})
	dp.RegisterProbe("runtime.goroutines", func() any {
		return runtime.NumGoroutine()
	})
}
