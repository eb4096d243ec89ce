// Package control
// Author: momentics <momentics@gmail.com>
//
// Runtime introspection primitives for pool instances: snapshot config
// reads with atomic updates and reload observers, metrics telemetry, and
// debug probe registration. Everything here is concurrent-safe.
package control
