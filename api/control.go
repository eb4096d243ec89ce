// File: api/control.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package api

// Control manages per-pool runtime config and stats introspection.
type Control interface {
	GetConfig() map[string]any
	SetConfig(cfg map[string]any) error
	Stats() map[string]any
	OnReload(fn func())
	RegisterDebugProbe(name string, fn func() any)
}
