// File: pool/options.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Functional options for pool construction.

package pool

import (
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type config struct {
	name        string
	logger      *zap.Logger
	cpuAffinity bool
}

func defaultConfig() *config {
	return &config{
		name:   uuid.NewString(),
		logger: zap.NewNop(),
	}
}

// Option customizes pool initialization.
type Option func(*config)

// WithLogger routes pool lifecycle events to the given zap logger. The
// default is a no-op logger so embedding hosts stay silent.
func WithLogger(l *zap.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithCPUAffinity locks each worker to an OS thread and pins it round-robin
// across logical CPUs on supported platforms.
func WithCPUAffinity(enabled bool) Option {
	return func(c *config) {
		c.cpuAffinity = enabled
	}
}

// WithName overrides the generated pool instance name used in log fields
// and the control config.
func WithName(name string) Option {
	return func(c *config) {
		if name != "" {
			c.name = name
		}
	}
}
