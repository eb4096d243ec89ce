// File: pool/pool.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Constructors binding the dispatch engine to its control surface.

package pool

import (
	"go.uber.org/zap"

	"github.com/momentics/threadpool/adapters"
	"github.com/momentics/threadpool/api"
	"github.com/momentics/threadpool/internal/concurrency"
)

// threadPool couples the engine with a per-instance control adapter.
type threadPool struct {
	*concurrency.ThreadPool
	control api.Control
}

var _ api.Pool = (*threadPool)(nil)

// Create returns a pool with exactly threadCount workers. threadCount may
// be zero; see the package comment for the deferred-queue mode.
func Create(threadCount int, opts ...Option) (api.Pool, error) {
	if threadCount < 0 {
		return nil, api.ErrInvalidThreadCount
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	engine := concurrency.NewThreadPool(
		threadCount,
		cfg.cpuAffinity,
		cfg.logger.With(zap.String("pool", cfg.name)),
	)

	ctl := adapters.NewControlAdapter()
	if err := ctl.SetConfig(map[string]any{
		"pool_id":      cfg.name,
		"threads":      threadCount,
		"cpu_affinity": cfg.cpuAffinity,
	}); err != nil {
		return nil, err
	}
	ctl.RegisterDebugProbe("pool.stats", func() any {
		return engine.Stats()
	})

	return &threadPool{ThreadPool: engine, control: ctl}, nil
}

// CreatePerCore sizes the pool from the CPU topology:
// threadsPerCore * max(1, cores + coreCountAdjustment).
func CreatePerCore(threadsPerCore, coreCountAdjustment int, opts ...Option) (api.Pool, error) {
	if threadsPerCore < 0 {
		return nil, api.ErrInvalidArgument
	}
	return Create(concurrency.ThreadCountFor(threadsPerCore, coreCountAdjustment), opts...)
}

// Control exposes runtime config and stats probes for this pool.
func (p *threadPool) Control() api.Control {
	return p.control
}
