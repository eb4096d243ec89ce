// File: logger/logger.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// zap logger constructors for hosts embedding the pool. The library itself
// logs nothing unless a logger is injected through pool.WithLogger; these
// helpers give embedding applications consistent defaults.

package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var encoderCfg = zap.NewProductionEncoderConfig()

func init() {
	encoderCfg.TimeKey = "timestamp"
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder
}

// NewDevLogger returns a debug-level logger for dev builds.
func NewDevLogger() (*zap.Logger, error) {
	logCfg := zap.NewProductionConfig()
	logCfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	logCfg.EncoderConfig = encoderCfg
	return logCfg.Build()
}

// NewProdLogger returns an info-level logger for production builds.
func NewProdLogger() (*zap.Logger, error) {
	logCfg := zap.NewProductionConfig()
	logCfg.DisableStacktrace = true
	logCfg.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	logCfg.EncoderConfig = encoderCfg
	return logCfg.Build()
}

// Nop returns a logger that discards everything; the library default.
func Nop() *zap.Logger {
	return zap.NewNop()
}
