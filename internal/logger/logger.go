// Copyright (c) 2025 Archmagece
// SPDX-License-Identifier: MIT

// Package logger provides the structured, component-tagged logger used
// across wifiwand. It wraps zap with console encoding, ISO8601 timestamps,
// and a debug/info level switch driven by --verbose.
package logger

import (
	"github.com/google/uuid"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger is a component-scoped wrapper around a zap.SugaredLogger. A new
// Logger is cheap to derive via With, so each tick of the monitor loop can
// attach its own correlation id without mutating a shared instance.
type Logger struct {
	sugar     *zap.SugaredLogger
	component string
}

// New builds a Logger for component, writing console-encoded records to
// stderr at InfoLevel, or DebugLevel when verbose is true. Stdout is left
// to the monitor's status feed.
func New(component string, verbose bool) *Logger {
	cfg := zap.NewProductionConfig()
	if verbose {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	} else {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.InfoLevel)
	}
	cfg.Encoding = "console"
	cfg.EncoderConfig.TimeKey = "timestamp"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	cfg.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder

	zl, err := cfg.Build()
	if err != nil {
		zl = zap.NewNop()
	}

	return &Logger{
		sugar:     zl.Sugar().With("component", component),
		component: component,
	}
}

// Nop returns a Logger that discards everything, used in tests that don't
// care about log output.
func Nop() *Logger {
	return &Logger{sugar: zap.NewNop().Sugar(), component: "nop"}
}

// WithTick returns a derived Logger tagged with a fresh correlation id for
// one sampling tick, so an operator can grep a single tick's hook activity
// (timeouts, failures, captured stderr) out of interleaved log lines.
func (l *Logger) WithTick() *Logger {
	return &Logger{
		sugar:     l.sugar.With("tick_id", uuid.NewString()),
		component: l.component,
	}
}

// With returns a derived Logger with additional structured fields attached
// to every subsequent call.
func (l *Logger) With(keysAndValues ...interface{}) *Logger {
	return &Logger{sugar: l.sugar.With(keysAndValues...), component: l.component}
}

func (l *Logger) Debugw(msg string, keysAndValues ...interface{}) { l.sugar.Debugw(msg, keysAndValues...) }
func (l *Logger) Infow(msg string, keysAndValues ...interface{})  { l.sugar.Infow(msg, keysAndValues...) }
func (l *Logger) Warnw(msg string, keysAndValues ...interface{})  { l.sugar.Warnw(msg, keysAndValues...) }
func (l *Logger) Errorw(msg string, keysAndValues ...interface{}) { l.sugar.Errorw(msg, keysAndValues...) }

// Sync flushes any buffered log entries. Call before process exit.
func (l *Logger) Sync() error {
	return l.sugar.Sync()
}
