// Copyright (c) 2025 Archmagece
// SPDX-License-Identifier: MIT

// Package monitor is the orchestrator: a ticker-driven loop that samples
// network state, classifies the diff into events, and fans each event out
// to the configured sinks in order: log file, hook, stdout.
package monitor

import (
	"context"
	"io"
	"os"
	"time"

	"github.com/keithrbennett/wifiwand-sub003/internal/cli/render"
	"github.com/keithrbennett/wifiwand-sub003/internal/classify"
	"github.com/keithrbennett/wifiwand-sub003/internal/config"
	"github.com/keithrbennett/wifiwand-sub003/internal/hook"
	"github.com/keithrbennett/wifiwand-sub003/internal/logger"
	"github.com/keithrbennett/wifiwand-sub003/internal/model"
	"github.com/keithrbennett/wifiwand-sub003/internal/sampler"
	"github.com/keithrbennett/wifiwand-sub003/internal/sink/logfile"
)

// Monitor runs the sample/classify/dispatch loop until its context is
// canceled. A tick already in flight is always allowed to finish before
// the loop exits.
type Monitor struct {
	cfg     *config.LoggerConfig
	sampler *sampler.Sampler
	logSink *logfile.Manager
	log     *logger.Logger
	metrics *Metrics
	stdout  io.Writer
}

// New builds a Monitor. logSink may be nil if the log-file sink is
// disabled; metrics may be nil if --metrics-addr was not given.
func New(cfg *config.LoggerConfig, s *sampler.Sampler, logSink *logfile.Manager, log *logger.Logger, metrics *Metrics) *Monitor {
	return &Monitor{
		cfg:     cfg,
		sampler: s,
		logSink: logSink,
		log:     log,
		metrics: metrics,
		stdout:  os.Stdout,
	}
}

// Run samples on a fixed interval, keyed to loop start rather than wall
// clock, and dispatches exactly one tick at a time.
func (m *Monitor) Run(ctx context.Context) error {
	interval := time.Duration(m.cfg.IntervalSeconds * float64(time.Second))
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	if m.cfg.EmitToStdout {
		render.Header(m.stdout, interval, m.cfg.LogFilePath, m.cfg.HookPath)
	}

	var prev *model.NetworkState

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			// Once started, a tick is not cut short by cancellation: probes
			// and the hook stay bounded by their own timeouts.
			tickCtx := context.WithoutCancel(ctx)
			tickLog := m.log.WithTick()
			curr := m.sampler.Sample(tickCtx)
			if m.metrics != nil {
				m.metrics.Ticks.Inc()
			}

			// The continuous-status feed: one line per tick regardless of
			// whether a transition occurred.
			if m.cfg.EmitToStdout {
				render.StatusLine(m.stdout, curr)
			}

			events := classify.Classify(prev, curr)
			for _, ev := range events {
				m.dispatch(tickCtx, tickLog, ev)
			}
			prevCopy := curr
			prev = &prevCopy
		}
	}
}

func (m *Monitor) dispatch(ctx context.Context, log *logger.Logger, ev model.Event) {
	if m.metrics != nil {
		m.metrics.EventsFired.WithLabelValues(string(ev.Type)).Inc()
	}

	if m.logSink != nil {
		m.logSink.Append(ev)
	}

	if m.cfg.HookPath != "" {
		timeout := time.Duration(m.cfg.HookTimeoutSeconds * float64(time.Second))
		res := hook.Run(ctx, m.cfg.HookPath, ev, timeout)
		if res.TimedOut {
			log.Warnw("hook timed out", "event", ev.Type, "hook", m.cfg.HookPath)
			if m.metrics != nil {
				m.metrics.HookTimeout.Inc()
			}
		} else if res.Err != nil {
			log.Warnw("hook failed", "event", ev.Type, "hook", m.cfg.HookPath, "error", res.Err)
		}
		if res.Stderr != "" {
			log.Debugw("hook stderr", "event", ev.Type, "stderr", res.Stderr)
		}
	}

	if m.cfg.EmitToStdout {
		render.EventLine(m.stdout, ev)
	}
}
