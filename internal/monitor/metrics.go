// Copyright (c) 2025 Archmagece
// SPDX-License-Identifier: MIT

package monitor

import (
	"context"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics counts ambient operational facts about the monitor loop. These
// are debug-only: enabling --metrics-addr does not change loop behavior.
// ProbeFailure is registered and exported, but nothing in the monitor
// increments it, so it always reads zero.
type Metrics struct {
	Ticks        prometheus.Counter
	ProbeFailure prometheus.Counter
	HookTimeout  prometheus.Counter
	EventsFired  *prometheus.CounterVec
}

// NewMetrics registers a fresh metric set against its own registry, so
// tests can construct one per case without colliding on the default
// registry.
func NewMetrics() (*Metrics, *prometheus.Registry) {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Metrics{
		Ticks: factory.NewCounter(prometheus.CounterOpts{
			Name: "wifiwand_ticks_total",
			Help: "Number of sampling ticks completed.",
		}),
		ProbeFailure: factory.NewCounter(prometheus.CounterOpts{
			Name: "wifiwand_probe_failures_total",
			Help: "Number of probe calls that returned a non-actionable error.",
		}),
		HookTimeout: factory.NewCounter(prometheus.CounterOpts{
			Name: "wifiwand_hook_timeouts_total",
			Help: "Number of hook invocations that were killed for exceeding their timeout.",
		}),
		EventsFired: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "wifiwand_events_total",
			Help: "Number of events fired, by type.",
		}, []string{"type"}),
	}, reg
}

// ServeMetrics starts a debug-only HTTP listener exposing the Prometheus
// registry at /metrics. It runs until ctx is canceled.
func ServeMetrics(ctx context.Context, addr string, reg *prometheus.Registry) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))

	srv := &http.Server{Addr: addr, Handler: mux}
	go func() {
		<-ctx.Done()
		_ = srv.Close()
	}()

	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}
