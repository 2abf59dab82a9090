// Copyright (c) 2025 Archmagece
// SPDX-License-Identifier: MIT

package monitor

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/keithrbennett/wifiwand-sub003/internal/config"
	"github.com/keithrbennett/wifiwand-sub003/internal/logger"
	"github.com/keithrbennett/wifiwand-sub003/internal/model"
	"github.com/keithrbennett/wifiwand-sub003/internal/sampler"
	"github.com/keithrbennett/wifiwand-sub003/internal/sink/logfile"
)

func modelEvent() model.Event {
	return model.Event{Type: model.EventWifiOn, Timestamp: time.Unix(1000, 0)}
}

func TestMonitor_RunStopsOnContextCancel(t *testing.T) {
	cfg := config.Default()
	cfg.IntervalSeconds = 0.01
	cfg.RefTCPHost = "127.0.0.1"
	cfg.RefTCPPort = 1 // almost certainly closed, probe returns false
	cfg.ProbeTimeout = 50 * time.Millisecond

	s := sampler.New(cfg.RefTCPHost, cfg.RefTCPPort, cfg.RefDNSName, cfg.RefDNSServer, cfg.ProbeTimeout)
	m := New(cfg, s, nil, logger.Nop(), nil)

	var buf bytes.Buffer
	m.stdout = &buf

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Millisecond)
	defer cancel()

	err := m.Run(ctx)
	require.NoError(t, err)
}

func TestMonitor_DispatchWritesLogSink(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "events.ndjson")
	sink, err := logfile.New(path, nil)
	require.NoError(t, err)
	defer sink.Close()

	cfg := config.Default()
	m := New(cfg, sampler.New("1.1.1.1", 443, "cloudflare.com", "8.8.8.8:53", time.Second), sink, logger.Nop(), nil)

	var buf bytes.Buffer
	m.stdout = &buf

	m.dispatch(context.Background(), logger.Nop(), modelEvent())

	assert.FileExists(t, path)
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 1, bytes.Count(data, []byte("\n")))
}

// TestMonitor_HookTimeoutDoesNotBlockLogSink: a hook that always exceeds
// its timeout must not stop the log file from receiving one NDJSON line
// per event, and must not crash the dispatcher.
func TestMonitor_HookTimeoutDoesNotBlockLogSink(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("hook script assumes a POSIX shell")
	}

	dir := t.TempDir()
	logPath := filepath.Join(dir, "events.ndjson")
	sink, err := logfile.New(logPath, nil)
	require.NoError(t, err)
	defer sink.Close()

	hookPath := filepath.Join(dir, "slow-hook.sh")
	require.NoError(t, os.WriteFile(hookPath, []byte("#!/bin/sh\ncat >/dev/null\nsleep 5\n"), 0o755))

	cfg := config.Default()
	cfg.HookPath = hookPath
	cfg.HookTimeoutSeconds = 0.1

	m := New(cfg, sampler.New("1.1.1.1", 443, "cloudflare.com", "8.8.8.8:53", time.Second), sink, logger.Nop(), nil)
	var buf bytes.Buffer
	m.stdout = &buf

	m.dispatch(context.Background(), logger.Nop(), model.Event{Type: model.EventWifiOn, Timestamp: time.Unix(1, 0)})
	m.dispatch(context.Background(), logger.Nop(), model.Event{Type: model.EventWifiOff, Timestamp: time.Unix(2, 0)})

	data, err := os.ReadFile(logPath)
	require.NoError(t, err)
	lines := bytes.Count(data, []byte("\n"))
	assert.Equal(t, 2, lines, "both events must reach the log sink despite the hook timing out each time")
}
