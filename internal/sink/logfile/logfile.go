// Copyright (c) 2025 Archmagece
// SPDX-License-Identifier: MIT

// Package logfile implements the NDJSON log sink: one Event per line,
// appended to a file that is created (along with its parent directories)
// when the Manager is constructed and never truncated.
package logfile

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/keithrbennett/wifiwand-sub003/internal/config"
	"github.com/keithrbennett/wifiwand-sub003/internal/model"
)

// errReportInterval rate-limits repeated write-failure reports to stderr
// so a persistently broken disk doesn't spam the operator every tick.
const errReportInterval = 30 * time.Second

// Manager appends NDJSON-encoded events to a log file.
type Manager struct {
	mu         sync.Mutex
	writer     io.WriteCloser
	path       string
	lastErrLog time.Time
}

// New opens (creating parent directories as needed) the log file at path.
// If rotation is non-nil, writes go through a lumberjack.Logger instead of
// a plain append-mode file handle.
func New(path string, rotation *config.LogRotationConfig) (*Manager, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("creating log directory: %w", err)
	}

	var w io.WriteCloser
	if rotation != nil {
		w = &lumberjack.Logger{
			Filename:   path,
			MaxSize:    rotation.MaxSizeMB,
			MaxBackups: rotation.MaxBackups,
			Compress:   false,
		}
	} else {
		f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, fmt.Errorf("opening log file %s: %w", path, err)
		}
		w = f
	}

	return &Manager{writer: w, path: path}, nil
}

// Append encodes ev as one JSON line and writes it, flushing immediately.
// Write errors are swallowed after a rate-limited stderr report: a broken
// log sink must never stop the monitor loop or the other sinks.
func (m *Manager) Append(ev model.Event) {
	line, err := json.Marshal(ev)
	if err != nil {
		m.reportError(fmt.Errorf("encoding event: %w", err))
		return
	}
	line = append(line, '\n')

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, err := m.writer.Write(line); err != nil {
		m.reportError(fmt.Errorf("writing to %s: %w", m.path, err))
	}
}

func (m *Manager) reportError(err error) {
	now := time.Now()
	if now.Sub(m.lastErrLog) < errReportInterval {
		return
	}
	m.lastErrLog = now
	fmt.Fprintln(os.Stderr, "wifiwand: log sink error:", err)
}

// Close releases the underlying file handle.
func (m *Manager) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.writer.Close()
}
