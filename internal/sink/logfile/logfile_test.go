// Copyright (c) 2025 Archmagece
// SPDX-License-Identifier: MIT

package logfile

import (
	"bufio"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/keithrbennett/wifiwand-sub003/internal/model"
)

func TestAppend_CreatesParentDirAndWritesNDJSON(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "events.ndjson")

	m, err := New(path, nil)
	require.NoError(t, err)
	defer m.Close()

	m.Append(model.Event{Type: model.EventWifiOn, Timestamp: time.Unix(1000, 0)})
	m.Append(model.Event{Type: model.EventConnected, Timestamp: time.Unix(1001, 0)})

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	scanner := bufio.NewScanner(f)
	var lines []string
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	require.Len(t, lines, 2)

	var ev model.Event
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &ev))
	assert.Equal(t, model.EventWifiOn, ev.Type)
}

func TestAppend_ReopensAndAppendsWithoutTruncating(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "events.ndjson")

	m1, err := New(path, nil)
	require.NoError(t, err)
	m1.Append(model.Event{Type: model.EventWifiOn, Timestamp: time.Unix(1, 0)})
	require.NoError(t, m1.Close())

	m2, err := New(path, nil)
	require.NoError(t, err)
	defer m2.Close()
	m2.Append(model.Event{Type: model.EventWifiOff, Timestamp: time.Unix(2, 0)})

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	lines := 0
	for _, b := range data {
		if b == '\n' {
			lines++
		}
	}
	assert.Equal(t, 2, lines)
}
