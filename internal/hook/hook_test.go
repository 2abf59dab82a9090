//go:build !windows

// Copyright (c) 2025 Archmagece
// SPDX-License-Identifier: MIT

package hook

import (
	"context"
	stderrors "errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	wwerrors "github.com/keithrbennett/wifiwand-sub003/internal/errors"
	"github.com/keithrbennett/wifiwand-sub003/internal/model"
)

func writeScript(t *testing.T, body string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "hook.sh")
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\n"+body), 0o755))
	return path
}

func testEvent() model.Event {
	return model.Event{Type: model.EventWifiOn, Timestamp: time.Unix(0, 0)}
}

func TestRun_Success(t *testing.T) {
	path := writeScript(t, "cat >/dev/null\nexit 0\n")
	res := Run(context.Background(), path, testEvent(), time.Second)
	assert.NoError(t, res.Err)
	assert.False(t, res.TimedOut)
}

func TestRun_NonZeroExit(t *testing.T) {
	path := writeScript(t, "cat >/dev/null\nexit 1\n")
	res := Run(context.Background(), path, testEvent(), time.Second)
	assert.Error(t, res.Err)
	assert.False(t, res.TimedOut)
}

func TestRun_Timeout(t *testing.T) {
	path := writeScript(t, "cat >/dev/null\nsleep 5\n")
	res := Run(context.Background(), path, testEvent(), 100*time.Millisecond)
	assert.True(t, res.TimedOut)
	assert.Error(t, res.Err)
	assert.True(t, stderrors.Is(res.Err, wwerrors.ErrHookTimeout))
}

func TestRun_CapturesStderr(t *testing.T) {
	path := writeScript(t, "cat >/dev/null\necho oops >&2\nexit 1\n")
	res := Run(context.Background(), path, testEvent(), time.Second)
	assert.Error(t, res.Err)
	assert.Contains(t, res.Stderr, "oops")
}

func TestRun_NotExecutable(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "missing-hook")
	res := Run(context.Background(), path, testEvent(), time.Second)
	assert.Error(t, res.Err)
	assert.False(t, res.TimedOut)
	assert.True(t, stderrors.Is(res.Err, wwerrors.ErrHookNotExecutable))
}
