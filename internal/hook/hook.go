// Copyright (c) 2025 Archmagece
// SPDX-License-Identifier: MIT

// Package hook runs the operator-configured external hook subprocess for
// one event, feeding it the event as JSON on stdin and enforcing a timeout.
// On timeout the whole process group/job is terminated so a hook that
// spawned children doesn't outlive it; the platform-specific half of that
// lives in hook_unix.go and hook_windows.go.
package hook

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/exec"
	"time"

	wwerrors "github.com/keithrbennett/wifiwand-sub003/internal/errors"
	"github.com/keithrbennett/wifiwand-sub003/internal/model"
)

// killGrace is how long a hook gets to exit after the polite signal before
// it is forcibly killed.
const killGrace = 2 * time.Second

// Result reports the outcome of one hook invocation. Stderr holds
// whatever the hook wrote to its standard error, for diagnostic logging.
type Result struct {
	TimedOut bool
	Err      error
	Stderr   string
}

// Run spawns hookPath, writes ev as a single line of JSON to its stdin,
// closes stdin, and waits up to timeout.
func Run(ctx context.Context, hookPath string, ev model.Event, timeout time.Duration) Result {
	payload, err := json.Marshal(ev)
	if err != nil {
		return Result{Err: fmt.Errorf("encoding event: %w", err)}
	}

	runCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	var stderr bytes.Buffer
	cmd := exec.Command(hookPath)
	cmd.Stdin = bytes.NewReader(payload)
	cmd.Stdout = os.Stdout
	cmd.Stderr = &stderr
	setProcGroup(cmd)

	if err := cmd.Start(); err != nil {
		return Result{Err: wwerrors.Wrap(fmt.Errorf("starting hook %s: %w", hookPath, err), wwerrors.ErrHookNotExecutable)}
	}

	done := make(chan error, 1)
	go func() { done <- cmd.Wait() }()

	select {
	case err := <-done:
		if err != nil {
			return Result{Err: fmt.Errorf("hook %s: %w", hookPath, err), Stderr: stderr.String()}
		}
		return Result{Stderr: stderr.String()}
	case <-runCtx.Done():
		terminateGroup(cmd)
		select {
		case <-done:
		case <-time.After(killGrace):
			killGroup(cmd)
			<-done
		}
		return Result{
			TimedOut: true,
			Err:      wwerrors.Wrap(fmt.Errorf("hook %s timed out after %v", hookPath, timeout), wwerrors.ErrHookTimeout),
			Stderr:   stderr.String(),
		}
	}
}
