// Copyright (c) 2025 Archmagece
// SPDX-License-Identifier: MIT

// Package app provides application bootstrapping and lifecycle management.
// It handles signal management and graceful shutdown so main stays a thin
// wrapper around cobra's Execute.
package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/keithrbennett/wifiwand-sub003/cmd/wifiwand"
)

// Runner owns the process lifecycle: it builds a cancelable context wired
// to SIGINT/SIGTERM and executes the root cobra command against it.
type Runner struct {
	version string
}

// NewRunner creates a new application runner with the specified version.
func NewRunner(version string) *Runner {
	return &Runner{version: version}
}

// Run starts the application with proper signal handling and graceful
// shutdown. An in-flight monitor tick is allowed to finish; cancellation
// only stops the loop from starting another one.
func (r *Runner) Run() error {
	ctx, cancel := r.setupGracefulShutdown()
	defer cancel()

	if err := wifiwand.Execute(ctx, r.version); err != nil {
		return fmt.Errorf("application execution failed: %w", err)
	}
	return nil
}

func (r *Runner) setupGracefulShutdown() (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(context.Background())

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-sigChan
		fmt.Fprintf(os.Stderr, "\nReceived interrupt signal, shutting down gracefully...\n")
		cancel()
	}()

	return ctx, cancel
}

// GetVersion returns the application version.
func (r *Runner) GetVersion() string {
	return r.version
}
