// Copyright (c) 2025 Archmagece
// SPDX-License-Identifier: MIT

package errors

import (
	sterrors "errors"
	"fmt"
)

// Category classifies an error by how the orchestrator is allowed to react to it.
type Category string

const (
	// CategoryConfiguration marks bad flags, missing required arguments, or
	// mutually exclusive option conflicts. Surfaced before the monitor loop starts.
	CategoryConfiguration Category = "configuration"
	// CategoryProbe marks a failure inside a probe. Always collapsed to a
	// typed false/absent result, by the TCP/DNS probes themselves or, for the
	// radio and SSID reads, by the sampler; never wrapped and returned past
	// the sampler.
	CategoryProbe Category = "probe"
	// CategorySink marks a failure in a hook invocation or log append.
	// Logged to standard error, rate-limited, and otherwise ignored by the loop.
	CategorySink Category = "sink"
	// CategoryFatal marks an unrecoverable condition, e.g. loss of the
	// process clock or standard streams. The loop exits non-zero.
	CategoryFatal Category = "fatal"
)

var (
	// ErrConfigInvalid indicates a configuration value failed validation.
	ErrConfigInvalid = sterrors.New("invalid configuration")
	// ErrNoSinkEnabled indicates the CLI was asked to run with every sink disabled.
	ErrNoSinkEnabled = sterrors.New("at least one sink must be enabled")
	// ErrHookNotExecutable indicates the configured hook path could not be executed.
	ErrHookNotExecutable = sterrors.New("hook path is not executable")
	// ErrHookTimeout indicates a hook invocation exceeded its configured timeout.
	ErrHookTimeout = sterrors.New("hook timed out")
)

// CategorizedError pairs an error with the Category that determines how the
// orchestrator reacts to it.
type CategorizedError struct {
	Category Category
	Err      error
}

func (e *CategorizedError) Error() string {
	return fmt.Sprintf("%s: %v", e.Category, e.Err)
}

func (e *CategorizedError) Unwrap() error {
	return e.Err
}

// New wraps err under the given category.
func New(category Category, err error) *CategorizedError {
	return &CategorizedError{Category: category, Err: err}
}

// Wrap annotates err with target so callers can use errors.Is/As against
// target while the original error remains available via Unwrap.
func Wrap(err, target error) error {
	if err == nil {
		return target
	}
	if target == nil {
		return err
	}
	return fmt.Errorf("%w: %w", target, err)
}

// Is reports whether err carries the given category.
func Is(err error, category Category) bool {
	var ce *CategorizedError
	if sterrors.As(err, &ce) {
		return ce.Category == category
	}
	return false
}
