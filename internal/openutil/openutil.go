// Copyright (c) 2025 Archmagece
// SPDX-License-Identifier: MIT

// Package openutil opens a file or URL with the OS's default handler,
// choosing the opener with a switch on runtime.GOOS.
package openutil

import (
	"context"
	"fmt"
	"os/exec"
	"runtime"
)

// Open hands resource to the platform's default opener: "open" on macOS,
// "xdg-open" on Linux, "start" (via cmd) on Windows.
func Open(ctx context.Context, resource string) error {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.CommandContext(ctx, "open", resource)
	case "linux":
		cmd = exec.CommandContext(ctx, "xdg-open", resource)
	case "windows":
		cmd = exec.CommandContext(ctx, "cmd", "/c", "start", "", resource)
	default:
		return fmt.Errorf("opening resources is not supported on %s", runtime.GOOS)
	}
	return cmd.Run()
}
