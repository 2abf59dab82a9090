// Copyright (c) 2025 Archmagece
// SPDX-License-Identifier: MIT

// Command wifiwand is the entry point for the wifiwand CLI.
package main

import (
	"fmt"
	"os"

	"github.com/keithrbennett/wifiwand-sub003/internal/app"
)

var version = "dev"

func main() {
	if err := app.NewRunner(version).Run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
