// Copyright (c) 2025 Archmagece
// SPDX-License-Identifier: MIT

package wifiwand

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/keithrbennett/wifiwand-sub003/internal/config"
	"github.com/keithrbennett/wifiwand-sub003/internal/shell"
)

func newShellCmd(ctx context.Context) *cobra.Command {
	return &cobra.Command{
		Use:   "shell",
		Short: "Start an interactive shell for status checks and network control",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return shell.New(config.Default()).Run(ctx)
		},
	}
}
