// Copyright (c) 2025 Archmagece
// SPDX-License-Identifier: MIT

// Package wifiwand is the CLI surface: a cobra command tree over the
// monitor core (internal/monitor) and the out-of-scope collaborators
// (internal/netctl, internal/qr, internal/openutil) that round out a
// usable Wi-Fi utility.
package wifiwand

import (
	"context"

	"github.com/spf13/cobra"
)

// NewRootCmd builds the wifiwand command tree.
func NewRootCmd(ctx context.Context, version string) *cobra.Command {
	root := &cobra.Command{
		Use:           "wifiwand",
		Short:         "Monitor and control Wi-Fi connectivity",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	root.AddCommand(newLogCmd(ctx))
	root.AddCommand(newInfoCmd(ctx))
	root.AddCommand(newConnectCmd(ctx))
	root.AddCommand(newDisconnectCmd(ctx))
	root.AddCommand(newNetworksCmd(ctx))
	root.AddCommand(newQRCmd())
	root.AddCommand(newOpenCmd(ctx))
	root.AddCommand(newShellCmd(ctx))

	return root
}

// Execute runs the root command with the given context and version.
func Execute(ctx context.Context, version string) error {
	return NewRootCmd(ctx, version).ExecuteContext(ctx)
}
