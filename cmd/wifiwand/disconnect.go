// Copyright (c) 2025 Archmagece
// SPDX-License-Identifier: MIT

package wifiwand

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	wwerrors "github.com/keithrbennett/wifiwand-sub003/internal/errors"
	"github.com/keithrbennett/wifiwand-sub003/internal/netctl"
)

func newDisconnectCmd(ctx context.Context) *cobra.Command {
	return &cobra.Command{
		Use:   "disconnect",
		Short: "Drop the current Wi-Fi association without powering off the radio",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := netctl.Disconnect(ctx); err != nil {
				return wwerrors.New(wwerrors.CategoryFatal, fmt.Errorf("disconnecting: %w", err))
			}
			fmt.Fprintln(cmd.OutOrStdout(), "disconnected")
			return nil
		},
	}
}
