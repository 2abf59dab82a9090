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

func newConnectCmd(ctx context.Context) *cobra.Command {
	var password string

	cmd := &cobra.Command{
		Use:   "connect SSID",
		Short: "Join a Wi-Fi network, optionally supplying its password",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ssid := args[0]
			if err := netctl.Connect(ctx, ssid, password); err != nil {
				return wwerrors.New(wwerrors.CategoryFatal, fmt.Errorf("connecting to %s: %w", ssid, err))
			}
			fmt.Fprintf(cmd.OutOrStdout(), "connected to %s\n", ssid)
			return nil
		},
	}

	cmd.Flags().StringVarP(&password, "password", "p", "", "network password, if required")
	return cmd
}
