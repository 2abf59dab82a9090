// Copyright (c) 2025 Archmagece
// SPDX-License-Identifier: MIT

package wifiwand

import (
	"context"
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	wwerrors "github.com/keithrbennett/wifiwand-sub003/internal/errors"
	"github.com/keithrbennett/wifiwand-sub003/internal/netctl"
)

func newNetworksCmd(ctx context.Context) *cobra.Command {
	var (
		preferred bool
		showPass  bool
	)

	cmd := &cobra.Command{
		Use:   "networks",
		Short: "List preferred or in-range Wi-Fi networks",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				names []string
				err   error
			)
			if preferred {
				names, err = netctl.PreferredNetworks(ctx)
			} else {
				names, err = netctl.AvailableNetworks(ctx)
			}
			if err != nil {
				return wwerrors.New(wwerrors.CategoryFatal, fmt.Errorf("listing networks: %w", err))
			}

			table := tablewriter.NewWriter(os.Stdout)
			if showPass && preferred {
				table.Header("SSID", "Password")
				for _, name := range names {
					pw, _ := netctl.StoredPassword(ctx, name)
					if pw == "" {
						pw = "-"
					}
					_ = table.Append([]string{name, pw})
				}
			} else {
				table.Header("SSID")
				for _, name := range names {
					_ = table.Append([]string{name})
				}
			}
			_ = table.Render()
			return nil
		},
	}

	cmd.Flags().BoolVar(&preferred, "preferred", false, "list networks the OS remembers instead of networks currently in range")
	cmd.Flags().BoolVar(&showPass, "show-password", false, "include the OS-stored password (requires --preferred)")
	return cmd
}
