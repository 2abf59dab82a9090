// Copyright (c) 2025 Archmagece
// SPDX-License-Identifier: MIT

package wifiwand

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	wwerrors "github.com/keithrbennett/wifiwand-sub003/internal/errors"
	"github.com/keithrbennett/wifiwand-sub003/internal/qr"
)

func newQRCmd() *cobra.Command {
	var (
		password string
		security string
		output   string
	)

	cmd := &cobra.Command{
		Use:   "qr SSID",
		Short: "Generate a scannable QR code that joins a Wi-Fi network",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ssid := args[0]
			png, err := qr.Generate(ssid, password, security)
			if err != nil {
				return wwerrors.New(wwerrors.CategoryConfiguration, err)
			}
			if output == "" {
				output = ssid + ".png"
			}
			if err := os.WriteFile(output, png, 0o644); err != nil {
				return wwerrors.New(wwerrors.CategoryFatal, fmt.Errorf("writing %s: %w", output, err))
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&password, "password", "p", "", "network password")
	cmd.Flags().StringVar(&security, "security", "WPA", "security type: WPA, WEP, or nopass")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output PNG path (default SSID.png)")
	return cmd
}
