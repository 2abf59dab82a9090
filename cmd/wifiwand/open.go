// Copyright (c) 2025 Archmagece
// SPDX-License-Identifier: MIT

package wifiwand

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	wwerrors "github.com/keithrbennett/wifiwand-sub003/internal/errors"
	"github.com/keithrbennett/wifiwand-sub003/internal/openutil"
)

func newOpenCmd(ctx context.Context) *cobra.Command {
	return &cobra.Command{
		Use:   "open RESOURCE",
		Short: "Open a URL or file with the OS's default handler",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := openutil.Open(ctx, args[0]); err != nil {
				return wwerrors.New(wwerrors.CategoryFatal, fmt.Errorf("opening %s: %w", args[0], err))
			}
			return nil
		},
	}
}
