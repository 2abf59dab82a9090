// Copyright (c) 2025 Archmagece
// SPDX-License-Identifier: MIT

package wifiwand

import (
	"context"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/keithrbennett/wifiwand-sub003/internal/config"
	"github.com/keithrbennett/wifiwand-sub003/internal/netctl"
	"github.com/keithrbennett/wifiwand-sub003/internal/sampler"
)

func newInfoCmd(ctx context.Context) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "info",
		Short: "Print current Wi-Fi and internet connectivity status as a table",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Default()
			s := sampler.New(cfg.RefTCPHost, cfg.RefTCPPort, cfg.RefDNSName, cfg.RefDNSServer, cfg.ProbeTimeout)
			state := s.Sample(ctx)

			network := "-"
			if state.NetworkName != nil {
				network = *state.NetworkName
			}

			preferred, _ := netctl.PreferredNetworks(ctx)

			table := tablewriter.NewWriter(os.Stdout)
			table.Header("Field", "Value")
			_ = table.Append([]string{"Wi-Fi radio", boolCell(state.WifiOn)})
			_ = table.Append([]string{"Network", network})
			_ = table.Append([]string{"TCP reachable", boolCell(state.TCPWorking)})
			_ = table.Append([]string{"DNS resolves", boolCell(state.DNSWorking)})
			_ = table.Append([]string{"Internet connected", boolCell(state.InternetConnected)})
			_ = table.Append([]string{"Sampled at", state.SampledAt.Format(time.RFC3339)})
			_ = table.Append([]string{"Preferred networks", joinOrDash(preferred)})
			_ = table.Render()

			return nil
		},
	}
	return cmd
}

func boolCell(b bool) string {
	if b {
		return color.GreenString("yes")
	}
	return color.RedString("no")
}

func joinOrDash(items []string) string {
	if len(items) == 0 {
		return "-"
	}
	out := items[0]
	for _, s := range items[1:] {
		out += ", " + s
	}
	return out
}
