// Copyright (c) 2025 Archmagece
// SPDX-License-Identifier: MIT

//go:build windows

package probe

import (
	"context"
	"fmt"
	"os/exec"
	"strings"
)

func radioOn(ctx context.Context) (bool, error) {
	out, err := exec.CommandContext(ctx, "netsh", "interface", "show", "interface", "name=Wi-Fi").Output()
	if err != nil {
		return false, err
	}
	return strings.Contains(string(out), "Enabled"), nil
}

func currentSSID(ctx context.Context) (*string, error) {
	out, err := exec.CommandContext(ctx, "netsh", "wlan", "show", "interfaces").Output()
	if err != nil {
		return nil, err
	}
	for _, line := range strings.Split(string(out), "\n") {
		line = strings.TrimSpace(line)
		if strings.HasPrefix(line, "SSID") && !strings.HasPrefix(line, "BSSID") {
			parts := strings.SplitN(line, ":", 2)
			if len(parts) == 2 {
				ssid := strings.TrimSpace(parts[1])
				if ssid != "" {
					return &ssid, nil
				}
			}
		}
	}
	return nil, fmt.Errorf("not associated")
}
