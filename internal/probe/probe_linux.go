// Copyright (c) 2025 Archmagece
// SPDX-License-Identifier: MIT

//go:build linux

package probe

import (
	"context"
	"fmt"
	"os/exec"
	"strings"
)

func radioOn(ctx context.Context) (bool, error) {
	out, err := exec.CommandContext(ctx, "nmcli", "radio", "wifi").Output()
	if err != nil {
		return false, err
	}
	return strings.TrimSpace(string(out)) == "enabled", nil
}

func currentSSID(ctx context.Context) (*string, error) {
	if out, err := exec.CommandContext(ctx, "iwgetid", "-r").Output(); err == nil {
		if ssid := strings.TrimSpace(string(out)); ssid != "" {
			return &ssid, nil
		}
	}

	out, err := exec.CommandContext(ctx, "nmcli", "-t", "-f", "active,ssid", "dev", "wifi").Output()
	if err != nil {
		return nil, err
	}
	for _, line := range strings.Split(string(out), "\n") {
		if strings.HasPrefix(line, "yes:") {
			ssid := strings.TrimPrefix(line, "yes:")
			return &ssid, nil
		}
	}
	return nil, fmt.Errorf("not associated")
}
