// Copyright (c) 2025 Archmagece
// SPDX-License-Identifier: MIT

//go:build darwin

package probe

import (
	"context"
	"fmt"
	"os/exec"
	"strings"
)

const macAirportPath = "/System/Library/PrivateFrameworks/Apple80211.framework/Versions/Current/Resources/airport"

func radioOn(ctx context.Context) (bool, error) {
	out, err := exec.CommandContext(ctx, "networksetup", "-getairportpower", "en0").Output()
	if err != nil {
		return false, err
	}
	return strings.Contains(string(out), "On"), nil
}

func currentSSID(ctx context.Context) (*string, error) {
	out, err := exec.CommandContext(ctx, macAirportPath, "-I").Output()
	if err != nil {
		return nil, err
	}

	for _, line := range strings.Split(string(out), "\n") {
		if strings.Contains(line, " SSID:") {
			parts := strings.SplitN(strings.TrimSpace(line), ":", 2)
			if len(parts) == 2 {
				ssid := strings.TrimSpace(parts[1])
				return &ssid, nil
			}
		}
	}
	return nil, fmt.Errorf("not associated")
}
