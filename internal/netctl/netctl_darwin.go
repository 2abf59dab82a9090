// Copyright (c) 2025 Archmagece
// SPDX-License-Identifier: MIT

//go:build darwin

package netctl

import (
	"context"
	"os/exec"
	"strings"
)

const macWifiInterface = "en0"

func connect(ctx context.Context, ssid, password string) error {
	args := []string{macWifiInterface, ssid}
	if password != "" {
		args = append(args, password)
	}
	return exec.CommandContext(ctx, "networksetup", append([]string{"-setairportnetwork"}, args...)...).Run()
}

func disconnect(ctx context.Context) error {
	return exec.CommandContext(ctx, "airport", "-z").Run()
}

func preferredNetworks(ctx context.Context) ([]string, error) {
	out, err := exec.CommandContext(ctx, "networksetup", "-listpreferredwirelessnetworks", macWifiInterface).Output()
	if err != nil {
		return nil, err
	}
	lines := strings.Split(string(out), "\n")
	if len(lines) > 0 {
		lines = lines[1:] // first line is a header
	}
	return trimNonEmpty(lines), nil
}

func availableNetworks(ctx context.Context) ([]string, error) {
	out, err := exec.CommandContext(ctx, "airport", "-s").Output()
	if err != nil {
		return nil, err
	}
	return trimNonEmpty(strings.Split(string(out), "\n")), nil
}

func storedPassword(ctx context.Context, ssid string) (string, error) {
	out, err := exec.CommandContext(ctx, "security", "find-generic-password", "-D", "AirPort network password", "-a", ssid, "-w").Output()
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(out)), nil
}

func cycleRadio(ctx context.Context) error {
	if err := exec.CommandContext(ctx, "networksetup", "-setairportpower", macWifiInterface, "off").Run(); err != nil {
		return err
	}
	return exec.CommandContext(ctx, "networksetup", "-setairportpower", macWifiInterface, "on").Run()
}

func trimNonEmpty(lines []string) []string {
	var out []string
	for _, l := range lines {
		if l = strings.TrimSpace(l); l != "" {
			out = append(out, l)
		}
	}
	return out
}
