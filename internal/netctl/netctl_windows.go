// Copyright (c) 2025 Archmagece
// SPDX-License-Identifier: MIT

//go:build windows

package netctl

import (
	"context"
	"fmt"
	"os/exec"
	"strings"
)

func connect(ctx context.Context, ssid, password string) error {
	return exec.CommandContext(ctx, "netsh", "wlan", "connect", "name="+ssid).Run()
}

func disconnect(ctx context.Context) error {
	return exec.CommandContext(ctx, "netsh", "wlan", "disconnect").Run()
}

func preferredNetworks(ctx context.Context) ([]string, error) {
	out, err := exec.CommandContext(ctx, "netsh", "wlan", "show", "profiles").Output()
	if err != nil {
		return nil, err
	}
	var names []string
	for _, line := range strings.Split(string(out), "\n") {
		line = strings.TrimSpace(line)
		if strings.HasPrefix(line, "All User Profile") {
			parts := strings.SplitN(line, ":", 2)
			if len(parts) == 2 {
				names = append(names, strings.TrimSpace(parts[1]))
			}
		}
	}
	return names, nil
}

func availableNetworks(ctx context.Context) ([]string, error) {
	out, err := exec.CommandContext(ctx, "netsh", "wlan", "show", "networks").Output()
	if err != nil {
		return nil, err
	}
	var names []string
	for _, line := range strings.Split(string(out), "\n") {
		line = strings.TrimSpace(line)
		if strings.HasPrefix(line, "SSID") {
			parts := strings.SplitN(line, ":", 2)
			if len(parts) == 2 {
				names = append(names, strings.TrimSpace(parts[1]))
			}
		}
	}
	return names, nil
}

func storedPassword(ctx context.Context, ssid string) (string, error) {
	out, err := exec.CommandContext(ctx, "netsh", "wlan", "show", "profile", "name="+ssid, "key=clear").Output()
	if err != nil {
		return "", err
	}
	for _, line := range strings.Split(string(out), "\n") {
		line = strings.TrimSpace(line)
		if strings.HasPrefix(line, "Key Content") {
			parts := strings.SplitN(line, ":", 2)
			if len(parts) == 2 {
				return strings.TrimSpace(parts[1]), nil
			}
		}
	}
	return "", fmt.Errorf("password not found for %s", ssid)
}

func cycleRadio(ctx context.Context) error {
	if err := exec.CommandContext(ctx, "netsh", "interface", "set", "interface", "Wi-Fi", "disabled").Run(); err != nil {
		return err
	}
	return exec.CommandContext(ctx, "netsh", "interface", "set", "interface", "Wi-Fi", "enabled").Run()
}
