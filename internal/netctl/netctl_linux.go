// Copyright (c) 2025 Archmagece
// SPDX-License-Identifier: MIT

//go:build linux

package netctl

import (
	"context"
	"os/exec"
	"strings"
)

func connect(ctx context.Context, ssid, password string) error {
	args := []string{"dev", "wifi", "connect", ssid}
	if password != "" {
		args = append(args, "password", password)
	}
	return exec.CommandContext(ctx, "nmcli", args...).Run()
}

func disconnect(ctx context.Context) error {
	return exec.CommandContext(ctx, "nmcli", "dev", "disconnect", "wifi0").Run()
}

func preferredNetworks(ctx context.Context) ([]string, error) {
	out, err := exec.CommandContext(ctx, "nmcli", "-t", "-f", "NAME", "connection", "show").Output()
	if err != nil {
		return nil, err
	}
	return splitLines(out), nil
}

func availableNetworks(ctx context.Context) ([]string, error) {
	out, err := exec.CommandContext(ctx, "nmcli", "-t", "-f", "SSID", "dev", "wifi", "list").Output()
	if err != nil {
		return nil, err
	}
	return splitLines(out), nil
}

func storedPassword(ctx context.Context, ssid string) (string, error) {
	out, err := exec.CommandContext(ctx, "nmcli", "-s", "-g", "802-11-wireless-security.psk", "connection", "show", ssid).Output()
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(out)), nil
}

func cycleRadio(ctx context.Context) error {
	if err := exec.CommandContext(ctx, "nmcli", "radio", "wifi", "off").Run(); err != nil {
		return err
	}
	return exec.CommandContext(ctx, "nmcli", "radio", "wifi", "on").Run()
}

func splitLines(out []byte) []string {
	var lines []string
	for _, l := range strings.Split(string(out), "\n") {
		if l = strings.TrimSpace(l); l != "" {
			lines = append(lines, l)
		}
	}
	return lines
}
