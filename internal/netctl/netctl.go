// Copyright (c) 2025 Archmagece
// SPDX-License-Identifier: MIT

// Package netctl performs Wi-Fi actuation: connecting/disconnecting,
// listing preferred and in-range networks, reading a stored password, and
// power-cycling the radio. Each operation dispatches to the OS-native tool
// the way internal/probe does for read-only state.
package netctl

import (
	"context"
	"fmt"
	"runtime"
)

// Connect joins ssid, supplying password if the network requires one. On
// Windows the password is not used: netsh connects only to a network that
// already has a saved profile.
func Connect(ctx context.Context, ssid, password string) error {
	return connect(ctx, ssid, password)
}

// Disconnect drops the current Wi-Fi association without powering off the
// radio.
func Disconnect(ctx context.Context) error {
	return disconnect(ctx)
}

// PreferredNetworks lists networks the OS has been told to remember.
func PreferredNetworks(ctx context.Context) ([]string, error) {
	return preferredNetworks(ctx)
}

// AvailableNetworks lists SSIDs currently in radio range.
func AvailableNetworks(ctx context.Context) ([]string, error) {
	return availableNetworks(ctx)
}

// StoredPassword returns the OS-stored password for ssid, if readable.
func StoredPassword(ctx context.Context, ssid string) (string, error) {
	return storedPassword(ctx, ssid)
}

// CycleRadio turns the Wi-Fi radio off and back on.
func CycleRadio(ctx context.Context) error {
	return cycleRadio(ctx)
}

func errUnsupported(op string) error {
	return fmt.Errorf("%s is not supported on %s", op, runtime.GOOS)
}
