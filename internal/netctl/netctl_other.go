// Copyright (c) 2025 Archmagece
// SPDX-License-Identifier: MIT

//go:build !darwin && !linux && !windows

package netctl

import "context"

func connect(ctx context.Context, ssid, password string) error { return errUnsupported("connect") }
func disconnect(ctx context.Context) error                     { return errUnsupported("disconnect") }
func preferredNetworks(ctx context.Context) ([]string, error)   { return nil, errUnsupported("preferred networks") }
func availableNetworks(ctx context.Context) ([]string, error)   { return nil, errUnsupported("available networks") }
func storedPassword(ctx context.Context, ssid string) (string, error) {
	return "", errUnsupported("stored password")
}
func cycleRadio(ctx context.Context) error { return errUnsupported("radio cycle") }
