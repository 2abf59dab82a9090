// Copyright (c) 2025 Archmagece
// SPDX-License-Identifier: MIT

//go:build !darwin && !linux && !windows

package probe

import (
	"context"
	"fmt"
	"runtime"
)

func radioOn(ctx context.Context) (bool, error) {
	return false, fmt.Errorf("radio detection not supported on %s", runtime.GOOS)
}

func currentSSID(ctx context.Context) (*string, error) {
	return nil, fmt.Errorf("SSID detection not supported on %s", runtime.GOOS)
}
