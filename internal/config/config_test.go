// Copyright (c) 2025 Archmagece
// SPDX-License-Identifier: MIT

package config

import (
	stderrors "errors"
	"net"
	"testing"

	"github.com/stretchr/testify/assert"

	wwerrors "github.com/keithrbennett/wifiwand-sub003/internal/errors"
)

func TestValidate_RejectsNoSinks(t *testing.T) {
	cfg := Default()
	cfg.EmitToStdout = false
	err := cfg.Validate()
	assert.Error(t, err)
	assert.True(t, stderrors.Is(err, wwerrors.ErrNoSinkEnabled))
}

func TestValidate_RejectsNonPositiveInterval(t *testing.T) {
	cfg := Default()
	cfg.IntervalSeconds = 0
	err := cfg.Validate()
	assert.Error(t, err)
	assert.True(t, stderrors.Is(err, wwerrors.ErrConfigInvalid))
}

func TestValidate_RejectsHookWithoutTimeout(t *testing.T) {
	cfg := Default()
	cfg.HookPath = "/usr/local/bin/hook"
	cfg.HookTimeoutSeconds = 0
	err := cfg.Validate()
	assert.Error(t, err)
	assert.True(t, stderrors.Is(err, wwerrors.ErrConfigInvalid))
}

func TestValidate_DefaultsHaveIndependentReferenceHosts(t *testing.T) {
	cfg := Default()
	dnsHost, _, err := net.SplitHostPort(cfg.RefDNSServer)
	assert.NoError(t, err)
	assert.NotEqual(t, cfg.RefTCPHost, dnsHost, "TCP and DNS reference targets must not share a host")
}

func TestValidate_AcceptsDefaults(t *testing.T) {
	assert.NoError(t, Default().Validate())
}

func TestDump_RendersYAML(t *testing.T) {
	out, err := Default().Dump()
	assert.NoError(t, err)
	assert.Contains(t, out, "intervalSeconds")
}
