// Copyright (c) 2025 Archmagece
// SPDX-License-Identifier: MIT

package sampler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func fakeSampler(wifiOn bool, wifiErr error, ssid *string, tcpOK, dnsOK bool) *Sampler {
	s := New("ref-tcp-host", 443, "ref-dns-name", "ref-dns-server:53", time.Second)
	s.radioOn = func(ctx context.Context) (bool, error) { return wifiOn, wifiErr }
	s.currentSSID = func(ctx context.Context) (*string, error) { return ssid, nil }
	s.tcpReachable = func(ctx context.Context, host string, port int, timeout time.Duration) bool { return tcpOK }
	s.dnsResolves = func(ctx context.Context, name string, server string, timeout time.Duration) bool { return dnsOK }
	return s
}

// TestSample_InternetConnectedIsConjunction checks that
// internet_connected equals tcp_working && dns_working in every
// combination, never an independent third signal.
func TestSample_InternetConnectedIsConjunction(t *testing.T) {
	cases := []struct {
		tcp, dns, want bool
	}{
		{true, true, true},
		{true, false, false},
		{false, true, false},
		{false, false, false},
	}
	name := "home"
	for _, c := range cases {
		s := fakeSampler(true, nil, &name, c.tcp, c.dns)
		state := s.Sample(context.Background())
		assert.Equal(t, c.want, state.InternetConnected, "tcp=%v dns=%v", c.tcp, c.dns)
		assert.Equal(t, c.tcp, state.TCPWorking)
		assert.Equal(t, c.dns, state.DNSWorking)
	}
}

// TestSample_WifiOffShortCircuits checks that a powered-off radio yields
// an all-false snapshot: no network name, no TCP/DNS success, no internet,
// regardless of what the other probes would have said.
func TestSample_WifiOffShortCircuits(t *testing.T) {
	name := "should-never-surface"
	s := fakeSampler(false, nil, &name, true, true)
	state := s.Sample(context.Background())
	assert.False(t, state.WifiOn)
	assert.Nil(t, state.NetworkName)
	assert.False(t, state.TCPWorking)
	assert.False(t, state.DNSWorking)
	assert.False(t, state.InternetConnected)
}

// TestSample_RadioErrorCoercesToOff exercises the documented "an error is
// coerced to false" step in Sample's derivation order.
func TestSample_RadioErrorCoercesToOff(t *testing.T) {
	s := fakeSampler(true, errors.New("boom"), nil, true, true)
	state := s.Sample(context.Background())
	assert.False(t, state.WifiOn)
	assert.Nil(t, state.NetworkName)
	assert.False(t, state.InternetConnected)
}

// TestSample_TimestampsAreNonDecreasing checks that a sequence of samples
// taken back-to-back has non-decreasing SampledAt values.
func TestSample_TimestampsAreNonDecreasing(t *testing.T) {
	name := "home"
	s := fakeSampler(true, nil, &name, true, true)

	var prev time.Time
	for i := 0; i < 5; i++ {
		state := s.Sample(context.Background())
		assert.False(t, state.SampledAt.Before(prev), "sample %d went backwards in time", i)
		prev = state.SampledAt
	}
}
