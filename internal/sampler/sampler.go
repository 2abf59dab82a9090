// Copyright (c) 2025 Archmagece
// SPDX-License-Identifier: MIT

// Package sampler assembles one NetworkState snapshot from the probe set.
package sampler

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/keithrbennett/wifiwand-sub003/internal/model"
	"github.com/keithrbennett/wifiwand-sub003/internal/probe"
)

// Sampler holds the reference targets and timeout used to build each tick's
// NetworkState. The probe hooks default to the internal/probe package
// functions and are only ever overridden in tests.
type Sampler struct {
	RefTCPHost   string
	RefTCPPort   int
	RefDNSName   string
	RefDNSServer string
	ProbeTimeout time.Duration

	radioOn      func(ctx context.Context) (bool, error)
	currentSSID  func(ctx context.Context) (*string, error)
	tcpReachable func(ctx context.Context, host string, port int, timeout time.Duration) bool
	dnsResolves  func(ctx context.Context, name string, server string, timeout time.Duration) bool
}

// New returns a Sampler configured for the given reference targets.
func New(refTCPHost string, refTCPPort int, refDNSName string, refDNSServer string, probeTimeout time.Duration) *Sampler {
	return &Sampler{
		RefTCPHost:   refTCPHost,
		RefTCPPort:   refTCPPort,
		RefDNSName:   refDNSName,
		RefDNSServer: refDNSServer,
		ProbeTimeout: probeTimeout,

		radioOn:      probe.RadioOn,
		currentSSID:  probe.CurrentSSID,
		tcpReachable: probe.TCPReachable,
		dnsResolves:  probe.DNSResolves,
	}
}

// Sample runs the probe set and derives one NetworkState.
//
// Step order matches the fixed derivation: radio state first (an error is
// coerced to false, and a powered-off radio short-circuits the remaining
// probes to all-false), then SSID, then the TCP and DNS reachability
// probes concurrently, then internet_connected as the conjunction of TCP
// and DNS success.
func (s *Sampler) Sample(ctx context.Context) model.NetworkState {
	now := time.Now()

	osCtx, cancel := context.WithTimeout(ctx, s.ProbeTimeout)
	defer cancel()

	wifiOn, err := s.radioOn(osCtx)
	if err != nil {
		wifiOn = false
	}
	if !wifiOn {
		return model.NetworkState{SampledAt: now}
	}

	var ssid *string
	if name, err := s.currentSSID(osCtx); err == nil {
		ssid = name
	}

	var tcpOK, dnsOK bool
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		tcpOK = s.tcpReachable(gctx, s.RefTCPHost, s.RefTCPPort, s.ProbeTimeout)
		return nil
	})
	g.Go(func() error {
		dnsOK = s.dnsResolves(gctx, s.RefDNSName, s.RefDNSServer, s.ProbeTimeout)
		return nil
	})
	_ = g.Wait() // probes never return an error; they collapse failure to false

	return model.NetworkState{
		WifiOn:            true,
		NetworkName:       ssid,
		TCPWorking:        tcpOK,
		DNSWorking:        dnsOK,
		InternetConnected: tcpOK && dnsOK,
		SampledAt:         now,
	}
}
