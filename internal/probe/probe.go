// Copyright (c) 2025 Archmagece
// SPDX-License-Identifier: MIT

// Package probe implements the four independently fallible checks the
// sampler composes into one NetworkState: radio power state, associated
// SSID, TCP reachability to a reference host, and DNS resolution of a
// reference name. OS-specific SSID/radio detection lives in the
// *_darwin.go / *_linux.go / *_windows.go files; the TCP and DNS probes are
// platform-independent and live here.
package probe

import (
	"context"
	"net"
	"strconv"
	"time"

	"github.com/miekg/dns"
)

// RadioOn reports whether the Wi-Fi radio is powered on. A platform error
// is coerced to false by the caller, never propagated into the sampler.
func RadioOn(ctx context.Context) (bool, error) {
	return radioOn(ctx)
}

// CurrentSSID returns the name of the currently associated network. When no
// network is associated it returns a nil name together with a
// "not associated" error.
func CurrentSSID(ctx context.Context) (*string, error) {
	return currentSSID(ctx)
}

// TCPReachable opens and immediately closes a TCP connection to host:port,
// returning true only if the connection completed within timeout.
func TCPReachable(ctx context.Context, host string, port int, timeout time.Duration) bool {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	d := net.Dialer{}
	conn, err := d.DialContext(ctx, "tcp", net.JoinHostPort(host, strconv.Itoa(port)))
	if err != nil {
		return false
	}
	_ = conn.Close()
	return true
}

// DNSResolves issues a direct A-record query for name against server
// (host:port) using miekg/dns, independent of the system resolver that
// TCPReachable's dialer would otherwise share. Returns true only if the
// query completes within timeout and yields at least one answer.
func DNSResolves(ctx context.Context, name string, server string, timeout time.Duration) bool {
	m := new(dns.Msg)
	m.SetQuestion(dns.Fqdn(name), dns.TypeA)

	c := new(dns.Client)
	c.Timeout = timeout

	in, _, err := c.ExchangeContext(ctx, m, server)
	if err != nil || in == nil {
		return false
	}
	return len(in.Answer) > 0
}
