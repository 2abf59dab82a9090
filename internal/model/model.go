// Copyright (c) 2025 Archmagece
// SPDX-License-Identifier: MIT

// Package model holds the data types shared by the probe, sampler,
// classifier, hook, sink, and monitor packages: the network snapshot and
// the event taxonomy derived from it.
package model

import (
	"encoding/json"
	"time"
)

// isoLayout is the wall-clock ISO-8601 UTC format events are rendered in
// on the wire: seconds precision, trailing Z, no fractional part.
const isoLayout = "2006-01-02T15:04:05Z"

// NetworkState is one point-in-time snapshot of the machine's network
// connectivity, as derived by the sampler from independently fallible
// probes.
type NetworkState struct {
	WifiOn            bool
	NetworkName       *string // nil = no associated network
	TCPWorking        bool
	DNSWorking        bool
	InternetConnected bool
	SampledAt         time.Time // monotonic; not part of the wire schema
}

// SameNetwork reports whether s and other have the same associated
// network name, treating two nil names as the same (both absent).
func (s NetworkState) SameNetwork(other NetworkState) bool {
	if s.NetworkName == nil || other.NetworkName == nil {
		return s.NetworkName == other.NetworkName
	}
	return *s.NetworkName == *other.NetworkName
}

// wireState is the JSON shape of NetworkState on the hook/log wire: the
// five connectivity fields, nothing else.
type wireState struct {
	WifiOn            bool    `json:"wifi_on"`
	NetworkName       *string `json:"network_name"`
	TCPWorking        bool    `json:"tcp_working"`
	DNSWorking        bool    `json:"dns_working"`
	InternetConnected bool    `json:"internet_connected"`
}

func (s NetworkState) toWire() wireState {
	return wireState{
		WifiOn:            s.WifiOn,
		NetworkName:       s.NetworkName,
		TCPWorking:        s.TCPWorking,
		DNSWorking:        s.DNSWorking,
		InternetConnected: s.InternetConnected,
	}
}

func (w wireState) fromWire() NetworkState {
	return NetworkState{
		WifiOn:            w.WifiOn,
		NetworkName:       w.NetworkName,
		TCPWorking:        w.TCPWorking,
		DNSWorking:        w.DNSWorking,
		InternetConnected: w.InternetConnected,
	}
}

// EventType names one member of the fixed event taxonomy.
type EventType string

const (
	EventWifiOn       EventType = "wifi_on"
	EventWifiOff      EventType = "wifi_off"
	EventConnected    EventType = "connected"
	EventDisconnected EventType = "disconnected"
	EventInternetOn   EventType = "internet_on"
	EventInternetOff  EventType = "internet_off"
)

// Event is one state transition, fanned out to every configured sink.
type Event struct {
	Type      EventType
	Timestamp time.Time // wall clock, rendered ISO-8601 UTC on the wire
	Details   map[string]string
	Previous  NetworkState
	Current   NetworkState
}

// NetworkName returns details["network_name"] for connected/disconnected
// events, or "" for the others.
func (e Event) NetworkName() string {
	return e.Details["network_name"]
}

// wireEvent is the JSON schema hooks and the log file see: details is
// always an object (never null), previous_state/current_state carry only
// the five wire fields, and timestamp is formatted to second precision.
type wireEvent struct {
	Type      EventType         `json:"type"`
	Timestamp string            `json:"timestamp"`
	Details   map[string]string `json:"details"`
	Previous  wireState         `json:"previous_state"`
	Current   wireState         `json:"current_state"`
}

// MarshalJSON renders ev per the hook/log-file wire schema.
func (e Event) MarshalJSON() ([]byte, error) {
	details := e.Details
	if details == nil {
		details = map[string]string{}
	}
	return json.Marshal(wireEvent{
		Type:      e.Type,
		Timestamp: e.Timestamp.UTC().Format(isoLayout),
		Details:   details,
		Previous:  e.Previous.toWire(),
		Current:   e.Current.toWire(),
	})
}

// UnmarshalJSON parses ev from the hook/log-file wire schema.
func (e *Event) UnmarshalJSON(data []byte) error {
	var w wireEvent
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	ts, err := time.Parse(isoLayout, w.Timestamp)
	if err != nil {
		// Tolerate any RFC3339 variant a hand-written test fixture might use.
		ts, err = time.Parse(time.RFC3339, w.Timestamp)
		if err != nil {
			return err
		}
	}
	e.Type = w.Type
	e.Timestamp = ts
	e.Details = w.Details
	e.Previous = w.Previous.fromWire()
	e.Current = w.Current.fromWire()
	return nil
}
