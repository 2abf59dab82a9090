// Copyright (c) 2025 Archmagece
// SPDX-License-Identifier: MIT

// Package classify derives the event list for one state transition. It is
// a pure function: the same (previous, current) pair always yields the
// same events, in the same order, with no side effects.
package classify

import (
	"time"

	"github.com/keithrbennett/wifiwand-sub003/internal/model"
)

// Classify returns the events that transitioning from prev to curr
// produces. prev is nil on the first tick: per the bootstrap rule, the
// first sample is recorded as a baseline and no events fire for it, even
// if curr already shows wifi on, a network, or internet access.
//
// When prev is non-nil, six rules are evaluated in this fixed order, and
// every rule whose condition holds contributes one event in that order:
//
//  1. wifi_on     — radio just turned on
//  2. wifi_off    — radio just turned off
//  3. connected   — newly associated with a (possibly different) network
//  4. disconnected — lost the previous association (including roaming away from it)
//  5. internet_on  — tcp+dns both just started succeeding
//  6. internet_off — tcp+dns stopped succeeding
//
// Rule order is what makes a roam (SSID change while staying associated)
// report connected(new) before disconnected(old), and what makes turning
// the radio off report wifi_off before the disconnected/internet_off
// cascade it implies.
func Classify(prev *model.NetworkState, curr model.NetworkState) []model.Event {
	if prev == nil {
		return nil
	}

	var events []model.Event
	ts := curr.SampledAt

	// Rule 1.
	if !prev.WifiOn && curr.WifiOn {
		events = append(events, newEvent(model.EventWifiOn, ts, *prev, curr, nil))
	}

	// Rule 2.
	if prev.WifiOn && !curr.WifiOn {
		events = append(events, newEvent(model.EventWifiOff, ts, *prev, curr, nil))
	}

	// Rule 3.
	if !prev.SameNetwork(curr) && curr.NetworkName != nil {
		events = append(events, newEvent(model.EventConnected, ts, *prev, curr, details(*curr.NetworkName)))
	}

	// Rule 4.
	if prev.NetworkName != nil && (curr.NetworkName == nil || !prev.SameNetwork(curr)) {
		events = append(events, newEvent(model.EventDisconnected, ts, *prev, curr, details(*prev.NetworkName)))
	}

	// Rule 5.
	if !prev.InternetConnected && curr.InternetConnected {
		events = append(events, newEvent(model.EventInternetOn, ts, *prev, curr, nil))
	}

	// Rule 6.
	if prev.InternetConnected && !curr.InternetConnected {
		events = append(events, newEvent(model.EventInternetOff, ts, *prev, curr, nil))
	}

	return events
}

func details(networkName string) map[string]string {
	return map[string]string{"network_name": networkName}
}

func newEvent(t model.EventType, ts time.Time, prev, curr model.NetworkState, det map[string]string) model.Event {
	return model.Event{
		Type:      t,
		Timestamp: ts,
		Details:   det,
		Previous:  prev,
		Current:   curr,
	}
}
