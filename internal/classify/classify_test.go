// Copyright (c) 2025 Archmagece
// SPDX-License-Identifier: MIT

package classify

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/keithrbennett/wifiwand-sub003/internal/model"
)

func ssid(s string) *string { return &s }

func state(wifiOn bool, network *string, internet bool) model.NetworkState {
	return model.NetworkState{
		WifiOn:            wifiOn,
		NetworkName:       network,
		TCPWorking:        internet,
		DNSWorking:        internet,
		InternetConnected: internet,
		SampledAt:         time.Unix(0, 0),
	}
}

func eventTypes(events []model.Event) []model.EventType {
	types := make([]model.EventType, len(events))
	for i, e := range events {
		types[i] = e.Type
	}
	return types
}

// TestClassify_Bootstrap checks the bootstrap rule: the first tick has no
// baseline to diff against, so it never emits events, regardless of how
// "on" the first observed state already is.
func TestClassify_Bootstrap(t *testing.T) {
	cases := []model.NetworkState{
		state(false, nil, false),
		state(true, nil, false),
		state(true, ssid("home"), false),
		state(true, ssid("home"), true),
	}
	for _, curr := range cases {
		got := Classify(nil, curr)
		assert.Empty(t, got)
	}
}

func TestClassify_RadioTurnsOnFromCold(t *testing.T) {
	prev := state(false, nil, false)
	curr := state(true, nil, false)
	got := Classify(&prev, curr)
	assert.Equal(t, []model.EventType{model.EventWifiOn}, eventTypes(got))
}

func TestClassify_AssociatesWithoutInternet(t *testing.T) {
	prev := state(true, nil, false)
	curr := state(true, ssid("CafeBleu_5G"), false)
	got := Classify(&prev, curr)
	assert.Equal(t, []model.EventType{model.EventConnected}, eventTypes(got))
	assert.Equal(t, "CafeBleu_5G", got[0].NetworkName())
}

func TestClassify_InternetComesUp(t *testing.T) {
	prev := state(true, ssid("CafeBleu_5G"), false)
	curr := state(true, ssid("CafeBleu_5G"), true)
	got := Classify(&prev, curr)
	assert.Equal(t, []model.EventType{model.EventInternetOn}, eventTypes(got))
}

// TestClassify_RoamInOneTick: connected is evaluated, and therefore
// emitted, before disconnected, so a roam reads as join-then-leave, not
// leave-then-join.
func TestClassify_RoamInOneTick(t *testing.T) {
	prev := state(true, ssid("A"), true)
	curr := state(true, ssid("B"), true)
	got := Classify(&prev, curr)
	assert.Equal(t, []model.EventType{model.EventConnected, model.EventDisconnected}, eventTypes(got))
	assert.Equal(t, "B", got[0].NetworkName())
	assert.Equal(t, "A", got[1].NetworkName())
}

// TestClassify_RadioOffWhileConnected: the radio-off cascade reports
// wifi_off first, then the disconnected and internet_off it implies.
func TestClassify_RadioOffWhileConnected(t *testing.T) {
	prev := state(true, ssid("A"), true)
	curr := state(false, nil, false)
	got := Classify(&prev, curr)
	assert.Equal(t, []model.EventType{
		model.EventWifiOff,
		model.EventDisconnected,
		model.EventInternetOff,
	}, eventTypes(got))
	assert.Equal(t, "A", got[1].NetworkName())
}

func TestClassify_InternetFlapsWithoutNetworkChange(t *testing.T) {
	prev := state(true, ssid("home"), true)
	curr := state(true, ssid("home"), false)
	got := Classify(&prev, curr)
	assert.Equal(t, []model.EventType{model.EventInternetOff}, eventTypes(got))
}

// TestClassify_NoChangeProducesNoEvents: classifying a state against
// itself is always empty.
func TestClassify_NoChangeProducesNoEvents(t *testing.T) {
	prev := state(true, ssid("home"), true)
	curr := state(true, ssid("home"), true)
	got := Classify(&prev, curr)
	assert.Empty(t, got)
}

func TestClassify_IsDeterministic(t *testing.T) {
	prev := state(true, ssid("A"), true)
	curr := state(true, ssid("B"), true)
	first := Classify(&prev, curr)
	second := Classify(&prev, curr)
	assert.Equal(t, eventTypes(first), eventTypes(second))
}
