// Copyright (c) 2025 Archmagece
// SPDX-License-Identifier: MIT

// Package render formats events and network state for the human-facing
// stdout feed. This output is a product surface, not a diagnostic log, so
// it writes directly via fmt rather than through the structured logger.
package render

import (
	"fmt"
	"io"
	"time"

	"github.com/fatih/color"

	"github.com/keithrbennett/wifiwand-sub003/internal/model"
)

var (
	upColor   = color.New(color.FgGreen, color.Bold)
	downColor = color.New(color.FgRed, color.Bold)
	infoColor = color.New(color.FgCyan)
)

// Header writes the informational startup banner: the configured interval
// and which sinks are enabled. Purely informational, written once before
// the first tick.
func Header(w io.Writer, interval time.Duration, logFile, hookPath string) {
	fmt.Fprintf(w, "wifiwand log: interval=%s", interval)
	if logFile != "" {
		fmt.Fprintf(w, " file=%s", logFile)
	}
	if hookPath != "" {
		fmt.Fprintf(w, " hook=%s", hookPath)
	}
	fmt.Fprintln(w)
}

// StatusLine writes the continuous human-readable status feed for curr.
// Unlike EventLine, this is written every tick regardless of whether any
// event fired.
func StatusLine(w io.Writer, curr model.NetworkState) {
	network := "-"
	if curr.NetworkName != nil {
		network = *curr.NetworkName
	}
	line := fmt.Sprintf("[%s] wifi=%s network=%s internet=%s",
		curr.SampledAt.UTC().Format("2006-01-02T15:04:05Z"),
		onOff(curr.WifiOn), network, onOff(curr.InternetConnected))
	fmt.Fprintln(w, infoColor.Sprint(line))
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}

// EventLine writes one human-readable line for ev to w.
func EventLine(w io.Writer, ev model.Event) {
	c := colorFor(ev.Type)
	line := fmt.Sprintf("[%s] %s", ev.Timestamp.UTC().Format("2006-01-02T15:04:05Z"), ev.Type)
	if network := ev.NetworkName(); network != "" {
		line += fmt.Sprintf(" (%s)", network)
	}
	fmt.Fprintln(w, c.Sprint(line))
}

func colorFor(t model.EventType) *color.Color {
	switch t {
	case model.EventWifiOn, model.EventConnected, model.EventInternetOn:
		return upColor
	case model.EventWifiOff, model.EventDisconnected, model.EventInternetOff:
		return downColor
	default:
		return infoColor
	}
}
