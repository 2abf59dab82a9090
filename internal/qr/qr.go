// Copyright (c) 2025 Archmagece
// SPDX-License-Identifier: MIT

// Package qr renders a scannable Wi-Fi join code, the QR payload format
// most phone cameras recognize natively (WIFI:T:<security>;S:<ssid>;P:<password>;;).
package qr

import (
	"fmt"
	"strings"

	"github.com/skip2/go-qrcode"
)

// Generate renders a PNG QR code encoding the network's join parameters.
// security is one of "WPA", "WEP", or "nopass".
func Generate(ssid, password, security string) ([]byte, error) {
	if ssid == "" {
		return nil, fmt.Errorf("ssid must not be empty")
	}
	payload := fmt.Sprintf("WIFI:T:%s;S:%s;P:%s;;", security, escape(ssid), escape(password))

	png, err := qrcode.Encode(payload, qrcode.Medium, 256)
	if err != nil {
		return nil, fmt.Errorf("rendering QR code: %w", err)
	}
	return png, nil
}

func escape(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `;`, `\;`, `,`, `\,`, `:`, `\:`)
	return r.Replace(s)
}
