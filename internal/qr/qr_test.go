// Copyright (c) 2025 Archmagece
// SPDX-License-Identifier: MIT

package qr

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate_ProducesPNG(t *testing.T) {
	png, err := Generate("home-network", "s3cr3t", "WPA")
	require.NoError(t, err)
	assert.NotEmpty(t, png)
	// PNG magic bytes
	assert.Equal(t, []byte{0x89, 'P', 'N', 'G'}, png[:4])
}

func TestGenerate_RejectsEmptySSID(t *testing.T) {
	_, err := Generate("", "", "nopass")
	assert.Error(t, err)
}
