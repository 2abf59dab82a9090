// Copyright (c) 2025 Archmagece
// SPDX-License-Identifier: MIT

// Package config resolves LoggerConfig from defaults, an optional YAML
// file, and environment variable overrides, in that precedence order.
package config
