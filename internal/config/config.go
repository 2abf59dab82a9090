// Copyright (c) 2025 Archmagece
// SPDX-License-Identifier: MIT

// Package config builds a LoggerConfig from layered sources: built-in
// defaults, an optional YAML file, environment variables (via viper), and
// finally CLI flags, in that precedence order.
package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	wwerrors "github.com/keithrbennett/wifiwand-sub003/internal/errors"
)

// LogRotationConfig turns on lumberjack-backed rotation for the NDJSON log
// sink. Nil (the default) means a single unbounded append-only file.
type LogRotationConfig struct {
	MaxSizeMB  int `yaml:"maxSizeMB" json:"maxSizeMB"`
	MaxBackups int `yaml:"maxBackups" json:"maxBackups"`
}

// LoggerConfig is the fully-resolved configuration for one monitor run.
type LoggerConfig struct {
	IntervalSeconds    float64            `yaml:"intervalSeconds" json:"intervalSeconds"`
	LogFilePath        string             `yaml:"logFilePath" json:"logFilePath"`
	HookPath           string             `yaml:"hookPath" json:"hookPath"`
	EmitToStdout       bool               `yaml:"emitToStdout" json:"emitToStdout"`
	Verbose            bool               `yaml:"verbose" json:"verbose"`
	HookTimeoutSeconds float64            `yaml:"hookTimeoutSeconds" json:"hookTimeoutSeconds"`
	RefTCPHost         string             `yaml:"refTCPHost" json:"refTCPHost"`
	RefTCPPort         int                `yaml:"refTCPPort" json:"refTCPPort"`
	RefDNSName         string             `yaml:"refDNSName" json:"refDNSName"`
	RefDNSServer       string             `yaml:"refDNSServer" json:"refDNSServer"`
	ProbeTimeout       time.Duration      `yaml:"probeTimeout" json:"probeTimeout"`
	LogRotation        *LogRotationConfig `yaml:"logRotation" json:"logRotation"`
	MetricsAddr        string             `yaml:"metricsAddr" json:"metricsAddr"`
}

// Default returns the built-in defaults, matching the open-question
// decisions recorded for the reference TCP/DNS targets and probe timeout.
//
// RefTCPHost and RefDNSServer are deliberately different hosts (Cloudflare
// vs. Google) so that one anycast network becoming unreachable fails only
// one probe; a DNS outage must not masquerade as a TCP outage.
func Default() *LoggerConfig {
	return &LoggerConfig{
		IntervalSeconds:    5,
		EmitToStdout:       true,
		HookTimeoutSeconds: 30,
		RefTCPHost:         "1.1.1.1",
		RefTCPPort:         443,
		RefDNSName:         "cloudflare.com",
		RefDNSServer:       "8.8.8.8:53",
		ProbeTimeout:       2 * time.Second,
	}
}

// Load resolves defaults < YAML file (if path is non-empty; a file that
// cannot be read or parsed is an error) < environment variables prefixed
// WIFIWAND_. CLI flags are applied by the
// caller afterward via the returned LoggerConfig's exported fields.
func Load(filePath string) (*LoggerConfig, error) {
	cfg := Default()

	v := viper.New()
	v.SetEnvPrefix("WIFIWAND")
	v.AutomaticEnv()

	if filePath != "" {
		v.SetConfigFile(filePath)
		if err := v.ReadInConfig(); err != nil {
			return nil, wwerrors.Wrap(fmt.Errorf("reading config file %s: %w", filePath, err), wwerrors.ErrConfigInvalid)
		}
		if err := v.Unmarshal(cfg); err != nil {
			return nil, wwerrors.Wrap(fmt.Errorf("parsing config file %s: %w", filePath, err), wwerrors.ErrConfigInvalid)
		}
	}

	bindEnvOverrides(v, cfg)
	return cfg, nil
}

func bindEnvOverrides(v *viper.Viper, cfg *LoggerConfig) {
	if s := v.GetString("HOOK_PATH"); s != "" {
		cfg.HookPath = s
	}
	if s := v.GetString("LOG_FILE_PATH"); s != "" {
		cfg.LogFilePath = s
	}
	if s := v.GetString("REF_TCP_HOST"); s != "" {
		cfg.RefTCPHost = s
	}
	if n := v.GetInt("REF_TCP_PORT"); n != 0 {
		cfg.RefTCPPort = n
	}
	if s := v.GetString("REF_DNS_SERVER"); s != "" {
		cfg.RefDNSServer = s
	}
}

// Validate checks invariants that must hold before the monitor loop starts.
func (c *LoggerConfig) Validate() error {
	if !c.EmitToStdout && c.LogFilePath == "" && c.HookPath == "" {
		return wwerrors.Wrap(fmt.Errorf("no --stdout, --file, or --hook given"), wwerrors.ErrNoSinkEnabled)
	}
	if c.IntervalSeconds <= 0 {
		return wwerrors.Wrap(fmt.Errorf("interval must be positive, got %v", c.IntervalSeconds), wwerrors.ErrConfigInvalid)
	}
	if c.HookPath != "" && c.HookTimeoutSeconds <= 0 {
		return wwerrors.Wrap(fmt.Errorf("hook timeout must be positive, got %v", c.HookTimeoutSeconds), wwerrors.ErrConfigInvalid)
	}
	return nil
}

// Dump renders the fully-resolved configuration as YAML, the same format
// an operator-supplied config file uses, so --verbose runs can log exactly
// what the layered defaults/file/env/flags chain settled on.
func (c *LoggerConfig) Dump() (string, error) {
	out, err := yaml.Marshal(c)
	if err != nil {
		return "", fmt.Errorf("rendering config as yaml: %w", err)
	}
	return string(out), nil
}
