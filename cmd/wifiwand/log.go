// Copyright (c) 2025 Archmagece
// SPDX-License-Identifier: MIT

package wifiwand

import (
	"context"
	"time"

	"github.com/spf13/cobra"

	"github.com/keithrbennett/wifiwand-sub003/internal/config"
	wwerrors "github.com/keithrbennett/wifiwand-sub003/internal/errors"
	"github.com/keithrbennett/wifiwand-sub003/internal/logger"
	"github.com/keithrbennett/wifiwand-sub003/internal/monitor"
	"github.com/keithrbennett/wifiwand-sub003/internal/sampler"
	"github.com/keithrbennett/wifiwand-sub003/internal/sink/logfile"
)

func newLogCmd(ctx context.Context) *cobra.Command {
	var (
		configFile       string
		interval         float64
		logFile          string
		stdout           bool
		hookPath         string
		verbose          bool
		hookTimeout      float64
		metricsAddr      string
		rotateMaxMB      int
		rotateMaxBackups int
	)

	cmd := &cobra.Command{
		Use:   "log",
		Short: "Monitor Wi-Fi and internet connectivity, emitting events as they happen",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configFile)
			if err != nil {
				return wwerrors.New(wwerrors.CategoryConfiguration, err)
			}

			applyFlagOverrides(cmd, cfg, interval, logFile, stdout, hookPath, verbose, hookTimeout, metricsAddr, rotateMaxMB, rotateMaxBackups)

			if err := cfg.Validate(); err != nil {
				return wwerrors.New(wwerrors.CategoryConfiguration, err)
			}

			return runMonitor(ctx, cfg)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&configFile, "config", "", "path to a YAML config file")
	flags.Float64Var(&interval, "interval", 0, "sampling interval in seconds (default 5)")
	flags.StringVar(&logFile, "file", "", "NDJSON event log file path")
	flags.BoolVar(&stdout, "stdout", false, "additively enable the human-readable stdout feed")
	flags.StringVar(&hookPath, "hook", "", "path to an executable invoked for each event")
	flags.BoolVarP(&verbose, "verbose", "v", false, "enable debug-level diagnostic logging")
	flags.Float64Var(&hookTimeout, "hook-timeout", 0, "hook timeout in seconds (default 30)")
	flags.StringVar(&metricsAddr, "metrics-addr", "", "address to serve Prometheus metrics on, e.g. :9090 (disabled by default)")
	flags.IntVar(&rotateMaxMB, "log-rotate-max-mb", 0, "enable log rotation at this size in MB (disabled by default)")
	flags.IntVar(&rotateMaxBackups, "log-rotate-max-backups", 0, "number of rotated log files to retain")
	flags.Lookup("file").NoOptDefVal = defaultLogFileName

	return cmd
}

// defaultLogFileName is used when --file is given with no path argument.
const defaultLogFileName = "wifiwand-events.ndjson"

// applyFlagOverrides layers explicit CLI flags over cfg, then applies the
// sink-gating rule: stdout is on by default only
// when neither --file nor --hook is given; once either sink is given,
// stdout is suppressed unless --stdout was passed explicitly.
func applyFlagOverrides(cmd *cobra.Command, cfg *config.LoggerConfig, interval float64, logFile string, stdout bool, hookPath string, verbose bool, hookTimeout float64, metricsAddr string, rotateMaxMB, rotateMaxBackups int) {
	flags := cmd.Flags()
	if flags.Changed("interval") {
		cfg.IntervalSeconds = interval
	}
	if flags.Changed("file") {
		cfg.LogFilePath = logFile
	}
	if flags.Changed("hook") {
		cfg.HookPath = hookPath
	}

	switch {
	case flags.Changed("stdout"):
		cfg.EmitToStdout = stdout
	case flags.Changed("file") || flags.Changed("hook"):
		cfg.EmitToStdout = false
	default:
		cfg.EmitToStdout = true
	}
	if flags.Changed("verbose") {
		cfg.Verbose = verbose
	}
	if flags.Changed("hook-timeout") {
		cfg.HookTimeoutSeconds = hookTimeout
	}
	if flags.Changed("metrics-addr") {
		cfg.MetricsAddr = metricsAddr
	}
	if flags.Changed("log-rotate-max-mb") {
		if cfg.LogRotation == nil {
			cfg.LogRotation = &config.LogRotationConfig{}
		}
		cfg.LogRotation.MaxSizeMB = rotateMaxMB
	}
	if flags.Changed("log-rotate-max-backups") {
		if cfg.LogRotation == nil {
			cfg.LogRotation = &config.LogRotationConfig{}
		}
		cfg.LogRotation.MaxBackups = rotateMaxBackups
	}
}

func runMonitor(ctx context.Context, cfg *config.LoggerConfig) error {
	log := logger.New("monitor", cfg.Verbose)
	defer log.Sync()

	var logSink *logfile.Manager
	if cfg.LogFilePath != "" {
		sink, err := logfile.New(cfg.LogFilePath, cfg.LogRotation)
		if err != nil {
			return wwerrors.New(wwerrors.CategorySink, err)
		}
		defer sink.Close()
		logSink = sink
	}

	s := sampler.New(cfg.RefTCPHost, cfg.RefTCPPort, cfg.RefDNSName, cfg.RefDNSServer, cfg.ProbeTimeout)

	var metrics *monitor.Metrics
	if cfg.MetricsAddr != "" {
		m, reg := monitor.NewMetrics()
		metrics = m
		go func() {
			if err := monitor.ServeMetrics(ctx, cfg.MetricsAddr, reg); err != nil {
				log.Warnw("metrics listener stopped", "error", err)
			}
		}()
	}

	mon := monitor.New(cfg, s, logSink, log, metrics)

	startupInterval := time.Duration(cfg.IntervalSeconds * float64(time.Second))
	log.Infow("starting monitor", "interval", startupInterval, "log_file", cfg.LogFilePath, "hook", cfg.HookPath)

	if cfg.Verbose {
		if dump, err := cfg.Dump(); err != nil {
			log.Warnw("failed to render effective config", "error", err)
		} else {
			log.Debugw("effective configuration", "yaml", dump)
		}
	}

	return mon.Run(ctx)
}
