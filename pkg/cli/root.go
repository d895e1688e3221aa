/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/urfave/cli/v3"

	"github.com/NVIDIA/fileversion/pkg/config"
	"github.com/NVIDIA/fileversion/pkg/defaults"
	fverrors "github.com/NVIDIA/fileversion/pkg/errors"
	"github.com/NVIDIA/fileversion/pkg/logging"
)

const (
	name           = "fileversion"
	versionDefault = "dev"
)

var (
	// overridden during build with ldflags
	version = versionDefault
	commit  = "unknown"
	date    = "unknown"
)

// newRootCmd builds the command tree. A fresh tree is built per run so flag
// state never leaks between invocations.
func newRootCmd() *cli.Command {
	return &cli.Command{
		Name:                  name,
		Version:               fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),
		EnableShellCompletion: true,
		Usage:                 "Maintain a four-part version number stored in a text file",
		Description: `fileversion reads, increments, and resets a version of the form
Major.Minor.Build.Revision kept on the first line of a text file.

An absent or empty file is treated as 0.0.1.0. A read-only file is made
writable for the update and restored to read-only afterwards.`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Usage:   "log level (debug, info, warn, error)",
				Value:   defaults.LogLevel,
				Sources: cli.EnvVars(logging.EnvVarLogLevel),
			},
			&cli.StringFlag{
				Name:    "config",
				Usage:   fmt.Sprintf("config file (default is %s in the working or home directory)", defaults.ConfigFileName),
				Sources: cli.EnvVars("FILEVERSION_CONFIG"),
			},
			&cli.StringFlag{
				Name:    "metrics-file",
				Usage:   "write Prometheus metrics in text format to this file when the command finishes",
				Sources: cli.EnvVars("FILEVERSION_METRICS_FILE"),
			},
		},
		Before: initCommand,
		After:  writeMetrics,
		Commands: []*cli.Command{
			incrementCmd(),
			resetCmd(),
			getCmd(),
			execCmd(),
		},
	}
}

// Execute runs the CLI with the process arguments and exits non-zero on failure.
// This is called by main.main().
func Execute() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// LOG_LEVEL applies until initCommand has read the flags and config
	logging.SetDefaultStructuredLogger(name, version)

	// Handle SIGINT/SIGTERM for graceful shutdown
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigCh
		fmt.Fprintln(os.Stderr, "\nReceived interrupt signal, shutting down gracefully...")
		cancel()
	}()

	if err := newRootCmd().Run(ctx, os.Args); err != nil {
		reportError(os.Stderr, err)
		cancel()
		os.Exit(1)
	}
}

// reportError prints err for the user. Requests that were rejected before
// any file was touched also get a pointer to the usage text.
func reportError(w io.Writer, err error) {
	fmt.Fprintln(w, err)
	if fverrors.HasCode(err, fverrors.ErrCodeInvalidRequest) {
		fmt.Fprintf(w, "Run '%s --help' for usage.\n", name)
	}
}

// initCommand loads the config and configures slog before any command
// executes so --log-level and the config's logLevel take effect.
func initCommand(ctx context.Context, cmd *cli.Command) (context.Context, error) {
	cfg, err := loadConfig(cmd.String("config"))
	if err != nil {
		return ctx, err
	}

	logLevel := cmd.String("log-level")
	if !cmd.IsSet("log-level") && cfg.LogLevel != "" {
		logLevel = cfg.LogLevel
	}

	invocation := uuid.NewString()
	logging.SetDefaultStructuredLoggerWithLevel(name, version, logLevel)
	slog.SetDefault(slog.Default().With("invocation", invocation))
	slog.Debug("starting",
		"name", name,
		"version", version,
		"commit", commit,
		"date", date,
		"logLevel", logLevel,
		"config", cfg.Source())

	ctx = context.WithValue(ctx, invocationKey{}, invocation)
	return withConfig(ctx, cfg), nil
}

// loadConfig reads an explicitly named config file, which must exist, or
// falls back to discovery of the default file.
func loadConfig(path string) (*config.Config, error) {
	if path != "" {
		return config.Load(path)
	}
	return config.Discover()
}

// writeMetrics exports the operation metrics for node_exporter's textfile
// collector. It runs whether or not the command succeeded.
func writeMetrics(_ context.Context, cmd *cli.Command) error {
	path := cmd.String("metrics-file")
	if path == "" {
		return nil
	}
	if err := prometheus.WriteToTextfile(path, prometheus.DefaultGatherer); err != nil {
		return fmt.Errorf("failed to write metrics to %q: %w", path, err)
	}
	slog.Debug("metrics written", "path", path)
	return nil
}

type (
	configKey     struct{}
	invocationKey struct{}
)

func withConfig(ctx context.Context, cfg *config.Config) context.Context {
	return context.WithValue(ctx, configKey{}, cfg)
}

// configFrom returns the config stored by initCommand, or an empty one.
func configFrom(ctx context.Context) *config.Config {
	if cfg, ok := ctx.Value(configKey{}).(*config.Config); ok && cfg != nil {
		return cfg
	}
	return &config.Config{}
}

// invocationFrom returns the id tagging this run's log lines.
func invocationFrom(ctx context.Context) string {
	id, _ := ctx.Value(invocationKey{}).(string)
	return id
}
