/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/NVIDIA/fileversion/pkg/defaults"
	fverrors "github.com/NVIDIA/fileversion/pkg/errors"
	"github.com/NVIDIA/fileversion/pkg/serializer"
	ver "github.com/NVIDIA/fileversion/pkg/version"
	"github.com/NVIDIA/fileversion/pkg/versionfile"
)

func fileFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "file",
		Aliases: []string{"f"},
		Usage:   "Path to the version file",
		Sources: cli.EnvVars("FILEVERSION_FILE"),
	}
}

func partFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "part",
		Aliases: []string{"p"},
		Value:   defaults.Component,
		Usage: fmt.Sprintf("Version component to change (supported values: %s)",
			strings.Join(ver.SupportedComponents(), ", ")),
		Sources: cli.EnvVars("FILEVERSION_PART"),
	}
}

func byFlag() cli.Flag {
	return &cli.IntFlag{
		Name:    "by",
		Aliases: []string{"n"},
		Value:   defaults.Increment,
		Usage:   "Amount added to the component",
		Sources: cli.EnvVars("FILEVERSION_INCREMENT"),
	}
}

func valueFlag(required bool) cli.Flag {
	return &cli.StringFlag{
		Name:     "value",
		Usage:    "Replacement version in Major.Minor.Build.Revision form",
		Required: required,
	}
}

func encodingFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "encoding",
		Aliases: []string{"e"},
		Usage: fmt.Sprintf(`Text encoding of the version file (default: %s, or the encoding named by a byte-order mark).
	Accepts WHATWG encoding labels plus %s and %s.`,
			defaults.Encoding, versionfile.EncodingUTF8BOM, versionfile.EncodingUTF16BE),
		Sources: cli.EnvVars("FILEVERSION_ENCODING"),
	}
}

func outputFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "output",
		Aliases: []string{"o"},
		Usage:   "Output file path (default: stdout)",
	}
}

func formatFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "format",
		Aliases: []string{"t"},
		Value:   defaults.OutputFormat,
		Usage: fmt.Sprintf("Output format (supported values: %s)",
			strings.Join(serializer.SupportedFormats(), ", ")),
		Sources: cli.EnvVars("FILEVERSION_FORMAT"),
	}
}

// stringOption returns the flag value when it was set on the command line or
// through its environment variable, then the config value, then the flag default.
func stringOption(cmd *cli.Command, flag, fromConfig string) string {
	if cmd.IsSet(flag) || fromConfig == "" {
		return cmd.String(flag)
	}
	return fromConfig
}

// incrementOption resolves the increment amount the same way as stringOption.
func incrementOption(cmd *cli.Command, fromConfig *int) *int {
	if cmd.IsSet("by") || fromConfig == nil {
		amount := cmd.Int("by")
		return &amount
	}
	return fromConfig
}

// parseOutputFormat resolves and validates the output format.
func parseOutputFormat(ctx context.Context, cmd *cli.Command) (serializer.Format, error) {
	raw := stringOption(cmd, "format", configFrom(ctx).Format)
	f, err := serializer.ParseFormat(raw)
	if err != nil {
		return "", fverrors.Wrap(fverrors.ErrCodeInvalidRequest, "invalid output format", err)
	}
	return f, nil
}

// newVersionFile creates a versionfile.File for path. An encoding is only
// forced when one was requested so files carrying a byte-order mark keep it.
func newVersionFile(ctx context.Context, cmd *cli.Command, path string) (*versionfile.File, error) {
	var opts []versionfile.Option
	if enc := stringOption(cmd, "encoding", configFrom(ctx).Encoding); enc != "" {
		opts = append(opts, versionfile.WithEncoding(enc))
	}
	return versionfile.New(path, opts...)
}

// targetFile returns the single version file path for mutating commands.
func targetFile(ctx context.Context, cmd *cli.Command) (string, error) {
	path := strings.TrimSpace(stringOption(cmd, "file", configFrom(ctx).File))
	if path == "" {
		return "", fverrors.New(fverrors.ErrCodeInvalidRequest, "a version file is required (--file)")
	}
	return path, nil
}

// writeResult serializes data to --output or stdout. Nothing is written
// unless the operation succeeded.
func writeResult(ctx context.Context, cmd *cli.Command, format serializer.Format, data any) error {
	ser, err := serializer.NewFileWriter(format, cmd.String("output"))
	if err != nil {
		return fverrors.Wrap(fverrors.ErrCodeIO, "failed to open output", err)
	}
	defer func() {
		if err := ser.Close(); err != nil {
			slog.Warn("failed to close serializer", "error", err)
		}
	}()

	return ser.Serialize(ctx, data)
}

// runVersionFile executes req against the file selected by cmd and writes the result.
func runVersionFile(ctx context.Context, cmd *cli.Command, req versionfile.Request) error {
	outFormat, err := parseOutputFormat(ctx, cmd)
	if err != nil {
		return err
	}

	path, err := targetFile(ctx, cmd)
	if err != nil {
		return err
	}

	f, err := newVersionFile(ctx, cmd, path)
	if err != nil {
		return err
	}

	res, err := f.Execute(ctx, req)
	if err != nil {
		return err
	}

	slog.Info("version file updated",
		"path", res.Path,
		"action", res.Action,
		"version", res.Version,
		"previous", res.Previous,
		"written", res.Written)

	return writeResult(ctx, cmd, outFormat, res)
}
