/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"strings"

	"github.com/urfave/cli/v3"
	"golang.org/x/sync/errgroup"

	"github.com/NVIDIA/fileversion/pkg/defaults"
	fverrors "github.com/NVIDIA/fileversion/pkg/errors"
	"github.com/NVIDIA/fileversion/pkg/header"
	"github.com/NVIDIA/fileversion/pkg/versionfile"
)

func getCmd() *cli.Command {
	return &cli.Command{
		Name:                  "get",
		EnableShellCompletion: true,
		Usage:                 "Print the stored version without modifying the file",
		Description: `Read the version from one or more files. Files are never created or
modified; an absent or empty file reports 0.0.1.0.

Several --file flags read the files concurrently and print a VersionReport
whose results follow the order given.

# Examples

  fileversion get --file VERSION
  fileversion get --file a/VERSION --file b/VERSION --format table`,
		Flags: []cli.Flag{
			&cli.StringSliceFlag{
				Name:    "file",
				Aliases: []string{"f"},
				Usage:   "Path to a version file (repeatable)",
				Sources: cli.EnvVars("FILEVERSION_FILE"),
			},
			encodingFlag(),
			outputFlag(),
			formatFlag(),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			outFormat, err := parseOutputFormat(ctx, cmd)
			if err != nil {
				return err
			}

			paths := getPaths(ctx, cmd)
			if len(paths) == 0 {
				return fverrors.New(fverrors.ErrCodeInvalidRequest, "a version file is required (--file)")
			}

			results, err := readVersions(ctx, cmd, paths)
			if err != nil {
				return err
			}

			if len(results) == 1 {
				return writeResult(ctx, cmd, outFormat, results[0])
			}
			return writeResult(ctx, cmd, outFormat, &versionReport{
				Header: header.New(header.KindVersionReport, version,
					header.WithMetadata("invocation", invocationFrom(ctx))),
				Results: results,
			})
		},
	}
}

// versionReport is the document written when several files are read.
type versionReport struct {
	header.Header `json:",inline" yaml:",inline"`

	Results []*versionfile.Result `json:"results" yaml:"results"`
}

func getPaths(ctx context.Context, cmd *cli.Command) []string {
	var paths []string
	for _, p := range cmd.StringSlice("file") {
		if p = strings.TrimSpace(p); p != "" {
			paths = append(paths, p)
		}
	}
	if len(paths) == 0 {
		if p := strings.TrimSpace(configFrom(ctx).File); p != "" {
			paths = append(paths, p)
		}
	}
	return paths
}

// readVersions reads every path with bounded concurrency. Results keep the
// order of paths and the first failure cancels the remaining reads.
func readVersions(ctx context.Context, cmd *cli.Command, paths []string) ([]*versionfile.Result, error) {
	results := make([]*versionfile.Result, len(paths))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(defaults.MaxConcurrentReads)

	for i, path := range paths {
		g.Go(func() error {
			f, err := newVersionFile(gctx, cmd, path)
			if err != nil {
				return err
			}
			res, err := f.Get(gctx)
			if err != nil {
				return err
			}
			results[i] = res
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
