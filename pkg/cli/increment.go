/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/NVIDIA/fileversion/pkg/versionfile"
)

func incrementCmd() *cli.Command {
	return &cli.Command{
		Name:                  "increment",
		Aliases:               []string{"inc"},
		EnableShellCompletion: true,
		Usage:                 "Increment one component of the stored version",
		Description: `Add an amount to one component of the version stored in a file:
  - Major, Minor, Build or Revision (default: Build)
  - Amount defaults to 1; 0 reads the version without rewriting the file
  - The other three components are left unchanged

An absent file is created and treated as 0.0.1.0, so the first default
increment yields 0.0.2.0.

# Examples

  fileversion increment --file VERSION
  fileversion increment --file VERSION --part major --format json`,
		Flags: []cli.Flag{
			fileFlag(),
			partFlag(),
			byFlag(),
			encodingFlag(),
			outputFlag(),
			formatFlag(),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			cfg := configFrom(ctx)
			return runVersionFile(ctx, cmd, versionfile.Request{
				Action:    string(versionfile.ActionIncrement),
				Increment: incrementOption(cmd, cfg.Increment),
				Part:      stringOption(cmd, "part", cfg.Part),
			})
		},
	}
}
