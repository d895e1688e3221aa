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

func resetCmd() *cli.Command {
	return &cli.Command{
		Name:                  "reset",
		EnableShellCompletion: true,
		Usage:                 "Replace the stored version with an explicit value",
		Description: `Write the given version to the file regardless of its current content.
The value must be four dot-separated non-negative integers.

# Examples

  fileversion reset --file VERSION --value 2.0.0.0`,
		Flags: []cli.Flag{
			fileFlag(),
			valueFlag(true),
			encodingFlag(),
			outputFlag(),
			formatFlag(),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return runVersionFile(ctx, cmd, versionfile.Request{
				Action: string(versionfile.ActionReset),
				Value:  cmd.String("value"),
			})
		},
	}
}
