/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/NVIDIA/fileversion/pkg/defaults"
	"github.com/NVIDIA/fileversion/pkg/versionfile"
)

// execCmd exposes the string-typed request surface used by build hosts,
// where action, part and value all arrive as plain strings.
func execCmd() *cli.Command {
	return &cli.Command{
		Name:                  "exec",
		EnableShellCompletion: true,
		Usage:                 "Run a named action against the version file",
		Description: `Dispatch an action by name, the way a build task passes its parameters.
An unknown action fails with INVALID_ACTION before the file is touched.

# Examples

  fileversion exec --action Increment --file VERSION --part Revision
  fileversion exec --action Reset --file VERSION --value 1.0.0.0`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "action",
				Aliases: []string{"a"},
				Value:   defaults.Action,
				Usage: fmt.Sprintf("Action to perform (supported values: %s)",
					strings.Join(versionfile.SupportedActions(), ", ")),
				Sources: cli.EnvVars("FILEVERSION_ACTION"),
			},
			fileFlag(),
			partFlag(),
			byFlag(),
			valueFlag(false),
			encodingFlag(),
			outputFlag(),
			formatFlag(),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			action := cmd.String("action")
			if _, err := versionfile.ParseAction(action); err != nil {
				return err
			}

			cfg := configFrom(ctx)
			return runVersionFile(ctx, cmd, versionfile.Request{
				Action:    action,
				Increment: incrementOption(cmd, cfg.Increment),
				Part:      stringOption(cmd, "part", cfg.Part),
				Value:     cmd.String("value"),
			})
		},
	}
}
