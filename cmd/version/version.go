// Package version provides the version command.
package version

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"
)

// Version is set at build time with -ldflags "-X ...version.Version=...".
var Version = "unknown"

// GetCommand returns the command that prints Version to the root writer.
func GetCommand() *cli.Command {
	return &cli.Command{
		Name:  "version",
		Usage: "Program version",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if _, err := fmt.Fprintln(cmd.Root().Writer, Version); err != nil {
				return fmt.Errorf("writing version: %w", err)
			}
			return nil
		},
		Flags: []cli.Flag{},
	}
}
