// Package hello provides the root command. Run without arguments it prints
// the greeting.
package hello

import (
	"context"
	"dominicbreuker/hellotrait/cmd/version"
	"dominicbreuker/hellotrait/pkg/config"
	"dominicbreuker/hellotrait/pkg/greeting"

	"github.com/urfave/cli/v3"
)

// GetCommand returns the root command. deps may be nil.
func GetCommand(deps *config.Dependencies) *cli.Command {
	return &cli.Command{
		Name:      "hellotrait",
		Usage:     "Print a greeting",
		Writer:    config.GetStdoutFunc(deps)(),
		ErrWriter: config.GetStderrFunc(deps)(),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return greeting.Write(deps)
		},
		Commands: []*cli.Command{
			version.GetCommand(),
		},
	}
}
