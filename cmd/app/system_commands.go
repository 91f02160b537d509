package main

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/allisson/cryptobox/cmd/app/commands"
	authService "github.com/allisson/cryptobox/internal/auth/service"
)

func getSystemCommands(version string) []*cli.Command {
	return []*cli.Command{
		{
			Name:  "server",
			Usage: "Start the HTTP server",
			Action: func(ctx context.Context, cmd *cli.Command) error {
				return commands.RunServer(ctx, version)
			},
		},
		{
			Name:  "hash-token",
			Usage: "Generate or hash an API bearer token for AUTH_TOKEN_HASH",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:    "token",
					Aliases: []string{"t"},
					Value:   "",
					Usage:   "Existing token to hash (omit to generate a new one)",
				},
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				return commands.RunHashToken(
					authService.NewTokenService(),
					commands.DefaultIO().Writer,
					cmd.String("token"),
				)
			},
		},
	}
}
