package main

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/allisson/cryptobox/cmd/app/commands"
	"github.com/allisson/cryptobox/internal/app"
	"github.com/allisson/cryptobox/internal/config"
)

func getKeyCommands() []*cli.Command {
	return []*cli.Command{
		{
			Name:  "keygen",
			Usage: "Generate a new keychain key for CRYPTOBOX_KEYS",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:    "id",
					Aliases: []string{"i"},
					Value:   "",
					Usage:   "Key ID (e.g., prod-key-2026)",
				},
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				return commands.RunKeygen(commands.DefaultIO().Writer, cmd.String("id"))
			},
		},
		{
			Name:  "create-transit-key",
			Usage: "Create a new named transit key with version 1",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:     "name",
					Aliases:  []string{"n"},
					Required: true,
					Usage:    "Transit key name",
				},
				&cli.StringFlag{
					Name:    "algorithm",
					Aliases: []string{"alg"},
					Value:   "xchacha20-poly1305",
					Usage:   "Encryption algorithm (chacha20-poly1305 or xchacha20-poly1305)",
				},
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				cfg := config.Load()
				container := app.NewContainer(cfg)
				defer func() { _ = container.Shutdown(ctx) }()

				useCase, err := container.TransitKeyUseCase()
				if err != nil {
					return err
				}

				return commands.RunCreateTransitKey(
					ctx,
					useCase,
					container.Logger(),
					cmd.String("name"),
					cmd.String("algorithm"),
				)
			},
		},
		{
			Name:  "rotate-transit-key",
			Usage: "Rotate a named transit key to a new version",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:     "name",
					Aliases:  []string{"n"},
					Required: true,
					Usage:    "Transit key name",
				},
				&cli.StringFlag{
					Name:    "algorithm",
					Aliases: []string{"alg"},
					Value:   "xchacha20-poly1305",
					Usage:   "Encryption algorithm (chacha20-poly1305 or xchacha20-poly1305)",
				},
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				cfg := config.Load()
				container := app.NewContainer(cfg)
				defer func() { _ = container.Shutdown(ctx) }()

				useCase, err := container.TransitKeyUseCase()
				if err != nil {
					return err
				}

				return commands.RunRotateTransitKey(
					ctx,
					useCase,
					container.Logger(),
					cmd.String("name"),
					cmd.String("algorithm"),
				)
			},
		},
	}
}
