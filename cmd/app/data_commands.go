package main

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/allisson/cryptobox/cmd/app/commands"
	"github.com/allisson/cryptobox/internal/app"
	"github.com/allisson/cryptobox/internal/config"
)

func getDataCommands() []*cli.Command {
	passphraseFlag := &cli.StringFlag{
		Name:    "passphrase",
		Aliases: []string{"p"},
		Value:   "",
		Usage:   "Derive the key from a passphrase instead of the keychain",
	}

	return []*cli.Command{
		{
			Name:  "encrypt",
			Usage: "Encrypt a value with the active keychain key or a passphrase",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:     "value",
					Aliases:  []string{"v"},
					Required: true,
					Usage:    "Plaintext value to encrypt",
				},
				passphraseFlag,
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				cfg := config.Load()
				container := app.NewContainer(cfg)
				defer func() { _ = container.Shutdown(ctx) }()

				sealer, err := commands.BuildSealer(container, cfg, cmd.String("passphrase"))
				if err != nil {
					return err
				}

				return commands.RunEncrypt(sealer, commands.DefaultIO().Writer, cmd.String("value"))
			},
		},
		{
			Name:  "decrypt",
			Usage: "Decrypt a value sealed by the encrypt command",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:     "value",
					Aliases:  []string{"v"},
					Required: true,
					Usage:    "Encoded value to decrypt",
				},
				passphraseFlag,
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				cfg := config.Load()
				container := app.NewContainer(cfg)
				defer func() { _ = container.Shutdown(ctx) }()

				sealer, err := commands.BuildSealer(container, cfg, cmd.String("passphrase"))
				if err != nil {
					return err
				}

				return commands.RunDecrypt(sealer, commands.DefaultIO().Writer, cmd.String("value"))
			},
		},
		{
			Name:  "hash",
			Usage: "Hash a value with optional salting and repeating",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:     "value",
					Aliases:  []string{"v"},
					Required: true,
					Usage:    "Value to hash",
				},
				&cli.StringFlag{
					Name:    "algorithm",
					Aliases: []string{"alg"},
					Value:   "sha256",
					Usage:   "Digest algorithm (sha224, sha256, sha384, sha512)",
				},
				&cli.StringFlag{
					Name:    "salt",
					Aliases: []string{"s"},
					Value:   "",
					Usage:   "Salt appended to the input before hashing",
				},
				&cli.IntFlag{
					Name:    "repeats",
					Aliases: []string{"r"},
					Value:   1,
					Usage:   "Number of hashing rounds",
				},
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				return commands.RunHash(
					commands.DefaultIO().Writer,
					cmd.String("algorithm"),
					cmd.String("value"),
					cmd.String("salt"),
					int(cmd.Int("repeats")),
				)
			},
		},
		{
			Name:  "props-set",
			Usage: "Store an encrypted value in a properties file",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:     "file",
					Aliases:  []string{"f"},
					Required: true,
					Usage:    "Properties file path",
				},
				&cli.StringFlag{
					Name:     "key",
					Aliases:  []string{"k"},
					Required: true,
					Usage:    "Property key",
				},
				&cli.StringFlag{
					Name:     "value",
					Aliases:  []string{"v"},
					Required: true,
					Usage:    "Plaintext value to encrypt and store",
				},
				passphraseFlag,
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				cfg := config.Load()
				container := app.NewContainer(cfg)
				defer func() { _ = container.Shutdown(ctx) }()

				sealer, err := commands.BuildSealer(container, cfg, cmd.String("passphrase"))
				if err != nil {
					return err
				}

				return commands.RunPropsSet(
					sealer,
					container.Logger(),
					cfg.PropertySuffix,
					cmd.String("file"),
					cmd.String("key"),
					cmd.String("value"),
				)
			},
		},
		{
			Name:  "props-get",
			Usage: "Read and decrypt a value from a properties file",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:     "file",
					Aliases:  []string{"f"},
					Required: true,
					Usage:    "Properties file path",
				},
				&cli.StringFlag{
					Name:     "key",
					Aliases:  []string{"k"},
					Required: true,
					Usage:    "Property key",
				},
				passphraseFlag,
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				cfg := config.Load()
				container := app.NewContainer(cfg)
				defer func() { _ = container.Shutdown(ctx) }()

				sealer, err := commands.BuildSealer(container, cfg, cmd.String("passphrase"))
				if err != nil {
					return err
				}

				return commands.RunPropsGet(
					sealer,
					commands.DefaultIO().Writer,
					cfg.PropertySuffix,
					cmd.String("file"),
					cmd.String("key"),
				)
			},
		},
	}
}
