package main

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-authenticator-bridge/internal/app"
	"github.com/MKhiriev/go-authenticator-bridge/internal/config"
	"github.com/MKhiriev/go-authenticator-bridge/internal/logger"
)

// cli carries the streams and the lazily built app shared by all commands.
type cli struct {
	in     io.Reader
	out    io.Writer
	errOut io.Writer

	app *app.App
}

func execute(ctx context.Context, args []string, in io.Reader, out, errOut io.Writer) error {
	c := &cli{in: in, out: out, errOut: errOut}
	defer c.close()

	root := c.rootCmd()
	root.SetArgs(args)
	root.SetIn(in)
	root.SetOut(out)
	root.SetErr(errOut)

	return root.ExecuteContext(ctx)
}

func (c *cli) rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:               "bridge",
		Short:             "Share TOTP items between the password manager and the authenticator",
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: c.open,
	}
	config.RegisterFlags(root.PersistentFlags())

	root.AddCommand(
		c.versionCmd(),
		c.keyCmd(),
		c.itemsCmd(),
		c.tempCmd(),
		c.feedCmd(),
		c.watchCmd(),
	)
	return root
}

// open builds the configuration from the parsed flags and wires the app.
func (c *cli) open(cmd *cobra.Command, _ []string) error {
	cfg, err := config.GetStructuredConfig(cmd.Flags())
	if err != nil {
		return err
	}

	level, err := zerolog.ParseLevel(cfg.Log.Level)
	if err != nil {
		return err
	}
	log := logger.NewFileLogger("bridge", level, cfg.Log.File)

	ctx := log.WithContext(cmd.Context())
	cmd.SetContext(ctx)

	log.Debug().
		Str("func", "cli.open").
		Str("command", cmd.CommandPath()).
		Str("keychain_backend", cfg.Keychain.Backend).
		Str("store", cfg.Storage.DB.Type).
		Msg("received configs")

	c.app, err = app.NewApp(ctx, cfg, log)
	return err
}

func (c *cli) close() {
	if c.app == nil {
		return
	}
	_ = c.app.Close()
	c.app = nil
}

// userID is the account named by --user-id, falling back to fallback.
func (c *cli) userID(fallback string) (string, error) {
	if id := c.app.Config.Workers.UserID; id != "" {
		return id, nil
	}
	if fallback != "" {
		return fallback, nil
	}
	return "", errors.New(app.MsgNoUserIDProvided)
}

func (c *cli) printf(format string, args ...any) {
	fmt.Fprintf(c.out, format, args...)
}
