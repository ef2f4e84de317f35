package main

import (
	"bufio"
	"encoding/base64"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/awnumar/memguard"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/MKhiriev/go-authenticator-bridge/internal/app"
	"github.com/MKhiriev/go-authenticator-bridge/internal/crypto"
)

func (c *cli) keyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "key",
		Short: "Manage the shared authenticator key",
	}
	cmd.AddCommand(c.keyInitCmd(), c.keySetCmd(), c.keyStatusCmd(), c.keyDeleteCmd())
	return cmd
}

func (c *cli) keyInitCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Generate and store a new authenticator key",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			if !force {
				on, err := c.app.Services.BridgeItemService.IsSyncOn(ctx)
				if err != nil {
					return err
				}
				if on {
					return errors.New(app.MsgKeyAlreadyPresent)
				}
			}

			key, err := crypto.GenerateKey()
			if err != nil {
				return err
			}
			defer memguard.WipeBytes(key)

			if err = c.app.Keychain.Repository.SetAuthenticatorKey(ctx, key); err != nil {
				return err
			}

			c.printf("%s (fingerprint %s)\n", app.MsgKeyGenerated, crypto.Fingerprint(key))
			return nil
		},
	}
	cmd.Flags().BoolVarP(&force, "force", "f", false, "replace an existing key")
	return cmd
}

func (c *cli) keySetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set",
		Short: "Store a base64 encoded key read from the terminal or stdin",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			raw, err := c.readSecret("Authenticator key (base64): ")
			if err != nil {
				return err
			}
			defer memguard.WipeBytes(raw)

			key := make([]byte, base64.StdEncoding.DecodedLen(len(raw)))
			defer memguard.WipeBytes(key)

			n, err := base64.StdEncoding.Decode(key, raw)
			if err != nil {
				return fmt.Errorf("%w: %w", crypto.ErrInvalidKey, err)
			}
			if n != crypto.KeySize {
				return fmt.Errorf("%w: got %d bytes, want %d", crypto.ErrInvalidKey, n, crypto.KeySize)
			}

			if err = c.app.Keychain.Repository.SetAuthenticatorKey(cmd.Context(), key[:n]); err != nil {
				return err
			}

			c.printf("%s (fingerprint %s)\n", app.MsgKeyStored, crypto.Fingerprint(key[:n]))
			return nil
		},
	}
}

func (c *cli) keyStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Report whether sync is on and the fingerprint of the key",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			on, err := c.app.Services.BridgeItemService.IsSyncOn(ctx)
			if err != nil {
				return err
			}
			if !on {
				c.printf("%s\n", app.MsgSyncOff)
				return nil
			}

			key, err := c.app.Keychain.Repository.GetAuthenticatorKey(ctx)
			if err != nil {
				return err
			}
			defer memguard.WipeBytes(key)

			c.printf("%s (fingerprint %s)\n", app.MsgSyncOn, crypto.Fingerprint(key))
			return nil
		},
	}
}

func (c *cli) keyDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete",
		Short: "Delete the authenticator key, turning sync off",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := c.app.Keychain.Repository.DeleteAuthenticatorKey(cmd.Context()); err != nil {
				return err
			}
			c.printf("%s\n", app.MsgKeyDeleted)
			return nil
		},
	}
}

// readSecret reads one line without echo when stdin is a terminal, and a
// plain line otherwise.
func (c *cli) readSecret(prompt string) ([]byte, error) {
	if f, ok := c.in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		fmt.Fprint(c.errOut, prompt)
		secret, err := term.ReadPassword(int(f.Fd()))
		fmt.Fprintln(c.errOut)
		return secret, err
	}

	line, err := bufio.NewReader(c.in).ReadString('\n')
	if err != nil && line == "" {
		return nil, fmt.Errorf("read key: %w", err)
	}
	return []byte(strings.TrimSpace(line)), nil
}
