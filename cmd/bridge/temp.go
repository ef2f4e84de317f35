package main

import (
	"encoding/json"
	"fmt"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-authenticator-bridge/internal/app"
	"github.com/MKhiriev/go-authenticator-bridge/internal/logger"
	"github.com/MKhiriev/go-authenticator-bridge/internal/utils"
	"github.com/MKhiriev/go-authenticator-bridge/models"
)

func (c *cli) tempCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "temp",
		Short: "Hand a single item over to the other app",
	}
	cmd.AddCommand(c.tempPushCmd(), c.tempPopCmd())
	return cmd
}

func (c *cli) tempPushCmd() *cobra.Command {
	var (
		item                          models.ItemView
		domain, email, totp, username string
	)

	cmd := &cobra.Command{
		Use:   "push",
		Short: "Park an item for the other app, replacing any parked item",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if item.ID == "" {
				item.ID = utils.NewItemIDGenerator().Generate()
			}
			item.AccountDomain = optional(domain)
			item.AccountEmail = optional(email)
			item.TotpKey = optional(totp)
			item.Username = optional(username)

			if err := c.app.Services.BridgeItemService.InsertTemporaryItem(cmd.Context(), item); err != nil {
				return err
			}
			c.printf("parked %s\n", item.ID)
			return nil
		},
	}

	fs := cmd.Flags()
	fs.StringVar(&item.ID, "id", "", "item id, generated when empty")
	fs.StringVar(&item.Name, "name", "", "item name")
	fs.BoolVar(&item.Favorite, "favorite", false, "mark the item as favorite")
	fs.StringVar(&domain, "domain", "", "account domain")
	fs.StringVar(&email, "email", "", "account email")
	fs.StringVar(&totp, "totp", "", "TOTP secret or otpauth:// URI")
	fs.StringVar(&username, "username", "", "username")
	return cmd
}

func (c *cli) tempPopCmd() *cobra.Command {
	var copyTotp bool

	cmd := &cobra.Command{
		Use:   "pop",
		Short: "Take the parked item, printing it as JSON",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			item, err := c.app.Services.BridgeItemService.FetchTemporaryItem(cmd.Context())
			if err != nil {
				return err
			}
			if item == nil {
				c.printf("%s\n", app.MsgNoTemporaryItem)
				return nil
			}

			if copyTotp && item.TotpKey != nil {
				item = c.copyTotp(cmd, item)
			}
			return json.NewEncoder(c.out).Encode(item)
		},
	}
	cmd.Flags().BoolVar(&copyTotp, "copy", false, "copy the TOTP secret to the clipboard instead of printing it")
	return cmd
}

// writeClipboard is swapped out by tests.
var writeClipboard = clipboard.WriteAll

// copyTotp moves the secret of a popped item to the clipboard and returns the
// item without it. The item is already gone from the store, so when the
// clipboard is unavailable the secret stays in the printed item.
func (c *cli) copyTotp(cmd *cobra.Command, item *models.ItemView) *models.ItemView {
	if err := writeClipboard(*item.TotpKey); err != nil {
		logger.FromContext(cmd.Context()).Warn().Err(err).
			Str("func", "cli.copyTotp").
			Str("item_id", item.ID).
			Msg("clipboard unavailable, printing the secret")
		_, _ = fmt.Fprintf(c.errOut, "%s: %v\n", app.MsgClipboardUnavailable, err)
		return item
	}

	redacted := *item
	redacted.TotpKey = nil
	return &redacted
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
