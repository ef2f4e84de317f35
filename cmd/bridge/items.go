package main

import (
	"encoding/json"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-authenticator-bridge/internal/utils"
	"github.com/MKhiriev/go-authenticator-bridge/internal/workers"
	"github.com/MKhiriev/go-authenticator-bridge/models"
)

func (c *cli) itemsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "items",
		Short: "Read and write the shared items of one account",
	}
	cmd.AddCommand(c.itemsListCmd(), c.itemsImportCmd(), c.itemsReplaceCmd(), c.itemsDeleteCmd())
	return cmd
}

func (c *cli) itemsListCmd() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the decrypted items of --user-id",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			userID, err := c.userID("")
			if err != nil {
				return err
			}

			items, err := c.app.Services.BridgeItemService.FetchAllForUser(cmd.Context(), userID)
			if err != nil {
				return err
			}

			if asJSON {
				enc := json.NewEncoder(c.out)
				enc.SetIndent("", "  ")
				return enc.Encode(models.UserItems{UserID: userID, Items: items})
			}

			tw := tabwriter.NewWriter(c.out, 0, 4, 2, ' ', 0)
			fmtRow(tw, "ID", "NAME", "ACCOUNT", "TOTP", "FAVORITE")
			for _, item := range items {
				fmtRow(tw, item.ID, item.Name, item.AccountName(), yesNo(item.TotpKey != nil), yesNo(item.Favorite))
			}
			return tw.Flush()
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the items as a JSON export document")
	return cmd
}

func (c *cli) itemsImportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "import FILE",
		Short: "Add the items of an export file (JSON or YAML) to an account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := c.loadExport(args[0])
			if err != nil {
				return err
			}

			if err = c.app.Services.BridgeItemService.InsertItems(cmd.Context(), doc.Items, doc.UserID); err != nil {
				return err
			}
			c.printf("imported %d items for %s\n", len(doc.Items), doc.UserID)
			return nil
		},
	}
}

func (c *cli) itemsReplaceCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "replace FILE",
		Short: "Replace every item of an account with the items of an export file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := c.loadExport(args[0])
			if err != nil {
				return err
			}

			if err = c.app.Services.BridgeItemService.ReplaceAllItems(cmd.Context(), doc.Items, doc.UserID); err != nil {
				return err
			}
			c.printf("replaced items of %s with %d items\n", doc.UserID, len(doc.Items))
			return nil
		},
	}
}

func (c *cli) itemsDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete",
		Short: "Delete every item of --user-id",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			userID, err := c.userID("")
			if err != nil {
				return err
			}

			if err = c.app.Services.BridgeItemService.DeleteAllForUser(cmd.Context(), userID); err != nil {
				return err
			}
			c.printf("deleted items of %s\n", userID)
			return nil
		},
	}
}

// loadExport reads an export file, resolves its account and gives every
// item without an id a fresh one.
func (c *cli) loadExport(path string) (models.UserItems, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return models.UserItems{}, err
	}

	doc, err := workers.DecodeVaultFile(path, data)
	if err != nil {
		return models.UserItems{}, err
	}

	if doc.UserID, err = c.userID(doc.UserID); err != nil {
		return models.UserItems{}, err
	}

	utils.AssignMissingIDs(doc.Items, utils.NewItemIDGenerator().Generate)

	return doc, nil
}

func fmtRow(tw *tabwriter.Writer, cols ...string) {
	for i, col := range cols {
		if i > 0 {
			tw.Write([]byte{'\t'})
		}
		tw.Write([]byte(col))
	}
	tw.Write([]byte{'\n'})
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
