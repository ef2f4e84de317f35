package main

import (
	"context"
	"encoding/json"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-authenticator-bridge/internal/logger"
)

func (c *cli) feedCmd() *cobra.Command {
	var once bool

	cmd := &cobra.Command{
		Use:   "feed",
		Short: "Print the shared items of every account as JSON lines, one per change",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, cancel := context.WithCancel(cmd.Context())
			defer cancel()

			if !once {
				// other processes write to the same file
				refresher := c.app.RefreshWorker()
				go func() {
					if err := refresher.Run(ctx); err != nil {
						logger.FromContext(ctx).Err(err).
							Str("func", "cli.feed").
							Msg("refresh worker stopped")
					}
				}()
			}

			feed, err := c.app.Services.BridgeItemService.SharedItemsFeed(ctx)
			if err != nil {
				return err
			}

			enc := json.NewEncoder(c.out)
			for update := range feed {
				if update.Err != nil {
					return update.Err
				}
				if err = enc.Encode(update.Items); err != nil {
					return err
				}
				if once {
					return nil
				}
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&once, "once", false, "print the current items and exit")
	return cmd
}
