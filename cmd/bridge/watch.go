package main

import (
	"github.com/spf13/cobra"
)

func (c *cli) watchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Publish --vault-file whenever it changes, until interrupted",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ws, err := c.app.Workers()
			if err != nil {
				return err
			}
			return ws.Run(cmd.Context())
		},
	}
}
