package main

import (
	"github.com/spf13/cobra"
)

func (c *cli) versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Args:  cobra.NoArgs,
		// no app is needed to print build info
		PersistentPreRunE: func(*cobra.Command, []string) error { return nil },
		Run: func(*cobra.Command, []string) {
			c.printBuildInfo()
		},
	}
}

func (c *cli) printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}
	if buildDate == "" {
		buildDate = "N/A"
	}
	if buildCommit == "" {
		buildCommit = "N/A"
	}

	c.printf("Build version: %s\n", buildVersion)
	c.printf("Build date: %s\n", buildDate)
	c.printf("Build commit: %s\n", buildCommit)
}
