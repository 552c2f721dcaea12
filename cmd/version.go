package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/taimone/closest-facilities-lookup/internal/pipeline"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version",
	PersistentPreRunE: func(*cobra.Command, []string) error {
		return nil
	},
	Run: func(cmd *cobra.Command, _ []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "Version %s\n", pipeline.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
