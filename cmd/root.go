package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/taimone/closest-facilities-lookup/internal/config"
)

var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:   "facility-lookup",
	Short: "Find the three closest facilities for each employee",
	Long:  "Queries driving distances from each employee zip to every facility and writes the three closest facilities, their distances in miles and airport codes to an XLSX report.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		c, err := config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		cfg = c

		if err := config.InitLogger(cfg.Log); err != nil {
			return fmt.Errorf("init logger: %w", err)
		}

		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = zap.L().Sync()
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
