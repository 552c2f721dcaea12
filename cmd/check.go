package main

import (
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/taimone/closest-facilities-lookup/internal/pipeline"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Run the network and distance provider prechecks only",
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		if err := cfg.Validate("check"); err != nil {
			return err
		}

		provider, err := newProvider()
		if err != nil {
			return err
		}

		if err := pipeline.New(cfg, provider, nil).Precheck(ctx); err != nil {
			return err
		}

		zap.L().Info("all prechecks passed")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
}
