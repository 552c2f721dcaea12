package main

import (
	"os/signal"
	"syscall"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/taimone/closest-facilities-lookup/internal/pipeline"
)

var (
	runInput      string
	runFacilities string
	runOutput     string
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Build the closest-facility report",
	Long: `Runs the connectivity prechecks, then queries distances for every employee
and writes the report once all employees are processed. Nothing is written if
a precheck or any distance query fails.

Examples:
  facility-lookup run
  facility-lookup run --input staff.csv --facilities sites.xlsx --output closest.xlsx`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		if runInput != "" {
			cfg.Input.EmployeesPath = runInput
		}
		if runFacilities != "" {
			cfg.Input.FacilitiesPath = runFacilities
		}
		if runOutput != "" {
			cfg.Output.Path = runOutput
		}
		if err := cfg.Validate("run"); err != nil {
			return err
		}

		provider, err := newProvider()
		if err != nil {
			return err
		}

		res, err := pipeline.New(cfg, provider, nil).Run(ctx)
		if err != nil {
			zap.L().Error("run failed, no output written", zap.Error(err))
			return eris.Wrap(err, "run")
		}

		zap.L().Info("run complete",
			zap.String("output", res.Output),
			zap.Int("employees", res.Employees),
		)
		return nil
	},
}

func init() {
	runCmd.Flags().StringVar(&runInput, "input", "", "employee CSV/XLSX with Name and Employee Zip columns (default from config)")
	runCmd.Flags().StringVar(&runFacilities, "facilities", "", "facility CSV/XLSX with Facility Zip and Airport Code columns (default from config)")
	runCmd.Flags().StringVar(&runOutput, "output", "", "output XLSX path (default from config)")
	rootCmd.AddCommand(runCmd)
}
