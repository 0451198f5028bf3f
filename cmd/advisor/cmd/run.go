package cmd

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/mrhapile/BuriBuri-Trading/internal/id"
	"github.com/mrhapile/BuriBuri-Trading/internal/pipeline"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run one advisory analysis over a snapshot",
	Long: `Run executes the decision pipeline once and prints the report.

Example:
  advisor run --snapshot data/snapshot.json --config configs/advisor.yaml`,
	RunE: runOnce,
}

func init() {
	rootCmd.AddCommand(runCmd)
}

func runOnce(cmd *cobra.Command, args []string) error {
	cfg, err := loadPolicy()
	if err != nil {
		return err
	}
	snap, err := loadSnapshot()
	if err != nil {
		return err
	}

	report := pipeline.New(cfg).Run(toInputs(snap), pipeline.Memory{})
	report.RunID = id.NewRunID()
	report.GeneratedAt = time.Now().UTC().Format(time.RFC3339)
	return printReport(report)
}
