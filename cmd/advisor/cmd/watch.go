package cmd

import (
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/time/rate"

	"github.com/mrhapile/BuriBuri-Trading/internal/id"
	"github.com/mrhapile/BuriBuri-Trading/internal/observ"
	"github.com/mrhapile/BuriBuri-Trading/internal/pipeline"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Re-run the analysis on an interval",
	Long: `Watch repeats the analysis, re-reading the snapshot file each
iteration and threading the posture memory from one run into the next. The
caller owns the memory handoff; the pipeline itself stays stateless.`,
	RunE: runWatch,
}

var (
	watchInterval time.Duration
	watchCount    int
)

func init() {
	rootCmd.AddCommand(watchCmd)
	watchCmd.Flags().DurationVarP(&watchInterval, "interval", "i", 30*time.Second, "time between runs")
	watchCmd.Flags().IntVarP(&watchCount, "count", "n", 0, "number of runs (0 = until interrupted)")
}

func runWatch(cmd *cobra.Command, args []string) error {
	cfg, err := loadPolicy()
	if err != nil {
		return err
	}

	p := pipeline.New(cfg)
	limiter := rate.NewLimiter(rate.Every(watchInterval), 1)
	var mem pipeline.Memory

	for i := 0; watchCount == 0 || i < watchCount; i++ {
		if err := limiter.Wait(cmd.Context()); err != nil {
			return nil // context canceled, clean exit
		}

		snap, err := loadSnapshot()
		if err != nil {
			// Ingestion hiccups surface loudly; the advisor never falls
			// back to a stale or substitute source on its own.
			observ.Warn("snapshot_unavailable", map[string]any{"error": err.Error()})
			continue
		}

		report := p.Run(toInputs(snap), mem)
		report.RunID = id.NewRunID()
		report.GeneratedAt = time.Now().UTC().Format(time.RFC3339)
		mem = report.NextMemory

		if err := printReport(report); err != nil {
			return err
		}
	}
	return nil
}
