package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/mrhapile/BuriBuri-Trading/internal/config"
	"github.com/mrhapile/BuriBuri-Trading/internal/market"
	"github.com/mrhapile/BuriBuri-Trading/internal/pipeline"
)

var rootCmd = &cobra.Command{
	Use:   "advisor",
	Short: "Advisory-only portfolio risk analysis",
	Long: `Advisor runs the portfolio decision pipeline over a data snapshot
prepared by the ingestion layer and prints the advisory report as JSON.

It proposes and explains actions; it never executes them. Fetching market
data, serving HTTP, and persisting caches are external concerns: the advisor
only reads the snapshot file it is given.`,
}

var (
	configPath   string
	snapshotPath string
)

func Execute() error {
	// Local overrides for paths, same bootstrap the fetch tooling uses.
	_ = godotenv.Load()
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c",
		envOr("ADVISOR_CONFIG", ""), "path to policy config YAML (defaults built in)")
	rootCmd.PersistentFlags().StringVarP(&snapshotPath, "snapshot", "s",
		envOr("ADVISOR_SNAPSHOT", ""), "path to input snapshot JSON (required)")
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func loadPolicy() (config.Root, error) {
	if configPath == "" {
		// Flag defaults are bound before godotenv runs, so check again here.
		configPath = os.Getenv("ADVISOR_CONFIG")
	}
	if configPath == "" {
		return config.Default(), nil
	}
	cfg, err := config.Load(configPath)
	if err != nil {
		return cfg, fmt.Errorf("load config %s: %w", configPath, err)
	}
	return cfg, nil
}

func loadSnapshot() (market.Snapshot, error) {
	var snap market.Snapshot
	if snapshotPath == "" {
		snapshotPath = os.Getenv("ADVISOR_SNAPSHOT")
	}
	if snapshotPath == "" {
		return snap, fmt.Errorf("--snapshot is required")
	}
	b, err := os.ReadFile(snapshotPath)
	if err != nil {
		return snap, fmt.Errorf("read snapshot %s: %w", snapshotPath, err)
	}
	if err := json.Unmarshal(b, &snap); err != nil {
		return snap, fmt.Errorf("decode snapshot %s: %w", snapshotPath, err)
	}
	return snap, nil
}

func toInputs(snap market.Snapshot) pipeline.Inputs {
	return pipeline.Inputs{
		Portfolio:  snap.Portfolio,
		Positions:  snap.Positions,
		Candles:    snap.Candles,
		Headlines:  snap.Headlines,
		Heatmap:    snap.Heatmap,
		Candidates: snap.Candidates,
	}
}

func printReport(r pipeline.Report) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(r)
}
