package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/alexshd/resample"
)

var sweepCmd = &cobra.Command{
	Use:   "sweep",
	Short: "Sweep sample sizes and show how the estimator converges",
	RunE: func(cmd *cobra.Command, args []string) error {
		population, summary, err := buildPopulation()
		if err != nil {
			return err
		}

		sizes := viper.GetIntSlice("sizes")
		cfg := resample.SimulationConfig{
			Repetitions: viper.GetInt("sweep-repetitions"),
			Seed:        viper.GetUint64("seed"),
		}

		slog.Info("Sweeping sample sizes", "sizes", sizes, "repetitions", cfg.Repetitions, "seed", cfg.Seed)

		points, err := resample.SweepSampleSizes(cmd.Context(), population, sizes, cfg)
		if err != nil {
			return fmt.Errorf("sweep: %w", err)
		}

		fmt.Println(renderSummary(summary))
		fmt.Println(renderSweep(points))
		return nil
	},
}

func init() {
	sweepCmd.Flags().IntSlice("sizes", []int{100, 1_000, 10_000}, "sample sizes to sweep")
	sweepCmd.Flags().Int("sweep-repetitions", 300, "repetitions per sample size")

	viper.BindPFlag("sizes", sweepCmd.Flags().Lookup("sizes"))
	viper.BindPFlag("sweep-repetitions", sweepCmd.Flags().Lookup("sweep-repetitions"))

	rootCmd.AddCommand(sweepCmd)
}
