package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/alexshd/resample"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run one simulation and report the relative bias",
	RunE: func(cmd *cobra.Command, args []string) error {
		population, summary, err := buildPopulation()
		if err != nil {
			return err
		}

		cfg := resample.SimulationConfig{
			SampleSize:  viper.GetInt("samples"),
			Repetitions: viper.GetInt("repetitions"),
			Seed:        viper.GetUint64("seed"),
			Workers:     viper.GetInt("workers"),
		}

		slog.Info("Simulating",
			"n", cfg.SampleSize,
			"repetitions", cfg.Repetitions,
			"workers", cfg.Workers,
			"seed", cfg.Seed)

		result, err := resample.Simulate(cmd.Context(), population, cfg)
		if err != nil {
			return fmt.Errorf("simulation: %w", err)
		}

		fmt.Println(renderSummary(summary))
		fmt.Println(renderResult(result, cfg))
		return nil
	},
}

func init() {
	runCmd.Flags().Int("samples", 10_000, "sample size n per repetition")
	runCmd.Flags().Int("repetitions", 1_000, "number of draw-and-estimate rounds")
	runCmd.Flags().Int("workers", 1, "parallel workers (1 = sequential)")

	viper.BindPFlag("samples", runCmd.Flags().Lookup("samples"))
	viper.BindPFlag("repetitions", runCmd.Flags().Lookup("repetitions"))
	viper.BindPFlag("workers", runCmd.Flags().Lookup("workers"))

	rootCmd.AddCommand(runCmd)
}

// buildPopulation draws the seeded normal population shared by run and sweep.
func buildPopulation() ([]float64, resample.Summary, error) {
	size := viper.GetInt("size")
	mu := viper.GetFloat64("mu")
	sigma := viper.GetFloat64("sigma")
	seed := viper.GetUint64("seed")

	slog.Info("Generating population", "size", size, "mu", mu, "sigma", sigma, "seed", seed)

	population, err := resample.NormalPopulation(size, mu, sigma, seed)
	if err != nil {
		return nil, resample.Summary{}, fmt.Errorf("population: %w", err)
	}

	summary, err := resample.Describe(population)
	if err != nil {
		return nil, resample.Summary{}, fmt.Errorf("describe: %w", err)
	}
	return population, summary, nil
}
