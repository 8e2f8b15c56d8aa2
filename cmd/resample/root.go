package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// rootCmd is the base Cobra command; run and sweep attach to it.
var rootCmd = &cobra.Command{
	Use:   "resample",
	Short: "Sampling-with-replacement Monte Carlo simulator",
	Long: `resample draws a seeded normal population, samples from it with
replacement, and measures the relative bias of the Hansen-Hurwitz
estimator of the population mean.`,
	PersistentPreRunE: loadConfig,
}

// Execute runs the root Cobra command and all registered subcommands.
// It prints any returned error and exits with a non-zero status on failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.Int("size", 100_000, "population size")
	pf.Float64("mu", 5, "population mean")
	pf.Float64("sigma", 1, "population standard deviation")
	pf.Uint64("seed", 42, "root seed for population and sampling")
	pf.String("config", "", "optional config file (flags win over file values)")

	viper.BindPFlag("size", pf.Lookup("size"))
	viper.BindPFlag("mu", pf.Lookup("mu"))
	viper.BindPFlag("sigma", pf.Lookup("sigma"))
	viper.BindPFlag("seed", pf.Lookup("seed"))
	viper.BindPFlag("config", pf.Lookup("config"))
}

// loadConfig pulls in the optional config file before any subcommand runs.
func loadConfig(cmd *cobra.Command, args []string) error {
	path := viper.GetString("config")
	if path == "" {
		return nil
	}

	viper.SetConfigFile(path)
	if err := viper.ReadInConfig(); err != nil {
		return fmt.Errorf("reading config %s: %w", path, err)
	}

	slog.Info("Loaded config file", "path", path)
	return nil
}
