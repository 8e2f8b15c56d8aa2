// Command resample generates a population, runs the Hansen-Hurwitz Monte
// Carlo simulation against it, and reports the relative bias.
package main

import (
	"log/slog"
	"os"

	"github.com/lmittmann/tint"
)

func init() {
	slog.SetDefault(slog.New(
		tint.NewHandler(os.Stderr, &tint.Options{
			Level:      slog.LevelInfo,
			TimeFormat: "15:04:05",
		}),
	))
}

func main() {
	Execute()
}
