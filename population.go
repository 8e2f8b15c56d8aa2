package resample

import (
	"fmt"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

// NormalPopulation draws size values from N(mu, sigma²) with the given seed.
// It exists so hosts can reproduce the reference setup — 100,000 standard
// normal draws — without hand-rolling a seeded generator.
//
// Fails with ErrInvalidArgument if size < 1 or sigma <= 0.
func NormalPopulation(size int, mu, sigma float64, seed uint64) ([]float64, error) {
	if size < 1 {
		return nil, fmt.Errorf("%w: population size %d, want >= 1", ErrInvalidArgument, size)
	}
	if sigma <= 0 {
		return nil, fmt.Errorf("%w: sigma %v, want > 0", ErrInvalidArgument, sigma)
	}

	dist := distuv.Normal{
		Mu:    mu,
		Sigma: sigma,
		Src:   rand.NewSource(seed),
	}

	population := make([]float64, size)
	for i := range population {
		population[i] = dist.Rand()
	}
	return population, nil
}
