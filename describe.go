package resample

import (
	"fmt"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// Summary describes a numeric sequence: a population before a run, or a set
// of estimates after one.
type Summary struct {
	N      int
	Mean   float64
	StdDev float64
	Min    float64
	Max    float64
	P50    float64
	P95    float64
	P99    float64
}

// Describe computes summary statistics over values. The input is not
// modified; quantiles are taken over a sorted copy using the empirical CDF.
// Fails with ErrInvalidArgument on an empty input.
func Describe(values []float64) (Summary, error) {
	if len(values) == 0 {
		return Summary{}, fmt.Errorf("%w: no values to describe", ErrInvalidArgument)
	}

	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	return Summary{
		N:      len(values),
		Mean:   stat.Mean(values, nil),
		StdDev: stat.StdDev(values, nil),
		Min:    sorted[0],
		Max:    sorted[len(sorted)-1],
		P50:    stat.Quantile(0.50, stat.Empirical, sorted, nil),
		P95:    stat.Quantile(0.95, stat.Empirical, sorted, nil),
		P99:    stat.Quantile(0.99, stat.Empirical, sorted, nil),
	}, nil
}
