package resample

import (
	"context"
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat"
)

// SweepPoint records how the estimator behaved at one sample size.
type SweepPoint struct {
	SampleSize     int     // n for this point
	RelativeBias   float64 // bias% of the averaged estimates
	EstimateStdDev float64 // spread of the R individual estimates
	ExpectedStdErr float64 // σ/√n: what theory predicts for that spread
}

// SweepSampleSizes runs the simulation once per sample size and reports how
// the relative bias and the spread of the estimates shrink as n grows. The
// spread should track the theoretical standard error σ/√n; a point whose
// EstimateStdDev diverges from ExpectedStdErr flags a broken sampler long
// before the bias does.
//
// Each point restarts from cfg.Seed, so points are comparable across sweeps
// and the whole sweep is reproducible. cfg.SampleSize is ignored; sizes
// supplies it per point. Fails with ErrInvalidArgument on an empty size list,
// an invalid size, an invalid cfg, an empty population, or a zero population
// mean.
func SweepSampleSizes(ctx context.Context, population []float64, sizes []int, cfg SimulationConfig) ([]SweepPoint, error) {
	if len(sizes) == 0 {
		return nil, fmt.Errorf("%w: no sample sizes to sweep", ErrInvalidArgument)
	}
	if cfg.Repetitions < 1 {
		return nil, fmt.Errorf("%w: repetitions %d, want >= 1", ErrInvalidArgument, cfg.Repetitions)
	}
	if len(population) == 0 {
		return nil, fmt.Errorf("%w: empty population", ErrInvalidArgument)
	}

	populationMean := stat.Mean(population, nil)
	if populationMean == 0 {
		return nil, fmt.Errorf("%w: population mean is zero, relative bias is undefined", ErrInvalidArgument)
	}
	populationStdDev := stat.StdDev(population, nil)

	points := make([]SweepPoint, 0, len(sizes))

	for _, n := range sizes {
		if n < 1 {
			return nil, fmt.Errorf("%w: sample size %d, want >= 1", ErrInvalidArgument, n)
		}
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		estimates, err := collectEstimates(ctx, population, n, cfg.Repetitions, NewRand(cfg.Seed))
		if err != nil {
			return nil, err
		}

		averageEstimate := stat.Mean(estimates, nil)

		points = append(points, SweepPoint{
			SampleSize:     n,
			RelativeBias:   (averageEstimate - populationMean) / populationMean * 100,
			EstimateStdDev: stat.StdDev(estimates, nil),
			ExpectedStdErr: populationStdDev / math.Sqrt(float64(n)),
		})
	}

	return points, nil
}

// collectEstimates is accumulateEstimates keeping every estimate instead of
// folding them into a sum; the sweep needs the full set for its spread.
func collectEstimates(ctx context.Context, population []float64, n, reps int, r *Rand) ([]float64, error) {
	buf := make([]float64, n)
	estimates := make([]float64, 0, reps)

	for i := 0; i < reps; i++ {
		if i%ctxCheckInterval == 0 {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			default:
			}
		}

		sampleInto(buf, population, r)
		estimate, err := HansenHurwitz(buf)
		if err != nil {
			return nil, err
		}
		estimates = append(estimates, estimate)
	}
	return estimates, nil
}
