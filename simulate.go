package resample

import (
	"context"
	"fmt"
	"sync"
	"time"

	"gonum.org/v1/gonum/stat"
)

// seedStride separates per-worker seeds. It is the golden-ratio gamma used by
// splitmix-style generators, chosen so derived seeds are far apart in state
// space rather than consecutive.
const seedStride = 0x9E3779B97F4A7C15

// ctxCheckInterval is how many repetitions run between context checks.
const ctxCheckInterval = 64

// SimulationConfig controls one Monte Carlo run.
type SimulationConfig struct {
	SampleSize  int    // n: elements drawn per repetition
	Repetitions int    // R: number of draw-and-estimate rounds
	Seed        uint64 // Root seed; fixes every draw of the run
	Workers     int    // Parallel workers (0 or 1 = sequential)
}

// DefaultSimulationConfig returns the canonical run from the source study:
// 1000 repetitions of a 10000-element sample.
func DefaultSimulationConfig() SimulationConfig {
	return SimulationConfig{
		SampleSize:  10_000,
		Repetitions: 1_000,
		Seed:        1,
		Workers:     1,
	}
}

// SimulationResult reports one completed run. It is derived output only;
// nothing in it is retained between runs.
type SimulationResult struct {
	PopulationMean  float64       // μ: true mean of the input population
	AverageEstimate float64       // avg of the R Hansen-Hurwitz estimates
	RelativeBias    float64       // (AverageEstimate - μ)/μ × 100
	Repetitions     int           // R actually executed
	Elapsed         time.Duration // Wall time of the repetition loop
}

func (cfg SimulationConfig) validate() error {
	if cfg.SampleSize < 1 {
		return fmt.Errorf("%w: sample size %d, want >= 1", ErrInvalidArgument, cfg.SampleSize)
	}
	if cfg.Repetitions < 1 {
		return fmt.Errorf("%w: repetitions %d, want >= 1", ErrInvalidArgument, cfg.Repetitions)
	}
	return nil
}

// Simulate estimates the relative bias of the Hansen-Hurwitz estimator over
// the given population: R times, draw an n-element with-replacement sample
// and take its mean, then compare the average of those means against the true
// population mean.
//
// All validation is eager: an empty population, non-positive n or R, and a
// zero population mean (the bias denominator) fail before any draw happens.
// Any failure is final; there are no retries and no partial results.
//
// With cfg.Workers <= 1 the run is strictly sequential and reproduces the
// same result for the same arguments. With more workers the repetitions are
// split across a pool, each worker on its own derived seed; the result is
// still deterministic for a fixed (Seed, Workers) pair, but changing Workers
// changes which draws happen, so it differs from the sequential run.
func Simulate(ctx context.Context, population []float64, cfg SimulationConfig) (SimulationResult, error) {
	if err := cfg.validate(); err != nil {
		return SimulationResult{}, err
	}
	if len(population) == 0 {
		return SimulationResult{}, fmt.Errorf("%w: empty population", ErrInvalidArgument)
	}

	populationMean := stat.Mean(population, nil)
	if populationMean == 0 {
		return SimulationResult{}, fmt.Errorf("%w: population mean is zero, relative bias is undefined", ErrInvalidArgument)
	}

	workers := cfg.Workers
	if workers < 1 {
		workers = 1
	}
	if workers > cfg.Repetitions {
		workers = cfg.Repetitions
	}

	start := time.Now()

	var sum float64
	var err error
	if workers == 1 {
		sum, err = accumulateEstimates(ctx, population, cfg.SampleSize, cfg.Repetitions, NewRand(cfg.Seed))
	} else {
		sum, err = accumulateParallel(ctx, population, cfg, workers)
	}
	if err != nil {
		return SimulationResult{}, err
	}

	averageEstimate := sum / float64(cfg.Repetitions)

	return SimulationResult{
		PopulationMean:  populationMean,
		AverageEstimate: averageEstimate,
		RelativeBias:    (averageEstimate - populationMean) / populationMean * 100,
		Repetitions:     cfg.Repetitions,
		Elapsed:         time.Since(start),
	}, nil
}

// accumulateEstimates runs reps sequential draw-and-estimate rounds and
// returns the sum of the estimates. One sample buffer is reused across
// rounds; each round overwrites it completely before the mean is taken.
func accumulateEstimates(ctx context.Context, population []float64, n, reps int, r *Rand) (float64, error) {
	buf := make([]float64, n)

	var sum float64
	for i := 0; i < reps; i++ {
		if i%ctxCheckInterval == 0 {
			select {
			case <-ctx.Done():
				return 0, ctx.Err()
			default:
			}
		}

		sampleInto(buf, population, r)
		estimate, err := HansenHurwitz(buf)
		if err != nil {
			return 0, err
		}
		sum += estimate
	}
	return sum, nil
}

// accumulateParallel splits the repetitions across workers and merges their
// partial sums. Addition is commutative and associative, so the merge order
// does not matter; determinism comes entirely from the per-worker seeds and
// the deterministic split of repetition counts.
func accumulateParallel(ctx context.Context, population []float64, cfg SimulationConfig, workers int) (float64, error) {
	repsPerWorker := cfg.Repetitions / workers
	remainder := cfg.Repetitions % workers

	type partial struct {
		sum float64
		err error
	}

	var wg sync.WaitGroup
	results := make(chan partial, workers)

	for w := 0; w < workers; w++ {
		reps := repsPerWorker
		if w < remainder {
			reps++
		}

		wg.Add(1)
		go func(workerID, reps int) {
			defer wg.Done()

			// Per-worker generator: no sharing, no locking.
			r := NewRand(cfg.Seed + uint64(workerID+1)*seedStride)
			sum, err := accumulateEstimates(ctx, population, cfg.SampleSize, reps, r)
			results <- partial{sum: sum, err: err}
		}(w, reps)
	}

	wg.Wait()
	close(results)

	var total float64
	for p := range results {
		if p.err != nil {
			return 0, p.err
		}
		total += p.sum
	}
	return total, nil
}
