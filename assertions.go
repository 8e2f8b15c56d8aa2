package resample

import (
	"context"
	"math"
	"testing"
)

// AssertionConfig contains tolerances for statistical properties.
//
// Everything driven by random draws is asserted within a tolerance, never
// exactly; exact comparison of Monte Carlo output is a flaky test waiting to
// happen.
type AssertionConfig struct {
	// Maximum |relative bias| in percent for an unbiasedness pass
	MaxAbsRelativeBias float64

	// Allowed ratio between observed estimate spread and σ/√n
	MaxStdErrRatio float64
}

// DefaultAssertionConfig returns conservative tolerances for the reference
// run (R = 1000, n = 10000 over a 100k population).
func DefaultAssertionConfig() AssertionConfig {
	return AssertionConfig{
		MaxAbsRelativeBias: 2.0, // 2% bias
		MaxStdErrRatio:     1.5, // 50% over theoretical standard error
	}
}

// AssertDrawnFromPopulation verifies every sample element is a member of the
// population's value set.
//
// This is the membership half of the sampler contract; the length half is a
// plain comparison the caller can do inline.
func AssertDrawnFromPopulation(t *testing.T, population, sample []float64) {
	t.Helper()

	values := make(map[float64]struct{}, len(population))
	for _, v := range population {
		values[v] = struct{}{}
	}

	for i, v := range sample {
		if _, ok := values[v]; !ok {
			t.Errorf("sample[%d] = %v not drawn from population", i, v)
			return
		}
	}

	t.Logf("✓ Membership: all %d sample elements drawn from population of %d", len(sample), len(population))
}

// AssertDeterministic verifies that two draws with identical arguments and
// identical seeds produce identical samples.
//
// Mathematical property:
//
//	sample(pop, n, seed) == sample(pop, n, seed), element for element
func AssertDeterministic(t *testing.T, population []float64, n int, seed uint64) {
	t.Helper()

	first, err := SampleWithReplacement(population, n, NewRand(seed))
	if err != nil {
		t.Fatalf("first draw failed: %v", err)
	}
	second, err := SampleWithReplacement(population, n, NewRand(seed))
	if err != nil {
		t.Fatalf("second draw failed: %v", err)
	}

	for i := range first {
		if first[i] != second[i] {
			t.Errorf("draw not deterministic at index %d: %v != %v (seed %d)", i, first[i], second[i], seed)
			return
		}
	}

	t.Logf("✓ Deterministic: %d draws identical for seed %d", n, seed)
}

// AssertUnbiased runs the simulation and verifies the relative bias stays
// within tolerance.
//
// Mathematical property (statistical, high probability over seeds):
//
//	|E[μ̂] - μ| / μ × 100 < MaxAbsRelativeBias
func AssertUnbiased(t *testing.T, population []float64, cfg SimulationConfig, tol AssertionConfig) {
	t.Helper()

	result, err := Simulate(context.Background(), population, cfg)
	if err != nil {
		t.Fatalf("simulation failed: %v", err)
	}

	if math.Abs(result.RelativeBias) > tol.MaxAbsRelativeBias {
		t.Errorf("estimator biased: %.4f%% (max: %.4f%%)\n"+
			"avg estimate %.6f vs population mean %.6f over %d repetitions",
			result.RelativeBias, tol.MaxAbsRelativeBias,
			result.AverageEstimate, result.PopulationMean, result.Repetitions)
	}

	t.Logf("✓ Unbiased: relative bias %+.4f%% (tolerance: %.2f%%)", result.RelativeBias, tol.MaxAbsRelativeBias)
	t.Logf("  avg estimate: %.6f, population mean: %.6f, R=%d, n=%d",
		result.AverageEstimate, result.PopulationMean, cfg.Repetitions, cfg.SampleSize)
}

// AssertConvergence sweeps the given sample sizes and verifies the spread of
// the estimates tracks the theoretical standard error σ/√n at every point.
func AssertConvergence(t *testing.T, population []float64, sizes []int, cfg SimulationConfig, tol AssertionConfig) {
	t.Helper()

	points, err := SweepSampleSizes(context.Background(), population, sizes, cfg)
	if err != nil {
		t.Fatalf("sweep failed: %v", err)
	}

	for _, p := range points {
		if p.ExpectedStdErr == 0 {
			continue // zero-variance population, nothing to track
		}
		ratio := p.EstimateStdDev / p.ExpectedStdErr
		if ratio > tol.MaxStdErrRatio {
			t.Errorf("n=%d: estimate spread %.6f is %.2fx theoretical stderr %.6f (max: %.2fx)",
				p.SampleSize, p.EstimateStdDev, ratio, p.ExpectedStdErr, tol.MaxStdErrRatio)
		}
	}

	t.Logf("✓ Convergence: estimate spread tracks σ/√n across %d sample sizes", len(points))
	for _, p := range points {
		t.Logf("  n=%-7d bias=%+.4f%%  spread=%.6f  σ/√n=%.6f", p.SampleSize, p.RelativeBias, p.EstimateStdDev, p.ExpectedStdErr)
	}
}
