// Package resample implements equal-probability sampling with replacement and
// a Monte Carlo driver for the Hansen-Hurwitz estimator of a population mean.
//
// # Overview
//
// resample answers one question: how biased is the sample mean as an estimator
// of the population mean under with-replacement sampling? The Hansen-Hurwitz
// estimator for equal selection probabilities p_i = 1/N reduces to the plain
// arithmetic mean of the sample:
//
//	μ̂ = (1/n) Σ y_i / (N·p_i) = (1/n) Σ y_i
//
// which is unbiased: E[μ̂] = μ. The simulation driver verifies this empirically
// by repeating draw-and-estimate R times and reporting the relative bias of the
// averaged estimates against the true population mean:
//
//	bias% = (avg(μ̂_1..μ̂_R) - μ) / μ × 100
//
// # Quick Start
//
// Generate a population, simulate, inspect the bias:
//
//	population, err := resample.NormalPopulation(100_000, 0, 1, 42)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	result, err := resample.Simulate(ctx, population, resample.SimulationConfig{
//	    SampleSize:  10_000,
//	    Repetitions: 1_000,
//	    Seed:        42,
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	fmt.Printf("relative bias: %+.4f%%\n", result.RelativeBias)
//
// # Randomness
//
// There is no package-global generator. Every operation that consumes
// randomness takes an explicit *Rand created from a caller-supplied seed, so
// identical arguments always reproduce identical draws. The generator is
// MT19937 (gonum mathext/prng) with rejection sampling for bounded integers,
// so index draws carry no modulo bias.
//
// A *Rand is not safe for concurrent use. The parallel simulation path never
// shares one: each worker derives its own seed from the run seed and its
// worker index, and partial sums merge by addition, which is order-free.
//
// # Errors
//
// Argument validation is eager and total: an empty population, a non-positive
// sample size or repetition count, and a zero population mean (the relative
// bias denominator) all fail immediately with an error matching
// ErrInvalidArgument. There are no partial results and no silent clamping.
//
// # Testing
//
// The package exports statistical assertion helpers in the same spirit as its
// operations:
//
//	func TestMySampler(t *testing.T) {
//	    population, _ := resample.NormalPopulation(10_000, 0, 1, 7)
//
//	    resample.AssertDrawnFromPopulation(t, population, sample)
//	    resample.AssertUnbiased(t, population, cfg, resample.DefaultAssertionConfig())
//	}
//
// Unbiasedness is a statistical property, not an exact one; the assertion
// helpers use tolerances, never exact equality, for anything driven by random
// draws. The single exact case is a zero-variance population, where every
// sample mean equals the population mean and the bias is exactly zero.
package resample
