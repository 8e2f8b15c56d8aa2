package resample

import (
	"context"
	"errors"
	"math"
	"testing"
)

// TestSimulate_DegeneratePopulation verifies the one exact case: a
// zero-variance population, where every estimate equals the population mean
// and the bias is exactly zero.
func TestSimulate_DegeneratePopulation(t *testing.T) {
	population := []float64{1, 1, 1}

	result, err := Simulate(context.Background(), population, SimulationConfig{
		SampleSize:  3,
		Repetitions: 50,
		Seed:        1,
	})
	if err != nil {
		t.Fatalf("Simulate failed: %v", err)
	}

	if result.AverageEstimate != 1 {
		t.Errorf("Expected average estimate exactly 1, got %v", result.AverageEstimate)
	}
	if result.RelativeBias != 0 {
		t.Errorf("Expected relative bias exactly 0, got %v", result.RelativeBias)
	}
	if result.PopulationMean != 1 {
		t.Errorf("Expected population mean 1, got %v", result.PopulationMean)
	}
}

// TestSimulate_Unbiased runs the reference configuration against a normal
// population with a known nonzero mean and checks the bias tolerance.
//
// Statistical, not exact: the expected |bias| here is on the order of
// 0.01%, so the 2% tolerance leaves three orders of magnitude of headroom.
func TestSimulate_Unbiased(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping 10^7-draw simulation in -short mode")
	}

	population, err := NormalPopulation(100_000, 5, 1, 17)
	if err != nil {
		t.Fatalf("NormalPopulation failed: %v", err)
	}

	for _, seed := range []uint64{1, 42, 7_777} {
		cfg := SimulationConfig{
			SampleSize:  10_000,
			Repetitions: 1_000,
			Seed:        seed,
		}
		AssertUnbiased(t, population, cfg, DefaultAssertionConfig())
	}
}

// TestSimulate_Deterministic verifies fixed arguments reproduce results
// bit for bit, sequentially and for a fixed worker count.
func TestSimulate_Deterministic(t *testing.T) {
	population, err := NormalPopulation(5_000, 3, 2, 23)
	if err != nil {
		t.Fatalf("NormalPopulation failed: %v", err)
	}

	for _, workers := range []int{1, 4} {
		cfg := SimulationConfig{
			SampleSize:  200,
			Repetitions: 100,
			Seed:        9,
			Workers:     workers,
		}

		first, err := Simulate(context.Background(), population, cfg)
		if err != nil {
			t.Fatalf("first run (workers=%d) failed: %v", workers, err)
		}
		second, err := Simulate(context.Background(), population, cfg)
		if err != nil {
			t.Fatalf("second run (workers=%d) failed: %v", workers, err)
		}

		if first.AverageEstimate != second.AverageEstimate {
			t.Errorf("workers=%d: runs differ: %v != %v", workers, first.AverageEstimate, second.AverageEstimate)
		}
		if first.RelativeBias != second.RelativeBias {
			t.Errorf("workers=%d: bias differs: %v != %v", workers, first.RelativeBias, second.RelativeBias)
		}
	}
}

// TestSimulate_ParallelMatchesTolerance verifies the parallel path is as
// unbiased as the sequential one. The two paths draw different streams, so
// only the statistical property is comparable, not the exact value.
func TestSimulate_ParallelMatchesTolerance(t *testing.T) {
	population, err := NormalPopulation(20_000, 10, 3, 31)
	if err != nil {
		t.Fatalf("NormalPopulation failed: %v", err)
	}

	for _, workers := range []int{2, 8} {
		cfg := SimulationConfig{
			SampleSize:  1_000,
			Repetitions: 400,
			Seed:        5,
			Workers:     workers,
		}

		result, err := Simulate(context.Background(), population, cfg)
		if err != nil {
			t.Fatalf("Simulate(workers=%d) failed: %v", workers, err)
		}

		if math.Abs(result.RelativeBias) > 2.0 {
			t.Errorf("workers=%d: relative bias %.4f%% exceeds 2%%", workers, result.RelativeBias)
		}
		t.Logf("workers=%d: bias=%+.4f%% in %v", workers, result.RelativeBias, result.Elapsed)
	}
}

// TestSimulate_MoreWorkersThanRepetitions verifies the pool clamps instead
// of spawning idle workers.
func TestSimulate_MoreWorkersThanRepetitions(t *testing.T) {
	population := []float64{2, 4, 6}

	result, err := Simulate(context.Background(), population, SimulationConfig{
		SampleSize:  2,
		Repetitions: 3,
		Seed:        1,
		Workers:     16,
	})
	if err != nil {
		t.Fatalf("Simulate failed: %v", err)
	}
	if result.Repetitions != 3 {
		t.Errorf("Expected 3 repetitions, got %d", result.Repetitions)
	}
}

// TestSimulate_InvalidArguments verifies every eager-validation path.
func TestSimulate_InvalidArguments(t *testing.T) {
	valid := []float64{1, 2, 3}

	cases := []struct {
		name       string
		population []float64
		cfg        SimulationConfig
	}{
		{"EmptyPopulation", nil, SimulationConfig{SampleSize: 1, Repetitions: 1}},
		{"ZeroSampleSize", valid, SimulationConfig{SampleSize: 0, Repetitions: 1}},
		{"ZeroRepetitions", valid, SimulationConfig{SampleSize: 1, Repetitions: 0}},
		{"NegativeRepetitions", valid, SimulationConfig{SampleSize: 1, Repetitions: -5}},
		{"ZeroMeanPopulation", []float64{-1, 1}, SimulationConfig{SampleSize: 1, Repetitions: 1}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Simulate(context.Background(), tc.population, tc.cfg)
			if !errors.Is(err, ErrInvalidArgument) {
				t.Errorf("Expected ErrInvalidArgument, got %v", err)
			}
		})
	}
}

// TestSimulate_Cancellation verifies an already-cancelled context stops the
// run before any meaningful work.
func TestSimulate_Cancellation(t *testing.T) {
	population, err := NormalPopulation(10_000, 1, 1, 2)
	if err != nil {
		t.Fatalf("NormalPopulation failed: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = Simulate(ctx, population, SimulationConfig{
		SampleSize:  10_000,
		Repetitions: 100_000,
		Seed:        1,
	})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Expected context.Canceled, got %v", err)
	}
}

func BenchmarkSimulate(b *testing.B) {
	population, err := NormalPopulation(100_000, 5, 1, 1)
	if err != nil {
		b.Fatalf("NormalPopulation failed: %v", err)
	}
	cfg := SimulationConfig{SampleSize: 10_000, Repetitions: 100, Seed: 1}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := Simulate(context.Background(), population, cfg); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkSimulateParallel(b *testing.B) {
	population, err := NormalPopulation(100_000, 5, 1, 1)
	if err != nil {
		b.Fatalf("NormalPopulation failed: %v", err)
	}
	cfg := SimulationConfig{SampleSize: 10_000, Repetitions: 100, Seed: 1, Workers: 8}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := Simulate(context.Background(), population, cfg); err != nil {
			b.Fatal(err)
		}
	}
}
