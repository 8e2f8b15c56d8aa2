package resample

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument reports arguments a sampling or simulation operation
// cannot work with: an empty population, a non-positive sample size or
// repetition count, or a zero population mean. Match with errors.Is.
var ErrInvalidArgument = errors.New("invalid argument")

// SampleWithReplacement draws n elements from population, each chosen
// independently and uniformly at random over the population's indices.
// Indices may repeat; the output order is the draw order.
//
// The returned slice is freshly allocated and owned by the caller. The only
// side effect is advancing r.
func SampleWithReplacement(population []float64, n int, r *Rand) ([]float64, error) {
	if len(population) == 0 {
		return nil, fmt.Errorf("%w: empty population", ErrInvalidArgument)
	}
	if n < 1 {
		return nil, fmt.Errorf("%w: sample size %d, want >= 1", ErrInvalidArgument, n)
	}

	sample := make([]float64, n)
	sampleInto(sample, population, r)
	return sample, nil
}

// IndicesWithReplacement draws n uniform indices in [0, populationSize), with
// replacement. It is the index-level primitive behind SampleWithReplacement,
// exported for callers that gather from structures other than a []float64.
func IndicesWithReplacement(populationSize, n int, r *Rand) ([]int, error) {
	if populationSize < 1 {
		return nil, fmt.Errorf("%w: population size %d, want >= 1", ErrInvalidArgument, populationSize)
	}
	if n < 1 {
		return nil, fmt.Errorf("%w: sample size %d, want >= 1", ErrInvalidArgument, n)
	}

	indices := make([]int, n)
	last := uint64(populationSize - 1)
	for i := range indices {
		indices[i] = int(r.Uint64Inclusive(last))
	}
	return indices, nil
}

// sampleInto fills dst with uniform with-replacement draws from population.
// The simulation driver reuses one buffer across repetitions instead of
// allocating len(dst) floats R times.
//
// Preconditions (checked by callers): population non-empty, len(dst) >= 1.
func sampleInto(dst, population []float64, r *Rand) {
	last := uint64(len(population) - 1)
	for i := range dst {
		dst[i] = population[r.Uint64Inclusive(last)]
	}
}
