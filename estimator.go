package resample

import (
	"fmt"

	"gonum.org/v1/gonum/stat"
)

// HansenHurwitz returns the Hansen-Hurwitz point estimate of the population
// mean computed from a with-replacement, equal-probability sample.
//
// The general estimator is (1/n) Σ y_i/(N·p_i); with p_i = 1/N it collapses
// to the arithmetic mean of the sample, which is unbiased for the population
// mean. Duplicate and non-finite sample values pass through unchanged: a NaN
// anywhere in the sample yields a NaN estimate, exactly as the arithmetic
// would without this function in the way.
func HansenHurwitz(sample []float64) (float64, error) {
	if len(sample) == 0 {
		return 0, fmt.Errorf("%w: empty sample", ErrInvalidArgument)
	}
	return stat.Mean(sample, nil), nil
}
