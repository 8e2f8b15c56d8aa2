package resample

import (
	"errors"
	"math"
	"testing"
)

// TestHansenHurwitz_KnownMeans checks the estimator against hand-computable
// samples.
func TestHansenHurwitz_KnownMeans(t *testing.T) {
	cases := []struct {
		name   string
		sample []float64
		want   float64
	}{
		{"SingleElement", []float64{4.5}, 4.5},
		{"SmallSample", []float64{1, 2, 3, 4}, 2.5},
		{"Negatives", []float64{-2, 2, -4, 4}, 0},
		{"Duplicates", []float64{7, 7, 7, 7, 7}, 7},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := HansenHurwitz(tc.sample)
			if err != nil {
				t.Fatalf("HansenHurwitz failed: %v", err)
			}
			if got != tc.want {
				t.Errorf("Expected %v, got %v", tc.want, got)
			}
		})
	}
}

// TestHansenHurwitz_EmptySample verifies eager validation.
func TestHansenHurwitz_EmptySample(t *testing.T) {
	_, err := HansenHurwitz(nil)
	if !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("Expected ErrInvalidArgument, got %v", err)
	}
}

// TestHansenHurwitz_NaNPassesThrough verifies non-finite values are not
// special-cased: a NaN in the sample yields a NaN estimate.
func TestHansenHurwitz_NaNPassesThrough(t *testing.T) {
	got, err := HansenHurwitz([]float64{1, math.NaN(), 3})
	if err != nil {
		t.Fatalf("HansenHurwitz failed: %v", err)
	}
	if !math.IsNaN(got) {
		t.Errorf("Expected NaN estimate, got %v", got)
	}
}
