// Package stats computes statistical descriptors of space-time trajectories:
// local-pattern entropy, density evolution and spatial autocorrelation.
package stats

import (
	"math"

	"gonum.org/v1/gonum/dsp/fourier"

	"wolfram-ca/internal/ca"
)

// PatternCounts tallies how often each of the eight periodic 3-cell patterns
// occurs across the whole trajectory. Index = left·4 + center·2 + right.
func PatternCounts(t *ca.Trajectory) [8]int {
	var counts [8]int
	for step := 0; step < t.Steps; step++ {
		row := t.Row(step)
		for i := range row {
			counts[ca.Neighborhood(row, i)]++
		}
	}
	return counts
}

// Entropy returns the Shannon entropy, in bits, of the 3-cell pattern
// distribution over the whole trajectory. Zero when a single pattern ever
// occurs, at most 3 bits when all eight occur equally often.
func Entropy(t *ca.Trajectory) float64 {
	counts := PatternCounts(t)
	total := 0
	for _, c := range counts {
		total += c
	}
	if total == 0 {
		return 0
	}
	entropy := 0.0
	for _, c := range counts {
		if c == 0 {
			continue
		}
		p := float64(c) / float64(total)
		entropy -= p * math.Log2(p)
	}
	return entropy
}

// RowDensity returns the fraction of active cells in a single generation.
func RowDensity(row []uint8) float64 {
	if len(row) == 0 {
		return 0
	}
	active := 0
	for _, c := range row {
		active += int(c)
	}
	return float64(active) / float64(len(row))
}

// Density returns the fraction of active cells for every generation, oldest
// first. Each value lies in [0,1].
func Density(t *ca.Trajectory) []float64 {
	out := make([]float64, t.Steps)
	for step := 0; step < t.Steps; step++ {
		out[step] = RowDensity(t.Row(step))
	}
	return out
}

// BinaryRow converts a 0/1 generation into floats for Autocorrelation.
func BinaryRow(row []uint8) []float64 {
	out := make([]float64, len(row))
	for i, c := range row {
		out[i] = float64(c)
	}
	return out
}

// Autocorrelation returns the normalized spatial autocorrelation of a row for
// lags 0..len(row)-1. The row is mean-centered, correlated with itself over
// all linear lags, and scaled so lag 0 equals 1. A constant row has a lag-0
// value of exactly zero; in that case the unnormalized all-zero vector is
// returned rather than dividing by zero.
func Autocorrelation(row []float64) []float64 {
	n := len(row)
	if n == 0 {
		return nil
	}
	mean := 0.0
	for _, v := range row {
		mean += v
	}
	mean /= float64(n)

	centered := make([]float64, n)
	lag0 := 0.0
	for i, v := range row {
		c := v - mean
		centered[i] = c
		lag0 += c * c
	}
	if lag0 == 0 {
		return make([]float64, n)
	}

	// Zero-pad to at least 2n-1 so the circular correlation computed by the
	// FFT equals the linear one on the lags we keep.
	m := nextPow2(2*n - 1)
	padded := make([]float64, m)
	copy(padded, centered)

	fft := fourier.NewFFT(m)
	coeff := fft.Coefficients(nil, padded)
	for i, c := range coeff {
		coeff[i] = complex(real(c)*real(c)+imag(c)*imag(c), 0)
	}
	corr := fft.Sequence(nil, coeff)

	out := make([]float64, n)
	for lag := 0; lag < n; lag++ {
		out[lag] = corr[lag] / corr[0]
	}
	return out
}

// RunLengths collapses a 0/1 sequence into the lengths of its constant runs.
func RunLengths(seq []uint8) []int {
	if len(seq) == 0 {
		return nil
	}
	var runs []int
	length := 1
	for i := 1; i < len(seq); i++ {
		if seq[i] == seq[i-1] {
			length++
			continue
		}
		runs = append(runs, length)
		length = 1
	}
	return append(runs, length)
}

// MeanRunLength averages the run lengths of a 0/1 sequence.
func MeanRunLength(seq []uint8) float64 {
	runs := RunLengths(seq)
	if len(runs) == 0 {
		return 0
	}
	total := 0
	for _, r := range runs {
		total += r
	}
	return float64(total) / float64(len(runs))
}

func nextPow2(n int) int {
	m := 1
	for m < n {
		m <<= 1
	}
	return m
}
