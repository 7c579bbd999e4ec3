package stats

import (
	"math"
	"testing"

	"wolfram-ca/internal/ca"
)

func trajectoryFromRow(t *testing.T, row []uint8, rule, steps int) *ca.Trajectory {
	t.Helper()
	traj, err := ca.SimulateFrom(ca.Config{Rule: rule, Cells: len(row), Steps: steps}, row)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return traj
}

func TestEntropyAllZeroTrajectory(t *testing.T) {
	traj := trajectoryFromRow(t, make([]uint8, 16), 0, 10)
	if e := Entropy(traj); e != 0 {
		t.Fatalf("entropy of all-zero trajectory: got %v, want 0", e)
	}
}

func TestEntropyBounded(t *testing.T) {
	traj, err := ca.Simulate(ca.Config{Rule: 30, Cells: 101, Steps: 80, Mode: ca.SeedCenter})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	e := Entropy(traj)
	if e < 0 || e > 3 {
		t.Fatalf("entropy %v outside [0,3]", e)
	}
	if e == 0 {
		t.Fatal("rule 30 from a center seed should produce more than one pattern")
	}
}

func TestEntropyEquidistributedPatterns(t *testing.T) {
	// The row 0011 visits four distinct patterns exactly once each, so the
	// distribution is uniform over four outcomes: exactly 2 bits.
	traj := trajectoryFromRow(t, []uint8{0, 0, 1, 1}, 0, 1)
	if e := Entropy(traj); math.Abs(e-2) > 1e-12 {
		t.Fatalf("entropy: got %v, want 2", e)
	}
}

func TestPatternCountsTotal(t *testing.T) {
	traj, err := ca.Simulate(ca.Config{Rule: 110, Cells: 32, Steps: 12, Mode: ca.SeedCenter})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	counts := PatternCounts(traj)
	total := 0
	for _, c := range counts {
		total += c
	}
	if total != traj.Cells*traj.Steps {
		t.Fatalf("pattern count total %d, want %d", total, traj.Cells*traj.Steps)
	}
}

func TestDensityExtremes(t *testing.T) {
	zeros := trajectoryFromRow(t, make([]uint8, 12), 0, 5)
	for step, d := range Density(zeros) {
		if d != 0 {
			t.Fatalf("all-zero generation %d: density %v, want 0", step, d)
		}
	}

	onesRow := make([]uint8, 12)
	for i := range onesRow {
		onesRow[i] = 1
	}
	ones := trajectoryFromRow(t, onesRow, 255, 5)
	for step, d := range Density(ones) {
		if d != 1 {
			t.Fatalf("all-one generation %d: density %v, want 1", step, d)
		}
	}
}

func TestDensityRange(t *testing.T) {
	traj, err := ca.Simulate(ca.Config{Rule: 30, Cells: 64, Steps: 40, Mode: ca.SeedRandom, Seed: ca.DefaultSeed})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	density := Density(traj)
	if len(density) != traj.Steps {
		t.Fatalf("density length %d, want %d", len(density), traj.Steps)
	}
	for step, d := range density {
		if d < 0 || d > 1 {
			t.Fatalf("generation %d: density %v outside [0,1]", step, d)
		}
	}
}

func TestAutocorrelationConstantRow(t *testing.T) {
	for _, value := range []float64{0, 1} {
		row := make([]float64, 9)
		for i := range row {
			row[i] = value
		}
		acorr := Autocorrelation(row)
		if len(acorr) != len(row) {
			t.Fatalf("length %d, want %d", len(acorr), len(row))
		}
		for lag, v := range acorr {
			if v != 0 {
				t.Fatalf("constant row value %v lag %d: got %v, want 0", value, lag, v)
			}
			if math.IsNaN(v) {
				t.Fatalf("constant row value %v lag %d: NaN", value, lag)
			}
		}
	}
}

func TestAutocorrelationAlternatingRow(t *testing.T) {
	// Centered, the row 1010 becomes ±0.5; the linear autocorrelation over
	// non-negative lags is 1, -0.75, 0.5, -0.25 after normalization.
	acorr := Autocorrelation([]float64{1, 0, 1, 0})
	want := []float64{1, -0.75, 0.5, -0.25}
	if len(acorr) != len(want) {
		t.Fatalf("length %d, want %d", len(acorr), len(want))
	}
	for lag := range want {
		if math.Abs(acorr[lag]-want[lag]) > 1e-9 {
			t.Fatalf("lag %d: got %v, want %v", lag, acorr[lag], want[lag])
		}
	}
}

func TestAutocorrelationLagZero(t *testing.T) {
	traj, err := ca.Simulate(ca.Config{Rule: 30, Cells: 100, Steps: 60, Mode: ca.SeedCenter})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	acorr := Autocorrelation(BinaryRow(traj.Last()))
	if len(acorr) != traj.Cells {
		t.Fatalf("length %d, want %d", len(acorr), traj.Cells)
	}
	if math.Abs(acorr[0]-1) > 1e-9 {
		t.Fatalf("lag 0: got %v, want 1", acorr[0])
	}
	for lag, v := range acorr {
		if math.Abs(v) > 1+1e-9 {
			t.Fatalf("lag %d: |%v| exceeds 1", lag, v)
		}
	}
}

func TestRunLengths(t *testing.T) {
	runs := RunLengths([]uint8{0, 0, 1, 1, 1, 0})
	want := []int{2, 3, 1}
	if len(runs) != len(want) {
		t.Fatalf("got %v, want %v", runs, want)
	}
	for i := range want {
		if runs[i] != want[i] {
			t.Fatalf("run %d: got %d, want %d", i, runs[i], want[i])
		}
	}

	if mean := MeanRunLength([]uint8{0, 0, 1, 1, 1, 0}); math.Abs(mean-2) > 1e-12 {
		t.Fatalf("mean run length: got %v, want 2", mean)
	}
	if RunLengths(nil) != nil {
		t.Fatal("empty sequence should produce no runs")
	}
}
