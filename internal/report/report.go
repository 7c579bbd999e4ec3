// Package report prints run summaries to a terminal.
package report

import (
	"fmt"
	"io"

	"github.com/dustin/go-humanize"
	"github.com/guptarohit/asciigraph"

	"wolfram-ca/internal/ca"
	"wolfram-ca/internal/stats"
)

// Metrics bundles the summary statistics reported for a single run.
type Metrics struct {
	Rule          int
	Cells         int
	Steps         int
	Entropy       float64
	MeanDensity   float64
	CenterBalance float64
	MeanRun       float64
}

// Collect computes the metrics block for a finished trajectory.
func Collect(t *ca.Trajectory, rule int) Metrics {
	density := stats.Density(t)
	mean := 0.0
	for _, d := range density {
		mean += d
	}
	mean /= float64(len(density))

	col := t.Column(t.Cells / 2)
	return Metrics{
		Rule:          rule,
		Cells:         t.Cells,
		Steps:         t.Steps,
		Entropy:       stats.Entropy(t),
		MeanDensity:   mean,
		CenterBalance: stats.RowDensity(col),
		MeanRun:       stats.MeanRunLength(col),
	}
}

// Write prints the metrics block, followed by a terminal plot of the density
// series when one is provided.
func Write(w io.Writer, m Metrics, density []float64) {
	fmt.Fprintf(w, "── Rule %d metrics ──────────────────────────────────\n", m.Rule)
	fmt.Fprintf(w, "  Shannon entropy (3-cell patterns): %.4f bits (max 3.0000)\n", m.Entropy)
	fmt.Fprintf(w, "  Mean active-cell density:          %.4f\n", m.MeanDensity)
	fmt.Fprintf(w, "  Center-column fraction of 1s:      %.4f (ideal 0.5)\n", m.CenterBalance)
	fmt.Fprintf(w, "  Mean run length (center column):   %.3f\n", m.MeanRun)
	fmt.Fprintf(w, "  Generations simulated:             %s\n", humanize.Comma(int64(m.Steps)))
	fmt.Fprintf(w, "  Cells simulated:                   %s\n", humanize.Comma(int64(m.Steps)*int64(m.Cells)))
	if len(density) > 1 {
		fmt.Fprintln(w, asciigraph.Plot(density,
			asciigraph.Height(8),
			asciigraph.Width(60),
			asciigraph.Caption("density per generation")))
	}
}
