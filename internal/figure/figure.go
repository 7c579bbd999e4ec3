// Package figure renders summary-statistic charts to PNG files.
package figure

import (
	"fmt"
	"io"
	"os"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

var (
	seriesBlue  = drawing.ColorFromHex("4e79a7")
	seriesGreen = drawing.ColorFromHex("2e7d32")
	seriesRed   = drawing.ColorFromHex("e15759")
	refGray     = drawing.ColorFromHex("9e9e9e")
)

type pngChart interface {
	Render(chart.RendererProvider, io.Writer) error
}

func writeChart(path string, c pngChart) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := c.Render(chart.PNG, f); err != nil {
		f.Close()
		return fmt.Errorf("render %s: %w", path, err)
	}
	return f.Close()
}

func indexValues(n int) []float64 {
	xs := make([]float64, n)
	for i := range xs {
		xs[i] = float64(i)
	}
	return xs
}

// DensityChart plots the fraction of active cells per generation with a 0.5
// reference line.
func DensityChart(path string, density []float64) error {
	xs := indexValues(len(density))
	half := make([]float64, len(density))
	for i := range half {
		half[i] = 0.5
	}
	graph := chart.Chart{
		Title:  "Active-cell density per generation",
		Width:  900,
		Height: 320,
		XAxis:  chart.XAxis{Name: "Generation"},
		YAxis: chart.YAxis{
			Name:  "Fraction of 1s",
			Range: &chart.ContinuousRange{Min: 0, Max: 1},
		},
		Series: []chart.Series{
			chart.ContinuousSeries{
				Name:    "density",
				XValues: xs,
				YValues: density,
				Style:   chart.Style{StrokeColor: seriesBlue, StrokeWidth: 1.2},
			},
			chart.ContinuousSeries{
				Name:    "0.5",
				XValues: xs,
				YValues: half,
				Style: chart.Style{
					StrokeColor:     seriesRed,
					StrokeWidth:     1,
					StrokeDashArray: []float64{4, 4},
				},
			},
		},
	}
	return writeChart(path, graph)
}

// AutocorrelationChart plots the normalized spatial autocorrelation of a
// generation up to maxLag lags.
func AutocorrelationChart(path string, acorr []float64, maxLag int) error {
	if maxLag < 1 || maxLag > len(acorr) {
		maxLag = len(acorr)
	}
	xs := indexValues(maxLag)
	zero := make([]float64, maxLag)
	graph := chart.Chart{
		Title:  "Spatial autocorrelation (final generation)",
		Width:  700,
		Height: 320,
		XAxis:  chart.XAxis{Name: "Lag (cells)"},
		YAxis:  chart.YAxis{Name: "Normalized correlation"},
		Series: []chart.Series{
			chart.ContinuousSeries{
				Name:    "autocorrelation",
				XValues: xs,
				YValues: acorr[:maxLag],
				Style:   chart.Style{StrokeColor: seriesGreen, StrokeWidth: 1.2},
			},
			chart.ContinuousSeries{
				XValues: xs,
				YValues: zero,
				Style: chart.Style{
					StrokeColor:     refGray,
					StrokeWidth:     1,
					StrokeDashArray: []float64{4, 4},
				},
			},
		},
	}
	return writeChart(path, graph)
}

// PatternHistogram plots the occurrence counts of the eight 3-cell patterns.
// Patterns that map to an active output bit of the rule are highlighted.
func PatternHistogram(path string, counts [8]int, rule int) error {
	bars := make([]chart.Value, 0, len(counts))
	for pattern, count := range counts {
		fill := seriesBlue
		if rule>>pattern&1 == 1 {
			fill = seriesRed
		}
		bars = append(bars, chart.Value{
			Label: fmt.Sprintf("%03b", pattern),
			Value: float64(count),
			Style: chart.Style{FillColor: fill, StrokeColor: fill},
		})
	}
	graph := chart.BarChart{
		Title:    fmt.Sprintf("3-cell pattern frequency (rule %d, red = output 1)", rule),
		Width:    700,
		Height:   320,
		BarWidth: 48,
		Bars:     bars,
	}
	return writeChart(path, graph)
}
