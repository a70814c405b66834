// Package render draws the degree-distribution histogram and the
// shortest-path network diagram as PNG files.
package render

import (
	"fmt"
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/jswiatek/socialgraph/pkg/analysis"
)

var (
	histFill    = color.RGBA{R: 135, G: 206, B: 235, A: 255} // sky blue
	meanColor   = color.RGBA{R: 220, G: 30, B: 30, A: 255}
	medianColor = color.RGBA{R: 30, G: 140, B: 30, A: 255}
)

// HistogramOptions fixes the display window of the degree histogram.
type HistogramOptions struct {
	Bins     int // number of equal-width bins across [0, RangeMax]
	RangeMax int // upper bound of the displayed degree range
}

// Histogram renders the degree distribution of stats into a PNG at outPath.
// The plot spans a fixed range with dashed marker lines at the mean and
// median; degrees beyond the range are left out of the bins, and whenever the
// maximum degree may exceed the range an on-chart annotation discloses the
// true maximum.
func Histogram(stats *analysis.DegreeStats, opts HistogramOptions, outPath string) error {
	if opts.Bins <= 0 || opts.RangeMax <= 0 {
		return fmt.Errorf("render: invalid histogram options: bins=%d range=%d", opts.Bins, opts.RangeMax)
	}

	counts := binDegrees(stats.Degrees, opts.Bins, opts.RangeMax)
	maxCount := 0.0
	for _, c := range counts {
		if c > maxCount {
			maxCount = c
		}
	}
	if maxCount == 0 {
		maxCount = 1
	}

	binWidth := float64(opts.RangeMax) / float64(opts.Bins)
	bins := make([]plotter.HistogramBin, opts.Bins)
	for i, c := range counts {
		bins[i] = plotter.HistogramBin{
			Min:    float64(i) * binWidth,
			Max:    float64(i+1) * binWidth,
			Weight: c,
		}
	}

	p := plot.New()
	p.Title.Text = fmt.Sprintf("Degree distribution (showing 0-%d)", opts.RangeMax)
	p.X.Label.Text = "Degree"
	p.Y.Label.Text = "Nodes"
	p.X.Min, p.X.Max = 0, float64(opts.RangeMax)
	p.Y.Min = 0

	grid := plotter.NewGrid()
	grid.Vertical.Color = nil
	p.Add(grid)

	hist := &plotter.Histogram{
		Bins:      bins,
		Width:     binWidth,
		FillColor: histFill,
		LineStyle: draw.LineStyle{Color: color.Black, Width: vg.Points(0.5)},
	}
	p.Add(hist)

	meanLine, err := markerLine(stats.Mean, maxCount, meanColor)
	if err != nil {
		return fmt.Errorf("render: mean marker: %w", err)
	}
	p.Add(meanLine)
	p.Legend.Add(fmt.Sprintf("Mean: %.1f", stats.Mean), meanLine)

	medianLine, err := markerLine(stats.Median, maxCount, medianColor)
	if err != nil {
		return fmt.Errorf("render: median marker: %w", err)
	}
	p.Add(medianLine)
	p.Legend.Add(fmt.Sprintf("Median: %g", stats.Median), medianLine)
	p.Legend.Top = true

	if stats.Max > opts.RangeMax {
		note, err := plotter.NewLabels(plotter.XYLabels{
			XYs:    plotter.XYs{{X: 0.7 * float64(opts.RangeMax), Y: 0.85 * maxCount}},
			Labels: []string{fmt.Sprintf("display truncated, max degree: %d", stats.Max)},
		})
		if err != nil {
			return fmt.Errorf("render: truncation note: %w", err)
		}
		p.Add(note)
	}

	if err := p.Save(10*vg.Inch, 6*vg.Inch, outPath); err != nil {
		return fmt.Errorf("render: save histogram: %w", err)
	}
	return nil
}

// binDegrees counts degrees into equal-width bins spanning [0, rangeMax].
// A degree equal to rangeMax lands in the last bin; larger degrees are
// excluded from the display entirely.
func binDegrees(degrees []int, bins, rangeMax int) []float64 {
	counts := make([]float64, bins)
	width := float64(rangeMax) / float64(bins)
	for _, d := range degrees {
		if d < 0 || d > rangeMax {
			continue
		}
		idx := int(float64(d) / width)
		if idx >= bins {
			idx = bins - 1
		}
		counts[idx]++
	}
	return counts
}

// markerLine builds a dashed vertical line at x spanning the histogram
// height, used as a mean/median marker.
func markerLine(x, height float64, c color.Color) (*plotter.Line, error) {
	line, err := plotter.NewLine(plotter.XYs{{X: x, Y: 0}, {X: x, Y: height}})
	if err != nil {
		return nil, err
	}
	line.LineStyle = draw.LineStyle{
		Color:  c,
		Width:  vg.Points(2),
		Dashes: []vg.Length{vg.Points(6), vg.Points(4)},
	}
	return line, nil
}
