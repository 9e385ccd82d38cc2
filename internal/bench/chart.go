package bench

import (
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// RenderChart writes a bar chart of mean durations per method. The image
// format follows the path extension (.png, .svg, .pdf).
func RenderChart(summaries []Summary, path string) error {
	if len(summaries) == 0 {
		return fmt.Errorf("bench: no summaries to chart")
	}

	p := plot.New()
	p.Title.Text = "DNA File Comparison Benchmark"
	p.Y.Label.Text = "Mean Time (seconds)"

	values := make(plotter.Values, len(summaries))
	names := make([]string, len(summaries))
	for i, s := range summaries {
		values[i] = s.Mean.Seconds()
		names[i] = s.Method
	}

	bars, err := plotter.NewBarChart(values, vg.Points(40))
	if err != nil {
		return fmt.Errorf("bench: bar chart: %w", err)
	}
	p.Add(bars)
	p.NominalX(names...)

	if err := p.Save(6*vg.Inch, 4*vg.Inch, path); err != nil {
		return fmt.Errorf("bench: save chart %s: %w", path, err)
	}
	return nil
}
