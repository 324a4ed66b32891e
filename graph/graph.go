// Package graph renders summary series as PNG line charts.
package graph

import (
	"bytes"
	"fmt"
	"math"
	"os"

	"github.com/wcharczuk/go-chart/v2"

	"github.com/cwrussell/bioscreen"
	"github.com/cwrussell/bioscreen/summary"
)

// Options controls chart presentation.
type Options struct {
	Title  string
	XLabel string
	YLabel string

	Width  int
	Height int

	// Legend toggles the right-hand legend naming each series.
	Legend bool

	// DotWidth is the marker size drawn at each data point.
	DotWidth float64
}

// DefaultOptions mirror a growth-curve plot: time in hours against OD600.
func DefaultOptions() Options {
	return Options{
		XLabel:   "Time (h)",
		YLabel:   "OD600",
		Width:    800,
		Height:   600,
		Legend:   true,
		DotWidth: 3,
	}
}

// Render draws the series onto one chart and writes it as a PNG to path.
// Timepoints with NaN values are dropped from their series, since they
// cannot be drawn.
func Render(path string, series []summary.Series, opts Options) error {
	if len(series) == 0 {
		return fmt.Errorf("no series to graph")
	}

	colors := rainbow(len(series))

	chartSeries := make([]chart.Series, 0, len(series))
	for i, s := range series {
		x, y := dropNaN(s.X, s.Y)
		chartSeries = append(chartSeries, chart.ContinuousSeries{
			Name:    s.Label,
			XValues: x,
			YValues: y,
			Style: chart.Style{
				StrokeColor: colors[i],
				DotColor:    colors[i],
				DotWidth:    opts.DotWidth,
			},
		})
	}

	graph := chart.Chart{
		Title:  opts.Title,
		Width:  opts.Width,
		Height: opts.Height,
		XAxis:  chart.XAxis{Name: opts.XLabel},
		YAxis:  chart.YAxis{Name: opts.YLabel},
		Series: chartSeries,
	}

	if opts.Legend {
		graph.Elements = []chart.Renderable{chart.Legend(&graph)}
	}

	// Render to a byte buffer
	buffer := bytes.NewBuffer([]byte{})
	if err := graph.Render(chart.PNG, buffer); err != nil {
		return err
	}

	outFile, err := os.Create(bioscreen.ExpandHome(path))
	if err != nil {
		return err
	}
	if _, err := buffer.WriteTo(outFile); err != nil {
		return err
	}

	return outFile.Close()
}

// RenderGroups draws one chart per group in the table, written to
// "<base>.<group>.png".
func RenderGroups(base string, t *summary.Table, opts Options) error {
	for _, group := range t.Groups() {
		series := summary.Select(t, []string{group}, nil)

		groupOpts := opts
		if groupOpts.Title == "" {
			groupOpts.Title = group
		}

		if err := Render(base+"."+group+".png", series, groupOpts); err != nil {
			return fmt.Errorf("group %s: %w", group, err)
		}
	}

	return nil
}

// dropNaN returns the (x, y) pairs whose y value is drawable.
func dropNaN(x, y []float64) ([]float64, []float64) {
	outX := make([]float64, 0, len(x))
	outY := make([]float64, 0, len(y))

	for i := range y {
		if math.IsNaN(y[i]) || math.IsNaN(x[i]) {
			continue
		}
		outX = append(outX, x[i])
		outY = append(outY, y[i])
	}

	return outX, outY
}
