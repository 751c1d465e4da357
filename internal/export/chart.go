package export

import (
	"fmt"
	"io"
	"os"

	"github.com/wcharczuk/go-chart/v2"

	"wilson-ca/internal/sims/wilsoncowan"
)

// ChartOptions controls the activity chart.
type ChartOptions struct {
	Title  string
	Width  int
	Height int
}

// DefaultChartOptions returns a wide, short chart.
func DefaultChartOptions() ChartOptions {
	return ChartOptions{Title: "Population activity", Width: 900, Height: 300}
}

// WriteChart renders the percentage of firing cells per step as a PNG line
// chart.
func WriteChart(w io.Writer, h *wilsoncowan.History, opt ChartOptions) error {
	if h.Len() < 2 {
		return fmt.Errorf("chart: need at least two steps, have %d", h.Len())
	}
	if opt.Width <= 0 || opt.Height <= 0 {
		def := DefaultChartOptions()
		opt.Width, opt.Height = def.Width, def.Height
	}

	series := h.ActivitySeries()
	xs := make([]float64, len(series))
	ys := make([]float64, len(series))
	yMax := 1.0
	for t, v := range series {
		xs[t] = float64(t)
		ys[t] = v * 100
		if ys[t] > yMax {
			yMax = ys[t]
		}
	}

	graph := chart.Chart{
		Title:  opt.Title,
		Width:  opt.Width,
		Height: opt.Height,
		XAxis: chart.XAxis{
			Name:  "Time step",
			Range: &chart.ContinuousRange{Min: 0, Max: float64(len(series) - 1)},
			ValueFormatter: func(v interface{}) string {
				return fmt.Sprintf("%d", int(v.(float64)))
			},
		},
		YAxis: chart.YAxis{
			Name:  "Active (%)",
			Range: &chart.ContinuousRange{Min: 0, Max: yMax},
		},
		Series: []chart.Series{
			chart.ContinuousSeries{
				Name:    "Active cells",
				XValues: xs,
				YValues: ys,
				Style: chart.Style{
					StrokeColor: chart.ColorBlue,
					StrokeWidth: 2,
				},
			},
		},
	}
	if err := graph.Render(chart.PNG, w); err != nil {
		return fmt.Errorf("chart: %w", err)
	}
	return nil
}

// WriteChartFile writes the chart to path.
func WriteChartFile(path string, h *wilsoncowan.History, opt ChartOptions) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := WriteChart(f, h, opt); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
