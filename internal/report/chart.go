package report

import (
	"fmt"
	"image/color"
	"io"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/Simplici0/ammonia-co2/internal/emissions"
)

// Scenario labels on the comparison chart.
const (
	BlendLabel    = "NH3 + MGO"
	BaselineLabel = "HFO baseline"
)

// Chart dimensions.
const (
	chartWidth    = 6 * vg.Inch
	chartHeight   = 4 * vg.Inch
	chartBarWidth = 60
)

var barColor = color.RGBA{R: 0x1f, G: 0x77, B: 0xb4, A: 0xff}

// Bar is one scenario on the comparison chart.
type Bar struct {
	Label string
	Value float64
}

// Comparison returns the blend and baseline totals as chart bars.
func Comparison(result emissions.Result) []Bar {
	blend, baseline := result.Totals()
	return []Bar{
		{Label: BlendLabel, Value: blend},
		{Label: BaselineLabel, Value: baseline},
	}
}

// WriteChartSVG renders the two-bar comparison chart as SVG.
func WriteChartSVG(w io.Writer, result emissions.Result) error {
	p, err := comparisonPlot(result)
	if err != nil {
		return err
	}

	wt, err := p.WriterTo(chartWidth, chartHeight, "svg")
	if err != nil {
		return fmt.Errorf("create svg writer: %w", err)
	}
	if _, err := wt.WriteTo(w); err != nil {
		return fmt.Errorf("write svg chart: %w", err)
	}
	return nil
}

func comparisonPlot(result emissions.Result) (*plot.Plot, error) {
	bars := Comparison(result)

	p := plot.New()
	p.Title.Text = "CO2 Emissions Comparison"
	p.Y.Label.Text = "Total CO2 (t/year)"

	values := make(plotter.Values, 0, len(bars))
	labels := make([]string, 0, len(bars))
	for _, b := range bars {
		values = append(values, b.Value)
		labels = append(labels, b.Label)
	}

	chart, err := plotter.NewBarChart(values, vg.Points(chartBarWidth))
	if err != nil {
		return nil, fmt.Errorf("create bar chart: %w", err)
	}
	chart.LineStyle.Width = vg.Length(0)
	chart.Color = barColor

	p.Add(chart)
	p.NominalX(labels...)

	return p, nil
}
