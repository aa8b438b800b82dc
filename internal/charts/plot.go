package charts

import (
	"fmt"
	"io"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"github.com/jonathan/ai-job-dashboard/internal/insights"
)

const (
	wideWidth    = 9 * vg.Inch
	wideHeight   = 5 * vg.Inch
	squareWidth  = 7 * vg.Inch
	squareHeight = 5 * vg.Inch
)

// plotChart draws a gonum plot onto a raster canvas owned by a single Render call.
type plotChart struct {
	name   string
	plot   *plot.Plot
	width  vg.Length
	height vg.Length
}

func (c *plotChart) Name() string { return c.name }

func (c *plotChart) Render(w io.Writer) error {
	canvas := vgimg.New(c.width, c.height)
	c.plot.Draw(draw.New(canvas))
	_, err := vgimg.PngCanvas{Canvas: canvas}.WriteTo(w)
	return err
}

func newPlot(title, xLabel, yLabel string) *plot.Plot {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = xLabel
	p.Y.Label.Text = yLabel
	return p
}

// Placeholder is an empty, titled chart used when there is nothing to plot.
func Placeholder(name, title, xLabel, yLabel string) Chart {
	p := newPlot(title, xLabel, yLabel)
	p.HideAxes()

	labels, err := plotter.NewLabels(plotter.XYLabels{
		XYs:    plotter.XYs{{X: 0, Y: 0}},
		Labels: []string{insights.NoData},
	})
	if err == nil {
		labels.TextStyle[0].XAlign = draw.XCenter
		labels.TextStyle[0].YAlign = draw.YCenter
		p.Add(labels)
	}

	return &plotChart{name: name, plot: p, width: wideWidth, height: wideHeight}
}

// TopIndustries draws a horizontal bar per industry, most frequent at the top.
func TopIndustries(counts []insights.Count) (Chart, error) {
	const (
		name   = "top_industries"
		title  = "Top 10 Industries Hiring AI Roles"
		xLabel = "Number of Jobs"
		yLabel = "Industry"
	)
	if len(counts) == 0 {
		return Placeholder(name, title, xLabel, yLabel), nil
	}

	// The y axis grows upward, so the most frequent industry goes last.
	values := make(plotter.Values, len(counts))
	names := make([]string, len(counts))
	for i, c := range counts {
		j := len(counts) - 1 - i
		values[j] = float64(c.Count)
		names[j] = c.Name
	}

	bars, err := plotter.NewBarChart(values, vg.Points(22))
	if err != nil {
		return nil, &RenderError{Chart: name, Message: "failed to build bars", Cause: err}
	}
	bars.Horizontal = true
	bars.Color = plotutil.Color(2)
	bars.LineStyle.Width = 0

	p := newPlot(title, xLabel, yLabel)
	p.Add(bars)
	p.NominalY(names...)
	p.X.Min = 0

	return &plotChart{name: name, plot: p, width: wideWidth, height: wideHeight}, nil
}

// EmploymentByExperience draws one group of bars per experience level with a
// bar per employment type.
func EmploymentByExperience(m insights.EmploymentMatrix) (Chart, error) {
	const (
		name   = "employment_by_experience"
		title  = "Employment Type Distribution by Experience Level"
		xLabel = "Experience Level"
		yLabel = "Job Count"
	)
	if m.Empty() {
		return Placeholder(name, title, xLabel, yLabel), nil
	}

	p := newPlot(title, xLabel, yLabel)
	p.Legend.Top = true
	p.Legend.Add("Employment Type")

	groupWidth := vg.Points(60)
	barWidth := groupWidth / vg.Length(len(m.Types))
	for ti, employment := range m.Types {
		values := make(plotter.Values, len(m.Levels))
		for li := range m.Levels {
			values[li] = float64(m.Counts[li][ti])
		}
		bars, err := plotter.NewBarChart(values, barWidth)
		if err != nil {
			return nil, &RenderError{Chart: name, Message: fmt.Sprintf("failed to build bars for %s", employment), Cause: err}
		}
		bars.Color = plotutil.Color(ti)
		bars.LineStyle.Width = 0
		bars.Offset = (vg.Length(ti) - vg.Length(len(m.Types)-1)/2) * barWidth

		p.Add(bars)
		p.Legend.Add(employment, bars)
	}
	p.NominalX(m.Levels...)
	p.Y.Min = 0

	return &plotChart{name: name, plot: p, width: squareWidth, height: squareHeight}, nil
}

// SalaryByExperience draws a box plot of average salary per experience level.
// Levels without salaries keep their slot on the axis but draw no box.
func SalaryByExperience(dists []insights.SalaryDistribution) (Chart, error) {
	const (
		name   = "salary_by_experience"
		title  = "Salary Distribution by Experience Level"
		xLabel = "Experience Level"
		yLabel = "Average Salary (USD)"
	)

	levels := make([]string, 0, len(dists))
	var boxes []plot.Plotter
	for i, d := range dists {
		levels = append(levels, d.Level)
		if len(d.Values) == 0 {
			continue
		}
		box, err := plotter.NewBoxPlot(vg.Points(40), float64(i), plotter.Values(d.Values))
		if err != nil {
			return nil, &RenderError{Chart: name, Message: fmt.Sprintf("failed to build box for %s", d.Level), Cause: err}
		}
		box.FillColor = plotutil.Color(i)
		boxes = append(boxes, box)
	}
	if len(boxes) == 0 {
		return Placeholder(name, title, xLabel, yLabel), nil
	}

	p := newPlot(title, xLabel, yLabel)
	p.Add(boxes...)
	p.NominalX(levels...)

	return &plotChart{name: name, plot: p, width: squareWidth, height: squareHeight}, nil
}
