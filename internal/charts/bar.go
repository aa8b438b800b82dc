package charts

import (
	"io"
	"strconv"

	chart "github.com/wcharczuk/go-chart/v2"

	"github.com/jonathan/ai-job-dashboard/internal/insights"
)

const (
	barChartWidth  = 900
	barChartHeight = 500

	// barChartBottom leaves room for two lines of wrapped skill names plus
	// the x axis title under them.
	barChartBottom = 80
	barAxisFont    = 12.0
	maxYTicks      = 6
)

// goChart renders a go-chart bar chart; the renderer is created per Render.
type goChart struct {
	name  string
	chart chart.BarChart
}

func (c *goChart) Name() string { return c.name }

func (c *goChart) Render(w io.Writer) error {
	return c.chart.Render(chart.PNG, w)
}

// TopSkills draws a vertical bar per skill in the given order.
func TopSkills(counts []insights.Count) Chart {
	const (
		name   = "top_skills"
		title  = "Top 10 Most Demanded Skills"
		xLabel = "Skill"
		yLabel = "Number of Job Listings"
	)
	if len(counts) == 0 {
		return Placeholder(name, title, xLabel, yLabel)
	}

	bars := make([]chart.Value, 0, len(counts))
	maxCount := 1
	for i, c := range counts {
		bars = append(bars, chart.Value{
			Label: c.Name,
			Value: float64(c.Count),
			Style: chart.Style{
				FillColor:   chart.GetDefaultColor(i),
				StrokeColor: chart.GetDefaultColor(i),
				StrokeWidth: 1,
			},
		})
		maxCount = max(maxCount, c.Count)
	}

	ticks := countTicks(maxCount)
	return &goChart{
		name: name,
		chart: chart.BarChart{
			Title:      title,
			Width:      barChartWidth,
			Height:     barChartHeight,
			BarWidth:   60,
			BarSpacing: 20,
			Background: chart.Style{
				Padding: chart.Box{Top: 40, Left: 10, Right: 10, Bottom: barChartBottom},
			},
			YAxis: chart.YAxis{
				Name:  yLabel,
				Range: &chart.ContinuousRange{Min: 0, Max: ticks[len(ticks)-1].Value},
				Ticks: ticks,
			},
			Bars:     bars,
			Elements: []chart.Renderable{xAxisTitle(xLabel)},
		},
	}
}

// xAxisTitle draws label centered under the bar labels. BarChart has no
// x axis name of its own.
func xAxisTitle(label string) chart.Renderable {
	return func(r chart.Renderer, canvasBox chart.Box, defaults chart.Style) {
		style := chart.Style{
			Font:      defaults.Font,
			FontSize:  barAxisFont,
			FontColor: chart.DefaultTextColor,
		}
		box := chart.Draw.MeasureText(r, label, style)
		cx, _ := canvasBox.Center()
		chart.Draw.Text(r, label, cx-box.Width()/2, barChartHeight-12, style)
	}
}

// countTicks returns whole-number y ticks from zero up to the first step
// at or above maxCount.
func countTicks(maxCount int) []chart.Tick {
	step := niceStep(maxCount)
	n := (maxCount + step - 1) / step
	ticks := make([]chart.Tick, 0, n+1)
	for i := 0; i <= n; i++ {
		v := i * step
		ticks = append(ticks, chart.Tick{Value: float64(v), Label: strconv.Itoa(v)})
	}
	return ticks
}

// niceStep picks 1, 2 or 5 times a power of ten so at most maxYTicks
// intervals cover maxCount.
func niceStep(maxCount int) int {
	for base := 1; ; base *= 10 {
		for _, m := range []int{1, 2, 5} {
			if step := base * m; (maxCount+step-1)/step <= maxYTicks {
				return step
			}
		}
	}
}
