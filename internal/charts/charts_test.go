package charts

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"image/png"
	"io"
	"strconv"
	"testing"

	"github.com/jonathan/ai-job-dashboard/internal/insights"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// decodePNG asserts that encoded is base64 PNG data and returns its size.
func decodePNG(t *testing.T, encoded string) (int, int) {
	t.Helper()
	raw, err := base64.StdEncoding.DecodeString(encoded)
	require.NoError(t, err)
	require.True(t, bytes.HasPrefix(raw, []byte("\x89PNG\r\n\x1a\n")), "missing PNG signature")
	cfg, err := png.DecodeConfig(bytes.NewReader(raw))
	require.NoError(t, err)
	return cfg.Width, cfg.Height
}

func TestTopIndustries(t *testing.T) {
	c, err := TopIndustries([]insights.Count{
		{Name: "Tech", Count: 12},
		{Name: "Finance", Count: 7},
		{Name: "Healthcare", Count: 3},
	})
	require.NoError(t, err)
	assert.Equal(t, "top_industries", c.Name())

	encoded, err := Encode(context.Background(), c)
	require.NoError(t, err)
	w, h := decodePNG(t, encoded)
	assert.Greater(t, w, h)
}

func TestTopIndustries_Empty(t *testing.T) {
	c, err := TopIndustries(nil)
	require.NoError(t, err)

	encoded, err := Encode(context.Background(), c)
	require.NoError(t, err)
	decodePNG(t, encoded)
}

func TestTopSkills(t *testing.T) {
	c := TopSkills([]insights.Count{
		{Name: "Python", Count: 9},
		{Name: "SQL", Count: 4},
	})
	assert.Equal(t, "top_skills", c.Name())

	encoded, err := Encode(context.Background(), c)
	require.NoError(t, err)
	w, h := decodePNG(t, encoded)
	assert.Equal(t, barChartWidth, w)
	assert.Equal(t, barChartHeight, h)
}

func TestTopSkills_Axes(t *testing.T) {
	c := TopSkills([]insights.Count{
		{Name: "TensorFlow", Count: 14},
		{Name: "Computer Vision", Count: 9},
		{Name: "MLflow", Count: 2},
	})
	gc, ok := c.(*goChart)
	require.True(t, ok)

	assert.Equal(t, "Number of Job Listings", gc.chart.YAxis.Name)
	assert.GreaterOrEqual(t, gc.chart.Background.Padding.Bottom, barChartBottom)
	require.Len(t, gc.chart.Elements, 1)

	ticks := gc.chart.YAxis.Ticks
	require.NotEmpty(t, ticks)
	for _, tick := range ticks {
		assert.Equal(t, strconv.Itoa(int(tick.Value)), tick.Label)
	}
	assert.GreaterOrEqual(t, ticks[len(ticks)-1].Value, 14.0)
	assert.Equal(t, ticks[len(ticks)-1].Value, gc.chart.YAxis.Range.GetMax())

	// the x axis title is drawn on top of the bare chart
	withTitle, err := Encode(context.Background(), gc)
	require.NoError(t, err)
	bare := *gc
	bare.chart.Elements = nil
	withoutTitle, err := Encode(context.Background(), &bare)
	require.NoError(t, err)
	assert.NotEqual(t, withTitle, withoutTitle)
}

func TestCountTicks(t *testing.T) {
	tests := []struct {
		max    int
		labels []string
	}{
		{max: 1, labels: []string{"0", "1"}},
		{max: 5, labels: []string{"0", "1", "2", "3", "4", "5"}},
		{max: 7, labels: []string{"0", "2", "4", "6", "8"}},
		{max: 14, labels: []string{"0", "5", "10", "15"}},
		{max: 230, labels: []string{"0", "50", "100", "150", "200", "250"}},
	}

	for _, tt := range tests {
		t.Run(strconv.Itoa(tt.max), func(t *testing.T) {
			var labels []string
			for _, tick := range countTicks(tt.max) {
				labels = append(labels, tick.Label)
			}
			assert.Equal(t, tt.labels, labels)
		})
	}
}

func TestTopSkills_Empty(t *testing.T) {
	encoded, err := Encode(context.Background(), TopSkills(nil))
	require.NoError(t, err)
	decodePNG(t, encoded)
}

func TestEmploymentByExperience(t *testing.T) {
	c, err := EmploymentByExperience(insights.EmploymentMatrix{
		Levels: []string{"Senior", "Entry"},
		Types:  []string{"Full-time", "Contract"},
		Counts: [][]int{{3, 1}, {0, 2}},
	})
	require.NoError(t, err)

	encoded, err := Encode(context.Background(), c)
	require.NoError(t, err)
	decodePNG(t, encoded)
}

func TestEmploymentByExperience_Empty(t *testing.T) {
	c, err := EmploymentByExperience(insights.EmploymentMatrix{})
	require.NoError(t, err)

	encoded, err := Encode(context.Background(), c)
	require.NoError(t, err)
	decodePNG(t, encoded)
}

func TestSalaryByExperience(t *testing.T) {
	c, err := SalaryByExperience([]insights.SalaryDistribution{
		{Level: "Entry", Values: []float64{40000, 50000, 60000}},
		{Level: "Executive"},
		{Level: "Senior", Values: []float64{120000}},
	})
	require.NoError(t, err)

	encoded, err := Encode(context.Background(), c)
	require.NoError(t, err)
	decodePNG(t, encoded)
}

func TestSalaryByExperience_NoSalaries(t *testing.T) {
	c, err := SalaryByExperience([]insights.SalaryDistribution{{Level: "Mid"}})
	require.NoError(t, err)

	encoded, err := Encode(context.Background(), c)
	require.NoError(t, err)
	decodePNG(t, encoded)
}

func TestEncode_IsolatedRenders(t *testing.T) {
	a := TopSkills([]insights.Count{{Name: "Go", Count: 2}})
	b := TopSkills([]insights.Count{{Name: "Rust", Count: 5}})

	first, err := Encode(context.Background(), a)
	require.NoError(t, err)
	_, err = Encode(context.Background(), b)
	require.NoError(t, err)
	again, err := Encode(context.Background(), a)
	require.NoError(t, err)

	assert.Equal(t, first, again)
}

type failingChart struct{}

func (failingChart) Name() string { return "broken" }

func (failingChart) Render(io.Writer) error { return errors.New("canvas exploded") }

func TestEncode_RenderError(t *testing.T) {
	_, err := Encode(context.Background(), failingChart{})
	require.Error(t, err)

	var renderErr *RenderError
	require.ErrorAs(t, err, &renderErr)
	assert.Equal(t, "broken", renderErr.Chart)
	assert.Contains(t, err.Error(), "canvas exploded")
}
