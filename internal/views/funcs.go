package views

import (
	"html/template"
	"math"
	"net/http"

	"github.com/dustin/go-humanize"

	"github.com/jonathan/ai-job-dashboard/internal/insights"
)

// funcs are the helpers available to every page template.
var funcs = template.FuncMap{
	"money":      Money,
	"count":      Count,
	"ordinal":    func(i int) string { return humanize.Ordinal(i + 1) },
	"noData":     func() string { return insights.NoData },
	"statusText": http.StatusText,
}

// Money formats a dollar amount with thousands separators and cents.
func Money(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return insights.NoData
	}
	return "$" + humanize.FormatFloat("#,###.##", v)
}

// Count formats an integer with thousands separators.
func Count(n int) string {
	return humanize.Comma(int64(n))
}
