// Package insights computes the dashboard aggregates over job postings.
// Every function is a pure read over its input.
package insights

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"

	"github.com/jonathan/ai-job-dashboard/internal/dataset"
)

// NoData is returned in place of a category name when there is nothing to rank.
const NoData = "No data"

// TopN is the number of categories shown on the ranked charts.
const TopN = 10

// Count is a category with its number of occurrences.
type Count struct {
	Name  string
	Count int
}

// Summary is the headline view of the dataset.
type Summary struct {
	TotalJobs    int
	AvgSalary    float64 // mean of present average salaries, rounded to cents
	HasAvgSalary bool
	TopIndustry  string
}

// Summarize computes the home page numbers.
func Summarize(records []dataset.JobPosting) Summary {
	s := Summary{
		TotalJobs:   len(records),
		TopIndustry: Mode(records, industryOf),
	}
	if mean, ok := meanSalary(records); ok {
		s.AvgSalary = round2(mean)
		s.HasAvgSalary = true
	}
	return s
}

// CountBy tallies the non-empty values of key across records.
// The result is ordered by count descending, then name ascending.
func CountBy(records []dataset.JobPosting, key func(dataset.JobPosting) string) []Count {
	tally := make(map[string]int)
	for _, r := range records {
		if k := key(r); k != "" {
			tally[k]++
		}
	}
	return sortedCounts(tally)
}

// Mode returns the most frequent non-empty value of key, or NoData.
// Ties go to the lexicographically smallest value.
func Mode(records []dataset.JobPosting, key func(dataset.JobPosting) string) string {
	counts := CountBy(records, key)
	if len(counts) == 0 {
		return NoData
	}
	return counts[0].Name
}

// Top returns at most n leading entries of counts.
func Top(counts []Count, n int) []Count {
	if n < 0 {
		n = 0
	}
	if len(counts) > n {
		return counts[:n]
	}
	return counts
}

func sortedCounts(tally map[string]int) []Count {
	counts := make([]Count, 0, len(tally))
	for name, n := range tally {
		counts = append(counts, Count{Name: name, Count: n})
	}
	sort.Slice(counts, func(i, j int) bool {
		if counts[i].Count != counts[j].Count {
			return counts[i].Count > counts[j].Count
		}
		return counts[i].Name < counts[j].Name
	})
	return counts
}

func meanSalary(records []dataset.JobPosting) (float64, bool) {
	values := salaries(records)
	if len(values) == 0 {
		return 0, false
	}
	return stat.Mean(values, nil), true
}

func salaries(records []dataset.JobPosting) []float64 {
	values := make([]float64, 0, len(records))
	for _, r := range records {
		if r.AvgSalary.Valid {
			values = append(values, r.AvgSalary.Amount)
		}
	}
	return values
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func industryOf(r dataset.JobPosting) string { return r.Industry }
