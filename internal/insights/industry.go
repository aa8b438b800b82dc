package insights

import (
	"sort"

	"gonum.org/v1/gonum/stat"

	"github.com/jonathan/ai-job-dashboard/internal/dataset"
)

// IndustryReport backs the industry insights page.
type IndustryReport struct {
	TopIndustry         string
	TotalIndustries     int
	HighestPaidIndustry string
	HighestPaidAverage  float64 // mean salary of HighestPaidIndustry, rounded to cents
	TopIndustries       []Count // at most TopN, most frequent first
}

// Industries computes the industry statistics and the ranking used by the chart.
func Industries(records []dataset.JobPosting) IndustryReport {
	counts := CountBy(records, industryOf)

	report := IndustryReport{
		TopIndustry:         NoData,
		TotalIndustries:     len(counts),
		HighestPaidIndustry: NoData,
		TopIndustries:       Top(counts, TopN),
	}
	if len(counts) > 0 {
		report.TopIndustry = counts[0].Name
	}
	if name, mean, ok := HighestMeanSalary(records, industryOf); ok {
		report.HighestPaidIndustry = name
		report.HighestPaidAverage = round2(mean)
	}
	return report
}

// TopIndustries returns the n most frequent industries, most frequent first.
func TopIndustries(records []dataset.JobPosting, n int) []Count {
	return Top(CountBy(records, industryOf), n)
}

// HighestMeanSalary returns the group of key with the highest mean average
// salary. Groups without any salary are skipped; ties go to the smallest name.
func HighestMeanSalary(records []dataset.JobPosting, key func(dataset.JobPosting) string) (string, float64, bool) {
	groups := make(map[string][]float64)
	for _, r := range records {
		k := key(r)
		if k == "" || !r.AvgSalary.Valid {
			continue
		}
		groups[k] = append(groups[k], r.AvgSalary.Amount)
	}
	if len(groups) == 0 {
		return "", 0, false
	}

	names := make([]string, 0, len(groups))
	for name := range groups {
		names = append(names, name)
	}
	sort.Strings(names)

	best, bestMean := "", 0.0
	for i, name := range names {
		mean := stat.Mean(groups[name], nil)
		if i == 0 || mean > bestMean {
			best, bestMean = name, mean
		}
	}
	return best, bestMean, true
}
