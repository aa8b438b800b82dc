package insights

import (
	"sort"

	"gonum.org/v1/gonum/stat"

	"github.com/jonathan/ai-job-dashboard/internal/dataset"
)

// EmploymentMatrix counts employment types within each experience level.
// Levels and Types are in order of first appearance; Counts[i][j] is the
// number of postings at Levels[i] with employment type Types[j].
type EmploymentMatrix struct {
	Levels []string
	Types  []string
	Counts [][]int
}

// Empty reports whether the matrix has nothing to plot.
func (m EmploymentMatrix) Empty() bool {
	return len(m.Levels) == 0 || len(m.Types) == 0
}

// EmploymentByExperience groups postings by experience level and employment type.
// Postings missing either field are left out.
func EmploymentByExperience(records []dataset.JobPosting) EmploymentMatrix {
	var m EmploymentMatrix
	levelIdx := make(map[string]int)
	typeIdx := make(map[string]int)

	for _, r := range records {
		if r.ExperienceLevel == "" || r.EmploymentType == "" {
			continue
		}
		li, ok := levelIdx[r.ExperienceLevel]
		if !ok {
			li = len(m.Levels)
			levelIdx[r.ExperienceLevel] = li
			m.Levels = append(m.Levels, r.ExperienceLevel)
			m.Counts = append(m.Counts, make([]int, len(m.Types)))
		}
		ti, ok := typeIdx[r.EmploymentType]
		if !ok {
			ti = len(m.Types)
			typeIdx[r.EmploymentType] = ti
			m.Types = append(m.Types, r.EmploymentType)
			for i := range m.Counts {
				m.Counts[i] = append(m.Counts[i], 0)
			}
		}
		m.Counts[li][ti]++
	}
	return m
}

// BoxStats is the five-number summary of a salary distribution.
// Quartiles use linear interpolation between order statistics.
type BoxStats struct {
	Count  int
	Mean   float64
	Min    float64
	Q1     float64
	Median float64
	Q3     float64
	Max    float64
}

// SalaryDistribution holds the average salaries seen at one experience level.
type SalaryDistribution struct {
	Level  string
	Values []float64 // ascending
	Stats  BoxStats
}

// SalaryByExperience collects average salaries per experience level, in order
// of first appearance. Levels whose postings all lack a salary are kept with
// an empty distribution.
func SalaryByExperience(records []dataset.JobPosting) []SalaryDistribution {
	var dists []SalaryDistribution
	index := make(map[string]int)

	for _, r := range records {
		if r.ExperienceLevel == "" {
			continue
		}
		i, ok := index[r.ExperienceLevel]
		if !ok {
			i = len(dists)
			index[r.ExperienceLevel] = i
			dists = append(dists, SalaryDistribution{Level: r.ExperienceLevel})
		}
		if r.AvgSalary.Valid {
			dists[i].Values = append(dists[i].Values, r.AvgSalary.Amount)
		}
	}

	for i := range dists {
		sort.Float64s(dists[i].Values)
		dists[i].Stats = Describe(dists[i].Values)
	}
	return dists
}

// Describe computes BoxStats for ascending values. An empty input yields a zero BoxStats.
func Describe(sorted []float64) BoxStats {
	if len(sorted) == 0 {
		return BoxStats{}
	}
	return BoxStats{
		Count:  len(sorted),
		Mean:   stat.Mean(sorted, nil),
		Min:    sorted[0],
		Q1:     quantile(0.25, sorted),
		Median: quantile(0.5, sorted),
		Q3:     quantile(0.75, sorted),
		Max:    sorted[len(sorted)-1],
	}
}

// quantile interpolates linearly between the order statistics around p*(n-1).
func quantile(p float64, sorted []float64) float64 {
	if len(sorted) == 1 {
		return sorted[0]
	}
	pos := p * float64(len(sorted)-1)
	lo := int(pos)
	if lo >= len(sorted)-1 {
		return sorted[len(sorted)-1]
	}
	frac := pos - float64(lo)
	return sorted[lo] + frac*(sorted[lo+1]-sorted[lo])
}
