package insights

import (
	"strings"

	"github.com/jonathan/ai-job-dashboard/internal/dataset"
)

// ParseSkills splits a comma-separated skills field into trimmed, non-empty tokens.
func ParseSkills(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	skills := make([]string, 0, len(parts))
	for _, p := range parts {
		if s := strings.TrimSpace(p); s != "" {
			skills = append(skills, s)
		}
	}
	return skills
}

// SkillCounts tallies every skill token across records.
// Records with a missing skills field contribute nothing.
func SkillCounts(records []dataset.JobPosting) map[string]int {
	tally := make(map[string]int)
	for _, r := range records {
		for _, s := range ParseSkills(r.SkillsRequired) {
			tally[s]++
		}
	}
	return tally
}

// TopSkills returns the n most demanded skills, most frequent first.
func TopSkills(records []dataset.JobPosting, n int) []Count {
	return Top(sortedCounts(SkillCounts(records)), n)
}
