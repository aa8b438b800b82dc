package insights

import (
	"testing"

	"github.com/jonathan/ai-job-dashboard/internal/dataset"
	"github.com/stretchr/testify/assert"
)

func TestParseSkills(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want []string
	}{
		{name: "trims tokens", raw: "Python, SQL ,  Python", want: []string{"Python", "SQL", "Python"}},
		{name: "single", raw: "Go", want: []string{"Go"}},
		{name: "empty tokens dropped", raw: "Go,, ,Rust,", want: []string{"Go", "Rust"}},
		{name: "missing", raw: "", want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseSkills(tt.raw))
		})
	}
}

func TestSkillCounts(t *testing.T) {
	records := []dataset.JobPosting{{SkillsRequired: "Python, SQL ,  Python"}}
	assert.Equal(t, map[string]int{"Python": 2, "SQL": 1}, SkillCounts(records))
}

func TestSkillCounts_MissingFieldsContributeNothing(t *testing.T) {
	records := []dataset.JobPosting{
		{SkillsRequired: "Go"},
		{SkillsRequired: ""},
		{SkillsRequired: "Go, Docker"},
	}
	assert.Equal(t, map[string]int{"Go": 2, "Docker": 1}, SkillCounts(records))
}

func TestTopSkills(t *testing.T) {
	records := []dataset.JobPosting{
		{SkillsRequired: "Python, SQL, TensorFlow"},
		{SkillsRequired: "Python, PyTorch"},
		{SkillsRequired: "SQL, Python"},
	}

	assert.Equal(t, []Count{
		{Name: "Python", Count: 3},
		{Name: "SQL", Count: 2},
	}, TopSkills(records, 2))
}

func TestTopSkills_Deterministic(t *testing.T) {
	records := []dataset.JobPosting{
		{SkillsRequired: "Scala, Kotlin, Java, Go, Rust, C, Haskell"},
		{SkillsRequired: "Rust, Go"},
	}

	first := TopSkills(records, TopN)
	for i := 0; i < 20; i++ {
		assert.Equal(t, first, TopSkills(records, TopN))
	}
	assert.Equal(t, "Go", first[0].Name)
	assert.Equal(t, "Rust", first[1].Name)
	assert.Equal(t, "C", first[2].Name)
}

func TestTopSkills_Empty(t *testing.T) {
	assert.Empty(t, TopSkills(nil, TopN))
}
