package dataset

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const header = "job_id,job_title,industry,experience_level,employment_type,salary_range_usd,skills_required\n"

func writeCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "jobs.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad_DerivesAverageSalary(t *testing.T) {
	path := writeCSV(t, header+
		`AI00001,ML Engineer,Tech,Mid,Full-time,10000-20000,"Python, SQL"`+"\n"+
		`AI00002,Data Scientist,Finance,Senior,Contract,30000-50000,"R, Python"`+"\n")

	d, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, 2, d.Len())
	assert.Equal(t, path, d.Source())

	records := d.Records()
	assert.Equal(t, Known(10000), records[0].MinSalary)
	assert.Equal(t, Known(20000), records[0].MaxSalary)
	assert.Equal(t, Known(15000.0), records[0].AvgSalary)
	assert.Equal(t, Known(40000.0), records[1].AvgSalary)

	assert.Equal(t, "AI00001", records[0].JobID)
	assert.Equal(t, "Tech", records[0].Industry)
	assert.Equal(t, "Mid", records[0].ExperienceLevel)
	assert.Equal(t, "Full-time", records[0].EmploymentType)
	assert.Equal(t, "Python, SQL", records[0].SkillsRequired)
	assert.Empty(t, records[0].CompanyName, "absent optional column should be empty")
}

func TestLoad_RecordsHeader(t *testing.T) {
	path := writeCSV(t, header+`AI1,Eng,Tech,Mid,Full-time,100-200,Go`+"\n")

	d, err := Load(path)
	require.NoError(t, err)
	assert.Contains(t, d.Columns(), ColumnSalaryRange)
	assert.Len(t, d.Columns(), 7)
}

func TestLoad_MalformedSalaryBecomesMissing(t *testing.T) {
	path := writeCSV(t, header+
		`AI1,Eng,Tech,Mid,Full-time,abc-20000,Go`+"\n"+
		`AI2,Eng,Tech,Mid,Full-time,,Go`+"\n"+
		`AI3,Eng,Tech,Mid,Full-time,50000,Go`+"\n"+
		`AI4,Eng,Tech,Mid,Full-time,NA,Go`+"\n")

	d, err := Load(path)
	require.NoError(t, err)
	records := d.Records()
	require.Len(t, records, 4)

	assert.False(t, records[0].MinSalary.Valid)
	assert.Equal(t, Known(20000), records[0].MaxSalary)
	assert.False(t, records[0].AvgSalary.Valid)

	assert.False(t, records[1].MinSalary.Valid)
	assert.False(t, records[1].MaxSalary.Valid)
	assert.False(t, records[1].AvgSalary.Valid)

	assert.Equal(t, Known(50000), records[2].MinSalary)
	assert.False(t, records[2].MaxSalary.Valid)
	assert.False(t, records[2].AvgSalary.Valid)

	assert.False(t, records[3].AvgSalary.Valid)
}

func TestLoad_MissingTextBecomesEmpty(t *testing.T) {
	path := writeCSV(t, header+`AI1,Eng,NA,,Full-time,100-200,`+"\n")

	d, err := Load(path)
	require.NoError(t, err)
	r := d.Records()[0]
	assert.Empty(t, r.Industry)
	assert.Empty(t, r.ExperienceLevel)
	assert.Empty(t, r.SkillsRequired)
}

func TestLoad_FileNotFound(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.csv"))
	require.Error(t, err)

	var loadErr *LoadError
	require.ErrorAs(t, err, &loadErr)
	assert.Contains(t, loadErr.Error(), "failed to open file")
	assert.True(t, os.IsNotExist(loadErr.Unwrap()))
}

func TestLoad_HeaderOnly(t *testing.T) {
	path := writeCSV(t, header)

	_, err := Load(path)
	require.Error(t, err)
	var loadErr *LoadError
	assert.ErrorAs(t, err, &loadErr)
}

func TestLoad_EmptyFile(t *testing.T) {
	path := writeCSV(t, "")

	_, err := Load(path)
	var loadErr *LoadError
	assert.ErrorAs(t, err, &loadErr)
}

func TestRead_MissingRequiredColumn(t *testing.T) {
	csv := "industry,experience_level,employment_type,skills_required\nTech,Mid,Full-time,Go\n"

	_, err := Read(strings.NewReader(csv))
	require.Error(t, err)
	assert.Contains(t, err.Error(), `missing required column "salary_range_usd"`)
}

func TestRead_RaggedRows(t *testing.T) {
	csv := header + "AI1,Eng,Tech\n"

	_, err := Read(strings.NewReader(csv))
	var loadErr *LoadError
	require.ErrorAs(t, err, &loadErr)
	assert.Contains(t, err.Error(), "failed to parse CSV")
}

func TestDataset_RecordsIsACopy(t *testing.T) {
	d := New([]JobPosting{{Industry: "Tech"}})

	records := d.Records()
	records[0].Industry = "changed"

	assert.Equal(t, "Tech", d.Records()[0].Industry)
}

func TestNew_CopiesInput(t *testing.T) {
	in := []JobPosting{{Industry: "Tech"}}
	d := New(in)
	in[0].Industry = "changed"

	assert.Equal(t, "Tech", d.Records()[0].Industry)
	assert.Empty(t, d.Source())
}
