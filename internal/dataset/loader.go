package dataset

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
)

// Column names in the source CSV.
const (
	ColumnSalaryRange     = "salary_range_usd"
	ColumnIndustry        = "industry"
	ColumnExperienceLevel = "experience_level"
	ColumnEmploymentType  = "employment_type"
	ColumnSkillsRequired  = "skills_required"

	columnJobID       = "job_id"
	columnJobTitle    = "job_title"
	columnCompanyName = "company_name"
	columnLocation    = "location"
)

// RequiredColumns lists the columns a dataset file must provide.
var RequiredColumns = []string{
	ColumnSalaryRange,
	ColumnIndustry,
	ColumnExperienceLevel,
	ColumnEmploymentType,
	ColumnSkillsRequired,
}

// missingValues are the cell contents treated as "no value".
var missingValues = []string{"", "NA", "NaN", "N/A", "<nil>"}

// Load reads the dataset CSV at path.
// It fails if the file is absent, malformed, lacks a required column or has no data rows.
func Load(path string) (*Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &LoadError{
			Message: fmt.Sprintf("failed to open file %s", path),
			Cause:   err,
		}
	}
	defer f.Close()

	d, err := Read(f)
	if err != nil {
		return nil, err
	}
	d.source = path
	return d, nil
}

// Read parses a dataset CSV from r. Every column is read as text and then
// converted into typed JobPosting records.
func Read(r io.Reader) (*Dataset, error) {
	df := dataframe.ReadCSV(r,
		dataframe.HasHeader(true),
		dataframe.DetectTypes(false),
		dataframe.DefaultType(series.String),
		dataframe.NaNValues(missingValues),
	)
	if df.Err != nil {
		return nil, &LoadError{
			Message: "failed to parse CSV",
			Cause:   df.Err,
		}
	}
	if df.Nrow() == 0 {
		return nil, &LoadError{Message: "no data rows"}
	}

	cols := make(map[string]series.Series, len(RequiredColumns))
	for _, name := range RequiredColumns {
		col := df.Col(name)
		if col.Err != nil {
			return nil, &LoadError{
				Message: fmt.Sprintf("missing required column %q", name),
				Cause:   col.Err,
			}
		}
		cols[name] = col
	}
	for _, name := range []string{columnJobID, columnJobTitle, columnCompanyName, columnLocation} {
		if col := df.Col(name); col.Err == nil {
			cols[name] = col
		}
	}

	records := make([]JobPosting, df.Nrow())
	for i := range records {
		low, high := Missing, Missing
		if raw, ok := cell(cols, ColumnSalaryRange, i); ok {
			low, high = ParseSalaryRange(raw)
		}

		records[i] = JobPosting{
			JobID:           text(cols, columnJobID, i),
			JobTitle:        text(cols, columnJobTitle, i),
			CompanyName:     text(cols, columnCompanyName, i),
			Location:        text(cols, columnLocation, i),
			Industry:        text(cols, ColumnIndustry, i),
			ExperienceLevel: text(cols, ColumnExperienceLevel, i),
			EmploymentType:  text(cols, ColumnEmploymentType, i),
			SkillsRequired:  text(cols, ColumnSkillsRequired, i),
			MinSalary:       low,
			MaxSalary:       high,
			AvgSalary:       AverageSalary(low, high),
		}
	}

	return &Dataset{
		columns: df.Names(),
		records: records,
	}, nil
}

// cell returns the raw text of column name at row i, and false when the
// column is absent or the cell holds a missing value.
func cell(cols map[string]series.Series, name string, i int) (string, bool) {
	col, ok := cols[name]
	if !ok {
		return "", false
	}
	e := col.Elem(i)
	if e.IsNA() {
		return "", false
	}
	return e.String(), true
}

func text(cols map[string]series.Series, name string, i int) string {
	v, _ := cell(cols, name, i)
	return strings.TrimSpace(v)
}
