// Package dataset loads the AI job market CSV into typed, read-only records.
package dataset

import "slices"

// Salary is a salary amount in USD that may be missing.
type Salary struct {
	Amount float64
	Valid  bool
}

// Missing is the explicit marker for an unparseable or absent salary.
var Missing = Salary{}

// Known returns a present salary with the given amount.
func Known(amount float64) Salary {
	return Salary{Amount: amount, Valid: true}
}

// JobPosting is one row of the job market dataset.
// Text fields that were empty or NA in the source are empty strings.
type JobPosting struct {
	JobID       string
	JobTitle    string
	CompanyName string
	Location    string

	Industry        string
	ExperienceLevel string
	EmploymentType  string
	SkillsRequired  string // comma-separated

	MinSalary Salary
	MaxSalary Salary
	AvgSalary Salary // (MinSalary+MaxSalary)/2, missing if either side is
}

// Dataset is the immutable, in-memory table of job postings.
// It is built once and shared by reference; nothing mutates it after load.
type Dataset struct {
	source  string
	columns []string
	records []JobPosting
}

// New builds a Dataset from already-typed records. The slice is copied.
func New(records []JobPosting) *Dataset {
	return &Dataset{records: slices.Clone(records)}
}

// Len returns the number of records.
func (d *Dataset) Len() int {
	return len(d.records)
}

// Records returns a copy of the records in file order.
func (d *Dataset) Records() []JobPosting {
	return slices.Clone(d.records)
}

// Source returns the path the dataset was loaded from, if any.
func (d *Dataset) Source() string {
	return d.source
}

// Columns returns the CSV header the dataset was loaded with.
func (d *Dataset) Columns() []string {
	return slices.Clone(d.columns)
}
