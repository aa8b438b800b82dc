package views

import "github.com/jonathan/ai-job-dashboard/internal/insights"

// Page names accepted by Renderer.Render.
const (
	PageHome       = "home"
	PageIndustry   = "industry"
	PageSkills     = "skills"
	PageExperience = "experience"
	PageError      = "error"
)

// Pages lists every page template in navigation order.
var Pages = []string{PageHome, PageIndustry, PageSkills, PageExperience, PageError}

// Meta carries the fields the shared layout reads.
type Meta struct {
	Title  string
	Active string
}

// HomePage is the data for the overview page.
type HomePage struct {
	Meta
	Summary insights.Summary
}

// IndustryPage is the data for the industry insights page.
type IndustryPage struct {
	Meta
	Report insights.IndustryReport
	Chart  string // base64 PNG
}

// SkillsPage is the data for the skills analysis page.
type SkillsPage struct {
	Meta
	Chart  string // base64 PNG
	Skills []insights.Count
}

// ExperiencePage is the data for the experience insights page.
type ExperiencePage struct {
	Meta
	EmploymentChart string // base64 PNG
	SalaryChart     string // base64 PNG
	Distributions   []insights.SalaryDistribution
}

// ErrorPage is the data for the generic failure page.
type ErrorPage struct {
	Meta
	Status    int
	RequestID string
}
