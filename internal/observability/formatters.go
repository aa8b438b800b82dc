// Package observability provides terminal summaries and tracing setup.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/jonathan/ai-job-dashboard/internal/insights"
)

const (
	// boxWidth is the outer width of every printed box
	boxWidth = 60
	// barWidth is the widest bar drawn by PrintCounts
	barWidth = 20
	// labelWidth is where names are truncated in ranked lists
	labelWidth = 22
)

// Printer writes boxed summaries of the dataset aggregates
type Printer struct {
	out   io.Writer
	box   lipgloss.Style
	title lipgloss.Style
	bar   lipgloss.Style
	dim   lipgloss.Style
}

// NewPrinter creates a new Printer that writes to the given writer.
// Colors are only emitted when out is a terminal.
func NewPrinter(out io.Writer) *Printer {
	r := lipgloss.NewRenderer(out)
	return &Printer{
		out: out,
		box: r.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("39")).
			Padding(0, 1).
			Width(boxWidth - 2),
		title: r.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		bar:   r.NewStyle().Foreground(lipgloss.Color("42")),
		dim:   r.NewStyle().Foreground(lipgloss.Color("240")),
	}
}

// printBox prints a bordered box with a title and content
//
//nolint:errcheck // writing to a terminal; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	body := p.title.Render(title) + "\n\n" + content
	fmt.Fprintln(p.out, p.box.Render(body))
}

// PrintSummary outputs the headline numbers shown on the home page.
func (p *Printer) PrintSummary(source string, s insights.Summary) {
	var sb strings.Builder

	if source != "" {
		sb.WriteString(p.dim.Render(truncate(source, boxWidth-6)))
		sb.WriteString("\n")
	}
	sb.WriteString(fmt.Sprintf("Total jobs:      %s\n", humanize.Comma(int64(s.TotalJobs))))
	if s.HasAvgSalary {
		sb.WriteString(fmt.Sprintf("Average salary:  $%s\n", humanize.FormatFloat("#,###.##", s.AvgSalary)))
	} else {
		sb.WriteString(fmt.Sprintf("Average salary:  %s\n", insights.NoData))
	}
	sb.WriteString(fmt.Sprintf("Top industry:    %s", s.TopIndustry))

	p.printBox("AI JOB MARKET SUMMARY", sb.String())
}

// PrintIndustries outputs the industry report with its ranked list.
func (p *Printer) PrintIndustries(report insights.IndustryReport) {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Distinct industries:    %d\n", report.TotalIndustries))
	sb.WriteString(fmt.Sprintf("Highest paid industry:  %s", report.HighestPaidIndustry))
	if report.HighestPaidIndustry != insights.NoData {
		sb.WriteString(fmt.Sprintf(" ($%s)", humanize.FormatFloat("#,###.", report.HighestPaidAverage)))
	}
	sb.WriteString("\n\n")
	sb.WriteString(p.ranked(report.TopIndustries))

	p.printBox("TOP INDUSTRIES", sb.String())
}

// PrintSkills outputs the most demanded skills.
func (p *Printer) PrintSkills(skills []insights.Count) {
	p.printBox("TOP SKILLS", p.ranked(skills))
}

// PrintSalaryByExperience outputs the five-number salary summary per level.
func (p *Printer) PrintSalaryByExperience(dists []insights.SalaryDistribution) {
	if len(dists) == 0 {
		p.printBox("SALARY BY EXPERIENCE", insights.NoData)
		return
	}

	var sb strings.Builder
	sb.WriteString(p.dim.Render(fmt.Sprintf("%-12s %5s %9s %9s %9s", "Level", "Jobs", "Q1", "Median", "Q3")))
	for _, d := range dists {
		sb.WriteString("\n")
		level := truncate(d.Level, 12)
		if d.Stats.Count == 0 {
			sb.WriteString(fmt.Sprintf("%-12s %5d %29s", level, 0, insights.NoData))
			continue
		}
		sb.WriteString(fmt.Sprintf("%-12s %5d %9s %9s %9s", level, d.Stats.Count,
			compactMoney(d.Stats.Q1), compactMoney(d.Stats.Median), compactMoney(d.Stats.Q3)))
	}

	p.printBox("SALARY BY EXPERIENCE", sb.String())
}

// ranked renders counts as a name, a proportional bar and the count.
func (p *Printer) ranked(counts []insights.Count) string {
	if len(counts) == 0 {
		return insights.NoData
	}

	maxCount := counts[0].Count
	for _, c := range counts {
		maxCount = max(maxCount, c.Count)
	}

	lines := make([]string, 0, len(counts))
	for i, c := range counts {
		n := 1
		if maxCount > 0 {
			n = max(1, c.Count*barWidth/maxCount)
		}
		lines = append(lines, fmt.Sprintf("%2d. %-*s %s %s",
			i+1, labelWidth, truncate(c.Name, labelWidth),
			p.bar.Render(strings.Repeat("█", n)), humanize.Comma(int64(c.Count))))
	}
	return strings.Join(lines, "\n")
}

// compactMoney renders 123456 as "$123.5k".
func compactMoney(v float64) string {
	value, prefix := humanize.ComputeSI(v)
	if prefix == "" {
		return fmt.Sprintf("$%.0f", value)
	}
	return fmt.Sprintf("$%.1f%s", value, prefix)
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-3]) + "..."
}
