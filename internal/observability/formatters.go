// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/Rishabhsingh11/Ascend/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

func truncate(s string, max int) string {
	if len(s) > max {
		return s[:max-3] + "..."
	}
	return s
}

// PrintParsedResume outputs a human-readable summary of the parsed resume.
func (p *Printer) PrintParsedResume(resume *types.ParsedResume) {
	if resume == nil {
		return
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Name:   %s\n", resume.ContactInfo.Name))
	sb.WriteString(fmt.Sprintf("Email:  %s\n", resume.ContactInfo.Email))
	sb.WriteString("\n")

	if len(resume.Skills) > 0 {
		skills := strings.Join(resume.Skills, ", ")
		sb.WriteString(fmt.Sprintf("Skills (%d): %s\n", len(resume.Skills), truncate(skills, 40)))
	}
	sb.WriteString(fmt.Sprintf("Experience entries: %d\n", len(resume.Experience)))
	sb.WriteString(fmt.Sprintf("Education entries:  %d\n", len(resume.Education)))

	if len(resume.Experience) > 0 {
		sb.WriteString("\nMost recent role:\n")
		exp := resume.Experience[0]
		sb.WriteString(fmt.Sprintf("  %s at %s\n", exp.Position, exp.Company))
		sb.WriteString(fmt.Sprintf("  %s\n", exp.Duration))
	}

	p.printBox("PARSED RESUME", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintPostings outputs a summary of the fetched job postings.
func (p *Printer) PrintPostings(postings []types.JobPosting) {
	if len(postings) == 0 {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Fetched %d postings:\n\n", len(postings)))

	count := min(len(postings), maxItemsToShow)
	for i := 0; i < count; i++ {
		job := postings[i]
		sb.WriteString(fmt.Sprintf("#%d  %s\n", i+1, truncate(job.Title, 48)))
		sb.WriteString(fmt.Sprintf("    %s", truncate(job.Company, 30)))
		if job.Location != "" {
			sb.WriteString(fmt.Sprintf(" (%s)", truncate(job.Location, 20)))
		}
		sb.WriteString("\n")
		if i < count-1 {
			sb.WriteString("\n")
		}
	}

	if len(postings) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more postings", len(postings)-maxItemsToShow))
	}

	p.printBox("JOB POSTINGS", sb.String())
}

// PrintRoleAnalysis outputs the per-role skill-gap breakdown with match
// percentage, top gaps, and readiness estimate.
func (p *Printer) PrintRoleAnalysis(role *types.RoleSkillAnalysis) {
	if role == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Role:      %s\n", role.JobRole))
	sb.WriteString(fmt.Sprintf("Jobs:      %d analyzed\n", role.JobsAnalyzed))
	sb.WriteString(fmt.Sprintf("Match:     %.1f%%\n", role.MatchPercentage))
	sb.WriteString(fmt.Sprintf("Coverage:  %.1f/10\n", role.SkillCoverageScore))
	sb.WriteString(fmt.Sprintf("Readiness: %s\n", role.EstimatedReadiness))

	if len(role.MatchedSkills) > 0 {
		sb.WriteString("\n")
		matched := strings.Join(role.MatchedSkills, ", ")
		sb.WriteString(fmt.Sprintf("Matched: %s\n", truncate(matched, 44)))
	}

	if len(role.MissingSkills) > 0 {
		sb.WriteString("\nTop gaps:\n")
		count := min(len(role.MissingSkills), maxItemsToShow)
		for i := 0; i < count; i++ {
			gap := role.MissingSkills[i]
			sb.WriteString(fmt.Sprintf("  • %s (%s, %d jobs, %s)\n",
				truncate(gap.SkillName, 20), gap.Priority, gap.FoundInJobsCount, gap.EstimatedLearningTime))
		}
		if len(role.MissingSkills) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(role.MissingSkills)-maxItemsToShow))
		}
	}

	p.printBox("ROLE ANALYSIS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintAnalysisSummary outputs the portfolio-level report: readiness,
// cross-role gaps, and market trends.
func (p *Printer) PrintAnalysisSummary(analysis *types.SkillGapAnalysis) {
	if analysis == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Market readiness: %.1f%%\n", analysis.OverallMarketReadiness))
	sb.WriteString(fmt.Sprintf("Roles analyzed:   %d\n", len(analysis.RoleAnalyses)))
	sb.WriteString(fmt.Sprintf("Jobs analyzed:    %d\n", analysis.TotalJobsAnalyzed))
	sb.WriteString(fmt.Sprintf("Date:             %s\n", analysis.AnalysisDate))

	writeList := func(label string, items []string) {
		if len(items) == 0 {
			return
		}
		sb.WriteString(fmt.Sprintf("\n%s:\n", label))
		count := min(len(items), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", truncate(items[i], 48)))
		}
		if len(items) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(items)-maxItemsToShow))
		}
	}

	writeList("Common gaps", analysis.CommonGaps)
	writeList("Quick wins", analysis.QuickWins)
	writeList("Trending", analysis.TrendingSkills)
	writeList("Declining", analysis.DecliningSkills)

	p.printBox("SKILL GAP ANALYSIS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintActionPlan outputs the phased learning plan.
func (p *Printer) PrintActionPlan(analysis *types.SkillGapAnalysis) {
	if analysis == nil {
		return
	}

	var sb strings.Builder

	phases := []struct {
		label string
		steps []string
	}{
		{"This week", analysis.ImmediateActions},
		{"One month", analysis.OneMonthPlan},
		{"Three months", analysis.ThreeMonthPlan},
		{"Six months", analysis.SixMonthPlan},
	}

	first := true
	for _, phase := range phases {
		if len(phase.steps) == 0 {
			continue
		}
		if !first {
			sb.WriteString("\n")
		}
		first = false
		sb.WriteString(fmt.Sprintf("%s:\n", phase.label))
		for _, step := range phase.steps {
			sb.WriteString(fmt.Sprintf("  • %s\n", truncate(step, 48)))
		}
	}

	if first {
		return
	}

	p.printBox("ACTION PLAN", strings.TrimSuffix(sb.String(), "\n"))
}
