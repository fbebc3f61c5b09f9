// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/alexchen/internlens/internal/types"
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

// PrintResult outputs the full analysis result as a sequence of boxes
func (p *Printer) PrintResult(result *types.AnalysisResult) {
	if result == nil {
		return
	}
	p.PrintScore(result.Score)
	p.PrintSkills(result.Skills)
	p.PrintResponsibilities(result.Responsibilities)
	p.PrintFeedback(result.Feedback)
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

// PrintScore outputs the overall score, per-category breakdown and the
// itemized deductions.
func (p *Printer) PrintScore(score types.ATSScore) {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Overall:  %d / 100\n\n", score.OverallScore))

	names := make([]string, 0, len(score.Breakdown))
	for name := range score.Breakdown {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		category := score.Breakdown[name]
		sb.WriteString(fmt.Sprintf("%-18s %5.1f / %d  (%.0f%%)\n",
			name, category.WeightedScore, category.Weight, category.Percentage))
	}

	if len(score.AllDeductions) > 0 {
		sb.WriteString("\nDeductions:\n")
		count := min(len(score.AllDeductions), maxItemsToShow)
		for i := 0; i < count; i++ {
			d := score.AllDeductions[i]
			sb.WriteString(fmt.Sprintf("  -%.1f %s\n", d.PointsLost, d.Reason))
		}
		if len(score.AllDeductions) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(score.AllDeductions)-maxItemsToShow))
		}
	}

	p.printBox("MATCH SCORE", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintSkills outputs the skill comparison summary with the first few skills
// per bucket.
func (p *Printer) PrintSkills(skills types.SkillComparisonResult) {
	var sb strings.Builder

	writeBucket := func(label string, items []string) {
		if len(items) == 0 {
			return
		}
		sb.WriteString(fmt.Sprintf("%s (%d):\n", label, len(items)))
		count := min(len(items), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", items[i]))
		}
		if len(items) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(items)-maxItemsToShow))
		}
	}

	writeBucket("Matched required", skills.MatchedRequired)
	writeBucket("Missing required", skills.MissingRequired)
	writeBucket("Matched preferred", skills.MatchedPreferred)
	writeBucket("Missing preferred", skills.MissingPreferred)
	writeBucket("Extra skills", skills.ExtraSkills)

	if sb.Len() == 0 {
		sb.WriteString("No skills compared")
	}

	p.printBox("SKILL COMPARISON", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintResponsibilities outputs responsibility coverage counts with examples
// of anything not fully covered.
func (p *Printer) PrintResponsibilities(coverage types.ResponsibilityMatchingResult) {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Covered: %d   Weakly: %d   Not covered: %d\n",
		len(coverage.Covered), len(coverage.WeaklyCovered), len(coverage.NotCovered)))

	writeBucket := func(label string, items []string) {
		if len(items) == 0 {
			return
		}
		sb.WriteString(fmt.Sprintf("\n%s:\n", label))
		count := min(len(items), 3)
		for i := 0; i < count; i++ {
			item := items[i]
			if len(item) > 50 {
				item = item[:47] + "..."
			}
			sb.WriteString(fmt.Sprintf("  ⚠ %s\n", item))
		}
		if len(items) > 3 {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(items)-3))
		}
	}

	writeBucket("Weakly covered", coverage.WeaklyCovered)
	writeBucket("Not covered", coverage.NotCovered)

	p.printBox("RESPONSIBILITY COVERAGE", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintFeedback outputs the resume quality feedback items.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintFeedback(feedback *types.ResumeQualityFeedback) {
	if feedback == nil || len(feedback.Items) == 0 {
		fmt.Fprintf(p.out, "┌%s┐\n", strings.Repeat("─", boxWidth-2))
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, "✅ NO WRITING FEEDBACK")
		fmt.Fprintf(p.out, "└%s┘\n", strings.Repeat("─", boxWidth-2))
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Found %d suggestions:\n\n", len(feedback.Items)))

	for i, item := range feedback.Items {
		sb.WriteString(fmt.Sprintf("⚠ %s\n", item.Title))
		if item.Detail != "" {
			detail := item.Detail
			if len(detail) > 45 {
				detail = detail[:42] + "..."
			}
			sb.WriteString(fmt.Sprintf("  %s\n", detail))
		}
		if i < len(feedback.Items)-1 {
			sb.WriteString("\n")
		}
	}

	p.printBox("RESUME QUALITY FEEDBACK", strings.TrimSuffix(sb.String(), "\n"))
}
