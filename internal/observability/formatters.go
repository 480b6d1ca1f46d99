// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/cv-analyzer/internal/types"
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

	for _, line := range strings.Split(content, "\n") {
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// Verdict returns the presentation band for an overall score.
func Verdict(score float64) string {
	switch {
	case score < 60:
		return "Major revision needed"
	case score < 80:
		return "Needs improvement"
	default:
		return "Strong ATS match"
	}
}

// PrintScore outputs the overall score, verdict, and bonus.
func (p *Printer) PrintScore(report *types.AnalysisReport) {
	if report == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Role:     %s\n", report.Role))
	sb.WriteString(fmt.Sprintf("Score:    %.1f / 100\n", report.ScoreInfo.Overall))
	sb.WriteString(fmt.Sprintf("Verdict:  %s\n", Verdict(report.ScoreInfo.Overall)))
	sb.WriteString(fmt.Sprintf("Keywords: %d of %d found",
		report.ScoreInfo.TotalFound, report.ScoreInfo.TotalKeywords))
	if report.ScoreInfo.Bonus > 0 {
		sb.WriteString(fmt.Sprintf("\nBonus:    +%.0f", report.ScoreInfo.Bonus))
	}
	if report.SimilarityScore != nil {
		sb.WriteString(fmt.Sprintf("\nJob fit:  %.0f%% similarity", *report.SimilarityScore))
	}

	p.printBox("ATS SCORE", sb.String())
}

// PrintCategories outputs the per-category breakdown with missing keywords.
func (p *Printer) PrintCategories(report *types.AnalysisReport) {
	if report == nil || len(report.Matched) == 0 {
		return
	}

	var sb strings.Builder
	for i, cr := range report.Matched {
		sb.WriteString(fmt.Sprintf("%s: %.1f%% (%d/%d)\n", cr.Category, cr.Percentage, cr.Count, cr.Total()))
		if len(cr.Missing) > 0 {
			missing := strings.Join(cr.Missing, ", ")
			if len(missing) > 44 {
				missing = missing[:41] + "..."
			}
			sb.WriteString(fmt.Sprintf("  missing: %s\n", missing))
		}
		if i < len(report.Matched)-1 {
			sb.WriteString("\n")
		}
	}

	p.printBox("CATEGORY BREAKDOWN", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintSignals outputs experience, word count, and ancillary signals.
func (p *Printer) PrintSignals(report *types.AnalysisReport) {
	if report == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Experience: %d years\n", report.ExperienceYears))
	sb.WriteString(fmt.Sprintf("Words:      %d\n", report.WordCount))

	if len(report.ActionVerbs) > 0 {
		verbs := strings.Join(report.ActionVerbs, ", ")
		if len(verbs) > 42 {
			verbs = verbs[:39] + "..."
		}
		sb.WriteString(fmt.Sprintf("Verbs:      %s\n", verbs))
	}
	if len(report.Metrics) > 0 {
		count := min(len(report.Metrics), maxItemsToShow)
		sb.WriteString(fmt.Sprintf("Metrics:    %s", strings.Join(report.Metrics[:count], ", ")))
		if len(report.Metrics) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf(" ... and %d more", len(report.Metrics)-maxItemsToShow))
		}
		sb.WriteString("\n")
	}

	p.printBox("SIGNALS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintRecommendations outputs the numbered suggestion list.
func (p *Printer) PrintRecommendations(report *types.AnalysisReport) {
	if report == nil || len(report.Recommendations) == 0 {
		return
	}

	var sb strings.Builder
	for i, rec := range report.Recommendations {
		if len(rec) > 50 {
			rec = rec[:47] + "..."
		}
		sb.WriteString(fmt.Sprintf("%d. %s", i+1, rec))
		if i < len(report.Recommendations)-1 {
			sb.WriteString("\n")
		}
	}

	p.printBox("RECOMMENDATIONS", sb.String())
}

// PrintReport outputs all report sections in order.
func (p *Printer) PrintReport(report *types.AnalysisReport) {
	p.PrintScore(report)
	p.PrintCategories(report)
	p.PrintSignals(report)
	p.PrintRecommendations(report)
}
