// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/cv-match/internal/engine"
	"github.com/jonathan/cv-match/internal/scoring"
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

// PrintResult outputs a human-readable summary of an analysis result.
func (p *Printer) PrintResult(jobTitle string, result *engine.Result) {
	if result == nil {
		return
	}

	var sb strings.Builder
	if jobTitle != "" {
		sb.WriteString(fmt.Sprintf("Job:      %s\n", jobTitle))
	}
	sb.WriteString(fmt.Sprintf("Score:    %.0f%%\n", result.Score*100))
	sb.WriteString("\n")

	if len(result.Analysis.KeywordMatches) > 0 {
		sb.WriteString(fmt.Sprintf("Matched keywords (%d):\n", len(result.Analysis.KeywordMatches)))
		p.writeList(&sb, result.Analysis.KeywordMatches, maxItemsToShow)
		sb.WriteString("\n")
	}

	if len(result.Analysis.MissingKeywords) > 0 {
		sb.WriteString(fmt.Sprintf("Missing keywords (%d):\n", len(result.Analysis.MissingKeywords)))
		p.writeList(&sb, result.Analysis.MissingKeywords, maxItemsToShow)
	}

	p.printBox("ANALYSIS RESULT", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintScoreBreakdown outputs the per-dimension scoring breakdown.
func (p *Printer) PrintScoreBreakdown(score *scoring.CVScore) {
	if score == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Overall:     %.0f%%\n\n", score.Overall*100))
	sb.WriteString(fmt.Sprintf("Keywords:    %.0f%%\n", score.Keywords.Score*100))
	sb.WriteString(fmt.Sprintf("Experience:  %.0f%%\n", score.Experience.Score*100))
	sb.WriteString(fmt.Sprintf("Education:   %.0f%%\n", score.Education.Score*100))
	sb.WriteString(fmt.Sprintf("Skills:      %.0f%%", score.Skills.Score*100))

	if len(score.Skills.Missing) > 0 {
		sb.WriteString("\n\nMissing skills:\n")
		p.writeList(&sb, score.Skills.Missing, maxItemsToShow)
	}

	p.printBox("SCORE BREAKDOWN", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintSuggestions outputs the merged improvement suggestions.
func (p *Printer) PrintSuggestions(suggestions []string) {
	if len(suggestions) == 0 {
		p.printBox("SUGGESTIONS", "Nothing to improve. The CV covers the posting well.")
		return
	}

	var sb strings.Builder
	for i, s := range suggestions {
		if len(s) > 50 {
			s = s[:47] + "..."
		}
		sb.WriteString(fmt.Sprintf("• %s", s))
		if i < len(suggestions)-1 {
			sb.WriteString("\n")
		}
	}

	p.printBox("SUGGESTIONS", sb.String())
}

// writeList writes up to limit bullet items plus an overflow line.
func (p *Printer) writeList(sb *strings.Builder, items []string, limit int) {
	count := min(len(items), limit)
	for i := 0; i < count; i++ {
		item := items[i]
		if len(item) > 50 {
			item = item[:47] + "..."
		}
		sb.WriteString(fmt.Sprintf("  • %s\n", item))
	}
	if len(items) > limit {
		sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(items)-limit))
	}
}
