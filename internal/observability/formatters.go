// Package observability provides logging setup and formatted summaries for the CLI.
package observability

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/jonathan/resume-pdfs/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxFailuresToShow caps the failure details listed in a summary
	maxFailuresToShow = 5
)

// Printer handles formatted output for human-facing summaries
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
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, truncate(line, boxWidth-4))
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// truncate shortens s to at most n runes, marking the cut with "..."
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-3]) + "..."
}

// PrintBatchReport outputs counts and failures for a finished batch
func (p *Printer) PrintBatchReport(report *types.BatchReport) {
	if report == nil {
		return
	}

	var sb strings.Builder
	elapsed := report.FinishedAt.Sub(report.StartedAt).Round(time.Millisecond)
	sb.WriteString(fmt.Sprintf("Records:   %d\n", len(report.Results)))
	sb.WriteString(fmt.Sprintf("Succeeded: %d\n", report.Succeeded()))
	sb.WriteString(fmt.Sprintf("Failed:    %d\n", report.Failed()))
	sb.WriteString(fmt.Sprintf("Elapsed:   %s", elapsed))

	shown := 0
	for _, res := range report.Results {
		if res.Status != types.StatusFailed {
			continue
		}
		if shown == 0 {
			sb.WriteString("\n\nFailures:")
		}
		if shown == maxFailuresToShow {
			sb.WriteString(fmt.Sprintf("\n  ... and %d more", report.Failed()-maxFailuresToShow))
			break
		}
		sb.WriteString(fmt.Sprintf("\n  ✗ %s [%s]", res.File, res.Stage))
		shown++
	}

	title := "✅ PDF GENERATION COMPLETE"
	if report.Failed() > 0 {
		title = "⚠ PDF GENERATION FINISHED WITH FAILURES"
	}
	p.printBox(title, sb.String())
}

// TemplateInfo is the printable description of a registered template
type TemplateInfo struct {
	ID      int
	Name    string
	Options types.TemplateOptions
	Missing []string // assets not found under the public directory
}

// PrintTemplates outputs the registered templates and the assets they need
func (p *Printer) PrintTemplates(templates []TemplateInfo) {
	var sb strings.Builder
	for i, t := range templates {
		sb.WriteString(fmt.Sprintf("#%d  %s (%s)", t.ID, t.Name, t.Options.Cmd))
		if n := len(t.Options.Inputs); n > 0 {
			sb.WriteString(fmt.Sprintf("\n    inputs: %s", strings.Join(t.Options.Inputs, ", ")))
		}
		if n := len(t.Options.Fonts); n > 0 {
			sb.WriteString(fmt.Sprintf("\n    fonts:  %d file(s)", n))
		}
		for _, m := range t.Missing {
			sb.WriteString(fmt.Sprintf("\n    missing: %s", m))
		}
		if i < len(templates)-1 {
			sb.WriteString("\n")
		}
	}
	p.printBox("TEMPLATES", sb.String())
}
