// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxCodesToShow is the number of SIC codes to display before eliding
	maxCodesToShow = 5
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

// PrintQuery outputs the search parameters before the request is made.
func (p *Printer) PrintQuery(location string, sicCodes []string, baseURL string) {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Location:  %s\n", location))

	codes := sicCodes
	elided := 0
	if len(codes) > maxCodesToShow {
		elided = len(codes) - maxCodesToShow
		codes = codes[:maxCodesToShow]
	}
	sb.WriteString(fmt.Sprintf("SIC codes: %s", strings.Join(codes, ", ")))
	if elided > 0 {
		sb.WriteString(fmt.Sprintf(" ... and %d more", elided))
	}
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("Endpoint:  %s", baseURL))

	p.printBox("COMPANY SEARCH", sb.String())
}

// SummaryStats holds the counts reported after a completed search.
type SummaryStats struct {
	TotalResults int
	Returned     int
	Written      int
	Skipped      int
	OutputFile   string
}

// PrintSummary outputs a human-readable summary of a completed search run.
func (p *Printer) PrintSummary(stats SummaryStats) {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("API total hits:     %d\n", stats.TotalResults))
	sb.WriteString(fmt.Sprintf("Items returned:     %d\n", stats.Returned))
	sb.WriteString(fmt.Sprintf("Addresses written:  %d\n", stats.Written))
	sb.WriteString(fmt.Sprintf("Skipped (no addr):  %d\n", stats.Skipped))
	sb.WriteString(fmt.Sprintf("Output file:        %s", stats.OutputFile))

	p.printBox("SEARCH SUMMARY", sb.String())
}
