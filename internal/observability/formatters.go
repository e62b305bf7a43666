// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/hometap/smartfacts-dashboard/internal/types"
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

// PrintExtractionSummary outputs the extracted insights with their key attributes.
func (p *Printer) PrintExtractionSummary(insights []types.Insight) {
	if len(insights) == 0 {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Extracted %d insights:\n\n", len(insights)))

	count := min(len(insights), maxItemsToShow)
	for i := 0; i < count; i++ {
		insight := insights[i]
		content := insight.Content
		if len(content) > 44 {
			content = content[:41] + "..."
		}
		sb.WriteString(fmt.Sprintf("%s  [%s/%s]\n", insight.ID, insight.Status, insight.Type))
		sb.WriteString(fmt.Sprintf("    %s\n", content))

		tags := []string{}
		if insight.IsDynamic {
			tags = append(tags, "dynamic")
		}
		if insight.HasCTA {
			tags = append(tags, "cta")
		}
		if insight.RequiresPrimaryUser {
			tags = append(tags, "primary-user")
		}
		if len(tags) > 0 {
			sb.WriteString(fmt.Sprintf("    (%s)\n", strings.Join(tags, ", ")))
		}
		if i < count-1 {
			sb.WriteString("\n")
		}
	}

	if len(insights) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more insights", len(insights)-maxItemsToShow))
	}

	p.printBox("EXTRACTED INSIGHTS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintAggregateCounts outputs the per-status and per-type count tables.
func (p *Printer) PrintAggregateCounts(counts types.AggregateCounts) {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Total: %d\n", counts.Total))

	if len(counts.ByStatus) > 0 {
		sb.WriteString("\nBy status:\n")
		for _, status := range sortedKeys(counts.ByStatus) {
			sb.WriteString(fmt.Sprintf("  %-12s %d\n", status, counts.ByStatus[status]))
		}
	}
	if len(counts.ByType) > 0 {
		sb.WriteString("\nBy type:\n")
		for _, typ := range sortedKeys(counts.ByType) {
			sb.WriteString(fmt.Sprintf("  %-12s %d\n", typ, counts.ByType[typ]))
		}
	}

	sb.WriteString(fmt.Sprintf("\nDynamic: %d  With CTA: %d", counts.Dynamic, counts.WithCTA))

	p.printBox("AGGREGATE COUNTS", sb.String())
}

// sortedKeys returns map keys in deterministic order for stable output.
func sortedKeys(m map[string]int) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
