// Package export writes the extracted dataset in interchange formats.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/hometap/smartfacts-dashboard/internal/types"
)

// csvHeader matches the column layout of the dashboard's client-side export.
var csvHeader = []string{
	"ID", "Status", "Priority", "Type", "Content", "Dynamic Variables",
	"CTA Text", "CTA URL", "Required Context", "Requires Primary User",
	"Requires Profile Complete", "Has CTA",
}

// WriteCSV writes the insight set as CSV, one row per record.
func WriteCSV(w io.Writer, insights []types.Insight) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	for _, insight := range insights {
		ctaText, ctaURL := "", ""
		if insight.CTA != nil {
			ctaText = insight.CTA.Text
			ctaURL = insight.CTA.URL
		}
		row := []string{
			insight.ID,
			insight.Status,
			fmt.Sprintf("%d", insight.Priority),
			insight.Type,
			flattenContent(insight.Content),
			strings.Join(insight.TemplateKeys, "; "),
			ctaText,
			ctaURL,
			strings.Join(insight.RequiredContext, "; "),
			yesNo(insight.RequiresPrimaryUser),
			yesNo(insight.RequiresProfileComplete),
			yesNo(insight.HasCTA),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("failed to write CSV row for %s: %w", insight.ID, err)
		}
	}

	cw.Flush()
	return cw.Error()
}

// flattenContent collapses newlines so multi-line copy stays on one CSV row,
// matching the client-side export behavior.
func flattenContent(content string) string {
	content = strings.ReplaceAll(content, "\r", "")
	return strings.ReplaceAll(content, "\n", " ")
}

func yesNo(v bool) string {
	if v {
		return "Yes"
	}
	return "No"
}
