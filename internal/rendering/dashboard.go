// Package rendering provides functionality to render the static dashboard page from templates.
package rendering

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"html/template"
	"os"
	"strings"
	"time"

	"github.com/hometap/smartfacts-dashboard/internal/types"
)

//go:embed assets/dashboard.html.tmpl
var defaultTemplate string

// DefaultTitle is the page title when none is configured.
const DefaultTitle = "Smart Facts Dashboard"

// Options configures dashboard rendering.
type Options struct {
	Title        string
	TemplatePath string           // optional override of the embedded template
	Now          func() time.Time // injectable clock for the last-updated field
}

// templateData is the substitution payload for the dashboard template.
type templateData struct {
	Title        string
	LastUpdated  string
	InsightsJSON template.JS
	StatsJSON    template.JS
}

// RenderDashboard produces the complete page content. Output is deterministic
// for identical inputs apart from the last-updated field, which comes from
// the injectable clock.
func RenderDashboard(insights []types.Insight, counts types.AggregateCounts, opts Options) (string, error) {
	tmpl, err := loadTemplate(opts.TemplatePath)
	if err != nil {
		return "", err
	}

	data, err := buildTemplateData(insights, counts, opts)
	if err != nil {
		return "", &RenderError{Message: "failed to build template data", Cause: err}
	}

	var result strings.Builder
	if err := tmpl.Execute(&result, data); err != nil {
		return "", &TemplateError{Message: "failed to execute template", Cause: err}
	}
	return result.String(), nil
}

// WriteDashboard writes the page atomically enough for our purposes: content
// is rendered fully in memory before this call, so a failed run never
// truncates the previous output.
func WriteDashboard(path, content string) error {
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return &RenderError{Message: fmt.Sprintf("failed to write output file %s", path), Cause: err}
	}
	return nil
}

func loadTemplate(path string) (*template.Template, error) {
	content := defaultTemplate
	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			if os.IsNotExist(err) {
				return nil, &TemplateError{Message: fmt.Sprintf("template file not found: %s", path), Cause: err}
			}
			return nil, &TemplateError{Message: fmt.Sprintf("failed to read template file: %s", path), Cause: err}
		}
		content = string(raw)
	}

	tmpl, err := template.New("dashboard").Parse(content)
	if err != nil {
		return nil, &TemplateError{Message: "failed to parse template", Cause: err}
	}
	return tmpl, nil
}

func buildTemplateData(insights []types.Insight, counts types.AggregateCounts, opts Options) (*templateData, error) {
	if insights == nil {
		insights = []types.Insight{}
	}

	insightsJSON, err := json.MarshalIndent(insights, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal insights: %w", err)
	}
	statsJSON, err := json.Marshal(counts)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal counts: %w", err)
	}

	title := opts.Title
	if title == "" {
		title = DefaultTitle
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}

	return &templateData{
		Title:        title,
		LastUpdated:  now().Format("January 2, 2006 at 3:04 PM"),
		InsightsJSON: template.JS(insightsJSON), //nolint:gosec // encoding/json escapes <, >, & in string values
		StatsJSON:    template.JS(statsJSON),    //nolint:gosec // same as above
	}, nil
}
