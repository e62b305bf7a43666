// Package types provides type definitions for structured data used throughout the dashboard builder.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"github.com/go-playground/validator/v10"
)

// Known insight statuses. Unknown statuses are preserved as-is so counts stay total.
const (
	StatusLive     = "live"
	StatusReview   = "review"
	StatusDraft    = "draft"
	StatusRetired  = "retired"
	StatusArchived = "archived"
)

// CTA represents a call-to-action attached to an insight
type CTA struct {
	Text string `json:"text" validate:"required"`
	URL  string `json:"url" validate:"required,url"`
}

// Insight represents one normalized Smart Fact record extracted from the codebase.
// JSON field names match the dataset embedded in the dashboard page.
type Insight struct {
	ID                      string   `json:"id" validate:"required"`
	Content                 string   `json:"content" validate:"required"`
	Status                  string   `json:"status" validate:"required"`
	Type                    string   `json:"type" validate:"required"`
	Priority                int      `json:"priority"`
	IsDynamic               bool     `json:"isDynamic"`
	HasCTA                  bool     `json:"hasCta"`
	CTA                     *CTA     `json:"cta,omitempty"`
	RequiredContext         []string `json:"requiredContext,omitempty"`
	RequiresPrimaryUser     bool     `json:"requiresPrimaryUser"`
	RequiresProfileComplete bool     `json:"requiresProfileComplete"`
	TemplateKeys            []string `json:"templateKeys,omitempty"`
}

// InsightSet represents the full extracted dataset (wrapper for schema)
type InsightSet struct {
	Insights []Insight `json:"insights"`
}

// Validate validates the Insight using the validator.
func (i *Insight) Validate() error {
	validate := validator.New()
	return validate.Struct(i)
}
