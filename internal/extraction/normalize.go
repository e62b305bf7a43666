package extraction

import (
	"strings"

	"github.com/hometap/smartfacts-dashboard/internal/types"
)

// statusNormalizations maps status spelling variants to canonical names.
// The definition files reference statuses both as enum members
// (SmartFactStatus.LIVE) and as plain strings, and the vocabulary has
// drifted over time.
var statusNormalizations = map[string]string{
	"live":           types.StatusLive,
	"active":         types.StatusLive,
	"published":      "published",
	"review":         types.StatusReview,
	"in_review":      types.StatusReview,
	"under_review":   types.StatusReview,
	"pending_review": types.StatusReview,
	"draft":          types.StatusDraft,
	"candidate":      "candidate",
	"wip":            types.StatusDraft,
	"retired":        types.StatusRetired,
	"deprecated":     types.StatusRetired,
	"archived":       types.StatusArchived,
	"decommissioned": types.StatusArchived,
}

// NormalizeStatus canonicalizes a status value. Unknown statuses are
// lowercased and passed through so aggregation stays total over the record set.
func NormalizeStatus(status string) string {
	normalized := strings.ToLower(strings.TrimSpace(attrName(status)))
	if canonical, ok := statusNormalizations[normalized]; ok {
		return canonical
	}
	return normalized
}

// NormalizeCategory canonicalizes a category tag: trimmed, lowercased, with
// spaces and underscores collapsed to hyphens ("Home Equity" becomes "home-equity").
func NormalizeCategory(category string) string {
	normalized := strings.ToLower(strings.TrimSpace(category))
	normalized = strings.ReplaceAll(normalized, "_", "-")
	normalized = strings.Join(strings.Fields(normalized), "-")
	return normalized
}
