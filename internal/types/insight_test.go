package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInsightValidate(t *testing.T) {
	tests := []struct {
		name    string
		insight Insight
		wantErr bool
	}{
		{
			name: "Valid static insight",
			insight: Insight{
				ID:      "SMRT1",
				Content: "Interest rates can be unpredictable.",
				Status:  StatusLive,
				Type:    "static",
			},
			wantErr: false,
		},
		{
			name: "Valid insight with CTA",
			insight: Insight{
				ID:      "SMRT2",
				Content: "See ways to access equity without refinancing.",
				Status:  StatusReview,
				Type:    "home-equity",
				HasCTA:  true,
				CTA: &CTA{
					Text: "See ways to access equity",
					URL:  "https://www.hometap.com/blog/cash-out-refinance/",
				},
			},
			wantErr: false,
		},
		{
			name: "Missing ID",
			insight: Insight{
				Content: "Some content",
				Status:  StatusLive,
				Type:    "static",
			},
			wantErr: true,
		},
		{
			name: "Missing content",
			insight: Insight{
				ID:     "SMRT3",
				Status: StatusLive,
				Type:   "static",
			},
			wantErr: true,
		},
		{
			name: "Missing status",
			insight: Insight{
				ID:      "SMRT4",
				Content: "Some content",
				Type:    "static",
			},
			wantErr: true,
		},
		{
			name: "CTA with invalid URL",
			insight: Insight{
				ID:      "SMRT5",
				Content: "Some content",
				Status:  StatusLive,
				Type:    "static",
				HasCTA:  true,
				CTA: &CTA{
					Text: "Learn more",
					URL:  "not a url",
				},
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.insight.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestInsightJSONFieldNames(t *testing.T) {
	insight := Insight{
		ID:           "SMRT1",
		Content:      "content",
		Status:       StatusLive,
		Type:         "dynamic",
		Priority:     2,
		IsDynamic:    true,
		HasCTA:       true,
		CTA:          &CTA{Text: "Go", URL: "https://example.com"},
		TemplateKeys: []string{"investment_amount"},
	}

	data, err := json.Marshal(insight)
	require.NoError(t, err)

	var raw map[string]any
	require.NoError(t, json.Unmarshal(data, &raw))

	// The dashboard's client-side code depends on these exact keys.
	for _, key := range []string{"id", "content", "status", "type", "priority", "isDynamic", "hasCta", "cta", "templateKeys"} {
		assert.Contains(t, raw, key)
	}
	assert.NotContains(t, raw, "requiredContext", "empty slices should be omitted")
}
