package extraction

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hometap/smartfacts-dashboard/internal/types"
)

const sampleDefinitions = `
from portals.apps.smart_facts.enums import SmartFactStatus, Context

SMART_FACTS = [
    SmartFactDefinition(
        id="SMRT1",
        content=(
            "Interest rates can be unpredictable. But there are ways to "
            "access your equity without losing your current low mortgage rate."
        ),
        status=SmartFactStatus.LIVE,
        priority=1,
        cta_text="See ways to access equity",
        cta_url="https://www.hometap.com/blog/cash-out-refinance-vs-a-home-equity-loan/",
        required_context=[Context.SYSTEM],
        requires_primary_user=False,
        requires_profile_complete=False,
    ),
    SmartFactDefinition(
        id="SMRT12",
        content="Your home has gained value since your investment started.",
        status="review",
        priority=3,
        category="home_equity",
        required_context=[Context.HOME, Context.INVESTMENT],
        requires_primary_user=True,
    ),
    # Retired copy kept for reference.
    SmartFactDefinition(
        id="SMRT7",
        content='''Homeowners who renovate see an average 70% return at resale.''',
        status=SmartFactStatus.RETIRED,
        priority=2,
    ),
]
`

const sampleTemplates = `
DISPLAY_TEMPLATES = {
    "SMRT12": """Your home has gained {appreciation_amount} in value since {investment_start_date}.""",
    "SMRT7": "Homeowners who renovate see an average 70% return at resale.",
}
`

func TestExtract(t *testing.T) {
	extractor := New(nil)
	insights := extractor.Extract(sampleDefinitions, sampleTemplates)
	require.Len(t, insights, 3)

	first := insights[0]
	assert.Equal(t, "SMRT1", first.ID)
	assert.Equal(t, types.StatusLive, first.Status)
	assert.Equal(t, 1, first.Priority)
	assert.Equal(t, "static", first.Type)
	assert.False(t, first.IsDynamic)
	assert.True(t, first.HasCTA)
	require.NotNil(t, first.CTA)
	assert.Equal(t, "See ways to access equity", first.CTA.Text)
	assert.Equal(t, []string{"SYSTEM"}, first.RequiredContext)
	assert.Contains(t, first.Content, "access your equity without losing")

	second := insights[1]
	assert.Equal(t, "SMRT12", second.ID)
	assert.Equal(t, types.StatusReview, second.Status)
	assert.Equal(t, "home-equity", second.Type, "explicit category wins over static/dynamic")
	assert.True(t, second.IsDynamic)
	assert.Equal(t, []string{"appreciation_amount", "investment_start_date"}, second.TemplateKeys)
	assert.True(t, second.RequiresPrimaryUser)
	assert.Equal(t, []string{"HOME", "INVESTMENT"}, second.RequiredContext)

	third := insights[2]
	assert.Equal(t, "SMRT7", third.ID)
	assert.Equal(t, types.StatusRetired, third.Status)
	assert.False(t, third.IsDynamic, "template without placeholders is still static")
	assert.False(t, third.HasCTA)
}

func TestExtractIDsAreSubsetOfSource(t *testing.T) {
	extractor := New(nil)
	insights := extractor.Extract(sampleDefinitions, sampleTemplates)

	seen := make(map[string]bool)
	for _, insight := range insights {
		assert.Contains(t, sampleDefinitions, `"`+insight.ID+`"`, "extracted id must appear in source text")
		assert.False(t, seen[insight.ID], "no duplicate ids")
		seen[insight.ID] = true
	}
}

func TestExtractSkipsMalformedBlocks(t *testing.T) {
	tests := []struct {
		name        string
		definitions string
		wantIDs     []string
	}{
		{
			name: "Missing content is skipped",
			definitions: `
    SmartFactDefinition(
        id="SMRT1",
        status=SmartFactStatus.LIVE,
    ),
    SmartFactDefinition(
        id="SMRT2",
        content="Valid entry.",
        status=SmartFactStatus.LIVE,
    ),
`,
			wantIDs: []string{"SMRT2"},
		},
		{
			name: "Missing id is skipped",
			definitions: `
    SmartFactDefinition(
        content="No id here.",
        status=SmartFactStatus.LIVE,
    ),
`,
			wantIDs: nil,
		},
		{
			name: "Missing status is skipped",
			definitions: `
    SmartFactDefinition(
        id="SMRT9",
        content="No status here.",
    ),
`,
			wantIDs: nil,
		},
		{
			name: "Duplicate id keeps first occurrence",
			definitions: `
    SmartFactDefinition(
        id="SMRT1",
        content="First.",
        status=SmartFactStatus.LIVE,
    ),
    SmartFactDefinition(
        id="SMRT1",
        content="Second.",
        status=SmartFactStatus.DRAFT,
    ),
`,
			wantIDs: []string{"SMRT1"},
		},
		{
			name: "Malformed CTA URL is skipped",
			definitions: `
    SmartFactDefinition(
        id="SMRT3",
        content="CTA points nowhere.",
        status=SmartFactStatus.LIVE,
        cta_text="Learn more",
        cta_url="not a url",
    ),
`,
			wantIDs: nil,
		},
		{
			name:        "Empty source yields no records",
			definitions: "",
			wantIDs:     nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			extractor := New(nil)
			insights := extractor.Extract(tt.definitions, "")

			var ids []string
			for _, insight := range insights {
				ids = append(ids, insight.ID)
			}
			assert.Equal(t, tt.wantIDs, ids)
		})
	}
}

func TestExtractDuplicateKeepsFirstContent(t *testing.T) {
	definitions := `
    SmartFactDefinition(
        id="SMRT1",
        content="First.",
        status=SmartFactStatus.LIVE,
    ),
    SmartFactDefinition(
        id="SMRT1",
        content="Second.",
        status=SmartFactStatus.DRAFT,
    ),
`
	insights := New(nil).Extract(definitions, "")
	require.Len(t, insights, 1)
	assert.Equal(t, "First.", insights[0].Content)
	assert.Equal(t, types.StatusLive, insights[0].Status)
}

func TestExtractIsDeterministic(t *testing.T) {
	a := New(nil).Extract(sampleDefinitions, sampleTemplates)
	b := New(nil).Extract(sampleDefinitions, sampleTemplates)
	assert.Equal(t, a, b)
}

func TestFindDefinitionBlocks(t *testing.T) {
	blocks := findDefinitionBlocks(sampleDefinitions)
	require.Len(t, blocks, 3)
	assert.True(t, strings.Contains(blocks[0], `id="SMRT1"`))
	assert.True(t, strings.Contains(blocks[2], "70% return"))
}

func TestFindDefinitionBlocksIgnoresMarkerInString(t *testing.T) {
	source := `
    note = "call SmartFactDefinition( manually"
    SmartFactDefinition(
        id="SMRT1",
        content="Real block.",
        status="live",
    ),
`
	blocks := findDefinitionBlocks(source)
	require.Len(t, blocks, 1)
	assert.Contains(t, blocks[0], "Real block.")
}
