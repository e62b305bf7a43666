package export

import (
	"bytes"
	"encoding/csv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hometap/smartfacts-dashboard/internal/types"
)

func TestWriteCSV(t *testing.T) {
	insights := []types.Insight{
		{
			ID:                  "SMRT1",
			Content:             "Line one.\nLine two, with a comma.",
			Status:              types.StatusLive,
			Type:                "static",
			Priority:            1,
			HasCTA:              true,
			CTA:                 &types.CTA{Text: "See more", URL: "https://www.hometap.com/"},
			RequiredContext:     []string{"SYSTEM", "HOME"},
			RequiresPrimaryUser: true,
		},
		{
			ID:           "SMRT12",
			Content:      "Dynamic copy.",
			Status:       types.StatusReview,
			Type:         "dynamic",
			IsDynamic:    true,
			TemplateKeys: []string{"appreciation_amount"},
		},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, insights))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3, "header plus one row per insight")

	assert.Equal(t, csvHeader, records[0])

	first := records[1]
	assert.Equal(t, "SMRT1", first[0])
	assert.Equal(t, "live", first[1])
	assert.Equal(t, "1", first[2])
	assert.Equal(t, "Line one. Line two, with a comma.", first[4], "newlines collapsed")
	assert.Equal(t, "See more", first[6])
	assert.Equal(t, "SYSTEM; HOME", first[8])
	assert.Equal(t, "Yes", first[9])
	assert.Equal(t, "No", first[10])
	assert.Equal(t, "Yes", first[11])

	second := records[2]
	assert.Equal(t, "SMRT12", second[0])
	assert.Equal(t, "appreciation_amount", second[5])
	assert.Equal(t, "", second[6], "no CTA columns without a CTA")
}

func TestWriteCSVEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, nil))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 1, "header only")
}
