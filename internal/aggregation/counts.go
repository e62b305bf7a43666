// Package aggregation derives summary statistics from the extracted insight set.
package aggregation

import (
	"github.com/hometap/smartfacts-dashboard/internal/types"
)

// Count computes aggregate counts over the insight slice. Pure: no side
// effects and no error conditions. Empty input is valid and yields zero
// counts with non-nil maps.
func Count(insights []types.Insight) types.AggregateCounts {
	counts := types.AggregateCounts{
		Total:    len(insights),
		ByStatus: make(map[string]int),
		ByType:   make(map[string]int),
	}

	for _, insight := range insights {
		counts.ByStatus[insight.Status]++
		counts.ByType[insight.Type]++

		switch insight.Status {
		case types.StatusLive:
			counts.Live++
		case types.StatusReview:
			counts.Review++
		case types.StatusRetired:
			counts.Retired++
		}
		if insight.IsDynamic {
			counts.Dynamic++
		}
		if insight.HasCTA {
			counts.WithCTA++
		}
	}

	return counts
}
