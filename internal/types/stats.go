// Package types provides type definitions for structured data used throughout the dashboard builder.
//
//nolint:revive // types is a standard Go package name pattern
package types

// AggregateCounts represents derived summary statistics over the insight set.
// Recomputed on every run; never persisted outside the rendered page.
type AggregateCounts struct {
	Total    int            `json:"total"`
	ByStatus map[string]int `json:"byStatus"`
	ByType   map[string]int `json:"byType"`

	// Headline counters for the dashboard stat cards.
	Live    int `json:"live"`
	Review  int `json:"review"`
	Retired int `json:"retired"`
	Dynamic int `json:"dynamic"`
	WithCTA int `json:"withCta"`
}
