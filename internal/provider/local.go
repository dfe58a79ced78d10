package provider

import (
	"context"

	"github.com/caltrack/caltrack/internal/core/ports"
)

// Relevance scale for the local table, the highest-priority source.
const (
	localExact     = 300
	localPrefix    = 250
	localSubstring = 170

	// Bonuses nudge short, generic entries above longer or branded ones
	// inside the same match tier.
	localShortNameBonus = 15
	localGenericBonus   = 20
	localShortNameLen   = 12
)

// localBrand is the brand every built-in table entry carries.
const localBrand = "Generic"

// LocalTable serves the built-in list of common foods. It runs in-process,
// always participates when enabled, and cannot fail.
type LocalTable struct {
	enabled bool
}

func NewLocalTable(enabled bool) *LocalTable {
	return &LocalTable{enabled: enabled}
}

func (t *LocalTable) Name() string { return "local" }

func (t *LocalTable) Available() bool { return t.enabled }

// Search scans the table for names containing the query. Non-matching
// entries are not returned at all, unlike the remote sources.
func (t *LocalTable) Search(_ context.Context, query string) ([]ports.ScoredCandidate, error) {
	var out []ports.ScoredCandidate
	for _, f := range localFoods {
		relevance := localRelevance(f.name, localBrand, query)
		if relevance == 0 {
			continue
		}
		out = append(out, ports.ScoredCandidate{
			FoodCandidate: ports.FoodCandidate{
				Name:        f.name,
				Brand:       localBrand,
				ServingSize: "100g",
				Nutrients:   f.per100g,
			},
			Relevance: relevance,
			Source:    t.Name(),
		})
	}
	return out, nil
}

func localRelevance(name, brand, query string) int {
	r := matchRelevance(name, query, localExact, localPrefix, localSubstring)
	if r == 0 {
		return 0
	}
	if len(name) < localShortNameLen {
		r += localShortNameBonus
	}
	if brand == localBrand {
		r += localGenericBonus
	}
	return r
}
