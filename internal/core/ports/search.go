package ports

import (
	"context"

	"github.com/caltrack/caltrack/internal/core/domain"
)

// FoodCandidate is an ephemeral food description produced during search. It
// is never persisted; logging a candidate creates a domain.FoodEntry instead.
type FoodCandidate struct {
	Name        string
	Brand       string
	Barcode     string
	Image       string
	ServingSize string
	Nutrients   domain.Nutrients
}

// ScoredCandidate pairs a candidate with its transient ranking fields.
// Relevance orders candidates inside one search response; Source records
// which provider produced the candidate. Both are stripped before results
// leave the search service.
type ScoredCandidate struct {
	FoodCandidate
	Relevance int
	Source    string
}

// FoodProvider is a single search source. Providers report errors honestly;
// the search service is what degrades a failed source to zero candidates.
type FoodProvider interface {
	// Name identifies the provider in logs and metrics.
	Name() string
	// Available reports whether the provider is configured to run. Skipped
	// providers contribute nothing and are never called.
	Available() bool
	Search(ctx context.Context, query string) ([]ScoredCandidate, error)
}

// BarcodeLookup resolves a single product by barcode.
type BarcodeLookup interface {
	Lookup(ctx context.Context, code string) (*FoodCandidate, error)
}

// FoodSearchService aggregates the configured providers into one ranked,
// deduplicated result list. Search cannot fail: every provider error degrades
// that source to zero candidates, so the worst case is an empty list.
type FoodSearchService interface {
	Search(ctx context.Context, query string) []FoodCandidate
	Barcode(ctx context.Context, code string) (*FoodCandidate, error)
}
