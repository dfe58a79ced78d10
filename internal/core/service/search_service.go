package service

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/caltrack/caltrack/internal/api/metrics"
	"github.com/caltrack/caltrack/internal/core/domain"
	"github.com/caltrack/caltrack/internal/core/ports"
)

const (
	// Queries shorter than this return empty without touching any source.
	minQueryLen = 2
	// Hard cap on the merged result list.
	maxResults = 30
	// The community fallback only runs when the primary sources produced
	// fewer candidates than this.
	fallbackThreshold = 12
)

// SearchService aggregates the configured food providers into one ranked,
// deduplicated candidate list. Sources run strictly sequentially in priority
// order; each invocation is stateless, so concurrent callers need no locking.
type SearchService struct {
	primary  []ports.FoodProvider
	fallback ports.FoodProvider
	barcode  ports.BarcodeLookup
	logger   zerolog.Logger
}

// NewSearchService wires the primary sources (priority order), the community
// fallback, and the barcode lookup backend. fallback and barcode may be nil
// when the community database is disabled.
func NewSearchService(primary []ports.FoodProvider, fallback ports.FoodProvider, barcode ports.BarcodeLookup, logger zerolog.Logger) *SearchService {
	return &SearchService{
		primary:  primary,
		fallback: fallback,
		barcode:  barcode,
		logger:   logger,
	}
}

// Search runs the sources in priority order and merges their candidates. A
// search cannot fail: every provider error degrades that source to zero
// candidates, so the worst case is an empty list.
func (s *SearchService) Search(ctx context.Context, query string) []ports.FoodCandidate {
	q := strings.TrimSpace(query)
	if len(q) < minQueryLen {
		metrics.SearchesTotal.WithLabelValues("empty").Inc()
		return []ports.FoodCandidate{}
	}

	start := time.Now()

	var scored []ports.ScoredCandidate
	for _, p := range s.primary {
		scored = append(scored, s.collect(ctx, p, q)...)
	}
	// The fallback exists purely for result variety.
	if len(scored) < fallbackThreshold && s.fallback != nil {
		scored = append(scored, s.collect(ctx, s.fallback, q)...)
	}

	results := finalize(scored)

	metrics.SearchDuration.Observe(time.Since(start).Seconds())
	metrics.SearchResultCount.Observe(float64(len(results)))
	outcome := "results"
	if len(results) == 0 {
		outcome = "empty"
	}
	metrics.SearchesTotal.WithLabelValues(outcome).Inc()

	s.logger.Debug().
		Str("query", q).
		Int("candidates", len(scored)).
		Int("results", len(results)).
		Msg("food search completed")

	return results
}

// collect runs one provider, degrading any failure to zero candidates.
// Unavailable providers are skipped without a network call.
func (s *SearchService) collect(ctx context.Context, p ports.FoodProvider, query string) []ports.ScoredCandidate {
	if !p.Available() {
		return nil
	}

	start := time.Now()
	candidates, err := p.Search(ctx, query)
	metrics.ProviderDuration.WithLabelValues(p.Name()).Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.ProviderRequestsTotal.WithLabelValues(p.Name(), "error").Inc()
		s.logger.Warn().Err(err).Str("provider", p.Name()).Str("query", query).Msg("food provider failed")
		return nil
	}
	metrics.ProviderRequestsTotal.WithLabelValues(p.Name(), "ok").Inc()
	metrics.ProviderCandidates.WithLabelValues(p.Name()).Observe(float64(len(candidates)))
	return candidates
}

type dedupKey struct {
	name  string
	brand string
}

// finalize sorts the merged candidates by descending relevance with shorter
// names winning ties, drops (name, brand) duplicates keeping the first
// occurrence, strips the transient ranking fields, and caps the list. The
// stable sort keeps source priority as the last tiebreak, so the output is
// deterministic for identical inputs.
func finalize(scored []ports.ScoredCandidate) []ports.FoodCandidate {
	sort.SliceStable(scored, func(i, j int) bool {
		if scored[i].Relevance != scored[j].Relevance {
			return scored[i].Relevance > scored[j].Relevance
		}
		return len(scored[i].Name) < len(scored[j].Name)
	})

	results := make([]ports.FoodCandidate, 0, maxResults)
	seen := make(map[dedupKey]struct{}, len(scored))
	for _, c := range scored {
		key := dedupKey{
			name:  strings.ToLower(strings.TrimSpace(c.Name)),
			brand: strings.ToLower(strings.TrimSpace(c.Brand)),
		}
		if _, dup := seen[key]; dup {
			metrics.SearchDuplicatesDropped.Inc()
			continue
		}
		seen[key] = struct{}{}
		results = append(results, c.FoodCandidate)
		if len(results) == maxResults {
			break
		}
	}
	return results
}

// Barcode resolves a single product by code through the community database.
func (s *SearchService) Barcode(ctx context.Context, code string) (*ports.FoodCandidate, error) {
	if s.barcode == nil {
		return nil, domain.ErrProviderDisabled
	}

	product, err := s.barcode.Lookup(ctx, code)
	if err != nil {
		if err == domain.ErrProductNotFound {
			metrics.BarcodeLookupsTotal.WithLabelValues("not_found").Inc()
			return nil, err
		}
		metrics.BarcodeLookupsTotal.WithLabelValues("error").Inc()
		s.logger.Warn().Err(err).Str("barcode", code).Msg("barcode lookup failed")
		return nil, fmt.Errorf("barcode lookup: %w", err)
	}

	metrics.BarcodeLookupsTotal.WithLabelValues("found").Inc()
	return product, nil
}
