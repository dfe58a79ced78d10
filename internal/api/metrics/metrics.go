// Package metrics defines and registers all custom Prometheus metrics for the
// caltrack API. It is the single source of truth for metric names, labels,
// and help strings. Everything registers against the default registry at
// package init via promauto.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "caltrack"

// ── Search metrics ────────────────────────────────────────────────────────────

// SearchesTotal counts food searches that reached the aggregator.
// Label:
//   - outcome: "results" when at least one candidate was returned, "empty"
//     otherwise (including queries rejected for being too short)
var SearchesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "searches_total",
		Help:      "Total number of food searches, by outcome (results/empty).",
	},
	[]string{"outcome"},
)

// SearchDuration measures a whole aggregated search, all sources included.
var SearchDuration = promauto.NewHistogram(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "search_duration_seconds",
		Help:      "Duration of a full food search across all attempted sources.",
		Buckets:   prometheus.DefBuckets, // .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10
	},
)

// SearchResultCount observes how many candidates survived merge, dedup, and
// the result cap.
var SearchResultCount = promauto.NewHistogram(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "search_result_count",
		Help:      "Number of candidates returned per search after ranking.",
		Buckets:   []float64{0, 1, 3, 5, 10, 15, 20, 30},
	},
)

// SearchDuplicatesDropped counts candidates discarded by (name, brand)
// deduplication during merge.
var SearchDuplicatesDropped = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "search_duplicates_dropped_total",
		Help:      "Total number of candidates dropped as (name, brand) duplicates.",
	},
)

// ── Provider metrics ──────────────────────────────────────────────────────────

// ProviderRequestsTotal counts attempts against each search source.
// Labels:
//   - provider: source name ("local", "nutritionix", "edamam", "openfoodfacts")
//   - result: "ok" or "error"
var ProviderRequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "provider_requests_total",
		Help:      "Total number of provider search attempts, by provider and result.",
	},
	[]string{"provider", "result"},
)

// ProviderDuration measures each provider call individually.
// Label:
//   - provider: source name
var ProviderDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "provider_duration_seconds",
		Help:      "Duration of individual provider search calls.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"provider"},
)

// ProviderCandidates observes how many raw candidates each provider
// contributed before merge.
// Label:
//   - provider: source name
var ProviderCandidates = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "provider_candidates",
		Help:      "Raw candidates contributed per provider call, before ranking.",
		Buckets:   []float64{0, 1, 3, 5, 10, 15, 20, 30},
	},
	[]string{"provider"},
)

// ── Diary metrics ─────────────────────────────────────────────────────────────

// EntriesLoggedTotal counts diary entries created.
// Label:
//   - meal: "breakfast", "lunch", "dinner", or "snack"
var EntriesLoggedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "entries_logged_total",
		Help:      "Total number of food entries logged, by meal.",
	},
	[]string{"meal"},
)

// ── Barcode metrics ───────────────────────────────────────────────────────────

// BarcodeLookupsTotal counts barcode lookups.
// Label:
//   - result: "found", "not_found", or "error"
var BarcodeLookupsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "barcode_lookups_total",
		Help:      "Total number of barcode lookups, by result.",
	},
	[]string{"result"},
)
