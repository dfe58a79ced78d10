// Package provider implements the food-search sources consumed by the
// aggregator: the built-in local table and the three external nutrition
// databases. Each source scores its own candidates on a source-specific
// relevance scale so that curated data outranks crowd-sourced data when
// names match equally well.
package provider

import "strings"

// matchRelevance grades how well a candidate name matches the query: exact
// name match, query prefix, substring anywhere, or no match at all (0).
// Comparison is case-insensitive on trimmed values.
func matchRelevance(name, query string, exact, prefix, substring int) int {
	n := strings.ToLower(strings.TrimSpace(name))
	q := strings.ToLower(strings.TrimSpace(query))
	switch {
	case n == q:
		return exact
	case strings.HasPrefix(n, q):
		return prefix
	case strings.Contains(n, q):
		return substring
	default:
		return 0
	}
}
