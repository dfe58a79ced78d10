package provider

import (
	"context"
	"testing"

	"github.com/caltrack/caltrack/internal/core/ports"
)

func findCandidate(t *testing.T, got []ports.ScoredCandidate, name string) ports.ScoredCandidate {
	t.Helper()
	for _, c := range got {
		if c.Name == name {
			return c
		}
	}
	t.Fatalf("candidate %q not in results", name)
	return ports.ScoredCandidate{}
}

func TestLocalTable_RelevanceTiers(t *testing.T) {
	table := NewLocalTable(true)

	got, err := table.Search(context.Background(), "chick")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	cases := []struct {
		name string
		want int
	}{
		// prefix 250 + generic 20; both names are 12+ characters
		{"Chicken Breast", 270},
		{"Chicken Thigh", 270},
		// substring 170 + generic 20
		{"Fried Chicken", 190},
	}
	for _, tc := range cases {
		if c := findCandidate(t, got, tc.name); c.Relevance != tc.want {
			t.Errorf("%s: expected relevance %d, got %d", tc.name, tc.want, c.Relevance)
		}
	}
	if len(got) != len(cases) {
		t.Errorf("expected %d chicken entries, got %d", len(cases), len(got))
	}
}

func TestLocalTable_ExactMatchWithBonuses(t *testing.T) {
	table := NewLocalTable(true)

	got, err := table.Search(context.Background(), "apple")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// exact 300 + short name 15 + generic 20
	if c := findCandidate(t, got, "Apple"); c.Relevance != 335 {
		t.Errorf("Apple: expected relevance 335, got %d", c.Relevance)
	}
	// "Pineapple" contains the query: substring 170 + short name 15 + generic 20
	if c := findCandidate(t, got, "Pineapple"); c.Relevance != 205 {
		t.Errorf("Pineapple: expected relevance 205, got %d", c.Relevance)
	}
	if len(got) != 2 {
		t.Errorf("non-matching entries must be skipped, got %d results", len(got))
	}
}

func TestLocalTable_CaseInsensitive(t *testing.T) {
	table := NewLocalTable(true)

	upper, err := table.Search(context.Background(), "APPLE")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	lower, err := table.Search(context.Background(), "apple")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(upper) != len(lower) {
		t.Fatalf("case must not affect matching: %d vs %d", len(upper), len(lower))
	}
	for i := range upper {
		if upper[i].Relevance != lower[i].Relevance {
			t.Errorf("case must not affect scoring: %+v vs %+v", upper[i], lower[i])
		}
	}
}

func TestLocalTable_CandidateShape(t *testing.T) {
	table := NewLocalTable(true)

	got, err := table.Search(context.Background(), "tofu")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected exactly Tofu, got %d results", len(got))
	}

	c := got[0]
	if c.Brand != "Generic" {
		t.Errorf("expected the shared brand, got %q", c.Brand)
	}
	if c.ServingSize != "100g" {
		t.Errorf("expected the per-100g serving, got %q", c.ServingSize)
	}
	if c.Source != "local" {
		t.Errorf("expected source local, got %q", c.Source)
	}
	if c.Nutrients.Calories != 76 || c.Nutrients.Protein != 8 {
		t.Errorf("table values lost in mapping: %+v", c.Nutrients)
	}
}

func TestLocalTable_Available(t *testing.T) {
	if !NewLocalTable(true).Available() {
		t.Error("enabled table must be available")
	}
	if NewLocalTable(false).Available() {
		t.Error("disabled table must not be available")
	}
	if NewLocalTable(true).Name() != "local" {
		t.Error("unexpected provider name")
	}
}
