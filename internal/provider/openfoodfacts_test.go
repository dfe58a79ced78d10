package provider

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/caltrack/caltrack/internal/core/domain"
)

func TestOpenFoodFacts_Search(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/cgi/search.pl" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		q := r.URL.Query()
		if q.Get("search_terms") != "granola" {
			t.Errorf("unexpected search terms: %q", q.Get("search_terms"))
		}
		if q.Get("json") != "1" || q.Get("page_size") != "15" {
			t.Errorf("unexpected query flags: %s", r.URL.RawQuery)
		}

		long := strings.Repeat("x", 101)
		fmt.Fprintf(w, `{
			"products": [
				{
					"product_name": "Granola",
					"brands": "Morning Mills",
					"code": "0012345678905",
					"image_small_url": "https://img.example/granola.jpg",
					"serving_size": "45g",
					"nutriments": {
						"energy-kcal_100g": 471,
						"proteins_100g": 10,
						"carbohydrates_100g": 64,
						"fat_100g": 20,
						"fiber_100g": 7,
						"sugars_100g": 24,
						"sodium_100g": 0.5
					}
				},
				{
					"product_name": "",
					"code": "111"
				},
				{
					"product_name": "%s",
					"code": "222"
				},
				{
					"product_name": "Granola Clusters",
					"code": "333",
					"nutriments": {"energy-kcal_100g": 450}
				}
			]
		}`, long)
	}))
	defer srv.Close()

	o := NewOpenFoodFacts(true)
	o.BaseURL = srv.URL

	got, err := o.Search(context.Background(), "granola")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("unnamed and overlong products must be skipped, got %d", len(got))
	}

	first := got[0]
	if first.Name != "Granola" || first.Relevance != 120 {
		t.Errorf("exact match must score 120: %q %d", first.Name, first.Relevance)
	}
	if first.Brand != "Morning Mills" || first.ServingSize != "45g" {
		t.Errorf("product fields lost: %q %q", first.Brand, first.ServingSize)
	}
	// sodium arrives as grams per 100g and leaves as milligrams
	if first.Nutrients.Sodium != 500 {
		t.Errorf("expected sodium rescaled to 500mg, got %v", first.Nutrients.Sodium)
	}
	if first.Source != "openfoodfacts" {
		t.Errorf("expected source openfoodfacts, got %q", first.Source)
	}

	second := got[1]
	if second.Relevance != 100 {
		t.Errorf("prefix match must score 100, got %d", second.Relevance)
	}
	if second.Brand != "Store Brand" || second.ServingSize != "100g" {
		t.Errorf("missing fields must fall back to defaults: %q %q", second.Brand, second.ServingSize)
	}
}

func TestOpenFoodFacts_Search_UpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "bad gateway", http.StatusBadGateway)
	}))
	defer srv.Close()

	o := NewOpenFoodFacts(true)
	o.BaseURL = srv.URL

	_, err := o.Search(context.Background(), "granola")
	if err == nil {
		t.Fatal("expected an error for a non-200 response")
	}
	if !strings.Contains(err.Error(), "openfoodfacts status 502") {
		t.Errorf("error must carry the upstream status, got %q", err.Error())
	}
}

func TestOpenFoodFacts_Lookup(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v0/product/0012345678905.json" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		fmt.Fprint(w, `{
			"status": 1,
			"product": {
				"product_name": "Oat Drink",
				"brands": "Oatly",
				"image_url": "https://img.example/oat.jpg",
				"serving_size": "250ml",
				"nutriments": {
					"energy-kcal_100g": 46,
					"proteins_100g": 1,
					"carbohydrates_100g": 6.7,
					"fat_100g": 1.5,
					"sodium_100g": 0.04
				}
			}
		}`)
	}))
	defer srv.Close()

	o := NewOpenFoodFacts(true)
	o.BaseURL = srv.URL

	got, err := o.Lookup(context.Background(), "0012345678905")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got.Name != "Oat Drink" || got.Brand != "Oatly" {
		t.Errorf("product fields lost: %q %q", got.Name, got.Brand)
	}
	if got.Barcode != "0012345678905" {
		t.Errorf("the scanned code must be echoed back, got %q", got.Barcode)
	}
	if got.ServingSize != "250ml" || got.Image != "https://img.example/oat.jpg" {
		t.Errorf("product fields lost: %q %q", got.ServingSize, got.Image)
	}
	if got.Nutrients.Calories != 46 || got.Nutrients.Sodium != 40 {
		t.Errorf("nutrient mapping wrong: %+v", got.Nutrients)
	}
}

func TestOpenFoodFacts_Lookup_Defaults(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprint(w, `{"status": 1, "product": {"nutriments": {"energy-kcal_100g": 100}}}`)
	}))
	defer srv.Close()

	o := NewOpenFoodFacts(true)
	o.BaseURL = srv.URL

	got, err := o.Lookup(context.Background(), "999")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Name != "Unknown Product" || got.Brand != "Store Brand" || got.ServingSize != "100g" {
		t.Errorf("missing fields must fall back to defaults: %q %q %q", got.Name, got.Brand, got.ServingSize)
	}
}

func TestOpenFoodFacts_Lookup_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprint(w, `{"status": 0, "status_verbose": "product not found"}`)
	}))
	defer srv.Close()

	o := NewOpenFoodFacts(true)
	o.BaseURL = srv.URL

	_, err := o.Lookup(context.Background(), "0000000000000")
	if !errors.Is(err, domain.ErrProductNotFound) {
		t.Errorf("expected ErrProductNotFound, got %v", err)
	}
}

func TestOpenFoodFacts_Lookup_UpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "unavailable", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	o := NewOpenFoodFacts(true)
	o.BaseURL = srv.URL

	_, err := o.Lookup(context.Background(), "123")
	if err == nil {
		t.Fatal("expected an error for a non-200 response")
	}
	if !strings.Contains(err.Error(), "status 503") {
		t.Errorf("error must carry the upstream status, got %q", err.Error())
	}
}

func TestOpenFoodFacts_Available(t *testing.T) {
	if !NewOpenFoodFacts(true).Available() {
		t.Error("enabled client must be available")
	}
	if NewOpenFoodFacts(false).Available() {
		t.Error("disabled client must not be available")
	}
}
