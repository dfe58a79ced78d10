package provider

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestEdamam_Search(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/parser" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		q := r.URL.Query()
		if q.Get("ingr") != "brown rice" {
			t.Errorf("query must be escaped into ingr, got %q", q.Get("ingr"))
		}
		if q.Get("app_id") != "test-id" || q.Get("app_key") != "test-key" {
			t.Error("credentials must travel in the query string")
		}

		fmt.Fprint(w, `{
			"hints": [
				{
					"food": {
						"label": "Brown Rice",
						"category": "Generic foods",
						"image": "https://img.example/rice.jpg",
						"nutrients": {
							"ENERC_KCAL": 112,
							"PROCNT": 2.6,
							"CHOCDF": 23.5,
							"FAT": 0.9,
							"FIBTG": 1.8,
							"SUGAR": 0.4,
							"NA": 5
						}
					}
				},
				{
					"food": {
						"label": "Brown Rice Cakes",
						"brand": "CrispCo",
						"category": "Packaged foods",
						"nutrients": {"ENERC_KCAL": 387}
					}
				}
			]
		}`)
	}))
	defer srv.Close()

	e := NewEdamam("test-id", "test-key")
	e.BaseURL = srv.URL

	got, err := e.Search(context.Background(), "brown rice")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 candidates, got %d", len(got))
	}

	first := got[0]
	// exact 240 + generic category 20
	if first.Relevance != 260 {
		t.Errorf("generic exact match must score 260, got %d", first.Relevance)
	}
	if first.ServingSize != "100g" {
		t.Errorf("parser results are per 100g, got %q", first.ServingSize)
	}
	if first.Nutrients.Calories != 112 || first.Nutrients.Carbs != 23.5 || first.Nutrients.Sodium != 5 {
		t.Errorf("nutrient key mapping wrong: %+v", first.Nutrients)
	}
	if first.Source != "edamam" {
		t.Errorf("expected source edamam, got %q", first.Source)
	}

	second := got[1]
	// prefix 210, no bonus for a packaged food
	if second.Relevance != 210 {
		t.Errorf("branded prefix match must score 210, got %d", second.Relevance)
	}
	if second.Brand != "CrispCo" {
		t.Errorf("brand lost: %q", second.Brand)
	}
}

func TestEdamam_Search_CapsHints(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		var hints []string
		for i := 0; i < 20; i++ {
			hints = append(hints, fmt.Sprintf(`{"food": {"label": "Rice %d", "nutrients": {}}}`, i))
		}
		fmt.Fprintf(w, `{"hints": [%s]}`, strings.Join(hints, ","))
	}))
	defer srv.Close()

	e := NewEdamam("test-id", "test-key")
	e.BaseURL = srv.URL

	got, err := e.Search(context.Background(), "rice")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 12 {
		t.Errorf("hints must be capped at 12, got %d", len(got))
	}
	if got[0].Name != "Rice 0" || got[11].Name != "Rice 11" {
		t.Errorf("cap must keep the first hints: %q .. %q", got[0].Name, got[11].Name)
	}
}

func TestEdamam_Search_NoBonusWithoutMatch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprint(w, `{"hints": [{"food": {"label": "Couscous", "category": "Generic foods", "nutrients": {}}}]}`)
	}))
	defer srv.Close()

	e := NewEdamam("test-id", "test-key")
	e.BaseURL = srv.URL

	got, err := e.Search(context.Background(), "rice")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected 1 candidate, got %d", len(got))
	}
	if got[0].Relevance != 0 {
		t.Errorf("the generic bonus must not rescue a non-match, got %d", got[0].Relevance)
	}
}

func TestEdamam_Search_UpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "rate limited", http.StatusTooManyRequests)
	}))
	defer srv.Close()

	e := NewEdamam("test-id", "test-key")
	e.BaseURL = srv.URL

	_, err := e.Search(context.Background(), "rice")
	if err == nil {
		t.Fatal("expected an error for a non-200 response")
	}
	if !strings.Contains(err.Error(), "edamam status 429") {
		t.Errorf("error must carry the upstream status, got %q", err.Error())
	}
}

func TestEdamam_Available(t *testing.T) {
	if !NewEdamam("id", "key").Available() {
		t.Error("credentialed client must be available")
	}
	if NewEdamam("", "").Available() || NewEdamam("id", "").Available() {
		t.Error("client without full credentials must not be available")
	}
}
