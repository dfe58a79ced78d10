package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/caltrack/caltrack/internal/core/domain"
	"github.com/caltrack/caltrack/internal/core/ports"
)

const openFoodFactsBaseURL = "https://world.openfoodfacts.org"

const (
	offSearchTimeout = 5 * time.Second
	offLookupTimeout = 10 * time.Second
)

// Relevance scale for the community database, the lowest-priority source. It
// exists to guarantee result variety, never to outrank curated data.
const (
	offExact     = 120
	offPrefix    = 100
	offSubstring = 70
)

const (
	offPageSize   = 15
	offMaxNameLen = 100
)

// Crowd-sourced records often lack these fields.
const (
	offDefaultBrand   = "Store Brand"
	offDefaultName    = "Unknown Product"
	offDefaultServing = "100g"
)

// OpenFoodFacts is the community database client. It doubles as the barcode
// lookup backend. No credentials are needed; an enabled flag controls the
// search side.
type OpenFoodFacts struct {
	// BaseURL is overridable for tests.
	BaseURL string
	enabled bool
	search  *http.Client
	lookup  *http.Client
}

func NewOpenFoodFacts(enabled bool) *OpenFoodFacts {
	return &OpenFoodFacts{
		BaseURL: openFoodFactsBaseURL,
		enabled: enabled,
		search:  &http.Client{Timeout: offSearchTimeout},
		lookup:  &http.Client{Timeout: offLookupTimeout},
	}
}

func (o *OpenFoodFacts) Name() string { return "openfoodfacts" }

func (o *OpenFoodFacts) Available() bool { return o.enabled }

// offNutriments maps the per-100g suffixed keys of the community schema.
// Sodium arrives in grams per 100g and is rescaled to the canonical
// milligrams before leaving this package.
type offNutriments struct {
	EnergyKcal100g float64 `json:"energy-kcal_100g"`
	Proteins100g   float64 `json:"proteins_100g"`
	Carbs100g      float64 `json:"carbohydrates_100g"`
	Fat100g        float64 `json:"fat_100g"`
	Fiber100g      float64 `json:"fiber_100g"`
	Sugars100g     float64 `json:"sugars_100g"`
	Sodium100g     float64 `json:"sodium_100g"`
}

func (n offNutriments) nutrients() domain.Nutrients {
	return domain.Nutrients{
		Calories: n.EnergyKcal100g,
		Protein:  n.Proteins100g,
		Carbs:    n.Carbs100g,
		Fat:      n.Fat100g,
		Fiber:    n.Fiber100g,
		Sugar:    n.Sugars100g,
		Sodium:   n.Sodium100g * 1000,
	}
}

type offProduct struct {
	ProductName   string        `json:"product_name"`
	Brands        string        `json:"brands"`
	Code          string        `json:"code"`
	ImageSmallURL string        `json:"image_small_url"`
	ImageURL      string        `json:"image_url"`
	ServingSize   string        `json:"serving_size"`
	Nutriments    offNutriments `json:"nutriments"`
}

type offSearchResponse struct {
	Products []offProduct `json:"products"`
}

// Search issues a text search against the community database. Items with an
// empty or overlong display name are skipped; crowd-sourced records are too
// noisy to show unabridged.
func (o *OpenFoodFacts) Search(ctx context.Context, query string) ([]ports.ScoredCandidate, error) {
	u := fmt.Sprintf("%s/cgi/search.pl?search_terms=%s&search_simple=1&action=process&json=1&page_size=%d",
		o.BaseURL, url.QueryEscape(query), offPageSize)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("build openfoodfacts request: %w", err)
	}

	resp, err := o.search.Do(req)
	if err != nil {
		return nil, fmt.Errorf("call openfoodfacts: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read openfoodfacts response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("openfoodfacts status %d: %s", resp.StatusCode, body)
	}

	var sr offSearchResponse
	if err := json.Unmarshal(body, &sr); err != nil {
		return nil, fmt.Errorf("parse openfoodfacts JSON: %w", err)
	}

	out := make([]ports.ScoredCandidate, 0, len(sr.Products))
	for _, p := range sr.Products {
		if p.ProductName == "" || len(p.ProductName) > offMaxNameLen {
			continue
		}
		brand := p.Brands
		if brand == "" {
			brand = offDefaultBrand
		}
		serving := p.ServingSize
		if serving == "" {
			serving = offDefaultServing
		}
		out = append(out, ports.ScoredCandidate{
			FoodCandidate: ports.FoodCandidate{
				Name:        p.ProductName,
				Brand:       brand,
				Barcode:     p.Code,
				Image:       p.ImageSmallURL,
				ServingSize: serving,
				Nutrients:   p.Nutriments.nutrients(),
			},
			Relevance: matchRelevance(p.ProductName, query, offExact, offPrefix, offSubstring),
			Source:    o.Name(),
		})
	}
	return out, nil
}

type offLookupResponse struct {
	Status  int        `json:"status"`
	Product offProduct `json:"product"`
}

// Lookup resolves a single product by barcode. A status other than 1 means
// the code is unknown to the database.
func (o *OpenFoodFacts) Lookup(ctx context.Context, code string) (*ports.FoodCandidate, error) {
	u := fmt.Sprintf("%s/api/v0/product/%s.json", o.BaseURL, url.PathEscape(code))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("build barcode request: %w", err)
	}

	resp, err := o.lookup.Do(req)
	if err != nil {
		return nil, fmt.Errorf("call openfoodfacts product: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read barcode response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("openfoodfacts product status %d: %s", resp.StatusCode, body)
	}

	var lr offLookupResponse
	if err := json.Unmarshal(body, &lr); err != nil {
		return nil, fmt.Errorf("parse barcode JSON: %w", err)
	}
	if lr.Status != 1 {
		return nil, domain.ErrProductNotFound
	}

	p := lr.Product
	name := p.ProductName
	if name == "" {
		name = offDefaultName
	}
	brand := p.Brands
	if brand == "" {
		brand = offDefaultBrand
	}
	serving := p.ServingSize
	if serving == "" {
		serving = offDefaultServing
	}
	return &ports.FoodCandidate{
		Name:        name,
		Brand:       brand,
		Barcode:     code,
		Image:       p.ImageURL,
		ServingSize: serving,
		Nutrients:   p.Nutriments.nutrients(),
	}, nil
}
