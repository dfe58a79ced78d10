package provider

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/caltrack/caltrack/internal/core/domain"
	"github.com/caltrack/caltrack/internal/core/ports"
)

const nutritionixBaseURL = "https://trackapi.nutritionix.com/v2"

const nutritionixTimeout = 8 * time.Second

// Relevance scale for the natural-language source: below the local table,
// above the structured parser.
const (
	nutritionixExact     = 260
	nutritionixPrefix    = 220
	nutritionixSubstring = 180
)

// Nutritionix sends the raw query to the natural-language nutrients endpoint.
// Credentials travel in headers; the provider is skipped entirely when they
// are not configured.
type Nutritionix struct {
	// BaseURL is overridable for tests.
	BaseURL string
	appID   string
	appKey  string
	client  *http.Client
}

func NewNutritionix(appID, appKey string) *Nutritionix {
	return &Nutritionix{
		BaseURL: nutritionixBaseURL,
		appID:   appID,
		appKey:  appKey,
		client:  &http.Client{Timeout: nutritionixTimeout},
	}
}

func (n *Nutritionix) Name() string { return "nutritionix" }

func (n *Nutritionix) Available() bool { return n.appID != "" && n.appKey != "" }

type nutritionixResponse struct {
	Foods []struct {
		FoodName           string  `json:"food_name"`
		BrandName          string  `json:"brand_name"`
		NixItemID          string  `json:"nix_item_id"`
		ServingWeightGrams float64 `json:"serving_weight_grams"`
		Photo              struct {
			Thumb string `json:"thumb"`
		} `json:"photo"`
		Calories float64 `json:"nf_calories"`
		Protein  float64 `json:"nf_protein"`
		Carbs    float64 `json:"nf_total_carbohydrate"`
		Fat      float64 `json:"nf_total_fat"`
		Fiber    float64 `json:"nf_dietary_fiber"`
		Sugar    float64 `json:"nf_sugars"`
		Sodium   float64 `json:"nf_sodium"`
	} `json:"foods"`
}

func (n *Nutritionix) Search(ctx context.Context, query string) ([]ports.ScoredCandidate, error) {
	payload, err := json.Marshal(map[string]string{"query": query})
	if err != nil {
		return nil, fmt.Errorf("marshal nutritionix query: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.BaseURL+"/natural/nutrients", bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("build nutritionix request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-app-id", n.appID)
	req.Header.Set("x-app-key", n.appKey)

	resp, err := n.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("call nutritionix: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read nutritionix response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("nutritionix status %d: %s", resp.StatusCode, body)
	}

	var nr nutritionixResponse
	if err := json.Unmarshal(body, &nr); err != nil {
		return nil, fmt.Errorf("parse nutritionix JSON: %w", err)
	}

	out := make([]ports.ScoredCandidate, 0, len(nr.Foods))
	for _, f := range nr.Foods {
		weight := f.ServingWeightGrams
		if weight <= 0 {
			weight = 100
		}
		out = append(out, ports.ScoredCandidate{
			FoodCandidate: ports.FoodCandidate{
				Name:        f.FoodName,
				Brand:       f.BrandName,
				Barcode:     f.NixItemID,
				Image:       f.Photo.Thumb,
				ServingSize: fmt.Sprintf("%.0fg", weight),
				Nutrients: domain.Nutrients{
					Calories: f.Calories,
					Protein:  f.Protein,
					Carbs:    f.Carbs,
					Fat:      f.Fat,
					Fiber:    f.Fiber,
					Sugar:    f.Sugar,
					Sodium:   f.Sodium,
				},
			},
			Relevance: matchRelevance(f.FoodName, query, nutritionixExact, nutritionixPrefix, nutritionixSubstring),
			Source:    n.Name(),
		})
	}
	return out, nil
}
