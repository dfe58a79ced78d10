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

const edamamBaseURL = "https://api.edamam.com/api/food-database/v2"

const edamamTimeout = 6 * time.Second

// Relevance scale for the structured parser: below the natural-language
// source, above the community fallback. Entries the provider classifies as
// generic foods get a small boost over branded ones.
const (
	edamamExact     = 240
	edamamPrefix    = 210
	edamamSubstring = 170

	edamamGenericBonus = 20
	edamamMaxHints     = 12
)

// edamamGenericCategory is the classification the parser assigns to
// unbranded whole foods.
const edamamGenericCategory = "Generic foods"

// Edamam queries the food-database parser endpoint. Credentials travel in
// the query string; at most the first 12 hints are considered.
type Edamam struct {
	// BaseURL is overridable for tests.
	BaseURL string
	appID   string
	appKey  string
	client  *http.Client
}

func NewEdamam(appID, appKey string) *Edamam {
	return &Edamam{
		BaseURL: edamamBaseURL,
		appID:   appID,
		appKey:  appKey,
		client:  &http.Client{Timeout: edamamTimeout},
	}
}

func (e *Edamam) Name() string { return "edamam" }

func (e *Edamam) Available() bool { return e.appID != "" && e.appKey != "" }

type edamamResponse struct {
	Hints []struct {
		Food struct {
			Label         string             `json:"label"`
			Brand         string             `json:"brand"`
			Category      string             `json:"category"`
			CategoryLabel string             `json:"categoryLabel"`
			Image         string             `json:"image"`
			Nutrients     map[string]float64 `json:"nutrients"`
		} `json:"food"`
	} `json:"hints"`
}

func (e *Edamam) Search(ctx context.Context, query string) ([]ports.ScoredCandidate, error) {
	u := fmt.Sprintf("%s/parser?ingr=%s&app_id=%s&app_key=%s",
		e.BaseURL, url.QueryEscape(query), e.appID, e.appKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("build edamam request: %w", err)
	}

	resp, err := e.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("call edamam parser: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read edamam response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("edamam status %d: %s", resp.StatusCode, body)
	}

	var er edamamResponse
	if err := json.Unmarshal(body, &er); err != nil {
		return nil, fmt.Errorf("parse edamam JSON: %w", err)
	}

	hints := er.Hints
	if len(hints) > edamamMaxHints {
		hints = hints[:edamamMaxHints]
	}

	out := make([]ports.ScoredCandidate, 0, len(hints))
	for _, h := range hints {
		relevance := matchRelevance(h.Food.Label, query, edamamExact, edamamPrefix, edamamSubstring)
		if relevance > 0 && h.Food.Category == edamamGenericCategory {
			relevance += edamamGenericBonus
		}
		nut := h.Food.Nutrients
		out = append(out, ports.ScoredCandidate{
			FoodCandidate: ports.FoodCandidate{
				Name:        h.Food.Label,
				Brand:       h.Food.Brand,
				Image:       h.Food.Image,
				ServingSize: "100g",
				Nutrients: domain.Nutrients{
					Calories: nut["ENERC_KCAL"],
					Protein:  nut["PROCNT"],
					Carbs:    nut["CHOCDF"],
					Fat:      nut["FAT"],
					Fiber:    nut["FIBTG"],
					Sugar:    nut["SUGAR"],
					Sodium:   nut["NA"],
				},
			},
			Relevance: relevance,
			Source:    e.Name(),
		})
	}
	return out, nil
}
