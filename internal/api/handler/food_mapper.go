package handler

import "github.com/caltrack/caltrack/internal/core/ports"

// --- Service result → HTTP response ---

func toProductResponse(c ports.FoodCandidate) productResponse {
	return productResponse{
		Name:        c.Name,
		Brand:       c.Brand,
		Barcode:     c.Barcode,
		Image:       c.Image,
		ServingSize: c.ServingSize,
		Calories:    c.Nutrients.Calories,
		Protein:     c.Nutrients.Protein,
		Carbs:       c.Nutrients.Carbs,
		Fat:         c.Nutrients.Fat,
		Fiber:       c.Nutrients.Fiber,
		Sugar:       c.Nutrients.Sugar,
		Sodium:      c.Nutrients.Sodium,
	}
}

func toSearchResponse(candidates []ports.FoodCandidate) searchFoodsResponse {
	products := make([]productResponse, len(candidates))
	for i, c := range candidates {
		products[i] = toProductResponse(c)
	}
	return searchFoodsResponse{Products: products}
}
