package handler

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// --- Response types ---

// productResponse is one food as the clients consume it: identity fields
// plus the per-serving nutrient columns, flattened.
type productResponse struct {
	Name        string  `json:"name"`
	Brand       string  `json:"brand"`
	Barcode     string  `json:"barcode"`
	Image       string  `json:"image"`
	ServingSize string  `json:"serving_size"`
	Calories    float64 `json:"calories"`
	Protein     float64 `json:"protein"`
	Carbs       float64 `json:"carbs"`
	Fat         float64 `json:"fat"`
	Fiber       float64 `json:"fiber"`
	Sugar       float64 `json:"sugar"`
	Sodium      float64 `json:"sodium"`
}

type searchFoodsResponse struct {
	Products []productResponse `json:"products"`
}

type barcodeResponse struct {
	Product productResponse `json:"product"`
}
