package handler

import "github.com/caltrack/caltrack/internal/core/domain"

// --- Request / Response types ---

// logFoodRequest mirrors a search result plus the diary placement fields.
// Date defaults to today, meal_type to snack, serving_size to 1.
type logFoodRequest struct {
	Date        string  `json:"date"`
	MealType    string  `json:"meal_type"`
	Name        string  `json:"name"         validate:"required"`
	Brand       string  `json:"brand"`
	Barcode     string  `json:"barcode"`
	ServingSize float64 `json:"serving_size" validate:"omitempty,gt=0"`
	ServingUnit string  `json:"serving_unit"`
	Calories    float64 `json:"calories"     validate:"gte=0"`
	Protein     float64 `json:"protein"      validate:"gte=0"`
	Carbs       float64 `json:"carbs"        validate:"gte=0"`
	Fat         float64 `json:"fat"          validate:"gte=0"`
	Fiber       float64 `json:"fiber"        validate:"gte=0"`
	Sugar       float64 `json:"sugar"        validate:"gte=0"`
	Sodium      float64 `json:"sodium"       validate:"gte=0"`
}

type logFoodResponse struct {
	Message string            `json:"message"`
	Entry   *domain.FoodEntry `json:"entry"`
}

// dayResponse is one diary day: entries grouped by meal, servings-scaled
// totals, and how much of the calorie goal is left.
type dayResponse struct {
	Date              string                                  `json:"date"`
	Meals             map[domain.MealType][]*domain.FoodEntry `json:"meals"`
	Totals            domain.Nutrients                        `json:"totals"`
	CalorieGoal       int                                     `json:"calorie_goal"`
	CaloriesRemaining float64                                 `json:"calories_remaining"`
}
