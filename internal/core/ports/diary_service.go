package ports

import (
	"context"

	"github.com/caltrack/caltrack/internal/core/domain"
)

// LogFoodInput carries all data needed to log a food on the diary. Date, Meal,
// Servings, and ServingUnit are optional; the service fills in today, snack,
// 1, and "serving" respectively.
type LogFoodInput struct {
	UserID      string
	Date        string
	Meal        string
	Name        string
	Brand       string
	Barcode     string
	Servings    float64
	ServingUnit string
	Nutrients   domain.Nutrients
}

// DayLog is one calendar day of the diary: entries grouped by meal, the
// servings-scaled nutrient totals, and the resolved calorie goal.
type DayLog struct {
	Date        string
	Meals       map[domain.MealType][]*domain.FoodEntry
	Totals      domain.Nutrients
	CalorieGoal int
}

// DiaryService defines use-case operations for the food diary. Entries are
// immutable: there is no update operation.
type DiaryService interface {
	LogFood(ctx context.Context, input LogFoodInput) (*domain.FoodEntry, error)
	Day(ctx context.Context, userID, date string) (*DayLog, error)
	DeleteEntry(ctx context.Context, userID, entryID string) error
}
