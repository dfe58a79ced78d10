package domain

import (
	"errors"
	"time"
)

// MealType is the fixed meal category a food entry belongs to.
type MealType string

const (
	MealBreakfast MealType = "breakfast"
	MealLunch     MealType = "lunch"
	MealDinner    MealType = "dinner"
	MealSnack     MealType = "snack"
)

// MealTypes lists all categories in display order.
var MealTypes = []MealType{MealBreakfast, MealLunch, MealDinner, MealSnack}

var ErrEntryNotFound = errors.New("food entry not found")
var ErrProductNotFound = errors.New("product not found")
var ErrProviderDisabled = errors.New("food provider disabled")
var ErrInvalidDate = errors.New("date must be formatted YYYY-MM-DD")

// Valid reports whether m is one of the fixed meal categories.
func (m MealType) Valid() bool {
	switch m {
	case MealBreakfast, MealLunch, MealDinner, MealSnack:
		return true
	}
	return false
}

// ParseMealType maps free-form input to a meal category, defaulting to snack.
func ParseMealType(s string) MealType {
	m := MealType(s)
	if m.Valid() {
		return m
	}
	return MealSnack
}

// Nutrients holds the seven tracked nutrient values. Energy is kcal, sodium
// is mg, everything else grams.
type Nutrients struct {
	Calories float64 `json:"calories" bson:"calories"`
	Protein  float64 `json:"protein" bson:"protein"`
	Carbs    float64 `json:"carbs" bson:"carbs"`
	Fat      float64 `json:"fat" bson:"fat"`
	Fiber    float64 `json:"fiber" bson:"fiber"`
	Sugar    float64 `json:"sugar" bson:"sugar"`
	Sodium   float64 `json:"sodium" bson:"sodium"`
}

// Scale returns the nutrients multiplied by a serving count.
func (n Nutrients) Scale(servings float64) Nutrients {
	return Nutrients{
		Calories: n.Calories * servings,
		Protein:  n.Protein * servings,
		Carbs:    n.Carbs * servings,
		Fat:      n.Fat * servings,
		Fiber:    n.Fiber * servings,
		Sugar:    n.Sugar * servings,
		Sodium:   n.Sodium * servings,
	}
}

// Add returns the field-wise sum of two nutrient sets.
func (n Nutrients) Add(o Nutrients) Nutrients {
	return Nutrients{
		Calories: n.Calories + o.Calories,
		Protein:  n.Protein + o.Protein,
		Carbs:    n.Carbs + o.Carbs,
		Fat:      n.Fat + o.Fat,
		Fiber:    n.Fiber + o.Fiber,
		Sugar:    n.Sugar + o.Sugar,
		Sodium:   n.Sodium + o.Sodium,
	}
}

// FoodEntry is one logged food on a user's diary. Entries are immutable after
// creation; the only mutation is deletion.
type FoodEntry struct {
	ID          string    `json:"id" bson:"_id,omitempty"`
	UserID      string    `json:"user_id" bson:"user_id"`
	Date        string    `json:"date" bson:"date"`
	Meal        MealType  `json:"meal_type" bson:"meal"`
	Name        string    `json:"name" bson:"name"`
	Brand       string    `json:"brand,omitempty" bson:"brand,omitempty"`
	Barcode     string    `json:"barcode,omitempty" bson:"barcode,omitempty"`
	Servings    float64   `json:"serving_size" bson:"servings"`
	ServingUnit string    `json:"serving_unit" bson:"serving_unit"`
	Nutrients   Nutrients `json:"nutrients" bson:"nutrients"`
	CreatedAt   time.Time `json:"created_at" bson:"created_at"`
}

// Total returns the entry's effective nutrient contribution, per-serving
// values scaled by the serving multiplier.
func (e FoodEntry) Total() Nutrients {
	return e.Nutrients.Scale(e.Servings)
}

// DateLayout is the calendar-date format used for diary dates.
const DateLayout = "2006-01-02"

// ParseDate validates a diary date string, returning today (UTC) for empty
// input.
func ParseDate(s string) (string, error) {
	if s == "" {
		return time.Now().UTC().Format(DateLayout), nil
	}
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return "", ErrInvalidDate
	}
	return t.Format(DateLayout), nil
}
