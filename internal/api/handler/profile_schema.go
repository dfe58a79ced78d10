package handler

import "github.com/caltrack/caltrack/internal/core/domain"

// --- Request / Response types ---

// updateProfileRequest is a partial edit: absent fields keep their value.
type updateProfileRequest struct {
	Email         *string  `json:"email"          validate:"omitempty,email"`
	HeightCm      *float64 `json:"height_cm"      validate:"omitempty,gt=0"`
	WeightKg      *float64 `json:"weight_kg"      validate:"omitempty,gt=0"`
	Age           *int     `json:"age"            validate:"omitempty,gt=0,lte=120"`
	Sex           *string  `json:"sex"            validate:"omitempty,oneof=male female"`
	ActivityLevel *float64 `json:"activity_level" validate:"omitempty,gte=1,lte=2.5"`
	CalorieGoal   *int     `json:"calorie_goal"   validate:"omitempty,gt=0"`
}

type saveStatsRequest struct {
	HeightCm      float64 `json:"height_cm"      validate:"required,gt=0"`
	WeightKg      float64 `json:"weight_kg"      validate:"required,gt=0"`
	Age           int     `json:"age"            validate:"required,gt=0,lte=120"`
	Sex           string  `json:"sex"            validate:"required,oneof=male female"`
	ActivityLevel float64 `json:"activity_level" validate:"omitempty,gte=1,lte=2.5"`
}

type calculateRequest struct {
	HeightCm      float64 `json:"height_cm"      validate:"required,gt=0"`
	WeightKg      float64 `json:"weight_kg"      validate:"required,gt=0"`
	Age           int     `json:"age"            validate:"omitempty,gt=0,lte=120"`
	Sex           string  `json:"sex"            validate:"omitempty,oneof=male female"`
	ActivityLevel float64 `json:"activity_level" validate:"omitempty,gte=1,lte=2.5"`
}

// statsResponse reports the derived numbers. BMR, TDEE and the goal are
// omitted when age or sex is missing.
type statsResponse struct {
	BMI         float64 `json:"bmi"`
	BMICategory string  `json:"bmi_category"`
	BMR         float64 `json:"bmr,omitempty"`
	TDEE        float64 `json:"tdee,omitempty"`
	CalorieGoal int     `json:"calorie_goal,omitempty"`
}

type profileResponse struct {
	User  *domain.User   `json:"user"`
	Stats *statsResponse `json:"stats,omitempty"`
}
