package domain

import (
	"errors"
	"time"
)

const (
	SexMale   = "male"
	SexFemale = "female"
)

// DefaultActivityLevel is the sedentary multiplier assumed when a user never
// picked one.
const DefaultActivityLevel = 1.2

var ErrUsernameTaken = errors.New("username already taken")
var ErrEmailTaken = errors.New("email already registered")
var ErrUserNotFound = errors.New("user not found")
var ErrInvalidCredentials = errors.New("invalid username or password")
var ErrProfileIncomplete = errors.New("profile metrics incomplete")

// Profile holds the optional body metrics attached to a user. Zero values
// mean the metric was never provided.
type Profile struct {
	HeightCm      float64 `json:"height_cm,omitempty"`
	WeightKg      float64 `json:"weight_kg,omitempty"`
	Age           int     `json:"age,omitempty"`
	Sex           string  `json:"sex,omitempty"`
	ActivityLevel float64 `json:"activity_level,omitempty"`
}

// HasBodyMetrics reports whether enough metrics exist to compute BMI.
func (p Profile) HasBodyMetrics() bool {
	return p.HeightCm > 0 && p.WeightKg > 0
}

// Complete reports whether enough metrics exist to compute BMR and TDEE.
func (p Profile) Complete() bool {
	return p.HasBodyMetrics() && p.Age > 0 && (p.Sex == SexMale || p.Sex == SexFemale)
}

// BMR returns the revised Harris-Benedict basal metabolic rate in kcal/day.
// ok is false when a required metric is missing.
func (p Profile) BMR() (float64, bool) {
	if !p.Complete() {
		return 0, false
	}
	if p.Sex == SexMale {
		return 88.362 + 13.397*p.WeightKg + 4.799*p.HeightCm - 5.677*float64(p.Age), true
	}
	return 447.593 + 9.247*p.WeightKg + 3.098*p.HeightCm - 4.330*float64(p.Age), true
}

// TDEE returns the total daily energy expenditure: BMR scaled by the activity
// multiplier.
func (p Profile) TDEE() (float64, bool) {
	bmr, ok := p.BMR()
	if !ok {
		return 0, false
	}
	activity := p.ActivityLevel
	if activity <= 0 {
		activity = DefaultActivityLevel
	}
	return bmr * activity, true
}

// BMI returns the body mass index for a height in centimeters and a weight in
// kilograms.
func BMI(heightCm, weightKg float64) float64 {
	if heightCm <= 0 {
		return 0
	}
	return weightKg / (heightCm * heightCm) * 10000
}

// BMICategory buckets a BMI value into the standard labels.
func BMICategory(bmi float64) string {
	switch {
	case bmi < 18.5:
		return "Underweight"
	case bmi < 25:
		return "Normal weight"
	case bmi < 30:
		return "Overweight"
	default:
		return "Obese"
	}
}

// User models a registered account.
type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Profile      Profile   `json:"profile"`
	CalorieGoal  int       `json:"calorie_goal,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// CalorieTarget resolves the user's daily calorie goal: the explicitly stored
// goal wins, then the computed TDEE, then a 2000 kcal default.
func (u *User) CalorieTarget() int {
	if u.CalorieGoal > 0 {
		return u.CalorieGoal
	}
	if tdee, ok := u.Profile.TDEE(); ok {
		return int(tdee + 0.5)
	}
	return 2000
}
