package handler

import (
	"math"

	"github.com/caltrack/caltrack/internal/core/domain"
	"github.com/caltrack/caltrack/internal/core/ports"
)

// --- Request → Service input ---

func toUpdateInput(req updateProfileRequest) ports.UpdateProfileInput {
	return ports.UpdateProfileInput{
		Email:         req.Email,
		HeightCm:      req.HeightCm,
		WeightKg:      req.WeightKg,
		Age:           req.Age,
		Sex:           req.Sex,
		ActivityLevel: req.ActivityLevel,
		CalorieGoal:   req.CalorieGoal,
	}
}

// --- Service result → HTTP response ---

// toProfileResponse attaches derived stats when the stored metrics allow it.
func toProfileResponse(u *domain.User) profileResponse {
	resp := profileResponse{User: u}
	if !u.Profile.HasBodyMetrics() {
		return resp
	}

	bmi := domain.BMI(u.Profile.HeightCm, u.Profile.WeightKg)
	stats := statsResponse{
		BMI:         round1(bmi),
		BMICategory: domain.BMICategory(bmi),
	}
	if bmr, ok := u.Profile.BMR(); ok {
		tdee, _ := u.Profile.TDEE()
		stats.BMR = round1(bmr)
		stats.TDEE = round1(tdee)
		stats.CalorieGoal = u.CalorieTarget()
	}
	resp.Stats = &stats
	return resp
}

// toCalculatedStats derives stats from raw calculator input, nothing stored.
func toCalculatedStats(req calculateRequest) statsResponse {
	bmi := domain.BMI(req.HeightCm, req.WeightKg)
	stats := statsResponse{
		BMI:         round1(bmi),
		BMICategory: domain.BMICategory(bmi),
	}

	p := domain.Profile{
		HeightCm:      req.HeightCm,
		WeightKg:      req.WeightKg,
		Age:           req.Age,
		Sex:           req.Sex,
		ActivityLevel: req.ActivityLevel,
	}
	if bmr, ok := p.BMR(); ok {
		tdee, _ := p.TDEE()
		stats.BMR = round1(bmr)
		stats.TDEE = round1(tdee)
		stats.CalorieGoal = int(tdee + 0.5)
	}
	return stats
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
