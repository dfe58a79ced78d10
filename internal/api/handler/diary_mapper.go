package handler

import (
	"github.com/caltrack/caltrack/internal/core/domain"
	"github.com/caltrack/caltrack/internal/core/ports"
)

// --- Request → Service input ---

func toLogFoodInput(req logFoodRequest, userID string) ports.LogFoodInput {
	return ports.LogFoodInput{
		UserID:      userID,
		Date:        req.Date,
		Meal:        req.MealType,
		Name:        req.Name,
		Brand:       req.Brand,
		Barcode:     req.Barcode,
		Servings:    req.ServingSize,
		ServingUnit: req.ServingUnit,
		Nutrients: domain.Nutrients{
			Calories: req.Calories,
			Protein:  req.Protein,
			Carbs:    req.Carbs,
			Fat:      req.Fat,
			Fiber:    req.Fiber,
			Sugar:    req.Sugar,
			Sodium:   req.Sodium,
		},
	}
}

// --- Service result → HTTP response ---

func toDayResponse(d *ports.DayLog) dayResponse {
	return dayResponse{
		Date:              d.Date,
		Meals:             d.Meals,
		Totals:            d.Totals,
		CalorieGoal:       d.CalorieGoal,
		CaloriesRemaining: float64(d.CalorieGoal) - d.Totals.Calories,
	}
}
