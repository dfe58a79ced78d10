package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/caltrack/caltrack/internal/api/metrics"
	"github.com/caltrack/caltrack/internal/core/domain"
	"github.com/caltrack/caltrack/internal/core/ports"
)

// DiaryService implements food logging and the per-day diary view.
type DiaryService struct {
	entries ports.FoodLogRepository
	users   ports.UserRepository
	logger  zerolog.Logger
}

func NewDiaryService(entries ports.FoodLogRepository, users ports.UserRepository, logger zerolog.Logger) *DiaryService {
	return &DiaryService{entries: entries, users: users, logger: logger}
}

// LogFood stores one immutable diary entry, filling in the defaults: today's
// date, the snack meal, one serving labelled "serving".
func (s *DiaryService) LogFood(ctx context.Context, input ports.LogFoodInput) (*domain.FoodEntry, error) {
	date, err := domain.ParseDate(input.Date)
	if err != nil {
		return nil, err
	}

	servings := input.Servings
	if servings <= 0 {
		servings = 1
	}
	unit := input.ServingUnit
	if unit == "" {
		unit = "serving"
	}

	entry := &domain.FoodEntry{
		UserID:      input.UserID,
		Date:        date,
		Meal:        domain.ParseMealType(input.Meal),
		Name:        input.Name,
		Brand:       input.Brand,
		Barcode:     input.Barcode,
		Servings:    servings,
		ServingUnit: unit,
		Nutrients:   input.Nutrients,
		CreatedAt:   time.Now().UTC(),
	}

	created, err := s.entries.Create(ctx, entry)
	if err != nil {
		s.logger.Error().Err(err).Str("user_id", input.UserID).Msg("failed to log food")
		return nil, err
	}

	metrics.EntriesLoggedTotal.WithLabelValues(string(created.Meal)).Inc()
	s.logger.Info().
		Str("user_id", created.UserID).
		Str("entry_id", created.ID).
		Str("date", created.Date).
		Str("meal", string(created.Meal)).
		Msg("food logged")

	return created, nil
}

// Day returns one diary day grouped by meal, with servings-scaled nutrient
// totals and the user's resolved calorie goal. All four meal groups are
// present even when empty.
func (s *DiaryService) Day(ctx context.Context, userID, date string) (*ports.DayLog, error) {
	day, err := domain.ParseDate(date)
	if err != nil {
		return nil, err
	}

	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	entries, err := s.entries.ListByDate(ctx, userID, day)
	if err != nil {
		return nil, err
	}

	meals := make(map[domain.MealType][]*domain.FoodEntry, len(domain.MealTypes))
	for _, m := range domain.MealTypes {
		meals[m] = []*domain.FoodEntry{}
	}
	var totals domain.Nutrients
	for _, e := range entries {
		meals[e.Meal] = append(meals[e.Meal], e)
		totals = totals.Add(e.Total())
	}

	return &ports.DayLog{
		Date:        day,
		Meals:       meals,
		Totals:      totals,
		CalorieGoal: user.CalorieTarget(),
	}, nil
}

// DeleteEntry removes one entry, scoped to its owner.
func (s *DiaryService) DeleteEntry(ctx context.Context, userID, entryID string) error {
	if err := s.entries.Delete(ctx, userID, entryID); err != nil {
		return err
	}
	s.logger.Info().Str("user_id", userID).Str("entry_id", entryID).Msg("food entry deleted")
	return nil
}
