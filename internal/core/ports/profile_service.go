package ports

import (
	"context"
	"time"

	"github.com/caltrack/caltrack/internal/core/domain"
)

// UpdateProfileInput carries a partial profile edit; nil fields are left
// untouched.
type UpdateProfileInput struct {
	Email         *string
	HeightCm      *float64
	WeightKg      *float64
	Age           *int
	Sex           *string
	ActivityLevel *float64
	CalorieGoal   *int
}

// SaveStatsInput carries a full set of body metrics from the calculator.
type SaveStatsInput struct {
	HeightCm      float64
	WeightKg      float64
	Age           int
	Sex           string
	ActivityLevel float64
}

// ProfileService defines account-profile use cases. SaveStats persists the
// metrics and sets the calorie goal to the freshly computed TDEE.
// DeleteAccount cascades (diary entries first, then the account itself) and
// revokes the presented token, identified by tokenID, until expiresAt.
type ProfileService interface {
	Get(ctx context.Context, userID string) (*domain.User, error)
	Update(ctx context.Context, userID string, input UpdateProfileInput) (*domain.User, error)
	SaveStats(ctx context.Context, userID string, input SaveStatsInput) (*domain.User, error)
	DeleteAccount(ctx context.Context, userID, tokenID string, expiresAt time.Time) error
}
