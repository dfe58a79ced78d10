package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/caltrack/caltrack/internal/core/domain"
	"github.com/caltrack/caltrack/internal/core/ports"
)

// ProfileService implements account-profile use cases.
type ProfileService struct {
	users   ports.UserRepository
	entries ports.FoodLogRepository
	revoker TokenRevoker
	logger  zerolog.Logger
}

func NewProfileService(users ports.UserRepository, entries ports.FoodLogRepository, revoker TokenRevoker, logger zerolog.Logger) *ProfileService {
	return &ProfileService{users: users, entries: entries, revoker: revoker, logger: logger}
}

func (s *ProfileService) Get(ctx context.Context, userID string) (*domain.User, error) {
	return s.users.FindByID(ctx, userID)
}

// Update applies a partial profile edit. A changed email is re-checked for
// uniqueness before the write.
func (s *ProfileService) Update(ctx context.Context, userID string, input ports.UpdateProfileInput) (*domain.User, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if input.Email != nil && *input.Email != user.Email {
		if _, err := s.users.FindByEmail(ctx, *input.Email); err == nil {
			return nil, domain.ErrEmailTaken
		} else if err != domain.ErrUserNotFound {
			return nil, fmt.Errorf("update profile: %w", err)
		}
		user.Email = *input.Email
	}
	if input.HeightCm != nil {
		user.Profile.HeightCm = *input.HeightCm
	}
	if input.WeightKg != nil {
		user.Profile.WeightKg = *input.WeightKg
	}
	if input.Age != nil {
		user.Profile.Age = *input.Age
	}
	if input.Sex != nil {
		user.Profile.Sex = *input.Sex
	}
	if input.ActivityLevel != nil {
		user.Profile.ActivityLevel = *input.ActivityLevel
	}
	if input.CalorieGoal != nil {
		user.CalorieGoal = *input.CalorieGoal
	}
	user.UpdatedAt = time.Now().UTC()

	if err := s.users.Update(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info().Str("user_id", userID).Msg("profile updated")
	return user, nil
}

// SaveStats stores a full set of body metrics and pins the calorie goal to
// the freshly computed TDEE.
func (s *ProfileService) SaveStats(ctx context.Context, userID string, input ports.SaveStatsInput) (*domain.User, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	user.Profile = domain.Profile{
		HeightCm:      input.HeightCm,
		WeightKg:      input.WeightKg,
		Age:           input.Age,
		Sex:           input.Sex,
		ActivityLevel: input.ActivityLevel,
	}
	tdee, ok := user.Profile.TDEE()
	if !ok {
		return nil, domain.ErrProfileIncomplete
	}
	user.CalorieGoal = int(tdee + 0.5)
	user.UpdatedAt = time.Now().UTC()

	if err := s.users.Update(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info().Str("user_id", userID).Int("calorie_goal", user.CalorieGoal).Msg("body stats saved")
	return user, nil
}

// DeleteAccount removes the account and everything it owns, then revokes the
// presented token. Entries go first: an interrupted cascade must never leave
// orphaned entries behind a deleted account. Revocation failures are logged
// and swallowed; the cascade has already committed at that point.
func (s *ProfileService) DeleteAccount(ctx context.Context, userID, tokenID string, expiresAt time.Time) error {
	removed, err := s.entries.DeleteByUser(ctx, userID)
	if err != nil {
		return fmt.Errorf("delete account: %w", err)
	}

	if err := s.users.Delete(ctx, userID); err != nil {
		return fmt.Errorf("delete account: %w", err)
	}

	if ttl := time.Until(expiresAt); tokenID != "" && ttl > 0 {
		if err := s.revoker.Revoke(ctx, tokenID, ttl); err != nil {
			s.logger.Warn().Err(err).Str("user_id", userID).Msg("token revocation on account delete failed")
		}
	}

	s.logger.Info().Str("user_id", userID).Int64("entries_removed", removed).Msg("account deleted")
	return nil
}
