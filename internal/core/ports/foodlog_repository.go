package ports

import (
	"context"

	"github.com/caltrack/caltrack/internal/core/domain"
)

// FoodLogRepository defines persistence operations for diary entries.
// Delete is scoped by owner: deleting an entry that exists but belongs to a
// different user reports domain.ErrEntryNotFound.
type FoodLogRepository interface {
	Create(ctx context.Context, entry *domain.FoodEntry) (*domain.FoodEntry, error)
	// ListByDate returns the user's entries for one calendar date, oldest first.
	ListByDate(ctx context.Context, userID, date string) ([]*domain.FoodEntry, error)
	Delete(ctx context.Context, userID, entryID string) error
	// DeleteByUser removes every entry the user owns and returns the count.
	// Used by the account-deletion cascade.
	DeleteByUser(ctx context.Context, userID string) (int64, error)
}
