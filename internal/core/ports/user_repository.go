package ports

import (
	"context"

	"github.com/caltrack/caltrack/internal/core/domain"
)

// UserRepository defines persistence operations for accounts.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	// Update persists the mutable account fields (email, profile metrics,
	// calorie goal) of an existing user.
	Update(ctx context.Context, user *domain.User) error
	Delete(ctx context.Context, id string) error
}
