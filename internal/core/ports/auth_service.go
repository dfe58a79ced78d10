package ports

import (
	"context"
	"time"

	"github.com/caltrack/caltrack/internal/core/domain"
)

// RegisterInput carries the fields needed to create an account.
type RegisterInput struct {
	Username string
	Email    string
	Password string
}

// AuthService implements registration, login, and token revocation.
// Register and Login both return a signed access token alongside the user;
// registration logs the new account in immediately.
type AuthService interface {
	Register(ctx context.Context, input RegisterInput) (string, *domain.User, error)
	Login(ctx context.Context, username, password string) (string, *domain.User, error)
	// Logout revokes the token identified by tokenID until it would have
	// expired anyway.
	Logout(ctx context.Context, tokenID string, expiresAt time.Time) error
}
