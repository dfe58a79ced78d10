package service

import (
	"context"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/caltrack/caltrack/internal/core/domain"
	"github.com/caltrack/caltrack/internal/core/ports"
)

// TokenRevoker abstracts the revocation store (Redis). Revoked token IDs are
// kept until the token would have expired anyway.
type TokenRevoker interface {
	Revoke(ctx context.Context, tokenID string, ttl time.Duration) error
}

// AuthService implements registration, login, and logout.
type AuthService struct {
	repo      ports.UserRepository
	revoker   TokenRevoker
	jwtSecret string
	tokenTTL  time.Duration
}

func NewAuthService(repo ports.UserRepository, revoker TokenRevoker, jwtSecret string, tokenTTL time.Duration) *AuthService {
	if tokenTTL <= 0 {
		tokenTTL = 120 * time.Hour
	}
	return &AuthService{repo: repo, revoker: revoker, jwtSecret: jwtSecret, tokenTTL: tokenTTL}
}

// Register creates an account and logs it in, returning a signed token
// alongside the stored user. Handle and email uniqueness are checked up
// front; the unique indexes backstop races.
func (s *AuthService) Register(ctx context.Context, input ports.RegisterInput) (string, *domain.User, error) {
	if input.Username == "" || input.Password == "" || input.Email == "" {
		return "", nil, domain.ErrInvalidCredentials
	}

	if _, err := s.repo.FindByUsername(ctx, input.Username); err == nil {
		return "", nil, domain.ErrUsernameTaken
	} else if err != domain.ErrUserNotFound {
		return "", nil, fmt.Errorf("register: %w", err)
	}
	if _, err := s.repo.FindByEmail(ctx, input.Email); err == nil {
		return "", nil, domain.ErrEmailTaken
	} else if err != domain.ErrUserNotFound {
		return "", nil, fmt.Errorf("register: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return "", nil, err
	}

	now := time.Now().UTC()
	user := &domain.User{
		Username:     input.Username,
		Email:        input.Email,
		PasswordHash: string(hash),
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		return "", nil, err
	}

	token, err := s.generateToken(created)
	if err != nil {
		return "", nil, err
	}
	return token, created, nil
}

// Login verifies the credentials and returns a signed token. Unknown users
// and wrong passwords are indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, *domain.User, error) {
	if username == "" || password == "" {
		return "", nil, domain.ErrInvalidCredentials
	}

	user, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		if err == domain.ErrUserNotFound {
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return "", nil, domain.ErrInvalidCredentials
	}

	token, err := s.generateToken(user)
	if err != nil {
		return "", nil, err
	}

	return token, user, nil
}

// Logout revokes the token until its natural expiry. Already-expired tokens
// need no denylist entry.
func (s *AuthService) Logout(ctx context.Context, tokenID string, expiresAt time.Time) error {
	ttl := time.Until(expiresAt)
	if ttl <= 0 {
		return nil
	}
	if err := s.revoker.Revoke(ctx, tokenID, ttl); err != nil {
		return fmt.Errorf("logout: %w", err)
	}
	return nil
}

func (s *AuthService) generateToken(user *domain.User) (string, error) {
	claims := jwt.MapClaims{
		"sub":      user.ID,
		"username": user.Username,
		"jti":      uuid.NewString(),
		"exp":      time.Now().Add(s.tokenTTL).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.jwtSecret))
}
