package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

// Denylist reports whether a token ID has been revoked. Implemented by the
// Redis-backed TokenDenylist.
type Denylist interface {
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}

// Auth validates the JWT, rejects revoked tokens, and injects the identity
// claims into context.
func Auth(jwtSecret string, denylist Denylist, log zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
			}

			claims := jwt.MapClaims{}
			tkn, err := jwt.ParseWithClaims(parts[1], claims, func(token *jwt.Token) (interface{}, error) {
				if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
					return nil, jwt.ErrTokenSignatureInvalid
				}
				return []byte(jwtSecret), nil
			})
			if err != nil || !tkn.Valid {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			tokenID, _ := claims["jti"].(string)
			if denylist != nil && tokenID != "" {
				revoked, err := denylist.IsRevoked(c.Request().Context(), tokenID)
				if err != nil {
					// Fail open: a denylist read error skips revocation only,
					// never the signature check above.
					log.Warn().Err(err).Msg("denylist check failed, accepting token")
				} else if revoked {
					return echo.NewHTTPError(http.StatusUnauthorized, "token revoked")
				}
			}

			userID, _ := claims["sub"].(string)
			if userID == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "token missing subject")
			}

			c.Set("user_id", userID)
			c.Set("username", claims["username"])
			c.Set("token_id", tokenID)
			if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
				c.Set("token_expires", exp.Time)
			}

			return next(c)
		}
	}
}
