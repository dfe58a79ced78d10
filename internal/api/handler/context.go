package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

// ctxUserID extracts the authenticated user ID injected by the Auth
// middleware. An empty value means the route was wired without the
// middleware; fail closed with 401 rather than serve another user's data.
func ctxUserID(c echo.Context) (string, error) {
	id, _ := c.Get("user_id").(string)
	if id == "" {
		return "", echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return id, nil
}

// ctxToken returns the token ID and expiry recorded by the Auth middleware,
// used by logout and account deletion to revoke the active token.
func ctxToken(c echo.Context) (tokenID string, expiresAt time.Time, err error) {
	tokenID, _ = c.Get("token_id").(string)
	if tokenID == "" {
		return "", time.Time{}, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	expiresAt, _ = c.Get("token_expires").(time.Time)
	return tokenID, expiresAt, nil
}
