package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"notely/internal/auth"
)

// ContextClaimsKey is where the auth middleware stores the verified claims
// on the echo context.
const ContextClaimsKey = "user"

// currentClaims returns the verified token claims for the request.
func currentClaims(c echo.Context) (*auth.Claims, error) {
	claims, ok := c.Get(ContextClaimsKey).(*auth.Claims)
	if !ok {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "Access Denied")
	}
	return claims, nil
}

// currentUserID returns the authenticated user's ID for the request.
func currentUserID(c echo.Context) (uuid.UUID, error) {
	claims, err := currentClaims(c)
	if err != nil {
		return uuid.Nil, err
	}
	id, parseErr := uuid.Parse(claims.UserID)
	if parseErr != nil {
		return uuid.Nil, echo.NewHTTPError(http.StatusUnauthorized, "Access Denied")
	}
	return id, nil
}
