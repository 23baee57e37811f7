package middleware

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/devang404/bangalore-house-price-predictor/internal/service"

	"github.com/labstack/echo/v4"
)

const ContextUserKey = "user"

// ExtractClaims pulls the session token from the Authorization header or the
// session cookie and verifies it. check_session uses this directly so an
// anonymous request is not an error there.
func ExtractClaims(c echo.Context) (*service.SessionClaims, error) {
	tokenString := ""
	if authHeader := c.Request().Header.Get("Authorization"); authHeader != "" {
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
			return nil, echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header format")
		}
		tokenString = parts[1]
	} else if cookie, err := c.Cookie(service.SessionCookieName); err == nil {
		tokenString = cookie.Value
	}
	if tokenString == "" {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "missing token")
	}

	claims, err := service.VerifySessionToken(tokenString)
	if err != nil {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, fmt.Sprintf("invalid token: %v", err))
	}
	return claims, nil
}

// RequireAuth rejects requests without a valid session and stashes the
// claims in the context for handlers.
func RequireAuth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		claims, err := ExtractClaims(c)
		if err != nil {
			return err
		}
		c.Set(ContextUserKey, claims)
		return next(c)
	}
}
