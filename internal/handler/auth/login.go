package auth

import (
	"net/http"
	"strings"
	"time"

	"github.com/devang404/bangalore-house-price-predictor/internal/api"
	"github.com/devang404/bangalore-house-price-predictor/internal/database"
	"github.com/devang404/bangalore-house-price-predictor/internal/service"

	"github.com/labstack/echo/v4"
)

func sessionCookie(token string, expires time.Time) *http.Cookie {
	return &http.Cookie{
		Name:     service.SessionCookieName,
		Value:    token,
		Path:     "/",
		Expires:  expires,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
}

// LoginHandler verifies credentials and establishes a session.
// @Summary     Log in
// @Description Verifies email and password, sets the session cookie and returns the user's name
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       request body api.LoginRequest true "Credentials"
// @Success     200 {object} api.LoginResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /login [post]
func LoginHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.LoginRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid request body"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		}

		user, err := getUserByEmail(c.Request().Context(), db, strings.ToLower(strings.TrimSpace(req.Email)))
		if err != nil {
			return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "Invalid email or password"})
		}

		if err := comparePassword(user.PasswordHash, req.Password); err != nil {
			return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "Invalid email or password"})
		}

		token, err := issueToken(*user, service.SessionTTL)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to establish session"})
		}

		c.SetCookie(sessionCookie(token, time.Now().Add(service.SessionTTL)))
		return c.JSON(http.StatusOK, api.LoginResponse{Message: "Login successful", User: user.Name})
	}
}
