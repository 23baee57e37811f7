package auth

import (
	"net/http"
	"time"

	"github.com/devang404/bangalore-house-price-predictor/internal/api"
	"github.com/devang404/bangalore-house-price-predictor/internal/middleware"
	"github.com/devang404/bangalore-house-price-predictor/internal/service"

	"github.com/labstack/echo/v4"
)

// LogoutHandler ends the current session by expiring the cookie. The route
// sits behind RequireAuth so an anonymous logout is a 401.
// @Summary     Log out
// @Description Clears the session cookie
// @Tags        auth
// @Produce     json
// @Success     200 {object} api.MessageResponse
// @Failure     401 {object} api.ErrorResponse
// @Router      /logout [get]
func LogoutHandler() echo.HandlerFunc {
	return func(c echo.Context) error {
		c.SetCookie(&http.Cookie{
			Name:     service.SessionCookieName,
			Value:    "",
			Path:     "/",
			Expires:  time.Unix(0, 0),
			MaxAge:   -1,
			HttpOnly: true,
		})
		return c.JSON(http.StatusOK, api.MessageResponse{Message: "Logged out successfully"})
	}
}

// CheckSessionHandler reports whether the caller holds a valid session.
// Anonymous callers get logged_in=false, never an error.
// @Summary     Check session
// @Description Reports the authenticated identity, or logged_in=false
// @Tags        auth
// @Produce     json
// @Success     200 {object} api.SessionResponse
// @Router      /check_session [get]
func CheckSessionHandler() echo.HandlerFunc {
	return func(c echo.Context) error {
		claims, err := middleware.ExtractClaims(c)
		if err != nil {
			return c.JSON(http.StatusOK, api.SessionResponse{LoggedIn: false})
		}
		return c.JSON(http.StatusOK, api.SessionResponse{LoggedIn: true, User: claims.Name})
	}
}
