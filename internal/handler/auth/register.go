package auth

import (
	"net/http"
	"net/mail"
	"strings"

	"github.com/devang404/bangalore-house-price-predictor/internal/api"
	"github.com/devang404/bangalore-house-price-predictor/internal/database"
	"github.com/devang404/bangalore-house-price-predictor/internal/model"
	"github.com/devang404/bangalore-house-price-predictor/internal/service"
	"github.com/devang404/bangalore-house-price-predictor/internal/store"

	"github.com/labstack/echo/v4"
)

var (
	hashPassword    = service.HashPassword
	comparePassword = service.ComparePassword
	issueToken      = service.IssueSessionToken
	getUserByEmail  = store.GetUserByEmail
	createUser      = store.CreateUser
)

// RegisterHandler creates a new account.
// @Summary     Register a user
// @Description Creates an account; duplicate emails are rejected
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       request body api.RegisterRequest true "Registration data"
// @Success     200 {object} api.MessageResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /register [post]
func RegisterHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.RegisterRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid request body"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		}

		req.Email = strings.ToLower(strings.TrimSpace(req.Email))
		if _, err := mail.ParseAddress(req.Email); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid email format"})
		}

		if existing, _ := getUserByEmail(c.Request().Context(), db, req.Email); existing != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "User already exists"})
		}

		hash, err := hashPassword(req.Password)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to hash password"})
		}

		if _, err := createUser(c.Request().Context(), db, &model.User{
			Name:         req.Name,
			Email:        req.Email,
			PasswordHash: hash,
		}); err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: err.Error()})
		}

		return c.JSON(http.StatusOK, api.MessageResponse{Message: "User registered successfully!"})
	}
}
