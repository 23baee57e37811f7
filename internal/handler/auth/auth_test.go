package auth

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/devang404/bangalore-house-price-predictor/internal/database"
	"github.com/devang404/bangalore-house-price-predictor/internal/model"
	"github.com/devang404/bangalore-house-price-predictor/internal/service"
	"github.com/devang404/bangalore-house-price-predictor/internal/store"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

type stubValidator struct{ err error }

func (s *stubValidator) Validate(i interface{}) error { return s.err }

func newJSONCtx(e *echo.Echo, path, body string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func restore() {
	hashPassword = service.HashPassword
	comparePassword = service.ComparePassword
	issueToken = service.IssueSessionToken
	getUserByEmail = store.GetUserByEmail
	createUser = store.CreateUser
}

func TestRegisterHandler(t *testing.T) {
	e := echo.New()

	t.Run("bind error", func(t *testing.T) {
		t.Cleanup(restore)
		e.Validator = &stubValidator{}
		ctx, rec := newJSONCtx(e, "/register", "{")
		require.NoError(t, RegisterHandler(nil)(ctx))
		require.Equal(t, http.StatusBadRequest, rec.Code)
		require.Contains(t, rec.Body.String(), "invalid request body")
	})

	t.Run("validate error", func(t *testing.T) {
		t.Cleanup(restore)
		e.Validator = &stubValidator{err: errors.New("name is required")}
		ctx, rec := newJSONCtx(e, "/register", `{"email":"a@b.com","password":"p"}`)
		require.NoError(t, RegisterHandler(nil)(ctx))
		require.Equal(t, http.StatusBadRequest, rec.Code)
		require.Contains(t, rec.Body.String(), "name is required")
	})

	t.Run("bad email", func(t *testing.T) {
		t.Cleanup(restore)
		e.Validator = &stubValidator{}
		ctx, rec := newJSONCtx(e, "/register", `{"name":"a","email":"not-an-email","password":"p"}`)
		require.NoError(t, RegisterHandler(nil)(ctx))
		require.Equal(t, http.StatusBadRequest, rec.Code)
		require.Contains(t, rec.Body.String(), "invalid email format")
	})

	t.Run("duplicate email", func(t *testing.T) {
		t.Cleanup(restore)
		e.Validator = &stubValidator{}
		getUserByEmail = func(_ context.Context, _ database.DB, email string) (*model.User, error) {
			require.Equal(t, "a@b.com", email)
			return &model.User{ID: 1, Email: email}, nil
		}
		ctx, rec := newJSONCtx(e, "/register", `{"name":"a","email":"A@B.com","password":"p"}`)
		require.NoError(t, RegisterHandler(nil)(ctx))
		require.Equal(t, http.StatusBadRequest, rec.Code)
		require.Contains(t, rec.Body.String(), "User already exists")
	})

	t.Run("hash error", func(t *testing.T) {
		t.Cleanup(restore)
		e.Validator = &stubValidator{}
		getUserByEmail = func(context.Context, database.DB, string) (*model.User, error) {
			return nil, errors.New("not found")
		}
		hashPassword = func(string) (string, error) { return "", errors.New("hash") }
		ctx, rec := newJSONCtx(e, "/register", `{"name":"a","email":"a@b.com","password":"p"}`)
		require.NoError(t, RegisterHandler(nil)(ctx))
		require.Equal(t, http.StatusInternalServerError, rec.Code)
		require.Contains(t, rec.Body.String(), "failed to hash password")
	})

	t.Run("create error", func(t *testing.T) {
		t.Cleanup(restore)
		e.Validator = &stubValidator{}
		getUserByEmail = func(context.Context, database.DB, string) (*model.User, error) {
			return nil, errors.New("not found")
		}
		hashPassword = func(string) (string, error) { return "h", nil }
		createUser = func(context.Context, database.DB, *model.User) (*model.User, error) {
			return nil, errors.New("insert failed")
		}
		ctx, rec := newJSONCtx(e, "/register", `{"name":"a","email":"a@b.com","password":"p"}`)
		require.NoError(t, RegisterHandler(nil)(ctx))
		require.Equal(t, http.StatusInternalServerError, rec.Code)
	})

	t.Run("success", func(t *testing.T) {
		t.Cleanup(restore)
		e.Validator = &stubValidator{}
		getUserByEmail = func(context.Context, database.DB, string) (*model.User, error) {
			return nil, errors.New("not found")
		}
		hashPassword = func(string) (string, error) { return "h", nil }
		createUser = func(_ context.Context, _ database.DB, u *model.User) (*model.User, error) {
			require.Equal(t, "a@b.com", u.Email)
			require.Equal(t, "h", u.PasswordHash)
			u.ID = 1
			return u, nil
		}
		ctx, rec := newJSONCtx(e, "/register", `{"name":"a","email":" A@B.com ","password":"p"}`)
		require.NoError(t, RegisterHandler(nil)(ctx))
		require.Equal(t, http.StatusOK, rec.Code)
		require.Contains(t, rec.Body.String(), "User registered successfully!")
	})
}

func TestLoginHandler(t *testing.T) {
	e := echo.New()

	t.Run("bind error", func(t *testing.T) {
		t.Cleanup(restore)
		e.Validator = &stubValidator{}
		ctx, rec := newJSONCtx(e, "/login", "{")
		require.NoError(t, LoginHandler(nil)(ctx))
		require.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("unknown email", func(t *testing.T) {
		t.Cleanup(restore)
		e.Validator = &stubValidator{}
		getUserByEmail = func(context.Context, database.DB, string) (*model.User, error) {
			return nil, errors.New("not found")
		}
		ctx, rec := newJSONCtx(e, "/login", `{"email":"a@b.com","password":"p"}`)
		require.NoError(t, LoginHandler(nil)(ctx))
		require.Equal(t, http.StatusUnauthorized, rec.Code)
		require.Contains(t, rec.Body.String(), "Invalid email or password")
	})

	t.Run("wrong password", func(t *testing.T) {
		t.Cleanup(restore)
		e.Validator = &stubValidator{}
		getUserByEmail = func(context.Context, database.DB, string) (*model.User, error) {
			return &model.User{ID: 1, Name: "a", PasswordHash: "h"}, nil
		}
		comparePassword = func(string, string) error { return errors.New("mismatch") }
		ctx, rec := newJSONCtx(e, "/login", `{"email":"a@b.com","password":"wrong"}`)
		require.NoError(t, LoginHandler(nil)(ctx))
		require.Equal(t, http.StatusUnauthorized, rec.Code)
		// same message as the unknown-email path, no account probing
		require.Contains(t, rec.Body.String(), "Invalid email or password")
	})

	t.Run("token error", func(t *testing.T) {
		t.Cleanup(restore)
		e.Validator = &stubValidator{}
		getUserByEmail = func(context.Context, database.DB, string) (*model.User, error) {
			return &model.User{ID: 1, Name: "a", PasswordHash: "h"}, nil
		}
		comparePassword = func(string, string) error { return nil }
		issueToken = func(model.User, time.Duration) (string, error) { return "", errors.New("no secret") }
		ctx, rec := newJSONCtx(e, "/login", `{"email":"a@b.com","password":"p"}`)
		require.NoError(t, LoginHandler(nil)(ctx))
		require.Equal(t, http.StatusInternalServerError, rec.Code)
	})

	t.Run("success sets cookie", func(t *testing.T) {
		t.Cleanup(restore)
		e.Validator = &stubValidator{}
		getUserByEmail = func(context.Context, database.DB, string) (*model.User, error) {
			return &model.User{ID: 1, Name: "Devang", PasswordHash: "h"}, nil
		}
		comparePassword = func(string, string) error { return nil }
		issueToken = func(u model.User, ttl time.Duration) (string, error) {
			require.Equal(t, service.SessionTTL, ttl)
			return "token123", nil
		}
		ctx, rec := newJSONCtx(e, "/login", `{"email":"a@b.com","password":"p"}`)
		require.NoError(t, LoginHandler(nil)(ctx))
		require.Equal(t, http.StatusOK, rec.Code)
		require.Contains(t, rec.Body.String(), "Login successful")
		require.Contains(t, rec.Body.String(), "Devang")

		cookies := rec.Result().Cookies()
		require.Len(t, cookies, 1)
		require.Equal(t, service.SessionCookieName, cookies[0].Name)
		require.Equal(t, "token123", cookies[0].Value)
		require.True(t, cookies[0].HttpOnly)
	})
}

func TestLogoutHandler(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/logout", nil)
	rec := httptest.NewRecorder()

	require.NoError(t, LogoutHandler()(e.NewContext(req, rec)))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "Logged out successfully")

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	require.Equal(t, service.SessionCookieName, cookies[0].Name)
	require.Empty(t, cookies[0].Value)
	require.True(t, cookies[0].Expires.Before(time.Now()))
}

func TestCheckSessionHandler(t *testing.T) {
	e := echo.New()

	t.Run("anonymous", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/check_session", nil)
		rec := httptest.NewRecorder()

		require.NoError(t, CheckSessionHandler()(e.NewContext(req, rec)))
		require.Equal(t, http.StatusOK, rec.Code)
		require.JSONEq(t, `{"logged_in":false}`, rec.Body.String())
	})

	t.Run("valid session", func(t *testing.T) {
		t.Setenv("JWT_SECRET", "test-secret")
		token, err := service.IssueSessionToken(model.User{ID: 1, Name: "Devang"}, time.Minute)
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/check_session", nil)
		req.AddCookie(&http.Cookie{Name: service.SessionCookieName, Value: token})
		rec := httptest.NewRecorder()

		require.NoError(t, CheckSessionHandler()(e.NewContext(req, rec)))
		require.Equal(t, http.StatusOK, rec.Code)
		require.JSONEq(t, `{"logged_in":true,"user":"Devang"}`, rec.Body.String())
	})

	t.Run("expired token", func(t *testing.T) {
		t.Setenv("JWT_SECRET", "test-secret")
		token, err := service.IssueSessionToken(model.User{ID: 1, Name: "Devang"}, -time.Minute)
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/check_session", nil)
		req.AddCookie(&http.Cookie{Name: service.SessionCookieName, Value: token})
		rec := httptest.NewRecorder()

		require.NoError(t, CheckSessionHandler()(e.NewContext(req, rec)))
		require.JSONEq(t, `{"logged_in":false}`, rec.Body.String())
	})
}
