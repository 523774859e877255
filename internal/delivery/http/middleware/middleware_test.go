package middleware

import (
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"job-board/internal/pkg/jwt"
	"job-board/internal/pkg/response"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestApp(jwtSvc jwt.Service) *fiber.App {
	logger := log.New(io.Discard, "", 0)
	app := fiber.New()
	app.Use(NewErrorMiddleware(logger).Middleware())

	auth := NewAuthMiddleware(jwtSvc)
	app.Get("/me", auth.Wrap(func(c fiber.Ctx) error {
		id, err := UserID(c)
		if err != nil {
			return err
		}
		return response.Success(c, fiber.StatusOK, "", fiber.Map{"id": id.String(), "role": Role(c)})
	}))
	app.Get("/recruiters", auth.Wrap(RequireRole("recruiter", func(c fiber.Ctx) error {
		return response.Success(c, fiber.StatusOK, "", nil)
	})))
	protected := app.Group("/private")
	protected.Use(auth.Middleware())
	protected.Get("/ping", func(c fiber.Ctx) error {
		return response.Success(c, fiber.StatusOK, "", nil)
	})
	app.Get("/boom", func(c fiber.Ctx) error {
		return errors.New("db exploded")
	})
	app.Get("/panic", func(c fiber.Ctx) error {
		panic("nope")
	})
	app.Get("/unavailable", func(c fiber.Ctx) error {
		return fiber.NewError(fiber.StatusServiceUnavailable, "upstream socket pool exhausted")
	})
	app.Get("/teapot", func(c fiber.Ctx) error {
		return NewAppError(fiber.StatusConflict, "", fiber.Map{"field": "email"}, nil)
	})
	return app
}

func decodeBody(t *testing.T, res *http.Response) response.SemanticResponse {
	t.Helper()
	defer res.Body.Close()
	var body response.SemanticResponse
	require.NoError(t, json.NewDecoder(res.Body).Decode(&body))
	return body
}

func TestAuthMiddleware(t *testing.T) {
	svc := jwt.NewHMACService("a", "r", time.Hour, time.Hour)
	app := newTestApp(svc)
	id := uuid.New()

	seeker, err := svc.GenerateAccessToken(id, "s@x.io", "jobseeker")
	require.NoError(t, err)
	recruiter, err := svc.GenerateAccessToken(uuid.New(), "r@x.io", "recruiter")
	require.NoError(t, err)
	refresh, err := svc.GenerateRefreshToken(id)
	require.NoError(t, err)

	cases := []struct {
		name   string
		path   string
		header string
		status int
	}{
		{"no header", "/me", "", fiber.StatusUnauthorized},
		{"wrong scheme", "/me", "Basic abc", fiber.StatusUnauthorized},
		{"garbage token", "/me", "Bearer abc", fiber.StatusUnauthorized},
		{"refresh token", "/me", "Bearer " + refresh, fiber.StatusUnauthorized},
		{"access token", "/me", "Bearer " + seeker, fiber.StatusOK},
		{"seeker on recruiter route", "/recruiters", "Bearer " + seeker, fiber.StatusForbidden},
		{"recruiter on recruiter route", "/recruiters", "Bearer " + recruiter, fiber.StatusOK},
		{"group middleware without token", "/private/ping", "", fiber.StatusUnauthorized},
		{"group middleware with token", "/private/ping", "Bearer " + seeker, fiber.StatusOK},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tc.path, nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			res, err := app.Test(req)
			require.NoError(t, err)
			body := decodeBody(t, res)
			assert.Equal(t, tc.status, res.StatusCode)
			assert.Equal(t, tc.status, body.Status)
		})
	}
}

func TestErrorMiddlewareHidesInternalErrors(t *testing.T) {
	app := newTestApp(jwt.NewHMACService("a", "r", time.Hour, time.Hour))

	for _, path := range []string{"/boom", "/panic"} {
		res, err := app.Test(httptest.NewRequest(http.MethodGet, path, nil))
		require.NoError(t, err)
		body := decodeBody(t, res)
		assert.Equal(t, fiber.StatusInternalServerError, res.StatusCode)
		assert.Equal(t, response.MessageInternalServerError, body.Message)
	}
}

func TestErrorMiddlewareKeepsFiber5xxCode(t *testing.T) {
	app := newTestApp(jwt.NewHMACService("a", "r", time.Hour, time.Hour))

	res, err := app.Test(httptest.NewRequest(http.MethodGet, "/unavailable", nil))
	require.NoError(t, err)
	body := decodeBody(t, res)
	assert.Equal(t, fiber.StatusServiceUnavailable, res.StatusCode)
	assert.Equal(t, response.MessageInternalServerError, body.Message)
}

func TestErrorMiddlewareDefaultMessageAndData(t *testing.T) {
	app := newTestApp(jwt.NewHMACService("a", "r", time.Hour, time.Hour))

	res, err := app.Test(httptest.NewRequest(http.MethodGet, "/teapot", nil))
	require.NoError(t, err)
	body := decodeBody(t, res)
	assert.Equal(t, fiber.StatusConflict, res.StatusCode)
	assert.Equal(t, response.MessageConflict, body.Message)
	assert.Equal(t, map[string]any{"field": "email"}, body.Data)
}

func TestBearerTokenFromHeader(t *testing.T) {
	tok, ok := bearerTokenFromHeader("  bearer   xyz ")
	assert.True(t, ok)
	assert.Equal(t, "xyz", tok)

	_, ok = bearerTokenFromHeader("Bearer ")
	assert.False(t, ok)
}
