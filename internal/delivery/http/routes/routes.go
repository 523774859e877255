package routes

import (
	"time"

	"job-board/internal/delivery/http/handler"
	"job-board/internal/delivery/http/middleware"
	"job-board/internal/pkg/response"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/limiter"
	"github.com/gofiber/fiber/v3/middleware/static"
)

// Handlers is everything the registry mounts. Nil handlers are skipped.
type Handlers struct {
	Auth        *handler.AuthHandler
	User        *handler.UserHandler
	Job         *handler.JobHandler
	Application *handler.ApplicationHandler
	Chat        *handler.ChatHandler
	Health      *handler.HealthHandler

	// Socket and Metrics are mounted at the application root.
	Socket  interface{ RegisterRoutes(fiber.Router) }
	Metrics fiber.Handler
}

type Registry struct {
	h    Handlers
	auth *middleware.AuthMiddleware

	uploadsDir     string
	authRateMax    int
	authRateWindow time.Duration
}

func NewRegistry(h Handlers, auth *middleware.AuthMiddleware, uploadsDir string) *Registry {
	return &Registry{
		h:              h,
		auth:           auth,
		uploadsDir:     uploadsDir,
		authRateMax:    20,
		authRateWindow: time.Minute,
	}
}

func (r *Registry) Register(app *fiber.App) {
	if app == nil {
		return
	}

	r.registerRoot(app)
	r.registerAPI(app.Group("/api"))
}

func (r *Registry) registerRoot(app *fiber.App) {
	app.Get("/", func(c fiber.Ctx) error {
		return response.Success(c, fiber.StatusOK, "Job board API is running", nil)
	})
	if r.uploadsDir != "" {
		app.Use("/uploads", static.New(r.uploadsDir))
	}
	if r.h.Metrics != nil {
		app.Get("/metrics", r.h.Metrics)
	}
	if r.h.Socket != nil {
		r.h.Socket.RegisterRoutes(app)
	}
}

func (r *Registry) registerAPI(api fiber.Router) {
	if r.h.Health != nil {
		r.h.Health.RegisterRoutes(api)
	}

	if r.h.Auth != nil {
		authGroup := api.Group("/auth")
		authGroup.Use(limiter.New(limiter.Config{
			Max:        r.authRateMax,
			Expiration: r.authRateWindow,
			LimitReached: func(c fiber.Ctx) error {
				return middleware.NewAppError(fiber.StatusTooManyRequests, "Too many requests, try again later", nil, nil)
			},
		}))
		r.h.Auth.RegisterRoutes(authGroup)
	}

	if r.auth == nil {
		return
	}

	if r.h.User != nil {
		users := api.Group("/user")
		users.Use(r.auth.Middleware())
		r.h.User.RegisterRoutes(users)
	}

	// /api/job mixes public and protected routes, so each protected route
	// wraps its own auth check.
	if r.h.Job != nil {
		r.h.Job.RegisterRoutes(api.Group("/job"), r.auth)
	}

	if r.h.Application != nil {
		apps := api.Group("/application")
		apps.Use(r.auth.Middleware())
		r.h.Application.RegisterRoutes(apps)
	}

	if r.h.Chat != nil {
		chat := api.Group("/chat")
		chat.Use(r.auth.Middleware())
		r.h.Chat.RegisterRoutes(chat)
	}
}
