package app

import (
	"fmt"
	"log"
	"strings"

	"job-board/internal/config"
	"job-board/internal/delivery/http/handler"
	"job-board/internal/delivery/http/middleware"
	"job-board/internal/delivery/http/routes"
	"job-board/internal/domain/matching"
	"job-board/internal/observability/metrics"
	"job-board/internal/repository"
	"job-board/internal/usecase"
	"job-board/internal/ws"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/cors"
)

type App struct {
	Fiber     *fiber.App
	Container *Container
}

// New wires usecases and handlers on top of c and builds the Fiber app.
func New(c *Container) *App {
	cfg := c.Config
	logger := c.Logger
	if logger == nil {
		logger = log.Default()
	}

	f := fiber.New(fiber.Config{
		AppName:   cfg.App.AppName,
		BodyLimit: bodyLimit(cfg.Upload.MaxSizeBytes),
	})

	registerGlobalMiddleware(f, cfg, logger)

	users := repository.NewPostgresUserRepository(c.DB)
	jobs := repository.NewPostgresJobRepository(c.DB)
	apps := repository.NewPostgresApplicationRepository(c.DB)

	authUC := usecase.NewAuthUsecase(users, c.JWT)
	userUC := usecase.NewUserUsecase(users, c.Files, cfg.App.PublicBaseURL)
	jobUC := usecase.NewJobUsecase(jobs, c.Cache, cfg.Redis.TTL, logger)
	recUC := usecase.NewJobRecommendationUsecase(jobs, users, c.Cache, matching.ParseMode(cfg.Matching.ScoreMode), cfg.Redis.TTL, logger)
	appUC := usecase.NewApplicationUsecase(apps, jobs, users, c.Files, c.Hub, logger)
	chatUC := usecase.NewChatUsecase(c.Hub.Relay())

	h := routes.Handlers{
		Auth:        handler.NewAuthHandler(authUC),
		User:        handler.NewUserHandler(userUC),
		Job:         handler.NewJobHandler(jobUC, recUC),
		Application: handler.NewApplicationHandler(appUC),
		Chat:        handler.NewChatHandler(chatUC),
		Health:      handler.NewHealthHandler(c.DB, c.Cache, c.Hub),
		Socket:      ws.NewHandler(c.Hub, cfg.App.AllowedOrigins, logger),
		Metrics:     metrics.Handler(),
	}
	routes.NewRegistry(h, middleware.NewAuthMiddleware(c.JWT), cfg.Upload.Dir).Register(f)

	return &App{Fiber: f, Container: c}
}

func Bootstrap(cfg config.Config) (*App, func() error, error) {
	logger := log.New(log.Writer(), "", log.LstdFlags|log.Lmicroseconds)

	c, err := NewContainer(cfg, logger)
	if err != nil {
		return nil, nil, err
	}
	return New(c), c.Close, nil
}

func registerGlobalMiddleware(app *fiber.App, cfg config.Config, logger *log.Logger) {
	if app == nil {
		return
	}

	// Access log and metrics sit outside the error middleware so they see
	// the rendered status.
	app.Use(middleware.NewAccessLogMiddleware(logger).Middleware())
	app.Use(metrics.Middleware())

	errMw := middleware.NewErrorMiddleware(logger)
	app.Use(errMw.Middleware())

	corsCfg := cors.Config{}
	if len(cfg.App.AllowedOrigins) > 0 {
		corsCfg.AllowOrigins = cfg.App.AllowedOrigins
		corsCfg.AllowCredentials = true
	}
	app.Use(cors.New(corsCfg))
}

// bodyLimit leaves room for the multipart envelope around a resume upload.
func bodyLimit(maxUpload int) int {
	const slack = 1 << 20
	if maxUpload <= 0 {
		return 0
	}
	return maxUpload + slack
}

func ListenAddr(port string) (string, error) {
	p := strings.TrimSpace(port)
	if p == "" {
		return "", fmt.Errorf("empty HTTP port")
	}
	if strings.HasPrefix(p, ":") {
		return p, nil
	}
	return ":" + p, nil
}
