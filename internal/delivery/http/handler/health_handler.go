package handler

import (
	"context"
	"time"

	"job-board/internal/delivery/http/dto"
	"job-board/internal/pkg/response"

	"github.com/gofiber/fiber/v3"
)

type Pinger interface {
	Ping(ctx context.Context) error
}

// ConnStats reports live socket counts.
type ConnStats interface {
	ClientCount() int
	OnlineUsers() int
}

type HealthHandler struct {
	db    Pinger
	cache Pinger
	conns ConnStats
	now   func() time.Time
}

func NewHealthHandler(db, cache Pinger, conns ConnStats) *HealthHandler {
	return &HealthHandler{db: db, cache: cache, conns: conns, now: time.Now}
}

func (h *HealthHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/health", h.Health)
}

// Health always answers 200; degraded dependencies show up in the body.
func (h *HealthHandler) Health(c fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 2*time.Second)
	defer cancel()

	res := dto.HealthResponse{
		Status:          "ok",
		Timestamp:       h.now().Unix(),
		DatabaseHealthy: ping(ctx, h.db),
		RedisHealthy:    ping(ctx, h.cache),
	}
	if h.conns != nil {
		res.OnlineUsers = h.conns.OnlineUsers()
		res.Connections = h.conns.ClientCount()
	}
	if !res.DatabaseHealthy {
		res.Status = "degraded"
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, res)
}

func ping(ctx context.Context, p Pinger) bool {
	if p == nil {
		return false
	}
	return p.Ping(ctx) == nil
}
