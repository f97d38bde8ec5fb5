package handler

import (
	"context"
	"time"

	"crewmatch/internal/database"
	"crewmatch/internal/pkg/response"

	"github.com/gofiber/fiber/v3"
)

type HealthHandler struct {
	db database.DB
}

func NewHealthHandler(db database.DB) *HealthHandler {
	return &HealthHandler{db: db}
}

func (h *HealthHandler) RegisterRoutes(app *fiber.App) {
	if app == nil {
		return
	}
	app.Get("/health", h.Health)
}

func (h *HealthHandler) Health(c fiber.Ctx) error {
	data := map[string]any{"database": "ok"}
	status := fiber.StatusOK

	if h.db != nil {
		ctx, cancel := context.WithTimeout(c.Context(), 2*time.Second)
		defer cancel()
		if err := h.db.Ping(ctx); err != nil {
			data["database"] = "unreachable"
			status = fiber.StatusServiceUnavailable
		}
	}

	if status != fiber.StatusOK {
		return response.Error(c, status, "degraded", data)
	}
	return response.Success(c, status, response.MessageOK, data)
}
