package handlers

import (
	"time"

	"github.com/ManifoldAI-Apps/triuno-app/internal/database"
	"github.com/ManifoldAI-Apps/triuno-app/internal/dto"
	"github.com/gofiber/fiber/v2"
)

func Health(c *fiber.Ctx) error {
	dbStatus := "ok"
	if err := database.Ping(); err != nil {
		dbStatus = "down"
	}

	resp := dto.HealthResponse{
		Status:    "ok",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		DB:        dbStatus,
	}
	if dbStatus != "ok" {
		resp.Status = "degraded"
		return c.Status(fiber.StatusServiceUnavailable).JSON(resp)
	}
	return c.JSON(resp)
}
