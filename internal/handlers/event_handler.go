package handlers

import (
	"errors"

	"github.com/ManifoldAI-Apps/triuno-app/internal/auth"
	"github.com/ManifoldAI-Apps/triuno-app/internal/dto"
	"github.com/ManifoldAI-Apps/triuno-app/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type EventHandler struct {
	eventService *services.EventService
}

func NewEventHandler(eventService *services.EventService) *EventHandler {
	return &EventHandler{eventService: eventService}
}

func (h *EventHandler) List(c *fiber.Ctx) error {
	events, err := h.eventService.List()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to load events",
		})
	}
	return c.JSON(fiber.Map{"events": events})
}

func (h *EventHandler) Attend(c *fiber.Ctx) error {
	userID, err := auth.UserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid token",
		})
	}

	eventID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid event id",
		})
	}

	if err := h.eventService.Attend(userID, eventID); err != nil {
		if errors.Is(err, services.ErrEventNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: "Event not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to register attendance",
		})
	}

	return c.JSON(fiber.Map{"message": "Attendance registered"})
}

func (h *EventHandler) Attended(c *fiber.Ctx) error {
	userID, err := auth.UserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid token",
		})
	}

	ids, err := h.eventService.AttendedIDs(userID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to load attendance",
		})
	}

	return c.JSON(fiber.Map{"attendedEventIds": ids})
}
