package handlers

import (
	"github.com/ManifoldAI-Apps/triuno-app/internal/auth"
	"github.com/ManifoldAI-Apps/triuno-app/internal/dto"
	"github.com/ManifoldAI-Apps/triuno-app/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type ConnectionHandler struct {
	connectionService *services.ConnectionService
}

func NewConnectionHandler(connectionService *services.ConnectionService) *ConnectionHandler {
	return &ConnectionHandler{connectionService: connectionService}
}

func (h *ConnectionHandler) Request(c *fiber.Ctx) error {
	userID, err := auth.UserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid token",
		})
	}

	var req dto.ConnectionRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	targetID, err := uuid.Parse(req.TargetID)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid target id",
		})
	}

	if err := h.connectionService.Request(userID, targetID); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to send connection request",
		})
	}

	return c.JSON(fiber.Map{"message": "Connection request sent"})
}

func (h *ConnectionHandler) Accept(c *fiber.Ctx) error {
	userID, err := auth.UserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid token",
		})
	}

	var req dto.AcceptConnectionRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	requesterID, err := uuid.Parse(req.RequesterID)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid requester id",
		})
	}

	if err := h.connectionService.Accept(userID, requesterID); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to accept connection",
		})
	}

	return c.JSON(fiber.Map{"message": "Connection accepted"})
}
