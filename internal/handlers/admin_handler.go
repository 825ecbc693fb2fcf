package handlers

import (
	"errors"

	"github.com/ManifoldAI-Apps/triuno-app/internal/dto"
	"github.com/ManifoldAI-Apps/triuno-app/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// AdminHandler groups the management endpoints: user moderation, task
// forging, event creation, daily wisdom and broadcasts.
type AdminHandler struct {
	userService         *services.UserService
	taskService         *services.TaskService
	eventService        *services.EventService
	wisdomService       *services.WisdomService
	notificationService *services.NotificationService
}

func NewAdminHandler(
	userService *services.UserService,
	taskService *services.TaskService,
	eventService *services.EventService,
	wisdomService *services.WisdomService,
	notificationService *services.NotificationService,
) *AdminHandler {
	return &AdminHandler{
		userService:         userService,
		taskService:         taskService,
		eventService:        eventService,
		wisdomService:       wisdomService,
		notificationService: notificationService,
	}
}

func (h *AdminHandler) SetUserStatus(c *fiber.Ctx) error {
	userID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid user id",
		})
	}

	var req dto.SetUserStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	user, err := h.userService.SetStatus(userID, req.Status)
	if err != nil {
		if errors.Is(err, services.ErrInvalidStatus) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		if errors.Is(err, services.ErrUserNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: "User not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to update user status",
		})
	}

	return c.JSON(user)
}

func (h *AdminHandler) DeleteUser(c *fiber.Ctx) error {
	userID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid user id",
		})
	}

	if err := h.userService.Delete(userID); err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: "User not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to delete user",
		})
	}

	return c.JSON(fiber.Map{"message": "User deleted"})
}

func (h *AdminHandler) ForgeTask(c *fiber.Ctx) error {
	var req dto.CreateTaskRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	task, err := h.taskService.Forge(&req)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCategory) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: err.Error(),
		})
	}

	return c.Status(fiber.StatusCreated).JSON(task)
}

func (h *AdminHandler) UpdateTask(c *fiber.Ctx) error {
	taskID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid task id",
		})
	}

	var req dto.UpdateTaskRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	task, err := h.taskService.Update(taskID, &req)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCategory) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to update task",
		})
	}

	return c.JSON(task)
}

func (h *AdminHandler) DeleteTask(c *fiber.Ctx) error {
	taskID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid task id",
		})
	}

	if err := h.taskService.Delete(taskID); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to delete task",
		})
	}

	return c.JSON(fiber.Map{"message": "Task deleted"})
}

func (h *AdminHandler) ListTaskTemplates(c *fiber.Ctx) error {
	tasks, err := h.taskService.ListTemplates()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to list tasks",
		})
	}
	return c.JSON(fiber.Map{"tasks": tasks})
}

func (h *AdminHandler) CreateEvent(c *fiber.Ctx) error {
	var req dto.CreateEventRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	event, err := h.eventService.Create(&req)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: err.Error(),
		})
	}

	return c.Status(fiber.StatusCreated).JSON(event)
}

func (h *AdminHandler) SetWisdom(c *fiber.Ctx) error {
	var req dto.SetWisdomRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}
	if req.Text == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Wisdom text is required",
		})
	}

	if err := h.wisdomService.Set(req.Text); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to set wisdom",
		})
	}

	return c.JSON(fiber.Map{"message": "Wisdom updated"})
}

func (h *AdminHandler) Broadcast(c *fiber.Ctx) error {
	var req dto.BroadcastRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}
	if req.Message == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Message is required",
		})
	}

	icon := req.Icon
	if icon == "" {
		icon = "campaign"
	}
	if err := h.notificationService.Broadcast(req.Message, icon); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to broadcast",
		})
	}

	return c.JSON(fiber.Map{"message": "Broadcast sent"})
}
