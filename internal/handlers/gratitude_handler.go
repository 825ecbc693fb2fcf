package handlers

import (
	"errors"

	"github.com/ManifoldAI-Apps/triuno-app/internal/auth"
	"github.com/ManifoldAI-Apps/triuno-app/internal/dto"
	"github.com/ManifoldAI-Apps/triuno-app/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type GratitudeHandler struct {
	gratitudeService *services.GratitudeService
	userService      *services.UserService
}

func NewGratitudeHandler(gratitudeService *services.GratitudeService, userService *services.UserService) *GratitudeHandler {
	return &GratitudeHandler{gratitudeService: gratitudeService, userService: userService}
}

func (h *GratitudeHandler) CreatePost(c *fiber.Ctx) error {
	userID, err := auth.UserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid token",
		})
	}

	var req dto.CreatePostRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}
	if req.Content == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Content is required",
		})
	}

	author, err := h.userService.GetByID(userID)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "User not found",
		})
	}

	post, err := h.gratitudeService.CreatePost(author, req.Content, req.Anonymous, req.Type, req.ImageURL)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to create post",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(post)
}

func (h *GratitudeHandler) Feed(c *fiber.Ctx) error {
	page := c.QueryInt("page", 1)
	limit := c.QueryInt("limit", 20)

	posts, total, err := h.gratitudeService.Feed(page, limit)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to load feed",
		})
	}

	return c.JSON(fiber.Map{
		"posts": posts,
		"total": total,
		"page":  page,
		"limit": limit,
	})
}

func (h *GratitudeHandler) AddComment(c *fiber.Ctx) error {
	userID, err := auth.UserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid token",
		})
	}

	postID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid post id",
		})
	}

	var req dto.AddCommentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}
	if req.Text == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Comment text is required",
		})
	}

	commenter, err := h.userService.GetByID(userID)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "User not found",
		})
	}

	comment, err := h.gratitudeService.AddComment(postID, commenter, req.Text)
	if err != nil {
		if errors.Is(err, services.ErrPostNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: "Post not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to add comment",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(comment)
}

func (h *GratitudeHandler) ToggleLike(c *fiber.Ctx) error {
	userID, err := auth.UserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid token",
		})
	}

	postID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid post id",
		})
	}

	liked, err := h.gratitudeService.ToggleLike(postID, userID)
	if err != nil {
		if errors.Is(err, services.ErrPostNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: "Post not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to toggle like",
		})
	}

	return c.JSON(fiber.Map{"liked": liked})
}

func (h *GratitudeHandler) LikedPosts(c *fiber.Ctx) error {
	userID, err := auth.UserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid token",
		})
	}

	ids, err := h.gratitudeService.LikedIDs(userID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to load liked posts",
		})
	}

	return c.JSON(fiber.Map{"likedPostIds": ids})
}
