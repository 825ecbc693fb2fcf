package handlers

import (
	"github.com/ManifoldAI-Apps/triuno-app/internal/dto"
	"github.com/ManifoldAI-Apps/triuno-app/internal/services"
	"github.com/gofiber/fiber/v2"
)

// commitmentText is the pact every member must accept before entering
// the sanctuary views.
const commitmentText = `Eu me comprometo a cultivar diariamente o equilíbrio entre Corpo, Alma e Espírito.

Assumo a jornada da ascensão plena: cuidarei do meu corpo como templo, da minha alma como jardim e do meu espírito como chama.

Compartilharei gratidão, sincronizarei almas com outros caminhantes e honrarei cada Portal Temporal que atravessar.`

type ContentHandler struct {
	wisdomService *services.WisdomService
}

func NewContentHandler(wisdomService *services.WisdomService) *ContentHandler {
	return &ContentHandler{wisdomService: wisdomService}
}

func (h *ContentHandler) Commitment(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"text": commitmentText})
}

func (h *ContentHandler) Wisdom(c *fiber.Ctx) error {
	text, err := h.wisdomService.Get()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to load wisdom",
		})
	}
	return c.JSON(fiber.Map{"wisdom": text})
}
