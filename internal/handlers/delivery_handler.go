package handlers

import (
	"context"
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/farhan1515/GYM-BOT/internal/services"
)

type messageDeliverer interface {
	Send(ctx context.Context, to, message string) (*services.DeliveryResult, error)
}

type DeliveryHandler struct {
	deliveryService messageDeliverer
}

func NewDeliveryHandler(deliveryService messageDeliverer) *DeliveryHandler {
	return &DeliveryHandler{deliveryService: deliveryService}
}

type sendWhatsAppRequest struct {
	To      string `json:"to"`
	Message string `json:"message"`
}

// SendWhatsApp exposes the notifier directly. Unlike the orchestration path,
// failures here surface to the caller with the full error taxonomy.
func (h *DeliveryHandler) SendWhatsApp(c *fiber.Ctx) error {
	var req sendWhatsAppRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if req.To == "" || req.Message == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Missing required fields: to, message"})
	}

	result, err := h.deliveryService.Send(c.Context(), req.To, req.Message)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidDestination):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid phone number format"})
		case errors.Is(err, services.ErrSendDenied):
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Permission to send SMS has not been enabled"})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to send WhatsApp message"})
		}
	}

	if result.Simulated {
		return c.JSON(fiber.Map{
			"success": true,
			"message": "WhatsApp message simulated (Twilio not configured)",
			"sid":     result.SID,
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "WhatsApp message sent successfully",
	})
}
