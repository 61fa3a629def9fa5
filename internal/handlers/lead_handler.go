package handlers

import (
	"context"
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/farhan1515/GYM-BOT/internal/services"
)

type planOrchestrator interface {
	GeneratePlan(ctx context.Context, sub services.LeadSubmission) (*services.GenerateResult, error)
}

type LeadHandler struct {
	leadService planOrchestrator
}

func NewLeadHandler(leadService planOrchestrator) *LeadHandler {
	return &LeadHandler{leadService: leadService}
}

// GenerateDiet is the orchestration endpoint: a completed profile comes in,
// a stored lead plus generated plan comes out. Delivery failures never
// change the response.
func (h *LeadHandler) GenerateDiet(c *fiber.Ctx) error {
	var payload map[string]any
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	sub, err := services.SubmissionFromPayload(payload)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	result, err := h.leadService.GeneratePlan(c.Context(), sub)
	if err != nil {
		return mapGenerateError(c, err)
	}

	return c.JSON(fiber.Map{
		"success":   true,
		"user_id":   result.LeadID,
		"diet_plan": result.DietPlan,
	})
}

func mapGenerateError(c *fiber.Ctx, err error) error {
	var missing *services.MissingFieldError
	switch {
	case errors.As(err, &missing):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, services.ErrLeadStore):
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to save user data"})
	case errors.Is(err, services.ErrGeneratorNotConfigured):
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":   err.Error(),
			"details": "Please ensure your Gemini API key is properly configured in the .env file",
		})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to generate diet plan"})
	}
}
