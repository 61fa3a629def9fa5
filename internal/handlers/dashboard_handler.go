package handlers

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/farhan1515/GYM-BOT/internal/services"
)

type DashboardHandler struct {
	dashboardService *services.DashboardService
}

func NewDashboardHandler(dashboardService *services.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

func (h *DashboardHandler) ListLeads(c *fiber.Ctx) error {
	leads, err := h.dashboardService.ListLeads(c.Context(), c.Query("search"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch leads"})
	}
	return c.JSON(fiber.Map{
		"leads": leads,
		"count": len(leads),
	})
}

func (h *DashboardHandler) GetStats(c *fiber.Ctx) error {
	stats, err := h.dashboardService.Stats(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to compute stats"})
	}
	return c.JSON(stats)
}

func (h *DashboardHandler) ExportCSV(c *fiber.Ctx) error {
	leads, err := h.dashboardService.ListLeads(c.Context(), c.Query("search"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch leads"})
	}

	filename := fmt.Sprintf("fitness-leads-%s.csv", time.Now().Format("2006-01-02"))
	c.Set(fiber.HeaderContentType, "text/csv")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename=%q`, filename))
	return c.Send(services.ExportCSV(leads))
}

func (h *DashboardHandler) ExportXLSX(c *fiber.Ctx) error {
	leads, err := h.dashboardService.ListLeads(c.Context(), c.Query("search"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch leads"})
	}

	content, err := services.ExportXLSX(leads)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to build workbook"})
	}

	filename := fmt.Sprintf("fitness-leads-%s.xlsx", time.Now().Format("2006-01-02"))
	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename=%q`, filename))
	return c.Send(content)
}
