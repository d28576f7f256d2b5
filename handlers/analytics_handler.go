package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/wiradarma21/travel_booking/api"
)

type AnalyticsHandler struct {
	analytics *api.AnalyticsService
}

func NewAnalyticsHandler(analytics *api.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{analytics: analytics}
}

func (h *AnalyticsHandler) AgentStats(c *fiber.Ctx) error {
	stats, err := h.analytics.AgentStats()
	if err != nil {
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(stats)
}

func (h *AnalyticsHandler) PackagePerformance(c *fiber.Ctx) error {
	rows, err := h.analytics.PackagePerformance()
	if err != nil {
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(rows)
}

func (h *AnalyticsHandler) TouristStats(c *fiber.Ctx) error {
	stats, err := h.analytics.TouristStats()
	if err != nil {
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(stats)
}
