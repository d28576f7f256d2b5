package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/wiradarma21/travel_booking/handlers"
	"github.com/wiradarma21/travel_booking/middleware"
)

func AnalyticsRoutes(app *fiber.App, h *handlers.AnalyticsHandler, protected fiber.Handler) {
	analytics := app.Group("/api/analytics", protected)

	analytics.Get("/agent/stats", middleware.AgentRequired(), h.AgentStats)
	analytics.Get("/agent/package-performance", middleware.AgentRequired(), h.PackagePerformance)
	analytics.Get("/tourist/stats", middleware.TouristRequired(), h.TouristStats)
}
