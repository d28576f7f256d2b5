package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/wiradarma21/travel_booking/handlers"
	"github.com/wiradarma21/travel_booking/middleware"
)

func ReviewRoutes(app *fiber.App, h *handlers.ReviewHandler, protected fiber.Handler) {
	reviews := app.Group("/api/reviews")

	reviews.Get("/package/:packageId", h.ListByPackage)
	reviews.Get("/tourist/:touristId", h.ListByTourist)
	reviews.Post("", protected, middleware.TouristRequired(), h.Create)
}
