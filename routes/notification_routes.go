package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/wiradarma21/travel_booking/handlers"
)

func NotificationRoutes(app *fiber.App, h *handlers.NotificationHandler, protected fiber.Handler) {
	app.Get("/api/notifications", protected, h.Drain)
}
