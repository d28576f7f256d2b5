package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/wiradarma21/travel_booking/handlers"
	"github.com/wiradarma21/travel_booking/middleware"
)

func QRISRoutes(app *fiber.App, h *handlers.QRISHandler, protected fiber.Handler) {
	qris := app.Group("/api/qris")

	// Preview and decode need no auth; the payment page shows them to
	// tourists before sign-in.
	qris.Post("/preview", h.Preview)
	qris.Post("/decode", h.DecodePayload)

	qris.Get("", protected, middleware.AgentRequired(), h.List)
	qris.Get("/:id", protected, middleware.AgentRequired(), h.Get)
	qris.Post("", protected, middleware.AgentRequired(), h.Create)
	qris.Delete("/:id", protected, middleware.AgentRequired(), h.Delete)

	app.Post("/api/payment/generate", protected, h.GeneratePayment)
}
