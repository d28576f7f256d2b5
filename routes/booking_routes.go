package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/wiradarma21/travel_booking/handlers"
	"github.com/wiradarma21/travel_booking/middleware"
)

func BookingRoutes(app *fiber.App, bookings *handlers.BookingHandler, payments *handlers.PaymentHandler, protected fiber.Handler) {
	group := app.Group("/api/bookings", protected)

	group.Get("", middleware.AgentRequired(), bookings.List)
	group.Get("/payment/pending", middleware.AgentRequired(), bookings.PendingPayments)
	group.Get("/tourist/:touristId", bookings.ListByTourist)
	group.Get("/package/:packageId", bookings.ListByPackage)
	group.Post("", middleware.TouristRequired(), bookings.Create)
	group.Put("/:id/status", middleware.AgentRequired(), bookings.UpdateStatus)
	group.Put("/:id/cancel", middleware.TouristRequired(), bookings.Cancel)

	group.Post("/:id/payment-proof", middleware.TouristRequired(), payments.UploadProof)
	group.Put("/:id/payment-verify", middleware.AgentRequired(), payments.Verify)
	group.Put("/:id/payment-reject", middleware.AgentRequired(), payments.Reject)
}
