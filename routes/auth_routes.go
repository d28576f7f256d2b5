package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/wiradarma21/travel_booking/handlers"
)

func AuthRoutes(app *fiber.App, h *handlers.AuthHandler, protected fiber.Handler) {
	auth := app.Group("/api/auth")

	auth.Post("/login", h.Login)
	auth.Post("/register", h.Register)
	auth.Post("/logout", h.Logout)
	auth.Get("/session", h.Session)

	auth.Get("/me", protected, h.Me)
	auth.Put("/profile", protected, h.UpdateProfile)
	auth.Post("/change-password", protected, h.ChangePassword)
}
