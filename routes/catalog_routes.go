package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/wiradarma21/travel_booking/handlers"
	"github.com/wiradarma21/travel_booking/middleware"
)

func CatalogRoutes(app *fiber.App, h *handlers.CatalogHandler, protected fiber.Handler) {
	destinations := app.Group("/api/destinations")
	destinations.Get("", h.ListDestinations)
	destinations.Get("/:id", h.GetDestination)
	destinations.Post("", protected, middleware.AgentRequired(), h.CreateDestination)

	packages := app.Group("/api/packages")
	packages.Get("", h.ListPackages)
	packages.Get("/agent/:agentId", h.ListPackagesByAgent)
	packages.Get("/:id", h.GetPackage)
	packages.Post("", protected, middleware.AgentRequired(), h.CreatePackage)
	packages.Put("/:id", protected, middleware.AgentRequired(), h.UpdatePackage)
	packages.Delete("/:id", protected, middleware.AgentRequired(), h.DeletePackage)
}
