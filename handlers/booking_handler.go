package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/wiradarma21/travel_booking/api"
	"github.com/wiradarma21/travel_booking/forms"
	"github.com/wiradarma21/travel_booking/models"
	"github.com/wiradarma21/travel_booking/notifications"
	"github.com/wiradarma21/travel_booking/store"
)

type BookingHandler struct {
	bookings *store.BookingStore
	catalog  *store.CatalogStore
	toasts   *notifications.Feed
}

func NewBookingHandler(bookings *store.BookingStore, catalog *store.CatalogStore, toasts *notifications.Feed) *BookingHandler {
	return &BookingHandler{bookings: bookings, catalog: catalog, toasts: toasts}
}

// List refreshes the full booking cache. A fetch failure keeps the stale
// snapshot on screen and raises a toast instead of wiping the list.
func (h *BookingHandler) List(c *fiber.Ctx) error {
	if err := h.bookings.FetchAll(); err != nil {
		h.toasts.Error("Could not refresh bookings")
	}
	return c.JSON(fiber.Map{"data": h.bookings.Bookings()})
}

func (h *BookingHandler) ListByTourist(c *fiber.Ctx) error {
	touristID := c.Params("touristId")
	if err := h.bookings.FetchByTourist(touristID); err != nil {
		h.toasts.Error("Could not refresh bookings")
	}
	return c.JSON(h.bookings.ByTourist(touristID))
}

func (h *BookingHandler) ListByPackage(c *fiber.Ctx) error {
	packageID := c.Params("packageId")
	if err := h.bookings.FetchByPackage(packageID); err != nil {
		h.toasts.Error("Could not refresh bookings")
	}
	return c.JSON(h.bookings.ByPackage(packageID))
}

func (h *BookingHandler) Create(c *fiber.Ctx) error {
	var form forms.BookingForm
	if err := c.BodyParser(&form); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := forms.Validate(form); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error(), "form": form})
	}

	// The travelers cap is per package.
	if pkg, ok := h.catalog.PackageByID(form.PackageID); ok && form.TravelersCount > pkg.MaxTravelers {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Travelers count exceeds the package maximum",
			"form":  form,
		})
	}

	booking, err := h.bookings.Create(api.CreateBookingRequest{
		PackageID:      form.PackageID,
		TravelDate:     form.TravelDate,
		TravelersCount: form.TravelersCount,
		TotalPrice:     form.TotalPrice,
	})
	if err != nil {
		h.toasts.Error("Booking failed")
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": err.Error(), "form": form})
	}

	return c.Status(fiber.StatusCreated).JSON(booking)
}

type updateStatusForm struct {
	Status models.BookingStatus `json:"status"`
}

// UpdateStatus gates the agent's manual transition locally before asking the
// backend; the backend remains the authority.
func (h *BookingHandler) UpdateStatus(c *fiber.Ctx) error {
	id := c.Params("id")

	var form updateStatusForm
	if err := c.BodyParser(&form); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if !form.Status.Valid() {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Unknown booking status"})
	}

	current, ok := h.findBooking(id)
	if ok {
		if form.Status == models.BookingConfirmed && !models.CanConfirmBooking(current.Status) {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "Only pending bookings can be confirmed"})
		}
		if !current.Status.CanTransitionTo(form.Status) {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{
				"error": "Cannot move booking from " + string(current.Status) + " to " + string(form.Status),
			})
		}
	}

	if err := h.bookings.UpdateStatus(id, form.Status); err != nil {
		h.toasts.Error("Status update failed")
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"message": "Booking updated", "status": form.Status})
}

// Cancel lets the tourist back out of a pending or confirmed booking before
// the travel date.
func (h *BookingHandler) Cancel(c *fiber.Ctx) error {
	id := c.Params("id")

	if current, ok := h.findBooking(id); ok {
		if !models.CanCancelBooking(current.Status, current.TravelDate, time.Now()) {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "This booking can no longer be cancelled"})
		}
	}

	if err := h.bookings.Cancel(id); err != nil {
		h.toasts.Error("Cancellation failed")
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"message": "Booking cancelled"})
}

func (h *BookingHandler) PendingPayments(c *fiber.Ctx) error {
	if err := h.bookings.FetchPendingPayments(); err != nil {
		h.toasts.Error("Could not refresh pending payments")
	}
	return c.JSON(h.bookings.PendingPayments())
}

func (h *BookingHandler) findBooking(id string) (models.Booking, bool) {
	for _, b := range h.bookings.Bookings() {
		if b.ID == id {
			return b, true
		}
	}
	return models.Booking{}, false
}
