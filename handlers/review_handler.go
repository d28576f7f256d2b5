package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/wiradarma21/travel_booking/api"
	"github.com/wiradarma21/travel_booking/forms"
	"github.com/wiradarma21/travel_booking/models"
	"github.com/wiradarma21/travel_booking/notifications"
	"github.com/wiradarma21/travel_booking/store"
)

type ReviewHandler struct {
	reviews  *store.ReviewStore
	bookings *store.BookingStore
	toasts   *notifications.Feed
}

func NewReviewHandler(reviews *store.ReviewStore, bookings *store.BookingStore, toasts *notifications.Feed) *ReviewHandler {
	return &ReviewHandler{reviews: reviews, bookings: bookings, toasts: toasts}
}

func (h *ReviewHandler) ListByPackage(c *fiber.Ctx) error {
	packageID := c.Params("packageId")
	if err := h.reviews.FetchByPackage(packageID); err != nil {
		h.toasts.Error("Could not refresh reviews")
	}
	return c.JSON(fiber.Map{
		"reviews": h.reviews.ByPackage(packageID),
		"rating":  h.reviews.PackageRating(packageID),
	})
}

func (h *ReviewHandler) ListByTourist(c *fiber.Ctx) error {
	touristID := c.Params("touristId")
	if err := h.reviews.FetchByTourist(touristID); err != nil {
		h.toasts.Error("Could not refresh reviews")
	}
	return c.JSON(h.reviews.ByTourist(touristID))
}

// Create posts a review. The duplicate check here is a local convenience;
// the backend owns the one-review-per-completed-booking rule.
func (h *ReviewHandler) Create(c *fiber.Ctx) error {
	user := c.Locals("user").(models.User)

	var form forms.ReviewForm
	if err := c.BodyParser(&form); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := forms.Validate(form); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error(), "form": form})
	}

	if h.reviews.HasUserReviewedPackage(user.ID, form.PackageID) {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "You have already reviewed this package", "form": form})
	}

	review, err := h.reviews.Create(api.CreateReviewRequest{
		PackageID: form.PackageID,
		BookingID: form.BookingID,
		Rating:    form.Rating,
		Comment:   form.Comment,
	})
	if err != nil {
		h.toasts.Error("Review submission failed")
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": err.Error(), "form": form})
	}

	if form.BookingID != "" {
		h.bookings.MarkReviewed(form.BookingID)
	}
	return c.Status(fiber.StatusCreated).JSON(review)
}
