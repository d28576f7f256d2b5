package handlers

import (
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/gofiber/fiber/v2"

	"github.com/wiradarma21/travel_booking/api"
	"github.com/wiradarma21/travel_booking/forms"
	"github.com/wiradarma21/travel_booking/notifications"
	"github.com/wiradarma21/travel_booking/store"
)

type PaymentHandler struct {
	bookings *store.BookingStore
	toasts   *notifications.Feed
}

func NewPaymentHandler(bookings *store.BookingStore, toasts *notifications.Feed) *PaymentHandler {
	return &PaymentHandler{bookings: bookings, toasts: toasts}
}

// UploadProof forwards the transfer evidence to the backend. Only real
// images get through; the proof is subject to agent verification.
func (h *PaymentHandler) UploadProof(c *fiber.Ctx) error {
	id := c.Params("id")

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Payment proof file is required"})
	}

	file, err := fileHeader.Open()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot read payment proof file"})
	}
	defer file.Close()

	mtype, err := mimetype.DetectReader(file)
	if err != nil || !strings.HasPrefix(mtype.String(), "image/") {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Payment proof must be an image"})
	}
	if _, err := file.Seek(0, 0); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Cannot rewind payment proof file"})
	}

	if err := h.bookings.UploadPaymentProof(id, api.Upload{Filename: fileHeader.Filename, Reader: file}); err != nil {
		h.toasts.Error("Payment proof upload failed")
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"message": "Payment proof uploaded, awaiting verification"})
}

// Verify accepts the proof; the booking is confirmed as a side effect.
func (h *PaymentHandler) Verify(c *fiber.Ctx) error {
	id := c.Params("id")

	if err := h.bookings.VerifyPayment(id); err != nil {
		h.toasts.Error("Payment verification failed")
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"message": "Payment verified, booking confirmed"})
}

// Reject refuses the proof with a reason; the booking status is untouched so
// the tourist can re-upload.
func (h *PaymentHandler) Reject(c *fiber.Ctx) error {
	id := c.Params("id")

	var form forms.RejectPaymentForm
	if err := c.BodyParser(&form); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := forms.Validate(form); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error(), "form": form})
	}

	if err := h.bookings.RejectPayment(id, form.Reason); err != nil {
		h.toasts.Error("Payment rejection failed")
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"message": "Payment rejected"})
}
