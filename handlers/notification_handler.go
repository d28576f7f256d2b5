package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/wiradarma21/travel_booking/notifications"
)

type NotificationHandler struct {
	toasts *notifications.Feed
}

func NewNotificationHandler(toasts *notifications.Feed) *NotificationHandler {
	return &NotificationHandler{toasts: toasts}
}

// Drain hands all pending toasts to the UI; they are shown once and gone.
func (h *NotificationHandler) Drain(c *fiber.Ctx) error {
	return c.JSON(h.toasts.Drain())
}
