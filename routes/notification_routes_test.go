package routes

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"

	"github.com/wiradarma21/travel_booking/handlers"
	"github.com/wiradarma21/travel_booking/notifications"
)

func TestNotificationDrainRequiresSession(t *testing.T) {
	app := fiber.New()
	denied := func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusUnauthorized)
	}
	NotificationRoutes(app, handlers.NewNotificationHandler(notifications.NewFeed()), denied)

	resp, err := app.Test(httptest.NewRequest("GET", "/api/notifications", nil))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusUnauthorized {
		t.Errorf("drain must sit behind the session middleware, got %d", resp.StatusCode)
	}
}

func TestNotificationDrainWithSession(t *testing.T) {
	app := fiber.New()
	feed := notifications.NewFeed()
	feed.Info("hello")
	pass := func(c *fiber.Ctx) error { return c.Next() }
	NotificationRoutes(app, handlers.NewNotificationHandler(feed), pass)

	resp, err := app.Test(httptest.NewRequest("GET", "/api/notifications", nil))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Errorf("signed-in drain should succeed, got %d", resp.StatusCode)
	}
}
