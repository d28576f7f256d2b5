package main

import (
	"log"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/robfig/cron/v3"

	"github.com/wiradarma21/travel_booking/api"
	config "github.com/wiradarma21/travel_booking/configs"
	"github.com/wiradarma21/travel_booking/handlers"
	"github.com/wiradarma21/travel_booking/jobs"
	"github.com/wiradarma21/travel_booking/middleware"
	"github.com/wiradarma21/travel_booking/notifications"
	"github.com/wiradarma21/travel_booking/routes"
	"github.com/wiradarma21/travel_booking/session"
	"github.com/wiradarma21/travel_booking/store"
)

func main() {
	backendURL := config.ConfigOr("BACKEND_BASE_URL", "http://localhost:5000")
	sessionFile := config.ConfigOr("SESSION_FILE", ".session.json")
	tmpDir := config.ConfigOr("UPLOAD_TMP_DIR", os.TempDir())

	sessions := session.NewManager(session.NewFileStore(sessionFile))
	client := api.NewClient(backendURL, sessions.Token)

	authService := api.NewAuthService(client)
	destinationService := api.NewDestinationService(client)
	packageService := api.NewPackageService(client)
	bookingService := api.NewBookingService(client)
	paymentService := api.NewPaymentService(client)
	qrisService := api.NewQRISService(client)
	reviewService := api.NewReviewService(client)
	analyticsService := api.NewAnalyticsService(client)

	bookingStore := store.NewBookingStore(bookingService, paymentService)
	catalogStore := store.NewCatalogStore(destinationService, packageService)
	reviewStore := store.NewReviewStore(reviewService)

	toasts := notifications.NewFeed()

	refresher := jobs.NewPendingPaymentRefresher(bookingStore)
	c := cron.New()
	c.AddFunc("*/5 * * * *", refresher.Run)
	c.Start()
	log.Println("✅ Pending payment refresh job scheduled.")

	app := fiber.New(fiber.Config{
		AppName:       "Travel Booking Client",
		CaseSensitive: true,
		StrictRouting: false,
		ReadTimeout:   15 * time.Second,
		WriteTimeout:  15 * time.Second,
		IdleTimeout:   60 * time.Second,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}

			log.Printf("[ERROR] %v | Path: %s | Method: %s", err, c.Path(), c.Method())
			return c.Status(code).JSON(fiber.Map{
				"status":  "error",
				"code":    code,
				"message": err.Error(),
			})
		},
	})

	app.Use(cors.New(cors.Config{
		AllowOrigins:  "*",
		AllowHeaders:  "Origin, Content-Type, Accept, Authorization",
		AllowMethods:  "GET, POST, PUT, PATCH, DELETE, OPTIONS",
		ExposeHeaders: "Content-Length, Authorization",
		MaxAge:        86400,
	}))

	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		Format:     "[${time}] ${status} - ${latency} ${method} ${path}\n",
	}))

	protected := middleware.Protected(sessions)

	authHandler := handlers.NewAuthHandler(authService, sessions, toasts)
	bookingHandler := handlers.NewBookingHandler(bookingStore, catalogStore, toasts)
	paymentHandler := handlers.NewPaymentHandler(bookingStore, toasts)
	catalogHandler := handlers.NewCatalogHandler(catalogStore, reviewStore, toasts, tmpDir)
	reviewHandler := handlers.NewReviewHandler(reviewStore, bookingStore, toasts)
	qrisHandler := handlers.NewQRISHandler(qrisService, toasts)
	analyticsHandler := handlers.NewAnalyticsHandler(analyticsService)
	notificationHandler := handlers.NewNotificationHandler(toasts)

	routes.AuthRoutes(app, authHandler, protected)
	routes.CatalogRoutes(app, catalogHandler, protected)
	routes.BookingRoutes(app, bookingHandler, paymentHandler, protected)
	routes.ReviewRoutes(app, reviewHandler, protected)
	routes.QRISRoutes(app, qrisHandler, protected)
	routes.AnalyticsRoutes(app, analyticsHandler, protected)
	routes.NotificationRoutes(app, notificationHandler, protected)

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "ok",
		})
	})

	port := config.ConfigOr("PORT", "8080")
	log.Printf("✅ Client app is running on port %s (backend: %s)", port, backendURL)
	if err := app.Listen(":" + port); err != nil {
		log.Fatalf("🔥 Server failed to start: %v", err)
	}
}
