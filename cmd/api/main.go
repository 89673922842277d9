package main

import (
	"log"
	"time"

	config "github.com/AviAkaMe/Studio-App-Code/configs"
	"github.com/AviAkaMe/Studio-App-Code/database"
	"github.com/AviAkaMe/Studio-App-Code/handlers"
	"github.com/AviAkaMe/Studio-App-Code/jobs"
	"github.com/AviAkaMe/Studio-App-Code/middleware"
	"github.com/AviAkaMe/Studio-App-Code/notifications"
	"github.com/AviAkaMe/Studio-App-Code/routes"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/robfig/cron/v3"
)

func main() {
	db, err := database.Connect(config.Config("DATABASE_URL"))
	if err != nil {
		log.Fatalf("🔥 Failed to connect to database: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatalf("🔥 Failed to migrate database: %v", err)
	}
	if err := database.SeedAdmin(db,
		config.ConfigOr("ADMIN_NAME", "Admin"),
		config.Config("ADMIN_EMAIL"),
		config.Config("ADMIN_PASSWORD"),
	); err != nil {
		log.Fatalf("🔥 Failed to seed admin user: %v", err)
	}

	mailer := notifications.NewEmailService(
		config.Config("BREVO_API_KEY"),
		config.Config("EMAIL_SENDER"),
		config.Config("EMAIL_SENDER_NAME"),
	)

	jwtSecret := config.Config("JWT_SECRET")
	if jwtSecret == "" {
		log.Fatal("🔥 JWT_SECRET must be set")
	}

	reminder := jobs.NewReminderJob(db, mailer)
	c := cron.New()
	c.AddFunc("*/5 * * * *", reminder.Run)
	go c.Start()
	log.Println("✅ Cron job for lesson reminders scheduled successfully.")

	app := fiber.New(fiber.Config{
		AppName:       "Studio Scheduling",
		CaseSensitive: true,
		StrictRouting: true,
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

	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":  "success",
			"message": "Welcome to Studio Scheduling API",
		})
	})
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	protected := middleware.Protected(jwtSecret)
	routes.AuthRoutes(app, handlers.NewAuthHandler(db, jwtSecret, mailer))
	routes.LessonRoutes(app, handlers.NewLessonHandler(db), protected)
	routes.BookingRoutes(app, handlers.NewBookingHandler(db), protected)

	port := config.ConfigOr("PORT", "8080")
	log.Printf("✅ Server is running on port %s", port)
	if err := app.Listen(":" + port); err != nil {
		log.Fatalf("🔥 Server failed to start: %v", err)
	}
}
