package routes

import (
	"github.com/AviAkaMe/Studio-App-Code/handlers"
	"github.com/gofiber/fiber/v2"
)

func BookingRoutes(app *fiber.App, h *handlers.BookingHandler, protected fiber.Handler) {
	api := app.Group("/api/v1")

	bookings := api.Group("/bookings", protected)
	bookings.Get("", h.ListBookings)
	bookings.Post("", h.CreateBooking)
	bookings.Post("/:bookingId/cancel", h.CancelBooking)
}
