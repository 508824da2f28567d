package router

import (
	bookingHandler "limo-booking-service/internal/module/booking/handler"
	placesHandler "limo-booking-service/internal/module/places/handler"
	"limo-booking-service/internal/pkg/middleware"

	"github.com/gofiber/fiber/v2"
)

func Initialize(app *fiber.App, handlerBooking *bookingHandler.BookingHandler, handlerPlaces *placesHandler.PlacesHandler, m *middleware.Middleware) *fiber.App {

	// health check
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).SendString("OK")
	})

	app.Use(m.Trace())

	Api := app.Group("/api")

	// public routes
	v1 := Api.Group("/v1")
	v1.Post("/bookings", handlerBooking.CreateBooking)
	v1.Get("/bookings/:id", handlerBooking.GetBooking)
	v1.Post("/payment-sessions", handlerBooking.StartPayment)
	v1.Post("/payment-webhook", handlerBooking.PaymentWebhook)
	v1.Get("/places/autocomplete", handlerPlaces.Autocomplete)
	v1.Get("/places/details", handlerPlaces.Details)

	admin := app.Group("/admin")
	admin.Post("/login", handlerBooking.AdminLogin)
	admin.Post("/logout", handlerBooking.AdminLogout)
	admin.Get("/bookings", m.ValidateAdminSession, handlerBooking.ListBookings)
	admin.Patch("/bookings", m.ValidateAdminSession, handlerBooking.PatchBooking)

	return app

}
