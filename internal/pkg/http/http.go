package http

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"limo-booking-service/config"
	"limo-booking-service/internal/pkg/errors"

	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
)

func SetupHttpEngine(cfg *config.HttpServerConfig) *fiber.App {
	app := fiber.New(fiber.Config{
		JSONEncoder:  json.Marshal,
		JSONDecoder:  json.Unmarshal,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		ErrorHandler: errorHandler,
	})

	app.Use(recover.New())
	app.Use(requestid.New())

	return app
}

func errorHandler(ctx *fiber.Ctx, err error) error {
	code := errors.StatusCode(err)
	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}
	return ctx.Status(code).JSON(fiber.Map{
		"meta": fiber.Map{"code": code, "message": err.Error()},
	})
}

// StartHttpServer blocks until SIGINT/SIGTERM and then drains in-flight
// requests.
func StartHttpServer(app *fiber.App, cfg *config.HttpServerConfig) {
	go func() {
		if err := app.Listen(":" + cfg.Port); err != nil {
			log.Fatalf("failed to start http server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Println("shutting down http server")
	if err := app.ShutdownWithTimeout(cfg.ShutdownTimeout); err != nil {
		log.Fatalf("http server shutdown failed: %v", err)
	}
	log.Println("http server stopped")
}
