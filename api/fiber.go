package api

import (
	"log/slog"
	"os"

	"github.com/crmbridge/signbridge-api/api/handler"
	"github.com/crmbridge/signbridge-api/api/middleware"
	"github.com/crmbridge/signbridge-api/api/routes"
	"github.com/crmbridge/signbridge-api/common"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func InitFiber() {
	cfg := fiber.Config{
		AppName:       "signbridge api",
		ErrorHandler:  handler.HandleError,
		Prefork:       false,
		StrictRouting: true,
		Network:       fiber.NetworkTCP,
		BodyLimit:     50 * 1024 * 1024, // inline base64 documents
	}
	app := fiber.New(cfg)

	app.Use(logger.New())
	app.Use(middleware.Recover())
	app.Use(middleware.Cors())

	routes.Init(app)

	app.Use(handler.HandleNotFound)

	slog.Info("Starting server", "port", *common.Config.Port)
	err := app.Listen(*common.Config.Port)

	if err != nil {
		slog.Error("Failed to start server", "error", err)
		os.Exit(1)
	}
}
