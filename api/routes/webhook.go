package routes

import (
	webhook_controller "github.com/crmbridge/signbridge-api/api/controllers/webhook"
	"github.com/gofiber/fiber/v2"
)

func SetupWebhookRoutes(v1 fiber.Router) {
	v1.Post("/webhooks/subscriptions", webhook_controller.Subscribe)
}
