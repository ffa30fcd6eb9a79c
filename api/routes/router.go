package routes

import (
	health_controller "github.com/crmbridge/signbridge-api/api/controllers/health"
	webhook_controller "github.com/crmbridge/signbridge-api/api/controllers/webhook"
	"github.com/crmbridge/signbridge-api/api/middleware"
	"github.com/crmbridge/signbridge-api/common"
	"github.com/gofiber/fiber/v2"
)

// Init mounts every route. The webhook and health endpoints stay open; the
// CRM-facing groups get JWT protection when a secret is configured.
func Init(router fiber.Router) {
	router.Get("/health", health_controller.Check)
	router.Post("/webhook", webhook_controller.Receive)

	guarded := []fiber.Handler{}
	if common.Config.JWTSecret != nil {
		guarded = append(guarded, middleware.Jwt())
	}

	v1 := router.Group("/v1", guarded...)
	v2 := router.Group("/v2", guarded...)
	user := router.Group("/user", guarded...)

	SetupSignatureRoutes(v1)
	SetupTemplateRoutes(v1, v2, user)
	SetupDocumentRoutes(v2)
	SetupWebhookRoutes(v1)
}
