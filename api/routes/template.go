package routes

import (
	template_controller "github.com/crmbridge/signbridge-api/api/controllers/template"
	"github.com/gofiber/fiber/v2"
)

func SetupTemplateRoutes(v1, v2, user fiber.Router) {
	v2.Get("/templates", template_controller.List)
	v2.Get("/templates/:templateId/copies", template_controller.Copies)
	v1.Post("/templates/:templateId/send", template_controller.Send)

	// Legacy listing variants kept for the CRM callers; they differ only in
	// filtering.
	user.Get("/documentsv2", template_controller.List)
	user.Get("/templates", template_controller.ListTemplatesOnly)
}
