package routes

import (
	signature_controller "github.com/crmbridge/signbridge-api/api/controllers/signature"
	"github.com/gofiber/fiber/v2"
)

func SetupSignatureRoutes(v1 fiber.Router) {
	v1.Post("/signature-requests", signature_controller.Create)
	v1.Post("/file-signature-requests", signature_controller.CreateFromFile)
	v1.Post("/template-signature-requests", signature_controller.CreateFromTemplate)
}
