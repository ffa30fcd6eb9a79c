package routes

import (
	document_controller "github.com/crmbridge/signbridge-api/api/controllers/document"
	"github.com/gofiber/fiber/v2"
)

func SetupDocumentRoutes(v2 fiber.Router) {
	v2.Get("/documents/:documentId", document_controller.Get)
}
