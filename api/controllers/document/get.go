package document_controller

import (
	"log/slog"

	"github.com/crmbridge/signbridge-api/common"
	"github.com/crmbridge/signbridge-api/type/response"
	"github.com/gofiber/fiber/v2"
)

// Get fetches one provider document's metadata.
func Get(c *fiber.Ctx) error {
	documentId := c.Params("documentId")

	document, err := common.Workflow.GetDocument(c.UserContext(), documentId)
	if err != nil {
		slog.Error("Document lookup failed", "document_id", documentId, "error", err)
		return response.SendInternalError(c, err)
	}
	return c.JSON(document)
}
