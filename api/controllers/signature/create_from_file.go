package signature_controller

import (
	"github.com/crmbridge/signbridge-api/common"
	"github.com/crmbridge/signbridge-api/type/payload"
	"github.com/crmbridge/signbridge-api/type/response"
	"github.com/gofiber/fiber/v2"
)

// CreateFromFile processes a signature request whose document is a file on
// local storage shared with the CRM exporter.
func CreateFromFile(c *fiber.Ctx) error {
	body := new(payload.FileSignatureRequestPayload)

	if err := c.BodyParser(body); err != nil {
		return response.SendFailed(c, "Failed to parse body")
	}

	result := common.Workflow.ProcessFileSignatureRequest(c.UserContext(), body)

	status := fiber.StatusOK
	if !result.Success {
		status = fiber.StatusBadRequest
	}
	return c.Status(status).JSON(result)
}
