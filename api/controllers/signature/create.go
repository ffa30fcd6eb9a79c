package signature_controller

import (
	"github.com/crmbridge/signbridge-api/common"
	"github.com/crmbridge/signbridge-api/type/payload"
	"github.com/crmbridge/signbridge-api/type/response"
	"github.com/gofiber/fiber/v2"
)

// Create processes a signature request with an inline base64 document. Field
// validation happens inside the workflow so failures keep the uniform result
// shape the CRM expects.
func Create(c *fiber.Ctx) error {
	body := new(payload.SignatureRequestPayload)

	if err := c.BodyParser(body); err != nil {
		return response.SendFailed(c, "Failed to parse body")
	}

	result := common.Workflow.ProcessSignatureRequest(c.UserContext(), body)

	status := fiber.StatusOK
	if !result.Success {
		status = fiber.StatusBadRequest
	}
	return c.Status(status).JSON(result)
}
