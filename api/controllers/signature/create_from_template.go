package signature_controller

import (
	"github.com/crmbridge/signbridge-api/common"
	"github.com/crmbridge/signbridge-api/type/payload"
	"github.com/crmbridge/signbridge-api/type/response"
	"github.com/gofiber/fiber/v2"
)

// CreateFromTemplate clones a provider template and invites the signers on
// the resulting document.
func CreateFromTemplate(c *fiber.Ctx) error {
	body := new(payload.TemplateSignatureRequestPayload)

	if err := c.BodyParser(body); err != nil {
		return response.SendFailed(c, "Failed to parse body")
	}

	result := common.Workflow.ProcessTemplateRequest(c.UserContext(), body)

	status := fiber.StatusOK
	if !result.Success {
		status = fiber.StatusBadRequest
	}
	return c.Status(status).JSON(result)
}
