package template_controller

import (
	"github.com/crmbridge/signbridge-api/common"
	"github.com/crmbridge/signbridge-api/common/util"
	"github.com/crmbridge/signbridge-api/type/payload"
	"github.com/crmbridge/signbridge-api/type/response"
	"github.com/gofiber/fiber/v2"
)

// Send is the single-signer convenience endpoint: clone a template and invite
// one recipient with defaults.
func Send(c *fiber.Ctx) error {
	body := new(payload.TemplateSendPayload)

	if err := c.BodyParser(body); err != nil {
		return response.SendFailed(c, "Failed to parse body")
	}

	if err := util.ValidateStruct(body); err != nil {
		errors := util.GetValidationErrors(err)
		return response.SendFailed(c, errors[0])
	}

	result := common.Workflow.SendTemplate(c.UserContext(), c.Params("templateId"), body)

	status := fiber.StatusOK
	if !result.Success {
		status = fiber.StatusBadRequest
	}
	return c.Status(status).JSON(result)
}
