package template_controller

import (
	"log/slog"

	"github.com/crmbridge/signbridge-api/common"
	"github.com/crmbridge/signbridge-api/type/response"
	"github.com/gofiber/fiber/v2"
)

// Copies lists the documents cloned from one template.
func Copies(c *fiber.Ctx) error {
	templateId := c.Params("templateId")

	copies, err := common.Workflow.GetTemplateCopies(c.UserContext(), templateId)
	if err != nil {
		slog.Error("Template copies lookup failed", "template_id", templateId, "error", err)
		return response.SendInternalError(c, err)
	}
	return c.JSON(copies)
}
