package template_controller

import (
	"log/slog"

	"github.com/crmbridge/signbridge-api/common"
	"github.com/crmbridge/signbridge-api/type/response"
	"github.com/gofiber/fiber/v2"
)

// List returns every template in the account's root folder. The CRM consumes
// a bare array here, not the success envelope.
func List(c *fiber.Ctx) error {
	templates, err := common.Workflow.ListTemplates(c.UserContext())
	if err != nil {
		slog.Error("Template listing failed", "error", err)
		return response.SendInternalError(c, err)
	}
	return c.JSON(templates)
}

// ListTemplatesOnly filters the listing down to documents flagged as
// templates.
func ListTemplatesOnly(c *fiber.Ctx) error {
	templates, err := common.Workflow.ListTemplates(c.UserContext())
	if err != nil {
		slog.Error("Template listing failed", "error", err)
		return response.SendInternalError(c, err)
	}

	filtered := make([]response.Template, 0, len(templates))
	for _, template := range templates {
		if template.Template {
			filtered = append(filtered, template)
		}
	}
	return c.JSON(filtered)
}
