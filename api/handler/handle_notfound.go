package handler

import (
	"fmt"

	"github.com/crmbridge/signbridge-api/type/response"
	"github.com/gofiber/fiber/v2"
)

func HandleNotFound(c *fiber.Ctx) error {
	return c.Status(fiber.StatusNotFound).JSON(
		response.Error(fmt.Sprintf("%s %s not found", c.Method(), c.Path())),
	)
}
