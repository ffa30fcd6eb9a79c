package handler

import (
	"errors"

	"github.com/crmbridge/signbridge-api/type/response"
	"github.com/gofiber/fiber/v2"
)

func HandleError(c *fiber.Ctx, err error) error {
	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		return c.Status(fiberErr.Code).JSON(
			response.Error(fiberErr.Message),
		)
	}

	// Anything escaping a controller is an internal error; controllers fold
	// expected failures into their own result shapes.

	return c.Status(fiber.StatusInternalServerError).JSON(
		response.Error(err.Error()),
	)
}
