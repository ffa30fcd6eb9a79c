package health_controller

import (
	"time"

	"github.com/gofiber/fiber/v2"
)

func Check(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":    "ok",
		"timestamp": time.Now().Format(time.RFC3339),
	})
}
