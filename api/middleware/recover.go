package middleware

import (
	"github.com/gofiber/fiber/v2"
	fiberrecover "github.com/gofiber/fiber/v2/middleware/recover"
)

func Recover() fiber.Handler {
	return fiberrecover.New()
}
