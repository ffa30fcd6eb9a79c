package middleware

import (
	"strings"

	"github.com/crmbridge/signbridge-api/common"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

func Cors() fiber.Handler {
	origins := "*"
	if len(common.Config.Cors) > 0 {
		parts := make([]string, 0, len(common.Config.Cors))
		for _, origin := range common.Config.Cors {
			parts = append(parts, *origin)
		}
		origins = strings.Join(parts, ",")
	}

	return cors.New(cors.Config{
		AllowOrigins: origins,
		AllowMethods: "GET,POST,PUT,DELETE,PATCH,OPTIONS",
		AllowHeaders: "Origin, X-Requested-With, Content-Type, Accept, Authorization, X-Signnow-Signature",
	})
}
