package middleware

import (
	"github.com/crmbridge/signbridge-api/common"
	"github.com/crmbridge/signbridge-api/type/response"
	"github.com/crmbridge/signbridge-api/type/shared"
	"github.com/gofiber/fiber/v2"
	jwtware "github.com/gofiber/jwt/v3"
)

// Jwt guards the CRM-facing routes with a shared-secret bearer token. Only
// mounted when jwt_secret is configured.
func Jwt() fiber.Handler {
	conf := jwtware.Config{
		SigningKey:  []byte(*common.Config.JWTSecret),
		TokenLookup: "header:Authorization",
		AuthScheme:  "Bearer",
		ContextKey:  "auth",
		Claims:      new(shared.UserClaims),
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			return response.SendUnauthorized(c, "JWT validation failure")
		},
	}
	return jwtware.New(conf)
}
