package webhook_controller

import (
	"encoding/json"
	"errors"
	"log/slog"

	"github.com/crmbridge/signbridge-api/common"
	"github.com/crmbridge/signbridge-api/internal/webhook"
	"github.com/gofiber/fiber/v2"
)

// SignatureHeader carries the provider's HMAC digest of the raw body.
const SignatureHeader = "x-signnow-signature"

// Receive handles one provider callback: verify the HMAC signature over the
// raw body, then dispatch on the event type. Replies 200 once verification
// and dispatch complete; 401 short-circuits before any dispatch.
func Receive(c *fiber.Ctx) error {
	body := c.Body()

	if err := common.Verifier.Verify(body, c.Get(SignatureHeader)); err != nil {
		slog.Warn("Webhook signature rejected", "error", err, "ip", c.IP())
		if errors.Is(err, webhook.ErrSignatureMissing) {
			return c.Status(fiber.StatusUnauthorized).SendString("Signature not found")
		}
		return c.Status(fiber.StatusUnauthorized).SendString("Invalid signature")
	}

	event := new(webhook.Event)
	if err := json.Unmarshal(body, event); err != nil {
		slog.Warn("Webhook payload is not valid JSON", "error", err)
		return c.Status(fiber.StatusBadRequest).SendString("Invalid payload")
	}

	if err := common.Dispatcher.Dispatch(c.UserContext(), event); err != nil {
		slog.Error("Webhook dispatch failed", "event", event.Type(), "error", err)
		return c.Status(fiber.StatusInternalServerError).SendString("Internal server error")
	}

	return c.Status(fiber.StatusOK).SendString("OK")
}
