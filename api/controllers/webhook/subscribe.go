package webhook_controller

import (
	"log/slog"

	"github.com/crmbridge/signbridge-api/common"
	"github.com/crmbridge/signbridge-api/common/util"
	"github.com/crmbridge/signbridge-api/type/payload"
	"github.com/crmbridge/signbridge-api/type/response"
	"github.com/gofiber/fiber/v2"
)

// Subscribe registers a provider callback subscription for one event type on
// one entity. The shared webhook secret is used unless the caller supplies
// its own.
func Subscribe(c *fiber.Ctx) error {
	body := new(payload.WebhookSubscriptionPayload)

	if err := c.BodyParser(body); err != nil {
		return response.SendFailed(c, "Failed to parse body")
	}

	if err := util.ValidateStruct(body); err != nil {
		errors := util.GetValidationErrors(err)
		return response.SendFailed(c, errors[0])
	}

	secret := body.SecretKey
	if secret == "" {
		secret = *common.Config.WebhookSecretKey
	}

	id, err := common.Workflow.Subscribe(c.UserContext(), body.Event, body.EntityId, body.CallbackUrl, secret)
	if err != nil {
		slog.Error("Webhook subscription failed", "event", body.Event, "entity_id", body.EntityId, "error", err)
		return response.SendInternalError(c, err)
	}

	return response.SendSuccess(c, "Webhook subscription created", fiber.Map{"id": id})
}
