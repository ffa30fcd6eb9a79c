package payload

// WebhookSubscriptionPayload registers a callback with the e-signature
// provider for one event type on one entity.
type WebhookSubscriptionPayload struct {
	Event       string `json:"event" validate:"required"`
	EntityId    string `json:"entityId" validate:"required"`
	CallbackUrl string `json:"callbackUrl" validate:"required,url"`
	SecretKey   string `json:"secretKey"`
}
