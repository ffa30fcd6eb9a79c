package signnow

import "net/http"

// WebhookAttributes configures how the provider delivers callbacks for one
// subscription.
type WebhookAttributes struct {
	Callback        string `json:"callback"`
	UseTls12        bool   `json:"use_tls_12,omitempty"`
	IntegrationId   string `json:"integration_id,omitempty"`
	DocIdQueryParam bool   `json:"docid_queryparam,omitempty"`
	SecretKey       string `json:"secret_key,omitempty"`
	IncludeMetadata bool   `json:"include_metadata,omitempty"`
}

type subscriptionPayload struct {
	Event      string            `json:"event"`
	EntityId   string            `json:"entity_id"`
	Action     string            `json:"action"`
	Attributes WebhookAttributes `json:"attributes"`
}

// EventSubscriptionPost registers a callback subscription for one event type
// on one entity.
type EventSubscriptionPost struct {
	baseRequest
	payload *subscriptionPayload
}

func NewEventSubscriptionPost(event, entityId string, attributes WebhookAttributes) *EventSubscriptionPost {
	return &EventSubscriptionPost{payload: &subscriptionPayload{
		Event:      event,
		EntityId:   entityId,
		Action:     "callback",
		Attributes: attributes,
	}}
}

func (r *EventSubscriptionPost) Method() string { return http.MethodPost }
func (r *EventSubscriptionPost) Path() string   { return "/api/v2/events" }
func (r *EventSubscriptionPost) Payload() any   { return r.payload }

type EventSubscriptionPostResponse struct {
	Id string `json:"id"`
}
