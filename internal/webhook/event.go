package webhook

// Event is one provider callback delivery. Two payload variants exist in the
// wild: the event type either sits under meta.event or at the top level.
type Event struct {
	Meta      *Meta     `json:"meta,omitempty"`
	Event     string    `json:"event,omitempty"`
	EntityId  string    `json:"entity_id,omitempty"`
	Timestamp int64     `json:"timestamp,omitempty"`
	Data      EventData `json:"data"`
}

type Meta struct {
	Event     string `json:"event"`
	Timestamp int64  `json:"timestamp,omitempty"`
}

type EventData struct {
	Object    EventObject `json:"object"`
	AccountId string      `json:"account_id"`
}

type EventObject struct {
	Id           string `json:"id"`
	DocumentName string `json:"document_name"`
	Status       string `json:"status"`
	CreatedAt    string `json:"created_at"`
	UpdatedAt    string `json:"updated_at"`
}

// Type resolves the event discriminator, preferring meta.event and falling
// back to the top-level field.
func (e *Event) Type() string {
	if e.Meta != nil && e.Meta.Event != "" {
		return e.Meta.Event
	}
	return e.Event
}
