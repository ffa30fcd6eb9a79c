package webhook

import (
	"context"
	"log/slog"
)

type Handler func(ctx context.Context, event *Event) error

// Dispatcher routes verified events to handlers keyed by exact event type.
// Every catalog entry starts with a logging handler; business hooks are
// chained on top at startup.
type Dispatcher struct {
	handlers map[string]Handler
}

func NewDispatcher() *Dispatcher {
	d := &Dispatcher{handlers: make(map[string]Handler, len(Catalog))}
	for _, name := range Catalog {
		d.handlers[name] = logHandler(name)
	}
	return d
}

// Register replaces the handler for one event type.
func (d *Dispatcher) Register(event string, handler Handler) {
	d.handlers[event] = handler
}

// Extend chains a handler after the existing one for an event type. The
// chained handler runs only when the existing one succeeds.
func (d *Dispatcher) Extend(event string, handler Handler) {
	existing, ok := d.handlers[event]
	if !ok {
		d.handlers[event] = handler
		return
	}
	d.handlers[event] = func(ctx context.Context, evt *Event) error {
		if err := existing(ctx, evt); err != nil {
			return err
		}
		return handler(ctx, evt)
	}
}

// Known reports whether an event type is part of the catalog.
func (d *Dispatcher) Known(event string) bool {
	_, ok := d.handlers[event]
	return ok
}

// Dispatch routes one event. Unknown event types are logged and ignored; they
// never fail the delivery.
func (d *Dispatcher) Dispatch(ctx context.Context, event *Event) error {
	name := event.Type()
	handler, ok := d.handlers[name]
	if !ok {
		slog.Warn("Unhandled webhook event", "event", name)
		return nil
	}
	return handler(ctx, event)
}

func logHandler(name string) Handler {
	return func(_ context.Context, event *Event) error {
		slog.Info("Webhook event received",
			"event", name,
			"object_id", event.Data.Object.Id,
			"document_name", event.Data.Object.DocumentName,
			"status", event.Data.Object.Status,
			"account_id", event.Data.AccountId)
		return nil
	}
}
