package webhook

import (
	"context"
	"fmt"
	"log/slog"

	"gopkg.in/gomail.v2"
)

// Notifier emails an operator address when a document reaches a terminal
// state. Attached to complete/declined events when mail is configured.
type Notifier struct {
	dialer *gomail.Dialer
	from   string
	to     string
}

func NewNotifier(dialer *gomail.Dialer, from, to string) *Notifier {
	return &Notifier{dialer: dialer, from: from, to: to}
}

func (n *Notifier) Handle(_ context.Context, event *Event) error {
	object := event.Data.Object

	message := gomail.NewMessage()
	message.SetHeader("From", n.from)
	message.SetHeader("To", n.to)
	message.SetHeader("Subject", fmt.Sprintf("Firma: %s (%s)", event.Type(), object.DocumentName))
	message.SetBody("text/plain", fmt.Sprintf(
		"Evento: %s\nDocumento: %s (%s)\nEstado: %s\nActualizado: %s\n",
		event.Type(), object.DocumentName, object.Id, object.Status, object.UpdatedAt))

	if err := n.dialer.DialAndSend(message); err != nil {
		return fmt.Errorf("failed to send notification mail: %w", err)
	}

	slog.Info("Notification mail sent", "event", event.Type(), "document_id", object.Id, "to", n.to)
	return nil
}
