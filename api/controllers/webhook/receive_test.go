package webhook_controller

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/crmbridge/signbridge-api/common"
	"github.com/crmbridge/signbridge-api/internal/webhook"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "shared-secret"

func newTestApp(t *testing.T) *fiber.App {
	t.Helper()

	common.Verifier = webhook.NewVerifier(testSecret)
	common.Dispatcher = webhook.NewDispatcher()

	app := fiber.New()
	app.Post("/webhook/signnow", Receive)
	return app
}

func sign(body []byte) string {
	mac := hmac.New(sha256.New, []byte(testSecret))
	mac.Write(body)
	return base64.StdEncoding.EncodeToString(mac.Sum(nil))
}

func postWebhook(t *testing.T, app *fiber.App, body []byte, signature string) (int, string) {
	t.Helper()

	request := httptest.NewRequest(fiber.MethodPost, "/webhook/signnow", bytes.NewReader(body))
	request.Header.Set("Content-Type", "application/json")
	if signature != "" {
		request.Header.Set(SignatureHeader, signature)
	}

	response, err := app.Test(request)
	require.NoError(t, err)
	defer response.Body.Close()

	text, err := io.ReadAll(response.Body)
	require.NoError(t, err)
	return response.StatusCode, string(text)
}

func TestReceive_AcceptsSignedEvent(t *testing.T) {
	app := newTestApp(t)

	var got *webhook.Event
	common.Dispatcher.Register(webhook.EventDocumentComplete, func(_ context.Context, event *webhook.Event) error {
		got = event
		return nil
	})

	body := []byte(`{"meta":{"event":"user.document.complete"},"entity_id":"doc-1","data":{"object":{"id":"doc-1","document_name":"contrato.pdf"}}}`)
	status, text := postWebhook(t, app, body, sign(body))

	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, "OK", text)
	require.NotNil(t, got, "registered handler must receive the event")
	assert.Equal(t, "doc-1", got.EntityId)
	assert.Equal(t, "contrato.pdf", got.Data.Object.DocumentName)
}

func TestReceive_RejectsMissingSignature(t *testing.T) {
	app := newTestApp(t)

	status, text := postWebhook(t, app, []byte(`{"event":"user.document.complete"}`), "")

	assert.Equal(t, fiber.StatusUnauthorized, status)
	assert.Equal(t, "Signature not found", text)
}

func TestReceive_RejectsTamperedBody(t *testing.T) {
	app := newTestApp(t)

	dispatched := false
	common.Dispatcher.Register(webhook.EventDocumentComplete, func(_ context.Context, _ *webhook.Event) error {
		dispatched = true
		return nil
	})

	body := []byte(`{"meta":{"event":"user.document.complete"}}`)
	signature := sign(body)
	tampered := []byte(`{"meta":{"event":"user.document.declined"}}`)

	status, text := postWebhook(t, app, tampered, signature)

	assert.Equal(t, fiber.StatusUnauthorized, status)
	assert.Equal(t, "Invalid signature", text)
	assert.False(t, dispatched, "tampered payload must never reach a handler")
}

func TestReceive_RejectsMalformedJSON(t *testing.T) {
	app := newTestApp(t)

	body := []byte(`{"meta":`)
	status, text := postWebhook(t, app, body, sign(body))

	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, "Invalid payload", text)
}

func TestReceive_UnknownEventStillAcknowledged(t *testing.T) {
	app := newTestApp(t)

	body := []byte(`{"meta":{"event":"user.document.made_up"}}`)
	status, text := postWebhook(t, app, body, sign(body))

	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, "OK", text)
}

func TestReceive_HandlerErrorYields500(t *testing.T) {
	app := newTestApp(t)

	common.Dispatcher.Register(webhook.EventDocumentComplete, func(_ context.Context, _ *webhook.Event) error {
		return assert.AnError
	})

	body := []byte(`{"meta":{"event":"user.document.complete"}}`)
	status, _ := postWebhook(t, app, body, sign(body))

	assert.Equal(t, fiber.StatusInternalServerError, status)
}
