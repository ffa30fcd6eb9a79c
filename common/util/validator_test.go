package util

import (
	"testing"

	"github.com/crmbridge/signbridge-api/type/payload"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateStruct_TemplateSend(t *testing.T) {
	tests := []struct {
		name    string
		payload payload.TemplateSendPayload
		wantErr bool
	}{
		{
			name:    "valid with role",
			payload: payload.TemplateSendPayload{Email: "a@x.com", Name: "Ana", Role: "Role1"},
		},
		{
			name:    "role is optional",
			payload: payload.TemplateSendPayload{Email: "a@x.com", Name: "Ana"},
		},
		{
			name:    "missing email",
			payload: payload.TemplateSendPayload{Name: "Ana"},
			wantErr: true,
		},
		{
			name:    "malformed email",
			payload: payload.TemplateSendPayload{Email: "not-an-email", Name: "Ana"},
			wantErr: true,
		},
		{
			name:    "missing name",
			payload: payload.TemplateSendPayload{Email: "a@x.com"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateStruct(tt.payload)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateStruct_WebhookSubscription(t *testing.T) {
	valid := payload.WebhookSubscriptionPayload{
		Event:       "user.document.complete",
		EntityId:    "doc-1",
		CallbackUrl: "https://crm.example.com/hooks/signnow",
	}
	assert.NoError(t, ValidateStruct(valid))

	badUrl := valid
	badUrl.CallbackUrl = "not a url"
	assert.Error(t, ValidateStruct(badUrl))

	missing := valid
	missing.Event = ""
	assert.Error(t, ValidateStruct(missing))
}

func TestGetValidationErrors_Messages(t *testing.T) {
	err := ValidateStruct(payload.TemplateSendPayload{Email: "nope"})
	require.Error(t, err)

	messages := GetValidationErrors(err)
	assert.Contains(t, messages, "Email must be a valid email")
	assert.Contains(t, messages, "Name is required")
}
