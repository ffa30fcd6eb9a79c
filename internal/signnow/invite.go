package signnow

import "net/http"

// InviteSigner is one entry of a batch invitation: a signer resolved onto a
// document role by its server-assigned unique id.
type InviteSigner struct {
	Email          string `json:"email"`
	RoleId         string `json:"role_id"`
	Role           string `json:"role"`
	Order          int    `json:"order"`
	Subject        string `json:"subject,omitempty"`
	Message        string `json:"message,omitempty"`
	ExpirationDays int    `json:"expiration_days,omitempty"`
}

type invitePayload struct {
	To   []InviteSigner `json:"to"`
	From string         `json:"from"`
}

// FreeFormInvitePost sends one batch invitation for a document containing all
// mapped signers.
type FreeFormInvitePost struct {
	baseRequest
	documentId string
	payload    *invitePayload
}

func NewFreeFormInvitePost(documentId string, to []InviteSigner, from string) *FreeFormInvitePost {
	return &FreeFormInvitePost{
		documentId: documentId,
		payload:    &invitePayload{To: to, From: from},
	}
}

func (r *FreeFormInvitePost) Method() string { return http.MethodPost }
func (r *FreeFormInvitePost) Path() string   { return "/document/{document_id}/invite" }
func (r *FreeFormInvitePost) Payload() any   { return r.payload }
func (r *FreeFormInvitePost) URIParams() map[string]string {
	return map[string]string{"document_id": r.documentId}
}

type FreeFormInvitePostResponse struct {
	Id []string `json:"id"`
}
