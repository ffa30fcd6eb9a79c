package payload

type TemplateSignatureRequestPayload struct {
	RecordId     string           `json:"recordId"`
	TemplateId   string           `json:"templateId"`
	DocumentName string           `json:"documentName"`
	Signers      []Signer         `json:"signers"`
	Options      *RedirectOptions `json:"options"`
}

// TemplateSendPayload is the single-signer convenience send. Role falls back
// to "Signer 1" when omitted.
type TemplateSendPayload struct {
	Email string `json:"email" validate:"required,email"`
	Name  string `json:"name" validate:"required"`
	Role  string `json:"role"`
}
