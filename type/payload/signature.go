package payload

// Signer is one requested signer on an incoming CRM signature request. Field
// names follow the CRM integration contract, including "nombre".
type Signer struct {
	Order          int    `json:"order" validate:"required,min=1"`
	Email          string `json:"email" validate:"required,email"`
	Role           string `json:"role" validate:"required"`
	Name           string `json:"nombre"`
	Subject        string `json:"subject"`
	Message        string `json:"message"`
	ExpirationDays int    `json:"expiration_days"`
}

type SignatureDocument struct {
	Filename      string `json:"filename"`
	ContentBase64 string `json:"contentBase64"`
}

type RedirectOptions struct {
	RedirectURL        string `json:"redirect_url"`
	RedirectDeclineURL string `json:"redirect_decline_url"`
}

type SignatureRequestPayload struct {
	RecordId       string            `json:"recordId"`
	Document       SignatureDocument `json:"document"`
	ExpirationDate string            `json:"expirationDate"`
	Signers        []Signer          `json:"signers"`
	Options        *RedirectOptions  `json:"options"`
}

type FileSignatureRequestPayload struct {
	RecordId string           `json:"recordId"`
	FilePath string           `json:"filePath"`
	Signers  []Signer         `json:"signers"`
	Options  *RedirectOptions `json:"options"`
}
