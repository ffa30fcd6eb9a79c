package response

// SignatureResult is the uniform outcome of every signature-request workflow.
// Failures carry the triggering error message, never a structured code.
type SignatureResult struct {
	Success           bool     `json:"success"`
	RecordId          string   `json:"recordId"`
	DocumentId        string   `json:"documentId"`
	InviteIds         []string `json:"inviteIds"`
	SignedDocumentUrl string   `json:"signedDocumentUrl,omitempty"`
	Error             string   `json:"error,omitempty"`
}

// Template is the CRM-facing projection of a provider template.
type Template struct {
	Id         string    `json:"id"`
	Name       string    `json:"name"`
	Template   bool      `json:"template"`
	Roles      []string  `json:"roles"`
	OwnerEmail string    `json:"owner_email"`
	Thumbnail  Thumbnail `json:"thumbnail"`
}

type Thumbnail struct {
	Small  string `json:"small"`
	Medium string `json:"medium"`
	Large  string `json:"large"`
}
