package signnow

import (
	"net/http"
	"net/url"
)

// UploadPayload points the multipart encoder at a local file.
type UploadPayload struct {
	FilePath string
	Filename string
}

// DocumentPost uploads a document file and yields a server-assigned id.
type DocumentPost struct {
	baseRequest
	upload *UploadPayload
}

func NewDocumentPost(filePath, filename string) *DocumentPost {
	return &DocumentPost{upload: &UploadPayload{FilePath: filePath, Filename: filename}}
}

func (r *DocumentPost) Method() string      { return http.MethodPost }
func (r *DocumentPost) Path() string        { return "/document" }
func (r *DocumentPost) Payload() any        { return r.upload }
func (r *DocumentPost) ContentType() string { return ContentTypeMultipart }

type DocumentPostResponse struct {
	Id string `json:"id"`
}

// Role is a named signing slot on a document. The unique id is assigned
// server-side and is required to build invitations.
type Role struct {
	Name         string `json:"name"`
	UniqueId     string `json:"unique_id"`
	SigningOrder string `json:"signing_order"`
}

// DocumentGet fetches one document's metadata, including its declared roles.
type DocumentGet struct {
	baseRequest
	documentId string
}

func NewDocumentGet(documentId string) *DocumentGet {
	return &DocumentGet{documentId: documentId}
}

func (r *DocumentGet) Method() string { return http.MethodGet }
func (r *DocumentGet) Path() string   { return "/document/{document_id}" }
func (r *DocumentGet) URIParams() map[string]string {
	return map[string]string{"document_id": r.documentId}
}

type DocumentGetResponse struct {
	Id           string    `json:"id"`
	DocumentName string    `json:"document_name"`
	Template     bool      `json:"template"`
	Roles        []Role    `json:"roles"`
	Owner        string    `json:"owner"`
	Thumbnail    Thumbnail `json:"thumbnail"`
	CreatedAt    string    `json:"created"`
	UpdatedAt    string    `json:"updated"`
}

type Thumbnail struct {
	Small  string `json:"small"`
	Medium string `json:"medium"`
	Large  string `json:"large"`
}

// DocumentDownloadGet retrieves the collapsed (flattened) PDF of a document.
// The response is raw bytes; use Client.SendRaw.
type DocumentDownloadGet struct {
	baseRequest
	documentId string
}

func NewDocumentDownloadGet(documentId string) *DocumentDownloadGet {
	return &DocumentDownloadGet{documentId: documentId}
}

func (r *DocumentDownloadGet) Method() string { return http.MethodGet }
func (r *DocumentDownloadGet) Path() string   { return "/document/{document_id}/download" }
func (r *DocumentDownloadGet) URIParams() map[string]string {
	return map[string]string{"document_id": r.documentId}
}
func (r *DocumentDownloadGet) QueryParams() url.Values {
	return url.Values{"type": []string{"collapsed"}}
}
