package signnow

import "net/http"

// FolderGet fetches the account's root folder.
type FolderGet struct {
	baseRequest
}

func NewFolderGet() *FolderGet { return &FolderGet{} }

func (r *FolderGet) Method() string { return http.MethodGet }
func (r *FolderGet) Path() string   { return "/folder" }

type FolderGetResponse struct {
	Id   string `json:"id"`
	Name string `json:"name"`
}

// FolderDocumentsGet lists the documents inside one folder.
type FolderDocumentsGet struct {
	baseRequest
	folderId string
}

func NewFolderDocumentsGet(folderId string) *FolderDocumentsGet {
	return &FolderDocumentsGet{folderId: folderId}
}

func (r *FolderDocumentsGet) Method() string { return http.MethodGet }
func (r *FolderDocumentsGet) Path() string   { return "/folder/{folder_id}" }
func (r *FolderDocumentsGet) URIParams() map[string]string {
	return map[string]string{"folder_id": r.folderId}
}

type FolderDocument struct {
	Id           string `json:"id"`
	DocumentName string `json:"document_name"`
	Template     bool   `json:"template"`
}

type FolderDocumentsGetResponse struct {
	Documents []FolderDocument `json:"documents"`
}
