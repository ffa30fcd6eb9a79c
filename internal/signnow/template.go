package signnow

import "net/http"

// CloneTemplatePost copies a template into a new signable document.
type CloneTemplatePost struct {
	baseRequest
	templateId string
	payload    map[string]string
}

func NewCloneTemplatePost(templateId, documentName string) *CloneTemplatePost {
	return &CloneTemplatePost{
		templateId: templateId,
		payload:    map[string]string{"document_name": documentName},
	}
}

func (r *CloneTemplatePost) Method() string { return http.MethodPost }
func (r *CloneTemplatePost) Path() string   { return "/template/{template_id}/copy" }
func (r *CloneTemplatePost) Payload() any   { return r.payload }
func (r *CloneTemplatePost) URIParams() map[string]string {
	return map[string]string{"template_id": r.templateId}
}

type CloneTemplatePostResponse struct {
	Id string `json:"id"`
}

// TemplateCopiesGet lists the documents cloned from one template.
type TemplateCopiesGet struct {
	baseRequest
	templateId string
}

func NewTemplateCopiesGet(templateId string) *TemplateCopiesGet {
	return &TemplateCopiesGet{templateId: templateId}
}

func (r *TemplateCopiesGet) Method() string { return http.MethodGet }
func (r *TemplateCopiesGet) Path() string   { return "/v2/templates/{template_id}/copies" }
func (r *TemplateCopiesGet) URIParams() map[string]string {
	return map[string]string{"template_id": r.templateId}
}

type TemplateCopy struct {
	Id   string `json:"id"`
	Name string `json:"document_name"`
}

type TemplateCopiesGetResponse struct {
	Data []TemplateCopy `json:"data"`
}
