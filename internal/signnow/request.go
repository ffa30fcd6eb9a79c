package signnow

import "net/url"

const (
	AuthBearer = "bearer"
	AuthBasic  = "basic"
	AuthNone   = "none"
)

const (
	ContentTypeJSON      = "application/json"
	ContentTypeMultipart = "multipart/form-data"
)

// Request describes one provider REST endpoint: method, path template with
// {param} segments, query, payload and auth scheme. Descriptors are pure data;
// the Client does all encoding and transport.
type Request interface {
	Method() string
	Path() string
	URIParams() map[string]string
	QueryParams() url.Values
	Payload() any
	AuthScheme() string
	ContentType() string
}

// baseRequest carries the defaults shared by most descriptors: bearer auth,
// JSON content, no query or path parameters.
type baseRequest struct{}

func (baseRequest) URIParams() map[string]string { return nil }
func (baseRequest) QueryParams() url.Values      { return nil }
func (baseRequest) Payload() any                 { return nil }
func (baseRequest) AuthScheme() string           { return AuthBearer }
func (baseRequest) ContentType() string          { return ContentTypeJSON }
