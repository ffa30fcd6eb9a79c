package signnow

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubRequest struct {
	baseRequest
	method string
	path   string
	uri    map[string]string
	query  url.Values
	body   any
}

func (r *stubRequest) Method() string               { return r.method }
func (r *stubRequest) Path() string                 { return r.path }
func (r *stubRequest) URIParams() map[string]string { return r.uri }
func (r *stubRequest) QueryParams() url.Values      { return r.query }
func (r *stubRequest) Payload() any                 { return r.body }

func TestClient_BuildURL(t *testing.T) {
	client := New(Config{ApiUrl: "https://api.signnow.test"})

	tests := []struct {
		name    string
		request Request
		want    string
	}{
		{
			name:    "plain path",
			request: &stubRequest{method: http.MethodGet, path: "/user"},
			want:    "https://api.signnow.test/user",
		},
		{
			name: "single uri parameter",
			request: &stubRequest{
				method: http.MethodGet,
				path:   "/document/{document_id}",
				uri:    map[string]string{"document_id": "doc-42"},
			},
			want: "https://api.signnow.test/document/doc-42",
		},
		{
			name: "uri parameter is path escaped",
			request: &stubRequest{
				method: http.MethodGet,
				path:   "/document/{document_id}",
				uri:    map[string]string{"document_id": "a/b c"},
			},
			want: "https://api.signnow.test/document/a%2Fb%20c",
		},
		{
			name: "query parameters are encoded",
			request: &stubRequest{
				method: http.MethodGet,
				path:   "/document/{document_id}/download",
				uri:    map[string]string{"document_id": "doc-42"},
				query:  url.Values{"type": []string{"collapsed"}},
			},
			want: "https://api.signnow.test/document/doc-42/download?type=collapsed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, client.buildURL(tt.request))
		})
	}
}

func TestClient_SendAttachesBearerToken(t *testing.T) {
	var gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		_, _ = w.Write([]byte(`{"id":"doc-1"}`))
	}))
	defer server.Close()

	client := New(Config{ApiUrl: server.URL})
	client.token = "test-token"

	out := new(DocumentPostResponse)
	err := client.Send(context.Background(), &stubRequest{method: http.MethodGet, path: "/document/x"}, out)
	require.NoError(t, err)
	assert.Equal(t, "Bearer test-token", gotAuth)
	assert.Equal(t, "doc-1", out.Id)
}

func TestClient_SendReturnsAPIErrorOnNon2xx(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":"invalid document"}`))
	}))
	defer server.Close()

	client := New(Config{ApiUrl: server.URL})

	err := client.Send(context.Background(), &stubRequest{method: http.MethodGet, path: "/document/x"}, nil)
	require.Error(t, err)

	apiErr := new(APIError)
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadRequest, apiErr.Status)
	assert.Contains(t, apiErr.Body, "invalid document")
}

func TestClient_SendEncodesJSONPayload(t *testing.T) {
	var gotContentType string
	var gotBody map[string]any
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotContentType = r.Header.Get("Content-Type")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		_, _ = w.Write([]byte(`{"id":"doc-2"}`))
	}))
	defer server.Close()

	client := New(Config{ApiUrl: server.URL})

	request := NewCloneTemplatePost("tpl-1", "Contrato")
	err := client.Send(context.Background(), request, new(CloneTemplatePostResponse))
	require.NoError(t, err)
	assert.Equal(t, "application/json", gotContentType)
	assert.Equal(t, "Contrato", gotBody["document_name"])
}

func TestClient_SendUploadsMultipartFile(t *testing.T) {
	content := []byte("%PDF-1.4 fake content")
	path := filepath.Join(t.TempDir(), "contrato.pdf")
	require.NoError(t, os.WriteFile(path, content, 0o600))

	var gotFilename string
	var gotContent []byte
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		file, header, err := r.FormFile("file")
		require.NoError(t, err)
		defer file.Close()

		gotFilename = header.Filename
		gotContent, err = io.ReadAll(file)
		require.NoError(t, err)
		_, _ = w.Write([]byte(`{"id":"doc-3"}`))
	}))
	defer server.Close()

	client := New(Config{ApiUrl: server.URL})
	client.token = "test-token"

	out := new(DocumentPostResponse)
	err := client.Send(context.Background(), NewDocumentPost(path, "contrato.pdf"), out)
	require.NoError(t, err)
	assert.Equal(t, "contrato.pdf", gotFilename)
	assert.Equal(t, content, gotContent)
	assert.Equal(t, "doc-3", out.Id)
}

func TestClient_Authenticate(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/oauth2/token":
			user, pass, ok := r.BasicAuth()
			require.True(t, ok, "token exchange must use basic auth")
			assert.Equal(t, "client-id", user)
			assert.Equal(t, "client-secret", pass)

			require.NoError(t, r.ParseForm())
			assert.Equal(t, "password", r.PostForm.Get("grant_type"))
			assert.Equal(t, "integration@example.com", r.PostForm.Get("username"))

			_, _ = w.Write([]byte(`{"access_token":"granted-token","token_type":"bearer","expires_in":3600}`))
		case "/user":
			assert.Equal(t, "Bearer granted-token", r.Header.Get("Authorization"))
			_, _ = w.Write([]byte(`{"id":"u1","primary_email":"integration@example.com"}`))
		default:
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
	}))
	defer server.Close()

	client := New(Config{
		ApiUrl:       server.URL,
		ClientId:     "client-id",
		ClientSecret: "client-secret",
		Username:     "integration@example.com",
		Password:     "secret",
	})

	err := client.Authenticate(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "granted-token", client.Token())
	assert.Equal(t, "integration@example.com", client.UserEmail())
}

func TestClient_AuthenticateRejectedCredentials(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error":"invalid_client"}`))
	}))
	defer server.Close()

	client := New(Config{ApiUrl: server.URL, ClientId: "bad", ClientSecret: "bad"})

	err := client.Authenticate(context.Background())
	require.Error(t, err)

	apiErr := new(APIError)
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusUnauthorized, apiErr.Status)
}
