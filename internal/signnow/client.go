package signnow

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"
)

type Config struct {
	ApiUrl       string
	ClientId     string
	ClientSecret string
	Username     string
	Password     string
}

// Client performs authenticated calls against the provider REST API. It is
// safe for concurrent use once Authenticate has completed; the token is not
// mutated afterwards.
type Client struct {
	baseURL   string
	cfg       Config
	http      *http.Client
	token     string
	userEmail string
}

func New(cfg Config) *Client {
	return &Client{
		baseURL: strings.TrimRight(cfg.ApiUrl, "/"),
		cfg:     cfg,
		http:    &http.Client{},
	}
}

// Authenticate exchanges the configured credentials for a bearer token and
// resolves the account's primary email, used as the invite sender. It must be
// called once at startup before the server accepts requests.
func (c *Client) Authenticate(ctx context.Context) error {
	form := url.Values{}
	form.Set("grant_type", "password")
	form.Set("username", c.cfg.Username)
	form.Set("password", c.cfg.Password)
	form.Set("scope", "*")

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/oauth2/token", strings.NewReader(form.Encode()))
	if err != nil {
		return err
	}
	req.SetBasicAuth(c.cfg.ClientId, c.cfg.ClientSecret)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("token exchange failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &APIError{Status: resp.StatusCode, Body: string(body)}
	}

	var token struct {
		AccessToken string `json:"access_token"`
		TokenType   string `json:"token_type"`
		ExpiresIn   int    `json:"expires_in"`
	}
	if err := json.Unmarshal(body, &token); err != nil {
		return fmt.Errorf("failed to decode token response: %w", err)
	}
	c.token = token.AccessToken

	user := new(UserGetResponse)
	if err := c.Send(ctx, NewUserGet(), user); err != nil {
		return fmt.Errorf("failed to fetch account user: %w", err)
	}
	c.userEmail = user.PrimaryEmail

	slog.Info("SignNow client authenticated", "user", c.userEmail)
	return nil
}

// Token returns the current bearer token.
func (c *Client) Token() string { return c.token }

// UserEmail returns the authenticated account's primary email.
func (c *Client) UserEmail() string { return c.userEmail }

// DocumentUrl builds the provider-facing URL of a document.
func (c *Client) DocumentUrl(documentId string) string {
	return fmt.Sprintf("%s/document/%s", c.baseURL, documentId)
}

// Send performs one descriptor call and decodes the JSON reply into out.
// A nil out discards the response body.
func (c *Client) Send(ctx context.Context, r Request, out any) error {
	body, err := c.do(ctx, r)
	if err != nil {
		return err
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("failed to decode %s %s response: %w", r.Method(), r.Path(), err)
	}
	return nil
}

// SendRaw performs one descriptor call and returns the raw response bytes.
// Used for binary replies such as document downloads.
func (c *Client) SendRaw(ctx context.Context, r Request) ([]byte, error) {
	return c.do(ctx, r)
}

func (c *Client) do(ctx context.Context, r Request) ([]byte, error) {
	var reqBody io.Reader
	contentType := r.ContentType()

	switch contentType {
	case ContentTypeMultipart:
		upload, ok := r.Payload().(*UploadPayload)
		if !ok {
			return nil, fmt.Errorf("multipart request %s has no upload payload", r.Path())
		}
		buf, boundary, err := buildMultipart(upload)
		if err != nil {
			return nil, err
		}
		reqBody = buf
		contentType = "multipart/form-data; boundary=" + boundary
	case ContentTypeJSON:
		if p := r.Payload(); p != nil {
			encoded, err := json.Marshal(p)
			if err != nil {
				return nil, fmt.Errorf("failed to encode %s payload: %w", r.Path(), err)
			}
			reqBody = bytes.NewReader(encoded)
		}
	}

	req, err := http.NewRequestWithContext(ctx, r.Method(), c.buildURL(r), reqBody)
	if err != nil {
		return nil, err
	}
	if reqBody != nil {
		req.Header.Set("Content-Type", contentType)
	}
	if r.AuthScheme() == AuthBearer {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &APIError{Status: resp.StatusCode, Body: string(body)}
	}
	return body, nil
}

// buildURL substitutes {param} segments with the descriptor's URI parameters
// and appends encoded query parameters.
func (c *Client) buildURL(r Request) string {
	path := r.Path()
	for name, value := range r.URIParams() {
		path = strings.ReplaceAll(path, "{"+name+"}", url.PathEscape(value))
	}
	full := c.baseURL + path
	if q := r.QueryParams(); len(q) > 0 {
		full += "?" + q.Encode()
	}
	return full
}

func buildMultipart(upload *UploadPayload) (*bytes.Buffer, string, error) {
	file, err := os.Open(upload.FilePath)
	if err != nil {
		return nil, "", fmt.Errorf("failed to open upload file: %w", err)
	}
	defer file.Close()

	buf := new(bytes.Buffer)
	writer := multipart.NewWriter(buf)

	name := upload.Filename
	if name == "" {
		name = filepath.Base(upload.FilePath)
	}
	part, err := writer.CreateFormFile("file", name)
	if err != nil {
		return nil, "", err
	}
	if _, err := io.Copy(part, file); err != nil {
		return nil, "", fmt.Errorf("failed to read upload file: %w", err)
	}
	if err := writer.Close(); err != nil {
		return nil, "", err
	}
	return buf, writer.Boundary(), nil
}
