package workflow

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/crmbridge/signbridge-api/internal/signnow"
	"github.com/crmbridge/signbridge-api/type/payload"
	"github.com/crmbridge/signbridge-api/type/response"
	digitorus_pdf "github.com/digitorus/pdf"
)

const (
	defaultSubject = "Solicitud de firma"
	defaultMessage = "Por favor firme el documento"
)

// Service sequences provider API calls to fulfil one business operation:
// upload a document, resolve its roles, map signers onto them and send one
// batch invitation. It holds no mutable state across requests.
type Service struct {
	client  *signnow.Client
	tempDir string
}

func New(client *signnow.Client) *Service {
	return &Service{
		client:  client,
		tempDir: os.TempDir(),
	}
}

// ProcessSignatureRequest runs the inline-base64 workflow. It never returns an
// error: every failure is folded into the uniform result shape.
func (s *Service) ProcessSignatureRequest(ctx context.Context, req *payload.SignatureRequestPayload) *response.SignatureResult {
	slog.Info("Processing signature request",
		"record_id", req.RecordId,
		"filename", req.Document.Filename,
		"signers", len(req.Signers))

	if req.RecordId == "" || req.Document.ContentBase64 == "" || len(req.Signers) == 0 {
		slog.Warn("Signature request rejected on validation", "record_id", req.RecordId)
		return failureResult(req.RecordId, ErrValidation)
	}

	content, err := base64.StdEncoding.DecodeString(req.Document.ContentBase64)
	if err != nil {
		return failureResult(req.RecordId, fmt.Errorf("invalid base64 document content: %w", err))
	}

	if _, err := digitorus_pdf.NewReader(bytes.NewReader(content), int64(len(content))); err != nil {
		// Upload proceeds regardless; the provider is the authority on what
		// it accepts.
		slog.Warn("Uploaded content does not parse as PDF",
			"record_id", req.RecordId,
			"filename", req.Document.Filename,
			"error", err)
	}

	tempPath, err := s.saveTempFile(req.RecordId, req.Document.Filename, content)
	if err != nil {
		return failureResult(req.RecordId, err)
	}
	defer cleanupTempFile(tempPath)

	doc := new(signnow.DocumentPostResponse)
	if err := s.client.Send(ctx, signnow.NewDocumentPost(tempPath, req.Document.Filename), doc); err != nil {
		slog.Error("Document upload failed", "record_id", req.RecordId, "error", err)
		return failureResult(req.RecordId, fmt.Errorf("document upload failed: %w", err))
	}
	slog.Info("Document uploaded", "record_id", req.RecordId, "document_id", doc.Id)

	inviteIds, err := s.sendInvite(ctx, doc.Id, req.Signers)
	if err != nil {
		slog.Error("Invitation failed", "record_id", req.RecordId, "document_id", doc.Id, "error", err)
		return failureResult(req.RecordId, err)
	}

	return &response.SignatureResult{
		Success:           true,
		RecordId:          req.RecordId,
		DocumentId:        doc.Id,
		InviteIds:         inviteIds,
		SignedDocumentUrl: s.client.DocumentUrl(doc.Id),
	}
}

// ProcessFileSignatureRequest reads a local file, converts it to base64 and
// delegates to the inline workflow.
func (s *Service) ProcessFileSignatureRequest(ctx context.Context, req *payload.FileSignatureRequestPayload) *response.SignatureResult {
	slog.Info("Processing file signature request", "record_id", req.RecordId, "file_path", req.FilePath)

	if req.RecordId == "" || req.FilePath == "" || len(req.Signers) == 0 {
		return failureResult(req.RecordId, ErrValidation)
	}

	content, err := os.ReadFile(req.FilePath)
	if err != nil {
		return failureResult(req.RecordId, fmt.Errorf("failed to read document file: %w", err))
	}

	inline := &payload.SignatureRequestPayload{
		RecordId: req.RecordId,
		Document: payload.SignatureDocument{
			Filename:      filepath.Base(req.FilePath),
			ContentBase64: base64.StdEncoding.EncodeToString(content),
		},
		ExpirationDate: time.Now().Add(7 * 24 * time.Hour).Format(time.RFC3339),
		Signers:        req.Signers,
		Options:        req.Options,
	}
	return s.ProcessSignatureRequest(ctx, inline)
}

// ProcessTemplateRequest clones a template into a new document and runs the
// shared role-mapping and invitation tail.
func (s *Service) ProcessTemplateRequest(ctx context.Context, req *payload.TemplateSignatureRequestPayload) *response.SignatureResult {
	slog.Info("Processing template signature request",
		"record_id", req.RecordId,
		"template_id", req.TemplateId,
		"signers", len(req.Signers))

	if req.RecordId == "" || req.TemplateId == "" || len(req.Signers) == 0 {
		return failureResult(req.RecordId, ErrValidation)
	}

	clone := new(signnow.CloneTemplatePostResponse)
	if err := s.client.Send(ctx, signnow.NewCloneTemplatePost(req.TemplateId, req.DocumentName), clone); err != nil {
		slog.Error("Template clone failed", "record_id", req.RecordId, "template_id", req.TemplateId, "error", err)
		return failureResult(req.RecordId, fmt.Errorf("template clone failed: %w", err))
	}
	slog.Info("Template cloned", "record_id", req.RecordId, "document_id", clone.Id)

	inviteIds, err := s.sendInvite(ctx, clone.Id, req.Signers)
	if err != nil {
		slog.Error("Invitation failed", "record_id", req.RecordId, "document_id", clone.Id, "error", err)
		return failureResult(req.RecordId, err)
	}

	return &response.SignatureResult{
		Success:           true,
		RecordId:          req.RecordId,
		DocumentId:        clone.Id,
		InviteIds:         inviteIds,
		SignedDocumentUrl: s.client.DocumentUrl(clone.Id),
	}
}

// SendTemplate is the single-signer convenience send: one recipient, default
// role, synthetic record id.
func (s *Service) SendTemplate(ctx context.Context, templateId string, req *payload.TemplateSendPayload) *response.SignatureResult {
	role := req.Role
	if role == "" {
		role = "Signer 1"
	}

	return s.ProcessTemplateRequest(ctx, &payload.TemplateSignatureRequestPayload{
		RecordId:     strconv.FormatInt(time.Now().UnixMilli(), 10),
		TemplateId:   templateId,
		DocumentName: fmt.Sprintf("Documento para %s", req.Name),
		Signers: []payload.Signer{{
			Order:          1,
			Email:          req.Email,
			Role:           role,
			Name:           req.Name,
			Subject:        defaultSubject,
			Message:        defaultMessage,
			ExpirationDays: 7,
		}},
	})
}

// sendInvite fetches the document's roles, maps each signer onto a role by
// exact name match and sends one batch invitation. Any unmatched role aborts
// the batch before the invite call.
func (s *Service) sendInvite(ctx context.Context, documentId string, signers []payload.Signer) ([]string, error) {
	doc := new(signnow.DocumentGetResponse)
	if err := s.client.Send(ctx, signnow.NewDocumentGet(documentId), doc); err != nil {
		return nil, fmt.Errorf("failed to fetch document roles: %w", err)
	}
	if len(doc.Roles) == 0 {
		return nil, ErrNoRoles
	}

	to := make([]signnow.InviteSigner, 0, len(signers))
	for _, signer := range signers {
		role, ok := findRole(doc.Roles, signer.Role)
		if !ok {
			return nil, &RoleMappingError{Role: signer.Role}
		}

		order, err := strconv.Atoi(role.SigningOrder)
		if err != nil {
			order = signer.Order
		}

		subject := signer.Subject
		if subject == "" {
			subject = defaultSubject
		}
		message := signer.Message
		if message == "" {
			message = defaultMessage
		}

		to = append(to, signnow.InviteSigner{
			Email:          signer.Email,
			RoleId:         role.UniqueId,
			Role:           role.Name,
			Order:          order,
			Subject:        subject,
			Message:        message,
			ExpirationDays: signer.ExpirationDays,
		})
	}

	invite := new(signnow.FreeFormInvitePostResponse)
	if err := s.client.Send(ctx, signnow.NewFreeFormInvitePost(documentId, to, s.client.UserEmail()), invite); err != nil {
		return nil, fmt.Errorf("invitation request failed: %w", err)
	}

	slog.Info("Invitation sent", "document_id", documentId, "signers", len(to))
	return invite.Id, nil
}

// findRole matches by exact, case-sensitive role name.
func findRole(roles []signnow.Role, name string) (signnow.Role, bool) {
	for _, role := range roles {
		if role.Name == name {
			return role, true
		}
	}
	return signnow.Role{}, false
}

func failureResult(recordId string, err error) *response.SignatureResult {
	return &response.SignatureResult{
		Success:    false,
		RecordId:   recordId,
		DocumentId: "",
		InviteIds:  []string{},
		Error:      err.Error(),
	}
}
