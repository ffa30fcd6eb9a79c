package workflow

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/crmbridge/signbridge-api/internal/signnow"
	"github.com/crmbridge/signbridge-api/type/response"
)

// ListTemplates walks the account's root folder and returns the documents
// flagged as templates. Per-template detail failures are logged and skipped
// so one broken entry never empties the listing.
func (s *Service) ListTemplates(ctx context.Context) ([]response.Template, error) {
	folder := new(signnow.FolderGetResponse)
	if err := s.client.Send(ctx, signnow.NewFolderGet(), folder); err != nil {
		return nil, fmt.Errorf("failed to fetch root folder: %w", err)
	}

	docs := new(signnow.FolderDocumentsGetResponse)
	if err := s.client.Send(ctx, signnow.NewFolderDocumentsGet(folder.Id), docs); err != nil {
		return nil, fmt.Errorf("failed to list folder documents: %w", err)
	}

	templates := make([]response.Template, 0, len(docs.Documents))
	for _, doc := range docs.Documents {
		if !doc.Template {
			continue
		}
		template, err := s.GetTemplateById(ctx, doc.Id)
		if err != nil {
			slog.Error("Failed to fetch template detail", "template_id", doc.Id, "error", err)
			continue
		}
		templates = append(templates, *template)
	}

	slog.Info("Templates listed", "count", len(templates))
	return templates, nil
}

// GetTemplateById fetches one template's metadata and projects it into the
// CRM-facing shape.
func (s *Service) GetTemplateById(ctx context.Context, templateId string) (*response.Template, error) {
	doc := new(signnow.DocumentGetResponse)
	if err := s.client.Send(ctx, signnow.NewDocumentGet(templateId), doc); err != nil {
		return nil, err
	}

	roles := make([]string, 0, len(doc.Roles))
	for _, role := range doc.Roles {
		roles = append(roles, role.Name)
	}

	name := doc.DocumentName
	if name == "" {
		name = "Sin nombre"
	}

	return &response.Template{
		Id:         doc.Id,
		Name:       name,
		Template:   doc.Template,
		Roles:      roles,
		OwnerEmail: doc.Owner,
		Thumbnail: response.Thumbnail{
			Small:  doc.Thumbnail.Small,
			Medium: doc.Thumbnail.Medium,
			Large:  doc.Thumbnail.Large,
		},
	}, nil
}

// GetTemplateCopies lists the documents cloned from one template.
func (s *Service) GetTemplateCopies(ctx context.Context, templateId string) ([]signnow.TemplateCopy, error) {
	copies := new(signnow.TemplateCopiesGetResponse)
	if err := s.client.Send(ctx, signnow.NewTemplateCopiesGet(templateId), copies); err != nil {
		return nil, fmt.Errorf("failed to list template copies: %w", err)
	}
	return copies.Data, nil
}

// GetDocument fetches one document's metadata.
func (s *Service) GetDocument(ctx context.Context, documentId string) (*signnow.DocumentGetResponse, error) {
	doc := new(signnow.DocumentGetResponse)
	if err := s.client.Send(ctx, signnow.NewDocumentGet(documentId), doc); err != nil {
		return nil, err
	}
	return doc, nil
}

// Subscribe registers a provider webhook subscription.
func (s *Service) Subscribe(ctx context.Context, event, entityId, callbackUrl, secretKey string) (string, error) {
	attributes := signnow.WebhookAttributes{
		Callback:  callbackUrl,
		UseTls12:  true,
		SecretKey: secretKey,
	}
	result := new(signnow.EventSubscriptionPostResponse)
	if err := s.client.Send(ctx, signnow.NewEventSubscriptionPost(event, entityId, attributes), result); err != nil {
		return "", fmt.Errorf("subscription request failed: %w", err)
	}
	slog.Info("Webhook subscription registered", "event", event, "entity_id", entityId)
	return result.Id, nil
}

// DownloadDocument retrieves the collapsed PDF bytes of a document.
func (s *Service) DownloadDocument(ctx context.Context, documentId string) ([]byte, error) {
	return s.client.SendRaw(ctx, signnow.NewDocumentDownloadGet(documentId))
}
