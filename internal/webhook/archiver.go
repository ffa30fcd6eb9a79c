package webhook

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/minio/minio-go/v7"
)

// DocumentDownloader fetches the flattened PDF of a provider document.
type DocumentDownloader interface {
	DownloadDocument(ctx context.Context, documentId string) ([]byte, error)
}

// Archiver stores completed signed documents in an object storage bucket.
// Attached to the document-complete event when archiving is configured.
type Archiver struct {
	store      *minio.Client
	bucket     string
	downloader DocumentDownloader
}

func NewArchiver(store *minio.Client, bucket string, downloader DocumentDownloader) *Archiver {
	return &Archiver{store: store, bucket: bucket, downloader: downloader}
}

func (a *Archiver) Handle(ctx context.Context, event *Event) error {
	documentId := event.Data.Object.Id
	if documentId == "" {
		slog.Warn("Archive skipped: event carries no document id", "event", event.Type())
		return nil
	}

	content, err := a.downloader.DownloadDocument(ctx, documentId)
	if err != nil {
		return fmt.Errorf("failed to download completed document %s: %w", documentId, err)
	}

	exists, err := a.store.BucketExists(ctx, a.bucket)
	if err != nil {
		return fmt.Errorf("failed to check bucket existence: %w", err)
	}
	if !exists {
		if err := a.store.MakeBucket(ctx, a.bucket, minio.MakeBucketOptions{}); err != nil {
			return fmt.Errorf("failed to create bucket: %w", err)
		}
	}

	objectName := fmt.Sprintf("%s_%d.pdf", documentId, time.Now().Unix())
	_, err = a.store.PutObject(ctx, a.bucket, objectName, bytes.NewReader(content), int64(len(content)), minio.PutObjectOptions{
		ContentType: "application/pdf",
	})
	if err != nil {
		return fmt.Errorf("failed to archive document %s: %w", documentId, err)
	}

	slog.Info("Signed document archived", "document_id", documentId, "bucket", a.bucket, "object", objectName)
	return nil
}
