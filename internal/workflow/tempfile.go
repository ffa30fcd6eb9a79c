package workflow

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// saveTempFile writes the decoded document to a per-request unique path.
// Concurrent requests never share a temp file.
func (s *Service) saveTempFile(recordId, filename string, content []byte) (string, error) {
	name := fmt.Sprintf("%s_%s_%s", recordId, uuid.NewString(), filepath.Base(filename))
	path := filepath.Join(s.tempDir, name)
	if err := os.WriteFile(path, content, 0o600); err != nil {
		return "", fmt.Errorf("failed to write temp document: %w", err)
	}
	return path, nil
}

// cleanupTempFile removes a temp document. Failures are logged, not
// escalated, so they never mask the primary result.
func cleanupTempFile(path string) {
	if path == "" {
		return
	}
	if err := os.Remove(path); err != nil {
		slog.Error("Failed to remove temp document", "path", path, "error", err)
	}
}
