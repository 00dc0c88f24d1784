// internal/dashboard/export.go
package dashboard

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"scholar-portal/internal/common/errors"
	"scholar-portal/internal/common/logger"
)

type ExportBackend interface {
	ExportCSV(ctx context.Context, exportType string) ([]byte, string, error)
	ApplicationPDF(ctx context.Context, id int) ([]byte, string, error)
}

// ExportService downloads backend-generated blobs (CSV exports, merged
// application PDFs) and writes them to the configured output directory.
type ExportService struct {
	backend   ExportBackend
	logger    logger.Logger
	outputDir string
	now       func() time.Time
}

func NewExportService(backend ExportBackend, outputDir string, log logger.Logger) *ExportService {
	return &ExportService{
		backend:   backend,
		logger:    log,
		outputDir: outputDir,
		now:       time.Now,
	}
}

// SaveCSV downloads one export and returns the written file path.
// exportType is "applications" or "applicants".
func (s *ExportService) SaveCSV(ctx context.Context, exportType string) (string, error) {
	switch exportType {
	case "applications", "applicants":
	default:
		return "", errors.NewValidationError("unknown export type " + exportType)
	}

	data, _, err := s.backend.ExportCSV(ctx, exportType)
	if err != nil {
		return "", err
	}

	name := fmt.Sprintf("%s_%s.csv", exportType, s.now().Format("20060102_150405"))
	return s.write(name, data)
}

// SaveApplicationPDF downloads the merged PDF bundle for one application.
func (s *ExportService) SaveApplicationPDF(ctx context.Context, appID int) (string, error) {
	data, contentType, err := s.backend.ApplicationPDF(ctx, appID)
	if err != nil {
		return "", err
	}
	if !strings.Contains(contentType, "pdf") {
		s.logger.Warn("unexpected content type for application pdf", map[string]interface{}{
			"application_id": appID,
			"content_type":   contentType,
		})
	}
	return s.write(fmt.Sprintf("application_%d.pdf", appID), data)
}

func (s *ExportService) write(name string, data []byte) (string, error) {
	if err := os.MkdirAll(s.outputDir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create export directory: %w", err)
	}
	path := filepath.Join(s.outputDir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("failed to write export file: %w", err)
	}
	s.logger.Info("export saved", map[string]interface{}{
		"path":  path,
		"bytes": len(data),
	})
	return path, nil
}
