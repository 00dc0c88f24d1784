// internal/api/documents.go
package api

import (
	"context"
	"io"
	"strconv"

	"scholar-portal/internal/models"
)

func (c *Client) MyDocuments(ctx context.Context) ([]models.StudentDocument, error) {
	var out []models.StudentDocument
	if err := c.Get(ctx, "/documents/", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// DocumentTypes returns the master catalog of document kinds.
func (c *Client) DocumentTypes(ctx context.Context) ([]models.DocumentFormat, error) {
	var out []models.DocumentFormat
	if err := c.Get(ctx, "/documents/types", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// UploadDocument sends one file as multipart form data. formatID ties the
// upload to a document kind; zero means an unclassified vault upload.
func (c *Client) UploadDocument(ctx context.Context, fileName string, file io.Reader, formatID int, documentType string) (*models.StudentDocument, error) {
	extra := map[string]string{}
	if formatID > 0 {
		extra["document_format_id"] = strconv.Itoa(formatID)
	}
	if documentType != "" {
		extra["document_type"] = documentType
	}

	var out models.StudentDocument
	if err := c.UploadFile(ctx, "/documents/upload", "file", fileName, file, extra, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
