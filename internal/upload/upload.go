// internal/upload/upload.go
package upload

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"sort"
	"strings"

	"scholar-portal/internal/common/errors"
	"scholar-portal/internal/common/logger"
	"scholar-portal/internal/models"
)

// Kind is a normalized file kind. jpg and jpeg collapse into one kind.
type Kind string

const (
	KindPDF  Kind = "pdf"
	KindJPEG Kind = "jpeg"
	KindPNG  Kind = "png"
)

var kindTable = map[string]Kind{
	"pdf":  KindPDF,
	"jpg":  KindJPEG,
	"jpeg": KindJPEG,
	"png":  KindPNG,
}

// KindOf maps a filename's extension through the kind table,
// case-insensitively.
func KindOf(filename string) (Kind, bool) {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(filename), "."))
	k, ok := kindTable[ext]
	return k, ok
}

// Validator checks filenames against a configured extension allow-list.
type Validator struct {
	allowed map[Kind]bool
	names   []string
}

// NewValidator builds a validator from configured extensions. Unknown
// extensions in the configuration are ignored.
func NewValidator(extensions []string) *Validator {
	v := &Validator{allowed: make(map[Kind]bool)}
	seen := map[string]bool{}
	for _, ext := range extensions {
		ext = strings.ToLower(strings.TrimPrefix(strings.TrimSpace(ext), "."))
		if _, ok := kindTable[ext]; !ok {
			continue
		}
		v.allowed[kindTable[ext]] = true
		if !seen[ext] {
			v.names = append(v.names, ext)
			seen[ext] = true
		}
	}
	sort.Strings(v.names)
	return v
}

// Validate accepts or rejects a filename. The rejection message names the
// allowed set.
func (v *Validator) Validate(filename string) error {
	kind, known := KindOf(filename)
	if !known || !v.allowed[kind] {
		return errors.NewValidationError(fmt.Sprintf(
			"file type not allowed; accepted types: %s", strings.Join(v.names, ", ")))
	}
	return nil
}

// Backend is the single call the uploader needs from the API client.
type Backend interface {
	UploadDocument(ctx context.Context, fileName string, file io.Reader, formatID int, documentType string) (*models.StudentDocument, error)
}

// Selection is the file currently staged for upload.
type Selection struct {
	Name    string
	Content io.Reader
}

// Uploader stages one file at a time, validates it before any network
// traffic, and submits it as multipart form data.
type Uploader struct {
	backend   Backend
	validator *Validator
	logger    logger.Logger
	selected  *Selection
}

func NewUploader(backend Backend, validator *Validator, log logger.Logger) *Uploader {
	return &Uploader{backend: backend, validator: validator, logger: log}
}

// Select stages a file. A disallowed extension clears any selection and
// returns the rejection; nothing reaches the network.
func (u *Uploader) Select(name string, content io.Reader) error {
	if err := u.validator.Validate(name); err != nil {
		u.selected = nil
		return err
	}
	u.selected = &Selection{Name: name, Content: content}
	return nil
}

// Selected returns the staged file, or nil.
func (u *Uploader) Selected() *Selection {
	return u.selected
}

// Clear drops the staged file.
func (u *Uploader) Clear() {
	u.selected = nil
}

// Submit uploads the staged file with its document-kind metadata. On
// success the selection is cleared and refresh runs once so the caller
// re-fetches its document list; the selection survives a server failure so
// the user can retry.
func (u *Uploader) Submit(ctx context.Context, formatID int, documentType string, refresh func(context.Context) error) (*models.StudentDocument, error) {
	if u.selected == nil {
		return nil, errors.NewValidationError("no file selected")
	}

	doc, err := u.backend.UploadDocument(ctx, u.selected.Name, u.selected.Content, formatID, documentType)
	if err != nil {
		u.logger.Warn("document upload failed", map[string]interface{}{
			"file":  u.selected.Name,
			"error": err.Error(),
		})
		return nil, err
	}

	u.selected = nil
	if refresh != nil {
		if err := refresh(ctx); err != nil {
			u.logger.Warn("post-upload refresh failed", map[string]interface{}{
				"error": err.Error(),
			})
		}
	}
	return doc, nil
}
