// internal/models/document.go
package models

// StudentDocument is a vault entry. Verification fields are mutated only by
// staff-side calls and show up here after a re-fetch.
type StudentDocument struct {
	ID               int    `json:"id"`
	StudentID        int    `json:"student_id"`
	DocumentType     string `json:"document_type"`
	DocumentFormatID int    `json:"document_format_id,omitempty"`
	FilePath         string `json:"file_path"`
	IsVerified       bool   `json:"is_verified"`
	Remarks          string `json:"remarks,omitempty"`
	IsActive         bool   `json:"is_active"`
	UploadedAt       string `json:"uploaded_at,omitempty"`
}
