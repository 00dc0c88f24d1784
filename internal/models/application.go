// internal/models/application.go
package models

// ApplicationStatus is owned by the backend; this client only renders it
// and branches on docs_required for correction mode.
type ApplicationStatus string

const (
	StatusDraft             ApplicationStatus = "draft"
	StatusSubmitted         ApplicationStatus = "submitted"
	StatusUnderVerification ApplicationStatus = "under_verification"
	StatusDocsRequired      ApplicationStatus = "docs_required"
	StatusApproved          ApplicationStatus = "approved"
	StatusRejected          ApplicationStatus = "rejected"
)

// Pending reports whether the application still counts against mutual
// exclusion and renewal conflict checks.
func (s ApplicationStatus) Pending() bool {
	switch s {
	case StatusSubmitted, StatusUnderVerification, StatusDocsRequired:
		return true
	}
	return false
}

// ApplicationDocument is a document snapshot linked to one application.
type ApplicationDocument struct {
	ID               int             `json:"id"`
	DocumentFormatID int             `json:"document_format_id"`
	FilePath         string          `json:"file_path"`
	IsVerified       bool            `json:"is_verified"`
	Remarks          string          `json:"remarks,omitempty"`
	DocumentFormat   *DocumentFormat `json:"document_format,omitempty"`
}

type Application struct {
	ID            int                   `json:"id"`
	StudentID     int                   `json:"student_id"`
	ScholarshipID int                   `json:"scholarship_id"`
	Status        ApplicationStatus     `json:"status"`
	Remarks       string                `json:"remarks,omitempty"`
	CreatedAt     string                `json:"created_at"`
	UpdatedAt     string                `json:"updated_at,omitempty"`
	Student       *User                 `json:"student,omitempty"`
	Documents     []ApplicationDocument `json:"documents,omitempty"`
}

// ApplicationCreate is the student-side apply payload.
type ApplicationCreate struct {
	ScholarshipID int    `json:"scholarship_id"`
	Remarks       string `json:"remarks,omitempty"`
	IsDraft       bool   `json:"is_draft"`
}

// ApplicationUpdate resubmits a returned application with new remarks.
type ApplicationUpdate struct {
	Remarks string `json:"remarks,omitempty"`
}

// RenewalCreate renews a previously approved application.
type RenewalCreate struct {
	ScholarshipID int    `json:"scholarship_id"`
	Remarks       string `json:"remarks,omitempty"`
	IsDraft       bool   `json:"is_draft"`
}

// SwitchRequest withdraws the conflicting application in favor of the
// target scholarship. The backend enforces the one-time limit.
type SwitchRequest struct {
	TargetScholarshipID int `json:"target_scholarship_id"`
}

// StatusUpdate is the staff-side transition payload.
type StatusUpdate struct {
	Status  ApplicationStatus `json:"status"`
	Remarks string            `json:"remarks,omitempty"`
}

// DocumentVerify is the staff-side per-document verdict.
type DocumentVerify struct {
	IsVerified bool   `json:"is_verified"`
	Remarks    string `json:"remarks,omitempty"`
}
