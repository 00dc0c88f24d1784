// internal/dashboard/email.go
package dashboard

import (
	"context"
	"strings"

	"scholar-portal/internal/common/errors"
	"scholar-portal/internal/common/logger"
	"scholar-portal/internal/models"
)

// Broadcast target groups understood by the backend.
const (
	TargetAll         = "all"
	TargetDepartment  = "department"
	TargetBranch      = "branch"
	TargetScholarship = "scholarship"
	TargetCustom      = "custom"
)

type EmailBackend interface {
	SendBroadcastEmail(ctx context.Context, req models.EmailRequest) (*models.EmailResult, error)
}

// EmailService composes and sends broadcast email to student groups.
type EmailService struct {
	backend EmailBackend
	logger  logger.Logger
}

func NewEmailService(backend EmailBackend, log logger.Logger) *EmailService {
	return &EmailService{backend: backend, logger: log}
}

// ValidateEmailRequest blocks obviously incomplete broadcasts before any
// network traffic.
func ValidateEmailRequest(req models.EmailRequest) error {
	if strings.TrimSpace(req.Subject) == "" {
		return errors.NewValidationError("subject is required")
	}
	if strings.TrimSpace(req.Body) == "" {
		return errors.NewValidationError("body is required")
	}
	switch req.TargetGroup {
	case TargetAll:
	case TargetDepartment, TargetBranch, TargetScholarship:
		if strings.TrimSpace(req.TargetID) == "" {
			return errors.NewValidationError("a target must be chosen for group " + req.TargetGroup)
		}
	case TargetCustom:
		if len(req.CustomRecipients) == 0 {
			return errors.NewValidationError("custom broadcasts need at least one recipient")
		}
	default:
		return errors.NewValidationError("unknown target group " + req.TargetGroup)
	}
	return nil
}

// Send validates and dispatches one broadcast.
func (s *EmailService) Send(ctx context.Context, req models.EmailRequest) (*models.EmailResult, error) {
	if err := ValidateEmailRequest(req); err != nil {
		return nil, err
	}
	result, err := s.backend.SendBroadcastEmail(ctx, req)
	if err != nil {
		return nil, err
	}
	s.logger.Info("broadcast email queued", map[string]interface{}{
		"target_group": req.TargetGroup,
		"recipients":   result.Count,
	})
	return result, nil
}
