// internal/dashboard/review.go
package dashboard

import (
	"context"
	"sort"
	"strconv"
	"strings"

	"scholar-portal/internal/common/errors"
	"scholar-portal/internal/common/logger"
	"scholar-portal/internal/models"
	"scholar-portal/internal/wizard"
)

// ReviewBackend is the staff-side API surface the review service uses.
type ReviewBackend interface {
	AdminApplications(ctx context.Context) ([]models.Application, error)
	UpdateApplicationStatus(ctx context.Context, appID int, req models.StatusUpdate) (*models.Application, error)
	VerifyDocument(ctx context.Context, docID int, req models.DocumentVerify) error
	Scholarships(ctx context.Context) ([]models.Scholarship, error)
}

// SortOrder picks the comparator for the application table.
type SortOrder string

const (
	SortNewest SortOrder = "newest"
	SortOldest SortOrder = "oldest"
)

// Filter is the client-side view state over the fetched application list.
type Filter struct {
	Status models.ApplicationStatus // empty means all
	Search string                   // matches scholarship name, student name, ids
	Sort   SortOrder
}

// StatusCounts is the per-status rollup shown above the table.
type StatusCounts map[models.ApplicationStatus]int

// ReviewService is the staff read-and-act loop: fetch the collection,
// filter and sort locally, mutate per row or in bulk, then re-fetch.
type ReviewService struct {
	backend ReviewBackend
	logger  logger.Logger

	applications []models.Application
	schNames     map[int]string
}

func NewReviewService(backend ReviewBackend, log logger.Logger) *ReviewService {
	return &ReviewService{
		backend:  backend,
		logger:   log,
		schNames: map[int]string{},
	}
}

// Refresh re-fetches the application list and the scholarship name lookup.
// A failed name lookup degrades to ids in search results.
func (s *ReviewService) Refresh(ctx context.Context) error {
	apps, err := s.backend.AdminApplications(ctx)
	if err != nil {
		return err
	}
	s.applications = apps

	if schs, err := s.backend.Scholarships(ctx); err == nil {
		s.schNames = make(map[int]string, len(schs))
		for _, sch := range schs {
			s.schNames[sch.ID] = sch.Name
		}
	} else {
		s.logger.Warn("scholarship name lookup failed", map[string]interface{}{
			"error": err.Error(),
		})
	}
	return nil
}

// Applications returns the raw fetched list.
func (s *ReviewService) Applications() []models.Application {
	return s.applications
}

// Visible applies the filter to the fetched list without mutating it.
func (s *ReviewService) Visible(f Filter) []models.Application {
	out := make([]models.Application, 0, len(s.applications))
	needle := strings.ToLower(strings.TrimSpace(f.Search))

	for _, app := range s.applications {
		if f.Status != "" && app.Status != f.Status {
			continue
		}
		if needle != "" && !s.matches(app, needle) {
			continue
		}
		out = append(out, app)
	}

	switch f.Sort {
	case SortOldest:
		sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt < out[j].CreatedAt })
	default:
		sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt > out[j].CreatedAt })
	}
	return out
}

func (s *ReviewService) matches(app models.Application, needle string) bool {
	if strings.Contains(strconv.Itoa(app.ID), needle) {
		return true
	}
	if name, ok := s.schNames[app.ScholarshipID]; ok && strings.Contains(strings.ToLower(name), needle) {
		return true
	}
	if app.Student != nil {
		if strings.Contains(strings.ToLower(app.Student.FullName), needle) ||
			strings.Contains(strings.ToLower(app.Student.EnrollmentNo), needle) {
			return true
		}
	}
	return false
}

// Stats rolls the fetched list up by status.
func (s *ReviewService) Stats() StatusCounts {
	counts := StatusCounts{}
	for _, app := range s.applications {
		counts[app.Status]++
	}
	return counts
}

// UpdateStatus transitions one application and re-fetches once.
func (s *ReviewService) UpdateStatus(ctx context.Context, appID int, status models.ApplicationStatus, remarks string) error {
	if _, err := s.backend.UpdateApplicationStatus(ctx, appID, models.StatusUpdate{
		Status:  status,
		Remarks: remarks,
	}); err != nil {
		return err
	}
	return s.Refresh(ctx)
}

// ReturnForCorrection moves an application to docs_required with a
// structured remarks blob. At least one checklist item or a reason is
// required before anything is sent.
func (s *ReviewService) ReturnForCorrection(ctx context.Context, appID int, checklist []string, note string) error {
	if len(checklist) == 0 && strings.TrimSpace(note) == "" {
		return errors.NewValidationError("select at least one issue or provide a reason")
	}
	remarks := wizard.ComposeReturnRemarks(checklist, strings.TrimSpace(note))
	return s.UpdateStatus(ctx, appID, models.StatusDocsRequired, remarks)
}

// BulkUpdateStatus transitions every selected application, one request
// each, then re-fetches once for the whole batch. It stops at the first
// failure so the caller sees which id broke the batch.
func (s *ReviewService) BulkUpdateStatus(ctx context.Context, appIDs []int, status models.ApplicationStatus, remarks string) error {
	for _, id := range appIDs {
		if _, err := s.backend.UpdateApplicationStatus(ctx, id, models.StatusUpdate{
			Status:  status,
			Remarks: remarks,
		}); err != nil {
			s.logger.Error("bulk status update aborted", map[string]interface{}{
				"application_id": id,
				"status":         string(status),
				"error":          err.Error(),
			})
			// The earlier transitions stand; reconcile with the server.
			if rerr := s.Refresh(ctx); rerr != nil {
				s.logger.Warn("refresh after aborted bulk update failed", map[string]interface{}{
					"error": rerr.Error(),
				})
			}
			return err
		}
	}
	return s.Refresh(ctx)
}

// VerifyDocument records a staff verdict on one document and re-fetches.
// Rejections carry remarks shown to the student.
func (s *ReviewService) VerifyDocument(ctx context.Context, docID int, verified bool, remarks string) error {
	if !verified && strings.TrimSpace(remarks) == "" {
		return errors.NewValidationError("a rejection needs remarks for the student")
	}
	if err := s.backend.VerifyDocument(ctx, docID, models.DocumentVerify{
		IsVerified: verified,
		Remarks:    remarks,
	}); err != nil {
		return err
	}
	return s.Refresh(ctx)
}
