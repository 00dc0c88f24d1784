// internal/dashboard/masterdata.go
package dashboard

import (
	"context"
	"strings"

	"scholar-portal/internal/common/errors"
	"scholar-portal/internal/common/logger"
	"scholar-portal/internal/models"
)

type MasterDataBackend interface {
	Departments(ctx context.Context) ([]models.Department, error)
	Branches(ctx context.Context, departmentID int) ([]models.Branch, error)
	Sessions(ctx context.Context) ([]models.SessionYear, error)
	CreateDepartment(ctx context.Context, d models.Department) (*models.Department, error)
	UpdateDepartment(ctx context.Context, id int, d models.Department) (*models.Department, error)
	DeleteDepartment(ctx context.Context, id int) error
	CreateBranch(ctx context.Context, b models.Branch) (*models.Branch, error)
	UpdateBranch(ctx context.Context, id int, b models.Branch) (*models.Branch, error)
	DeleteBranch(ctx context.Context, id int) error
	CreateSession(ctx context.Context, s models.SessionYear) (*models.SessionYear, error)
	UpdateSession(ctx context.Context, id int, s models.SessionYear) (*models.SessionYear, error)
	DeleteSession(ctx context.Context, id int) error
}

// MasterDataService manages departments, branches and session years. Every
// mutation is followed by one re-fetch of the affected collection.
type MasterDataService struct {
	backend MasterDataBackend
	logger  logger.Logger

	departments []models.Department
	branches    []models.Branch
	sessions    []models.SessionYear
}

func NewMasterDataService(backend MasterDataBackend, log logger.Logger) *MasterDataService {
	return &MasterDataService{backend: backend, logger: log}
}

func (s *MasterDataService) Refresh(ctx context.Context) error {
	deps, err := s.backend.Departments(ctx)
	if err != nil {
		return err
	}
	branches, err := s.backend.Branches(ctx, 0)
	if err != nil {
		return err
	}
	sessions, err := s.backend.Sessions(ctx)
	if err != nil {
		return err
	}
	s.departments = deps
	s.branches = branches
	s.sessions = sessions
	return nil
}

func (s *MasterDataService) Departments() []models.Department { return s.departments }
func (s *MasterDataService) Branches() []models.Branch        { return s.branches }
func (s *MasterDataService) Sessions() []models.SessionYear   { return s.sessions }

func (s *MasterDataService) SaveDepartment(ctx context.Context, d models.Department) error {
	if strings.TrimSpace(d.Name) == "" {
		return errors.NewValidationError("department name is required")
	}
	var err error
	if d.ID > 0 {
		_, err = s.backend.UpdateDepartment(ctx, d.ID, d)
	} else {
		_, err = s.backend.CreateDepartment(ctx, d)
	}
	if err != nil {
		return err
	}
	return s.refreshDepartments(ctx)
}

func (s *MasterDataService) DeleteDepartment(ctx context.Context, id int) error {
	if err := s.backend.DeleteDepartment(ctx, id); err != nil {
		return err
	}
	return s.refreshDepartments(ctx)
}

func (s *MasterDataService) SaveBranch(ctx context.Context, b models.Branch) error {
	if strings.TrimSpace(b.Name) == "" {
		return errors.NewValidationError("branch name is required")
	}
	if b.DepartmentID <= 0 {
		return errors.NewValidationError("branch must belong to a department")
	}
	var err error
	if b.ID > 0 {
		_, err = s.backend.UpdateBranch(ctx, b.ID, b)
	} else {
		_, err = s.backend.CreateBranch(ctx, b)
	}
	if err != nil {
		return err
	}
	return s.refreshBranches(ctx)
}

func (s *MasterDataService) DeleteBranch(ctx context.Context, id int) error {
	if err := s.backend.DeleteBranch(ctx, id); err != nil {
		return err
	}
	return s.refreshBranches(ctx)
}

func (s *MasterDataService) SaveSession(ctx context.Context, sess models.SessionYear) error {
	if strings.TrimSpace(sess.Name) == "" {
		return errors.NewValidationError("session name is required")
	}
	var err error
	if sess.ID > 0 {
		_, err = s.backend.UpdateSession(ctx, sess.ID, sess)
	} else {
		_, err = s.backend.CreateSession(ctx, sess)
	}
	if err != nil {
		return err
	}
	return s.refreshSessions(ctx)
}

func (s *MasterDataService) DeleteSession(ctx context.Context, id int) error {
	if err := s.backend.DeleteSession(ctx, id); err != nil {
		return err
	}
	return s.refreshSessions(ctx)
}

func (s *MasterDataService) refreshDepartments(ctx context.Context) error {
	deps, err := s.backend.Departments(ctx)
	if err != nil {
		return err
	}
	s.departments = deps
	return nil
}

func (s *MasterDataService) refreshBranches(ctx context.Context) error {
	branches, err := s.backend.Branches(ctx, 0)
	if err != nil {
		return err
	}
	s.branches = branches
	return nil
}

func (s *MasterDataService) refreshSessions(ctx context.Context) error {
	sessions, err := s.backend.Sessions(ctx)
	if err != nil {
		return err
	}
	s.sessions = sessions
	return nil
}
