package tui

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"scholar-portal/internal/common/logger"
	"scholar-portal/internal/models"
	"scholar-portal/internal/upload"
	"scholar-portal/internal/wizard"
)

type stubBackend struct{}

func (stubBackend) Scholarship(context.Context, int) (*models.Scholarship, error) {
	return &models.Scholarship{
		ID:                    1,
		Name:                  "Merit Scholarship",
		RequiredProfileFields: []string{"enrollment_no", "department"},
		RequiredDocuments: []models.DocumentRequirement{
			{DocumentFormatID: 10, IsMandatory: true,
				DocumentFormat: &models.DocumentFormat{ID: 10, Name: "Income Certificate"}},
		},
	}, nil
}
func (stubBackend) MyProfile(context.Context) (*models.Profile, error)   { return nil, nil }
func (stubBackend) Me(context.Context) (*models.User, error)             { return &models.User{ID: 1}, nil }
func (stubBackend) Departments(context.Context) ([]models.Department, error) {
	return nil, nil
}
func (stubBackend) Branches(context.Context, int) ([]models.Branch, error) {
	return nil, nil
}
func (stubBackend) MyDocuments(context.Context) ([]models.StudentDocument, error) {
	return nil, nil
}
func (stubBackend) MyApplications(context.Context) ([]models.Application, error) {
	return nil, nil
}
func (stubBackend) SaveProfile(_ context.Context, p *models.Profile, _ bool) (*models.Profile, error) {
	return p.Clone(), nil
}
func (stubBackend) Apply(_ context.Context, req models.ApplicationCreate) (*models.Application, error) {
	return &models.Application{ID: 1, ScholarshipID: req.ScholarshipID, Status: models.StatusSubmitted}, nil
}
func (stubBackend) UpdateApplication(context.Context, int, models.ApplicationUpdate) (*models.Application, error) {
	return nil, nil
}
func (stubBackend) Switch(context.Context, models.SwitchRequest) (*models.Application, error) {
	return nil, nil
}
func loadedModel(t *testing.T) WizardModel {
	t.Helper()
	ctrl := wizard.NewController(stubBackend{}, logger.NewTestLogger(t))
	uploader := upload.NewUploader(nil, upload.NewValidator([]string{"pdf"}), logger.NewTestLogger(t))
	m := NewWizardModel(ctrl, uploader, 1)

	msg := m.Init()()
	updated, _ := m.Update(msg)
	wm, ok := updated.(WizardModel)
	require.True(t, ok)
	return wm
}

func TestWizardLoadsAndRendersProfileStep(t *testing.T) {
	m := loadedModel(t)
	view := m.View()

	assert.Contains(t, view, "Merit Scholarship")
	assert.Contains(t, view, "Enrollment Number")
	assert.Contains(t, view, "Department")
	assert.NotContains(t, view, "Income Certificate", "step 2 content stays hidden on step 1")
}

func TestWizardBlocksAdvanceOnEmptyProfile(t *testing.T) {
	m := loadedModel(t)

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("n")})
	wm := updated.(WizardModel)

	view := wm.View()
	assert.Contains(t, view, "1. Profile", "still on step 1")
	assert.NotEmpty(t, wm.toast)
}

func TestStatusBadges(t *testing.T) {
	s := DefaultStyles()
	for _, status := range []models.ApplicationStatus{
		models.StatusDraft, models.StatusSubmitted, models.StatusUnderVerification,
		models.StatusDocsRequired, models.StatusApproved, models.StatusRejected,
	} {
		assert.Contains(t, s.StatusBadge(status), string(status))
	}
	assert.Contains(t, s.StatusBadge(models.ApplicationStatus("weird")), "weird")
}
