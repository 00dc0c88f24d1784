package wizard

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"scholar-portal/internal/common/errors"
	"scholar-portal/internal/common/logger"
	"scholar-portal/internal/models"
)

// fakeBackend is an in-memory Backend with per-call failure switches.
type fakeBackend struct {
	scholarships map[int]*models.Scholarship
	profile      *models.Profile
	documents    []models.StudentDocument
	user         *models.User
	applications []models.Application
	branches     map[int][]models.Branch

	failProfile   bool
	failDocuments bool
	failUser      bool
	failApps      bool
	failDepts     bool
	saveErr       error

	saveCalls   int
	applyCalls  int
	updateCalls int
	switchCalls int
	listCalls   int
	nextAppID   int
}

func newFakeBackend(sch *models.Scholarship) *fakeBackend {
	return &fakeBackend{
		scholarships: map[int]*models.Scholarship{sch.ID: sch},
		nextAppID:    100,
	}
}

func (f *fakeBackend) Scholarship(_ context.Context, id int) (*models.Scholarship, error) {
	sch, ok := f.scholarships[id]
	if !ok {
		return nil, errors.FromStatus(404, "Scholarship not found")
	}
	return sch, nil
}

func (f *fakeBackend) MyProfile(context.Context) (*models.Profile, error) {
	if f.failProfile {
		return nil, errors.FromStatus(500, "")
	}
	return f.profile, nil
}

func (f *fakeBackend) SaveProfile(_ context.Context, p *models.Profile, exists bool) (*models.Profile, error) {
	f.saveCalls++
	if f.saveErr != nil {
		return nil, f.saveErr
	}
	saved := p.Clone()
	if !exists {
		saved.ID = 1
	}
	f.profile = saved
	return saved.Clone(), nil
}

func (f *fakeBackend) MyDocuments(context.Context) ([]models.StudentDocument, error) {
	if f.failDocuments {
		return nil, errors.FromStatus(500, "")
	}
	return f.documents, nil
}

func (f *fakeBackend) Me(context.Context) (*models.User, error) {
	if f.failUser {
		return nil, errors.FromStatus(500, "")
	}
	return f.user, nil
}

func (f *fakeBackend) MyApplications(context.Context) ([]models.Application, error) {
	f.listCalls++
	if f.failApps {
		return nil, errors.FromStatus(500, "")
	}
	return f.applications, nil
}

func (f *fakeBackend) Departments(context.Context) ([]models.Department, error) {
	if f.failDepts {
		return nil, errors.FromStatus(500, "")
	}
	return []models.Department{{ID: 1, Name: "CSE"}}, nil
}

func (f *fakeBackend) Branches(_ context.Context, departmentID int) ([]models.Branch, error) {
	return f.branches[departmentID], nil
}

func (f *fakeBackend) Apply(_ context.Context, req models.ApplicationCreate) (*models.Application, error) {
	f.applyCalls++
	app := models.Application{
		ID:            f.nextAppID,
		ScholarshipID: req.ScholarshipID,
		Status:        models.StatusSubmitted,
		Remarks:       req.Remarks,
	}
	if req.IsDraft {
		app.Status = models.StatusDraft
	}
	f.nextAppID++
	f.applications = append(f.applications, app)
	return &app, nil
}

func (f *fakeBackend) UpdateApplication(_ context.Context, id int, req models.ApplicationUpdate) (*models.Application, error) {
	f.updateCalls++
	for i := range f.applications {
		if f.applications[i].ID == id {
			f.applications[i].Remarks = req.Remarks
			f.applications[i].Status = models.StatusSubmitted
			return &f.applications[i], nil
		}
	}
	return nil, errors.FromStatus(404, "Application not found")
}

func (f *fakeBackend) Switch(_ context.Context, req models.SwitchRequest) (*models.Application, error) {
	f.switchCalls++
	for i := range f.applications {
		if f.applications[i].Status.Pending() {
			f.applications[i].Status = models.StatusRejected
		}
	}
	return f.Apply(context.Background(), models.ApplicationCreate{ScholarshipID: req.TargetScholarshipID})
}

func testScholarship() *models.Scholarship {
	return &models.Scholarship{
		ID:                    1,
		Name:                  "Merit Scholarship",
		RequiredProfileFields: []string{"enrollment_no", "department"},
		RequiredDocuments: []models.DocumentRequirement{
			{DocumentFormatID: 10, IsMandatory: true},
		},
	}
}

func loadController(t *testing.T, backend *fakeBackend) *Controller {
	t.Helper()
	c := NewController(backend, logger.NewTestLogger(t))
	require.NoError(t, c.LoadContext(context.Background(), 1))
	return c
}

func TestLoadContextScholarshipFailureIsFatal(t *testing.T) {
	backend := newFakeBackend(testScholarship())
	c := NewController(backend, logger.NewNoOpLogger())
	err := c.LoadContext(context.Background(), 999)
	assert.Error(t, err)
}

func TestLoadContextSecondaryFailuresDegrade(t *testing.T) {
	backend := newFakeBackend(testScholarship())
	backend.failProfile = true
	backend.failDocuments = true
	backend.failUser = true
	backend.failApps = true
	backend.failDepts = true

	c := loadController(t, backend)

	assert.Equal(t, StepProfile, c.Step())
	assert.NotNil(t, c.Scholarship())
	assert.Nil(t, c.Saved())
	assert.Empty(t, c.Applications())
	assert.Empty(t, c.Departments())
	assert.False(t, c.ProfileReady())
	assert.False(t, c.DocumentsReady())
}

func TestSelectOptionsComeFromMasterData(t *testing.T) {
	backend := newFakeBackend(testScholarship())
	backend.profile = &models.Profile{EnrollmentNo: "EN-1", Department: "CSE"}
	backend.branches = map[int][]models.Branch{1: {{ID: 7, DepartmentID: 1, Name: "AI & ML"}}}

	c := loadController(t, backend)

	dept, ok := Lookup("department")
	require.True(t, ok)
	assert.Equal(t, []string{"CSE"}, c.FieldOptions(dept))

	branch, ok := Lookup("branch")
	require.True(t, ok)
	assert.Equal(t, []string{"AI & ML"}, c.FieldOptions(branch))

	gender, ok := Lookup("gender")
	require.True(t, ok)
	assert.Equal(t, []string{"Male", "Female"}, c.FieldOptions(gender))
}

func TestMissingStateLagsDraftUntilSave(t *testing.T) {
	backend := newFakeBackend(testScholarship())
	c := loadController(t, backend)

	require.Len(t, c.MissingFields(), 2)

	// Typing fills the draft but validation state stays as loaded.
	require.NoError(t, c.SetField("enrollment_no", "X1"))
	require.NoError(t, c.SetField("department", "CSE"))
	assert.Len(t, c.MissingFields(), 2, "missing state must not react to keystrokes")

	require.NoError(t, c.SaveProfile(context.Background()))
	assert.Empty(t, c.MissingFields())
	assert.True(t, c.ProfileReady())
}

func TestSaveProfileValidatesDraftNotSavedCopy(t *testing.T) {
	backend := newFakeBackend(testScholarship())
	backend.profile = &models.Profile{ID: 1, EnrollmentNo: "X1", Department: "CSE"}
	c := loadController(t, backend)
	assert.True(t, c.ProfileReady())

	// The draft is cleared after load; saving must re-check the draft as
	// it stands now, not the stale saved copy.
	require.NoError(t, c.SetField("department", ""))
	err := c.SaveProfile(context.Background())
	require.Error(t, err)
	assert.Contains(t, errors.UserMessage(err), "Department")
	assert.Zero(t, backend.saveCalls, "validation failure must not reach the network")
}

func TestSaveProfileFailureLeavesDraftForRetry(t *testing.T) {
	backend := newFakeBackend(testScholarship())
	backend.saveErr = errors.FromStatus(422, "Pincode format invalid")
	c := loadController(t, backend)

	require.NoError(t, c.SetField("enrollment_no", "X1"))
	require.NoError(t, c.SetField("department", "CSE"))

	err := c.SaveProfile(context.Background())
	require.Error(t, err)
	assert.Equal(t, "Pincode format invalid", errors.UserMessage(err))
	assert.Equal(t, "X1", c.Draft().EnrollmentNo, "draft survives a server rejection")
	assert.Nil(t, c.Saved())
}

func TestSaveProfileIdempotent(t *testing.T) {
	backend := newFakeBackend(testScholarship())
	c := loadController(t, backend)

	require.NoError(t, c.SetField("enrollment_no", "X1"))
	require.NoError(t, c.SetField("department", "CSE"))

	require.NoError(t, c.SaveProfile(context.Background()))
	first := c.Saved().Clone()
	require.NoError(t, c.SaveProfile(context.Background()))

	assert.Equal(t, first, c.Saved(), "saving an unchanged valid draft is a no-op server-side")
	assert.Equal(t, 2, backend.saveCalls)
}

func TestAdvanceGates(t *testing.T) {
	backend := newFakeBackend(testScholarship())
	c := loadController(t, backend)

	assert.Error(t, c.Advance(), "profile gate must hold")

	require.NoError(t, c.SetField("enrollment_no", "X1"))
	require.NoError(t, c.SetField("department", "CSE"))
	require.NoError(t, c.SaveProfile(context.Background()))
	require.NoError(t, c.Advance())
	assert.Equal(t, StepDocuments, c.Step())

	assert.Error(t, c.Advance(), "documents gate must hold")

	c.RecordUpload(&models.StudentDocument{ID: 7, DocumentFormatID: 10})
	require.NoError(t, c.Advance())
	assert.Equal(t, StepReview, c.Step())
	assert.Error(t, c.Advance())

	c.Back()
	assert.Equal(t, StepDocuments, c.Step())
	c.Back()
	c.Back()
	assert.Equal(t, StepProfile, c.Step())
}

func TestSubmitCreatesApplicationAndRefetchesOnce(t *testing.T) {
	backend := newFakeBackend(testScholarship())
	c := loadController(t, backend)
	listCallsAfterLoad := backend.listCalls

	c.SetRemarks("please consider")
	app, err := c.Submit(context.Background(), false)
	require.NoError(t, err)

	assert.Equal(t, models.StatusSubmitted, app.Status)
	assert.Equal(t, "please consider", app.Remarks)
	assert.Equal(t, 1, backend.applyCalls)
	assert.Equal(t, listCallsAfterLoad+1, backend.listCalls, "exactly one authoritative re-fetch")
	assert.Len(t, c.Applications(), 1)
}

func TestSubmitDraftFlag(t *testing.T) {
	backend := newFakeBackend(testScholarship())
	c := loadController(t, backend)

	app, err := c.Submit(context.Background(), true)
	require.NoError(t, err)
	assert.Equal(t, models.StatusDraft, app.Status)
}

func TestCorrectionModeEntryAndResubmit(t *testing.T) {
	backend := newFakeBackend(testScholarship())
	backend.applications = []models.Application{{
		ID:            55,
		ScholarshipID: 1,
		Status:        models.StatusDocsRequired,
		Remarks:       "ACTION REQUIRED:\n- Fix income proof\n\nNOTES:\nAlso update address",
	}}
	c := loadController(t, backend)

	assert.True(t, c.CorrectionMode())
	assert.Equal(t, []string{"Fix income proof"}, c.ReturnedRemarks().Checklist)
	assert.Equal(t, "Also update address", c.ReturnedRemarks().Note)

	c.SetRemarks("fixed everything")
	app, err := c.Submit(context.Background(), false)
	require.NoError(t, err)

	assert.Equal(t, 55, app.ID, "correction mode updates, never creates")
	assert.Equal(t, 1, backend.updateCalls)
	assert.Zero(t, backend.applyCalls)
	assert.False(t, c.CorrectionMode(), "resubmission leaves correction mode after the re-fetch")
}

func TestMutualExclusionBlocksAndSwitchClears(t *testing.T) {
	sch := testScholarship()
	sch.MutuallyExclusiveIDs = []int{2}
	backend := newFakeBackend(sch)
	backend.applications = []models.Application{{
		ID:            60,
		ScholarshipID: 2,
		Status:        models.StatusSubmitted,
	}}
	c := loadController(t, backend)

	conflict := c.ConflictingApplication()
	require.NotNil(t, conflict)
	assert.Equal(t, 60, conflict.ID)

	_, err := c.Submit(context.Background(), false)
	assert.Error(t, err, "a pending exclusive application blocks direct apply")
	assert.Zero(t, backend.applyCalls)

	require.True(t, c.CanSwitch())
	app, err := c.SwitchTo(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, app.ScholarshipID)

	// After the switch re-fetch the old application is rejected and no
	// longer counts against conflict checks.
	for _, a := range c.Applications() {
		if a.ID == 60 {
			assert.Equal(t, models.StatusRejected, a.Status)
		}
	}
	assert.Nil(t, findConflictOtherThan(c, app.ID))
}

func findConflictOtherThan(c *Controller, appID int) *models.Application {
	conflict := c.ConflictingApplication()
	if conflict != nil && conflict.ID != appID {
		return conflict
	}
	return nil
}

func TestSwitchUnavailableAfterFirstUse(t *testing.T) {
	sch := testScholarship()
	sch.MutuallyExclusiveIDs = []int{2}
	backend := newFakeBackend(sch)
	backend.profile = &models.Profile{ID: 1, ScholarshipSwitchCount: 1}
	backend.applications = []models.Application{{
		ID: 60, ScholarshipID: 2, Status: models.StatusSubmitted,
	}}
	c := loadController(t, backend)

	assert.NotNil(t, c.ConflictingApplication())
	assert.False(t, c.CanSwitch(), "switch is a one-time action")

	_, err := c.SwitchTo(context.Background())
	assert.Error(t, err)
	assert.Zero(t, backend.switchCalls)
}

func TestRejectedApplicationsDoNotConflict(t *testing.T) {
	sch := testScholarship()
	sch.MutuallyExclusiveIDs = []int{2}
	backend := newFakeBackend(sch)
	backend.applications = []models.Application{{
		ID: 60, ScholarshipID: 2, Status: models.StatusRejected,
	}}
	c := loadController(t, backend)

	assert.Nil(t, c.ConflictingApplication())
}

func TestRefreshDocumentsRematches(t *testing.T) {
	backend := newFakeBackend(testScholarship())
	c := loadController(t, backend)
	assert.False(t, c.DocumentsReady())

	backend.documents = []models.StudentDocument{{ID: 9, DocumentFormatID: 10}}
	require.NoError(t, c.RefreshDocuments(context.Background()))
	assert.True(t, c.DocumentsReady())
}
