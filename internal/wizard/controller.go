// internal/wizard/controller.go
package wizard

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/sync/errgroup"

	"scholar-portal/internal/common/errors"
	"scholar-portal/internal/common/logger"
	"scholar-portal/internal/models"
)

// Step is the wizard's position. Steps are linear with back transitions;
// skipping forward past a failed gate is not possible.
type Step int

const (
	StepProfile   Step = 1
	StepDocuments Step = 2
	StepReview    Step = 3
)

func (s Step) String() string {
	switch s {
	case StepProfile:
		return "Profile"
	case StepDocuments:
		return "Documents"
	case StepReview:
		return "Review"
	}
	return fmt.Sprintf("Step(%d)", int(s))
}

// Backend is the slice of the API surface the wizard needs. The concrete
// API client satisfies it.
type Backend interface {
	Scholarship(ctx context.Context, id int) (*models.Scholarship, error)
	MyProfile(ctx context.Context) (*models.Profile, error)
	SaveProfile(ctx context.Context, p *models.Profile, exists bool) (*models.Profile, error)
	MyDocuments(ctx context.Context) ([]models.StudentDocument, error)
	Me(ctx context.Context) (*models.User, error)
	MyApplications(ctx context.Context) ([]models.Application, error)
	Departments(ctx context.Context) ([]models.Department, error)
	Branches(ctx context.Context, departmentID int) ([]models.Branch, error)
	Apply(ctx context.Context, req models.ApplicationCreate) (*models.Application, error)
	UpdateApplication(ctx context.Context, id int, req models.ApplicationUpdate) (*models.Application, error)
	Switch(ctx context.Context, req models.SwitchRequest) (*models.Application, error)
}

// Controller drives one application session for one scholarship:
// Profile(1) -> Documents(2) -> Review(3), with validity gates between
// steps and a correction mode for applications returned as docs_required.
type Controller struct {
	backend Backend
	logger  logger.Logger

	step        Step
	scholarship *models.Scholarship

	// saved is the last server-acknowledged profile; draft is the edit
	// buffer. Missing-field state is derived from saved on load and from
	// draft at the moment of saving, never per keystroke.
	saved         *models.Profile
	draft         *models.Profile
	profileExists bool
	missing       []Field

	requirements *RequirementSet
	user         *models.User
	applications []models.Application
	departments  []models.Department
	branches     []models.Branch

	correctionMode bool
	correctionApp  *models.Application
	returned       ReturnRemarks

	remarks string
}

func NewController(backend Backend, log logger.Logger) *Controller {
	return &Controller{
		backend: backend,
		logger:  log,
		step:    StepProfile,
	}
}

// LoadContext fetches everything the wizard needs in parallel. Only a
// failed scholarship fetch aborts the load; the secondary sources degrade
// to empty defaults. Cancellation of ctx cancels every in-flight fetch.
func (c *Controller) LoadContext(ctx context.Context, scholarshipID int) error {
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		sch, err := c.backend.Scholarship(gctx, scholarshipID)
		if err != nil {
			return fmt.Errorf("failed to load scholarship %d: %w", scholarshipID, err)
		}
		c.scholarship = sch
		return nil
	})
	g.Go(func() error {
		profile, err := c.backend.MyProfile(gctx)
		if err != nil {
			c.warnDegraded("profile", err)
			return nil
		}
		c.saved = profile
		c.profileExists = profile != nil
		return nil
	})
	var docs []models.StudentDocument
	g.Go(func() error {
		d, err := c.backend.MyDocuments(gctx)
		if err != nil {
			c.warnDegraded("documents", err)
			return nil
		}
		docs = d
		return nil
	})
	g.Go(func() error {
		me, err := c.backend.Me(gctx)
		if err != nil {
			c.warnDegraded("user", err)
			return nil
		}
		c.user = me
		return nil
	})
	g.Go(func() error {
		apps, err := c.backend.MyApplications(gctx)
		if err != nil {
			c.warnDegraded("applications", err)
			return nil
		}
		c.applications = apps
		return nil
	})
	g.Go(func() error {
		deps, err := c.backend.Departments(gctx)
		if err != nil {
			c.warnDegraded("departments", err)
			return nil
		}
		c.departments = deps
		return nil
	})

	if err := g.Wait(); err != nil {
		return err
	}

	c.loadBranches(ctx)

	c.step = StepProfile
	c.draft = c.saved.Clone()
	c.missing = Missing(c.saved, c.scholarship.RequiredProfileFields)
	c.requirements = NewRequirementSet(c.scholarship.RequiredDocuments, docs)
	c.detectCorrectionMode()
	return nil
}

// loadBranches fetches the branch list for the saved profile's department.
// It runs after the parallel loads because it needs both the department
// catalog and the profile, and it degrades like the other secondary sources.
func (c *Controller) loadBranches(ctx context.Context) {
	c.branches = nil
	if c.saved == nil || c.saved.Department == "" {
		return
	}
	for _, d := range c.departments {
		if d.Name != c.saved.Department {
			continue
		}
		branches, err := c.backend.Branches(ctx, d.ID)
		if err != nil {
			c.warnDegraded("branches", err)
			return
		}
		c.branches = branches
		return
	}
}

func (c *Controller) warnDegraded(source string, err error) {
	c.logger.Warn("secondary fetch failed, continuing with empty default", map[string]interface{}{
		"source": source,
		"error":  err.Error(),
	})
}

// detectCorrectionMode re-enters the wizard for an application that staff
// returned as docs_required, parsing its remarks for display.
func (c *Controller) detectCorrectionMode() {
	c.correctionMode = false
	c.correctionApp = nil
	c.returned = ReturnRemarks{}
	for i := range c.applications {
		app := &c.applications[i]
		if app.ScholarshipID == c.scholarship.ID && app.Status == models.StatusDocsRequired {
			c.correctionMode = true
			c.correctionApp = app
			c.returned = ParseReturnRemarks(app.Remarks)
			return
		}
	}
}

func (c *Controller) Step() Step                         { return c.step }
func (c *Controller) Scholarship() *models.Scholarship   { return c.scholarship }
func (c *Controller) Draft() *models.Profile             { return c.draft }
func (c *Controller) Saved() *models.Profile             { return c.saved }
func (c *Controller) MissingFields() []Field             { return c.missing }
func (c *Controller) Requirements() *RequirementSet      { return c.requirements }
func (c *Controller) User() *models.User                 { return c.user }
func (c *Controller) Applications() []models.Application { return c.applications }
func (c *Controller) Departments() []models.Department   { return c.departments }
func (c *Controller) Branches() []models.Branch          { return c.branches }

// FieldOptions resolves a select field's choices, pulling department and
// branch names from master data loaded with the context.
func (c *Controller) FieldOptions(f Field) []string {
	switch f.Source {
	case SourceDepartments:
		names := make([]string, len(c.departments))
		for i, d := range c.departments {
			names[i] = d.Name
		}
		return names
	case SourceBranches:
		names := make([]string, len(c.branches))
		for i, b := range c.branches {
			names[i] = b.Name
		}
		return names
	}
	return f.Options
}
func (c *Controller) CorrectionMode() bool               { return c.correctionMode }
func (c *Controller) ReturnedRemarks() ReturnRemarks     { return c.returned }

// SetField writes user input into the draft only. Missing-field state is
// deliberately left alone until the next save, so typing does not churn
// the validation display.
func (c *Controller) SetField(key, raw string) error {
	f, ok := Lookup(key)
	if !ok {
		return fmt.Errorf("unknown profile field %q", key)
	}
	if c.draft == nil {
		c.draft = &models.Profile{}
	}
	return f.SetString(c.draft, raw)
}

// SetRemarks stores the student's free-text remark for submission.
func (c *Controller) SetRemarks(remarks string) {
	c.remarks = remarks
}

// ProfileReady is the gate out of step 1: a saved profile exists and no
// required field is missing.
func (c *Controller) ProfileReady() bool {
	return c.profileExists && len(c.missing) == 0
}

// DocumentsReady is the gate out of step 2.
func (c *Controller) DocumentsReady() bool {
	return c.requirements != nil && c.requirements.Ready()
}

// SaveProfile validates required fields against the draft as it stands
// right now, then persists it. On success both saved and draft state are
// replaced by the server's returned record and missing-field state is
// recomputed from it. On failure the draft is left untouched so the user
// can correct and retry.
func (c *Controller) SaveProfile(ctx context.Context) error {
	if c.scholarship == nil {
		return fmt.Errorf("wizard context not loaded")
	}

	c.missing = Missing(c.draft, c.scholarship.RequiredProfileFields)
	if len(c.missing) > 0 {
		labels := make([]string, len(c.missing))
		for i, f := range c.missing {
			labels[i] = f.Label
		}
		return errors.NewValidationError("required fields missing: " + strings.Join(labels, ", "))
	}

	savedRecord, err := c.backend.SaveProfile(ctx, c.draft, c.profileExists)
	if err != nil {
		return err
	}

	c.saved = savedRecord
	c.draft = savedRecord.Clone()
	c.profileExists = true
	c.missing = Missing(c.saved, c.scholarship.RequiredProfileFields)
	return nil
}

// Advance moves forward one step when the current step's gate holds.
func (c *Controller) Advance() error {
	switch c.step {
	case StepProfile:
		if !c.ProfileReady() {
			return errors.NewValidationError("complete and save your profile before continuing")
		}
		c.step = StepDocuments
	case StepDocuments:
		if !c.DocumentsReady() {
			return errors.NewValidationError("upload all mandatory documents before continuing")
		}
		c.step = StepReview
	case StepReview:
		return fmt.Errorf("already at the final step")
	}
	return nil
}

// Back moves one step backwards; a no-op at step 1.
func (c *Controller) Back() {
	if c.step > StepProfile {
		c.step--
	}
}

// RecordUpload folds a document uploaded during this session into the
// requirement set and settles its decision.
func (c *Controller) RecordUpload(doc *models.StudentDocument) {
	if c.requirements != nil && doc != nil {
		c.requirements.RecordUpload(doc)
	}
}

// RefreshDocuments is the single authoritative re-fetch after an upload.
func (c *Controller) RefreshDocuments(ctx context.Context) error {
	docs, err := c.backend.MyDocuments(ctx)
	if err != nil {
		return err
	}
	c.requirements.Rematch(docs)
	return nil
}

// ConflictingApplication returns an existing non-rejected application to a
// mutually exclusive scholarship, or to this scholarship itself outside
// correction mode. Nil means applying is allowed.
func (c *Controller) ConflictingApplication() *models.Application {
	if c.scholarship == nil {
		return nil
	}
	exclusive := make(map[int]bool, len(c.scholarship.MutuallyExclusiveIDs))
	for _, id := range c.scholarship.MutuallyExclusiveIDs {
		exclusive[id] = true
	}
	for i := range c.applications {
		app := &c.applications[i]
		if app.Status == models.StatusRejected {
			continue
		}
		if exclusive[app.ScholarshipID] {
			return app
		}
		if app.ScholarshipID == c.scholarship.ID && !c.correctionMode {
			return app
		}
	}
	return nil
}

// CanSwitch reports whether the one-time switch action is still available
// for a mutual-exclusion conflict.
func (c *Controller) CanSwitch() bool {
	conflict := c.ConflictingApplication()
	if conflict == nil || conflict.ScholarshipID == c.scholarship.ID {
		return false
	}
	return c.saved == nil || c.saved.ScholarshipSwitchCount == 0
}

// Submit creates the application, or resubmits the corrected one when in
// correction mode. On success the application list is re-fetched once so
// conflict checks and correction detection see the server's truth. On
// failure the wizard state is untouched and the caller may retry.
func (c *Controller) Submit(ctx context.Context, isDraft bool) (*models.Application, error) {
	if c.scholarship == nil {
		return nil, fmt.Errorf("wizard context not loaded")
	}

	var (
		app *models.Application
		err error
	)
	if c.correctionMode {
		app, err = c.backend.UpdateApplication(ctx, c.correctionApp.ID, models.ApplicationUpdate{
			Remarks: c.remarks,
		})
	} else {
		if conflict := c.ConflictingApplication(); conflict != nil {
			return nil, errors.NewValidationError(fmt.Sprintf(
				"an existing application (id %d) conflicts with this scholarship", conflict.ID))
		}
		app, err = c.backend.Apply(ctx, models.ApplicationCreate{
			ScholarshipID: c.scholarship.ID,
			Remarks:       c.remarks,
			IsDraft:       isDraft,
		})
	}
	if err != nil {
		return nil, err
	}

	c.refreshApplications(ctx)
	return app, nil
}

// SwitchTo withdraws the conflicting application in favor of this
// scholarship. The backend enforces the one-time limit; afterwards the
// application list is re-fetched so the old application no longer counts
// against conflict checks.
func (c *Controller) SwitchTo(ctx context.Context) (*models.Application, error) {
	if !c.CanSwitch() {
		return nil, errors.NewValidationError("no switchable conflicting application")
	}
	app, err := c.backend.Switch(ctx, models.SwitchRequest{
		TargetScholarshipID: c.scholarship.ID,
	})
	if err != nil {
		return nil, err
	}
	c.refreshApplications(ctx)
	return app, nil
}

func (c *Controller) refreshApplications(ctx context.Context) {
	apps, err := c.backend.MyApplications(ctx)
	if err != nil {
		c.warnDegraded("applications", err)
		return
	}
	c.applications = apps
	c.detectCorrectionMode()
}
