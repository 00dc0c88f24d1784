// internal/tui/wizard.go
package tui

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"scholar-portal/internal/common/errors"
	"scholar-portal/internal/models"
	"scholar-portal/internal/upload"
	"scholar-portal/internal/wizard"
)

// WizardModel is the interactive three-step application flow. All business
// rules live in the wizard controller; this model is rendering and key
// routing only.
type WizardModel struct {
	ctrl          *wizard.Controller
	uploader      *upload.Uploader
	styles        Styles
	scholarshipID int

	loading bool
	loadErr error
	done    bool
	final   *models.Application

	fields  []wizard.Field
	cursor  int
	input   textinput.Model
	editing bool

	// prompting selects what the shared text input is capturing.
	prompting promptKind
	promptReq *wizard.RequirementState

	toast    string
	toastErr bool
}

type promptKind int

const (
	promptNone promptKind = iota
	promptFieldValue
	promptFilePath
	promptRemarks
)

type (
	loadedMsg    struct{ err error }
	savedMsg     struct{ err error }
	uploadedMsg  struct {
		doc *models.StudentDocument
		err error
	}
	submittedMsg struct {
		app *models.Application
		err error
	}
)

func NewWizardModel(ctrl *wizard.Controller, uploader *upload.Uploader, scholarshipID int) WizardModel {
	ti := textinput.New()
	ti.CharLimit = 256
	return WizardModel{
		ctrl:          ctrl,
		uploader:      uploader,
		styles:        DefaultStyles(),
		scholarshipID: scholarshipID,
		loading:       true,
		input:         ti,
	}
}

func (m WizardModel) Init() tea.Cmd {
	return func() tea.Msg {
		return loadedMsg{err: m.ctrl.LoadContext(context.Background(), m.scholarshipID)}
	}
}

func (m WizardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case loadedMsg:
		m.loading = false
		if msg.err != nil {
			m.loadErr = msg.err
			return m, tea.Quit
		}
		m.fields = wizard.RequiredFields(m.ctrl.Scholarship().RequiredProfileFields)
		if m.ctrl.CorrectionMode() {
			m.toast = "Application returned for correction; review the checklist below."
		}
		return m, nil

	case savedMsg:
		if msg.err != nil {
			m.setToast(errors.UserMessage(msg.err), true)
		} else {
			m.setToast("Profile saved.", false)
		}
		return m, nil

	case uploadedMsg:
		if msg.err != nil {
			m.setToast(errors.UserMessage(msg.err), true)
		} else {
			m.ctrl.RecordUpload(msg.doc)
			m.setToast("Document uploaded.", false)
		}
		return m, nil

	case submittedMsg:
		if msg.err != nil {
			m.setToast(errors.UserMessage(msg.err), true)
			return m, nil
		}
		m.done = true
		m.final = msg.app
		return m, tea.Quit

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	if m.prompting != promptNone {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m WizardModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.prompting != promptNone {
		switch msg.Type {
		case tea.KeyEsc:
			m.prompting = promptNone
			m.input.Blur()
			return m, nil
		case tea.KeyEnter:
			return m.acceptPrompt()
		}
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}

	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit
	}

	switch m.ctrl.Step() {
	case wizard.StepProfile:
		return m.handleProfileKey(msg)
	case wizard.StepDocuments:
		return m.handleDocumentsKey(msg)
	case wizard.StepReview:
		return m.handleReviewKey(msg)
	}
	return m, nil
}

func (m WizardModel) handleProfileKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.fields)-1 {
			m.cursor++
		}
	case "enter", "e":
		if len(m.fields) == 0 {
			return m, nil
		}
		f := m.fields[m.cursor]
		m.prompting = promptFieldValue
		m.input.SetValue(f.DisplayValue(m.ctrl.Draft()))
		m.input.Placeholder = f.Label
		if opts := m.ctrl.FieldOptions(f); len(opts) > 0 {
			m.input.Placeholder = f.Label + " (" + strings.Join(opts, " / ") + ")"
		}
		m.input.Focus()
	case "s":
		return m, func() tea.Msg {
			return savedMsg{err: m.ctrl.SaveProfile(context.Background())}
		}
	case "n":
		if err := m.ctrl.Advance(); err != nil {
			m.setToast(errors.UserMessage(err), true)
		}
	}
	return m, nil
}

func (m WizardModel) handleDocumentsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	states := m.ctrl.Requirements().States()
	switch msg.String() {
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(states)-1 {
			m.cursor++
		}
	case "c":
		m.decide(states, func(id int) error { return m.ctrl.Requirements().Confirm(id) })
	case "r":
		m.decide(states, func(id int) error { return m.ctrl.Requirements().Replace(id) })
	case "x":
		m.decide(states, func(id int) error { return m.ctrl.Requirements().Change(id) })
	case "u":
		if m.cursor < len(states) {
			st := states[m.cursor]
			m.promptReq = &st
			m.prompting = promptFilePath
			m.input.SetValue("")
			m.input.Placeholder = "path to file (pdf/jpg/png)"
			m.input.Focus()
		}
	case "b":
		m.ctrl.Back()
		m.cursor = 0
	case "n":
		if err := m.ctrl.Advance(); err != nil {
			m.setToast(errors.UserMessage(err), true)
		} else {
			m.cursor = 0
		}
	}
	return m, nil
}

func (m *WizardModel) decide(states []wizard.RequirementState, fn func(int) error) {
	if m.cursor >= len(states) {
		return
	}
	if err := fn(states[m.cursor].Requirement.DocumentFormatID); err != nil {
		m.setToast(err.Error(), true)
	}
}

func (m WizardModel) handleReviewKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "r":
		m.prompting = promptRemarks
		m.input.SetValue("")
		m.input.Placeholder = "remarks for the reviewer (optional)"
		m.input.Focus()
	case "b":
		m.ctrl.Back()
	case "d":
		return m, m.submitCmd(true)
	case "s":
		return m, m.submitCmd(false)
	}
	return m, nil
}

func (m WizardModel) acceptPrompt() (tea.Model, tea.Cmd) {
	value := m.input.Value()
	kind := m.prompting
	m.prompting = promptNone
	m.input.Blur()

	switch kind {
	case promptFieldValue:
		f := m.fields[m.cursor]
		if err := m.ctrl.SetField(f.Key, value); err != nil {
			m.setToast(err.Error(), true)
		}
	case promptRemarks:
		m.ctrl.SetRemarks(strings.TrimSpace(value))
		m.setToast("Remarks noted.", false)
	case promptFilePath:
		req := m.promptReq
		m.promptReq = nil
		return m, m.uploadCmd(strings.TrimSpace(value), req)
	}
	return m, nil
}

func (m WizardModel) uploadCmd(path string, req *wizard.RequirementState) tea.Cmd {
	return func() tea.Msg {
		file, err := os.Open(path)
		if err != nil {
			return uploadedMsg{err: errors.NewValidationError("cannot open " + path)}
		}
		defer file.Close()

		if err := m.uploader.Select(filepath.Base(path), file); err != nil {
			return uploadedMsg{err: err}
		}
		name := ""
		if req.Requirement.DocumentFormat != nil {
			name = req.Requirement.DocumentFormat.Name
		}
		doc, err := m.uploader.Submit(context.Background(), req.Requirement.DocumentFormatID, name,
			m.ctrl.RefreshDocuments)
		return uploadedMsg{doc: doc, err: err}
	}
}

func (m WizardModel) submitCmd(isDraft bool) tea.Cmd {
	return func() tea.Msg {
		app, err := m.ctrl.Submit(context.Background(), isDraft)
		return submittedMsg{app: app, err: err}
	}
}

func (m *WizardModel) setToast(text string, isErr bool) {
	m.toast = text
	m.toastErr = isErr
}

func (m WizardModel) View() string {
	if m.loading {
		return "Loading application context...\n"
	}
	if m.loadErr != nil {
		return m.styles.Error.Render("Could not load scholarship: "+errors.UserMessage(m.loadErr)) + "\n"
	}
	if m.done {
		status := models.StatusSubmitted
		if m.final != nil {
			status = m.final.Status
		}
		return m.styles.Success.Render("Application saved ") + m.styles.StatusBadge(status) + "\n"
	}

	var b strings.Builder
	sch := m.ctrl.Scholarship()
	b.WriteString(m.styles.Header.Render(fmt.Sprintf("Apply: %s", sch.Name)) + "\n")
	b.WriteString(m.stepHeader() + "\n\n")

	if m.ctrl.CorrectionMode() {
		b.WriteString(m.renderCorrectionBanner())
	}

	switch m.ctrl.Step() {
	case wizard.StepProfile:
		b.WriteString(m.renderProfile())
	case wizard.StepDocuments:
		b.WriteString(m.renderDocuments())
	case wizard.StepReview:
		b.WriteString(m.renderReview())
	}

	if m.prompting != promptNone {
		b.WriteString("\n" + m.input.View() + "\n")
	}
	if m.toast != "" {
		style := m.styles.Success
		if m.toastErr {
			style = m.styles.Error
		}
		b.WriteString("\n" + style.Render(m.toast) + "\n")
	}
	return b.String()
}

func (m WizardModel) stepHeader() string {
	parts := make([]string, 0, 3)
	for _, s := range []wizard.Step{wizard.StepProfile, wizard.StepDocuments, wizard.StepReview} {
		label := fmt.Sprintf("%d. %s", int(s), s)
		if s == m.ctrl.Step() {
			parts = append(parts, m.styles.Selected.Render(label))
		} else {
			parts = append(parts, m.styles.Label.Render(label))
		}
	}
	return strings.Join(parts, m.styles.Label.Render("  >  "))
}

func (m WizardModel) renderCorrectionBanner() string {
	var b strings.Builder
	returned := m.ctrl.ReturnedRemarks()
	b.WriteString(m.styles.Missing.Render("Returned for correction") + "\n")
	for _, item := range returned.Checklist {
		b.WriteString(m.styles.Missing.Render("  - "+item) + "\n")
	}
	if returned.Note != "" {
		b.WriteString(m.styles.Label.Render("  Note: "+returned.Note) + "\n")
	}
	b.WriteString("\n")
	return b.String()
}

func (m WizardModel) renderProfile() string {
	var b strings.Builder
	missing := map[string]bool{}
	for _, f := range m.ctrl.MissingFields() {
		missing[f.Key] = true
	}

	for i, f := range m.fields {
		cursor := "  "
		if i == m.cursor {
			cursor = m.styles.Selected.Render("> ")
		}
		label := m.styles.Label.Render(fmt.Sprintf("%-28s", f.Label))
		value := f.DisplayValue(m.ctrl.Draft())
		if missing[f.Key] {
			label = m.styles.Missing.Render(fmt.Sprintf("%-28s", f.Label+" *"))
		}
		b.WriteString(fmt.Sprintf("%s%s %s\n", cursor, label, m.styles.Value.Render(value)))
	}
	b.WriteString("\n" + m.styles.Help.Render("enter edit · s save · n next · q quit") + "\n")
	return b.String()
}

func (m WizardModel) renderDocuments() string {
	var b strings.Builder
	for i, st := range m.ctrl.Requirements().States() {
		cursor := "  "
		if i == m.cursor {
			cursor = m.styles.Selected.Render("> ")
		}
		name := fmt.Sprintf("format %d", st.Requirement.DocumentFormatID)
		if st.Requirement.DocumentFormat != nil {
			name = st.Requirement.DocumentFormat.Name
		}
		mark := m.styles.Label.Render("optional")
		if st.Requirement.IsMandatory {
			mark = m.styles.Missing.Render("mandatory")
		}
		state := "no upload"
		if st.HasUpload() {
			state = fmt.Sprintf("uploaded, %s", st.Decision)
		}
		b.WriteString(fmt.Sprintf("%s%-32s %s  %s\n", cursor, name, mark, m.styles.Value.Render(state)))
	}
	b.WriteString("\n" + m.styles.Help.Render("u upload · c confirm · r replace · x change · b back · n next · q quit") + "\n")
	return b.String()
}

func (m WizardModel) renderReview() string {
	var b strings.Builder
	b.WriteString(m.styles.Title.Render("Review") + "\n\n")
	for _, f := range m.fields {
		b.WriteString(fmt.Sprintf("  %s %s\n",
			m.styles.Label.Render(fmt.Sprintf("%-28s", f.Label)),
			m.styles.Value.Render(f.DisplayValue(m.ctrl.Saved()))))
	}
	b.WriteString("\n" + m.styles.Help.Render("r remarks · s submit · d save draft · b back · q quit") + "\n")
	return b.String()
}
