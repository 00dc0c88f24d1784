// internal/wizard/requirements.go
package wizard

import (
	"fmt"

	"scholar-portal/internal/models"
)

// Decision is the per-requirement choice a student makes about an already
// uploaded document. It lives only for the wizard session and is never
// persisted; a reload starts every requirement back at DecisionUnset.
type Decision string

const (
	DecisionUnset     Decision = "unset"
	DecisionConfirmed Decision = "confirmed"
	DecisionReplacing Decision = "replacing"
)

// RequirementState is one requirement joined with the student's uploads and
// the session-local decision.
type RequirementState struct {
	Requirement models.DocumentRequirement
	Upload      *models.StudentDocument
	Decision    Decision
}

// HasUpload reports whether a matching document exists in the vault.
func (r RequirementState) HasUpload() bool {
	return r.Upload != nil
}

// Unmet reports whether the requirement still blocks the documents step.
func (r RequirementState) Unmet() bool {
	return r.Requirement.IsMandatory && r.Upload == nil
}

// RequirementSet tracks every requirement of one scholarship against the
// student's uploaded documents.
type RequirementSet struct {
	states []RequirementState
	index  map[int]int // document_format_id -> states position
}

// NewRequirementSet builds the set and matches the initial upload list.
func NewRequirementSet(reqs []models.DocumentRequirement, docs []models.StudentDocument) *RequirementSet {
	s := &RequirementSet{
		states: make([]RequirementState, len(reqs)),
		index:  make(map[int]int, len(reqs)),
	}
	for i, req := range reqs {
		s.states[i] = RequirementState{Requirement: req, Decision: DecisionUnset}
		s.index[req.DocumentFormatID] = i
	}
	s.Rematch(docs)
	return s
}

// Rematch re-joins the requirement list against a fresh document list,
// keeping decisions intact. Called after every authoritative re-fetch.
func (s *RequirementSet) Rematch(docs []models.StudentDocument) {
	for i := range s.states {
		s.states[i].Upload = nil
	}
	for di := range docs {
		doc := &docs[di]
		if i, ok := s.index[doc.DocumentFormatID]; ok {
			s.states[i].Upload = doc
		}
	}
	// A decision cannot outlive its upload.
	for i := range s.states {
		if s.states[i].Upload == nil {
			s.states[i].Decision = DecisionUnset
		}
	}
}

// States returns the current view, in scholarship-defined order.
func (s *RequirementSet) States() []RequirementState {
	out := make([]RequirementState, len(s.states))
	copy(out, s.states)
	return out
}

// MissingMandatory lists the mandatory requirements without any upload.
func (s *RequirementSet) MissingMandatory() []models.DocumentRequirement {
	var out []models.DocumentRequirement
	for _, st := range s.states {
		if st.Unmet() {
			out = append(out, st.Requirement)
		}
	}
	return out
}

// Ready is the forward gate for the documents step.
func (s *RequirementSet) Ready() bool {
	return len(s.MissingMandatory()) == 0
}

// Confirm marks an existing upload as the one to reuse. Impossible without
// an upload.
func (s *RequirementSet) Confirm(formatID int) error {
	st, err := s.state(formatID)
	if err != nil {
		return err
	}
	if st.Upload == nil {
		return fmt.Errorf("no uploaded document to confirm for format %d", formatID)
	}
	st.Decision = DecisionConfirmed
	return nil
}

// Replace opens the upload control for a requirement that already has a
// document. The prior upload stays in the vault; replacing only layers a
// new pending file on top, never deletes.
func (s *RequirementSet) Replace(formatID int) error {
	st, err := s.state(formatID)
	if err != nil {
		return err
	}
	if st.Upload == nil {
		return fmt.Errorf("no uploaded document to replace for format %d", formatID)
	}
	st.Decision = DecisionReplacing
	return nil
}

// Change reopens a confirmed decision.
func (s *RequirementSet) Change(formatID int) error {
	st, err := s.state(formatID)
	if err != nil {
		return err
	}
	st.Decision = DecisionUnset
	return nil
}

// RecordUpload notes a successful upload made during this session and
// settles the decision to confirmed.
func (s *RequirementSet) RecordUpload(doc *models.StudentDocument) {
	i, ok := s.index[doc.DocumentFormatID]
	if !ok {
		return
	}
	s.states[i].Upload = doc
	s.states[i].Decision = DecisionConfirmed
}

func (s *RequirementSet) state(formatID int) (*RequirementState, error) {
	i, ok := s.index[formatID]
	if !ok {
		return nil, fmt.Errorf("unknown document format %d", formatID)
	}
	return &s.states[i], nil
}
