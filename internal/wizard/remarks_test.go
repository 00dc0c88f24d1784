package wizard

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseReturnRemarksBothSections(t *testing.T) {
	got := ParseReturnRemarks("ACTION REQUIRED:\n- Fix income proof\n\nNOTES:\nAlso update address")
	assert.Equal(t, []string{"Fix income proof"}, got.Checklist)
	assert.Equal(t, "Also update address", got.Note)
}

func TestParseReturnRemarksChecklistOnly(t *testing.T) {
	got := ParseReturnRemarks("ACTION REQUIRED:\n- Reupload marksheet\n- Fix bank details\n\n")
	assert.Equal(t, []string{"Reupload marksheet", "Fix bank details"}, got.Checklist)
	assert.Empty(t, got.Note)
}

func TestParseReturnRemarksPlainText(t *testing.T) {
	got := ParseReturnRemarks("Please visit the office with originals.")
	assert.Empty(t, got.Checklist)
	assert.Equal(t, "Please visit the office with originals.", got.Note)
}

func TestParseReturnRemarksEmpty(t *testing.T) {
	got := ParseReturnRemarks("")
	assert.Empty(t, got.Checklist)
	assert.Empty(t, got.Note)
}

func TestComposeReturnRemarksMatchesParser(t *testing.T) {
	cases := []struct {
		name      string
		checklist []string
		note      string
	}{
		{"both", []string{"Fix income proof", "Reupload photo"}, "See office hours"},
		{"checklist only", []string{"Fix income proof"}, ""},
		{"note only", nil, "Just a note"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := ParseReturnRemarks(ComposeReturnRemarks(tc.checklist, tc.note))
			assert.Equal(t, tc.checklist, got.Checklist)
			assert.Equal(t, tc.note, got.Note)
		})
	}
}

func TestComposeReturnRemarksEmptyInputs(t *testing.T) {
	assert.Equal(t, "", ComposeReturnRemarks(nil, ""))
}
