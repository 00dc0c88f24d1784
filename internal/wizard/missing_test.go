package wizard

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"scholar-portal/internal/models"
)

func missingKeys(fields []Field) []string {
	out := make([]string, len(fields))
	for i, f := range fields {
		out[i] = f.Key
	}
	return out
}

func TestMissingFindsUnsetRequiredFields(t *testing.T) {
	p := &models.Profile{EnrollmentNo: "X1"}
	got := Missing(p, []string{"enrollment_no", "department"})
	assert.Equal(t, []string{"department"}, missingKeys(got))
}

func TestMissingTreatsZeroAndFalseAsPresent(t *testing.T) {
	p := &models.Profile{
		AnnualFamilyIncome: 0,
		Backlogs:           0,
		GapYear:            false,
		ParentsGovtJob:     false,
	}
	got := Missing(p, []string{"annual_family_income", "backlogs", "gap_year", "parents_govt_job"})
	assert.Empty(t, got, "numeric zero and boolean false are filled values")
}

func TestMissingNilProfile(t *testing.T) {
	got := Missing(nil, []string{"enrollment_no", "gap_year"})
	assert.Equal(t, []string{"enrollment_no", "gap_year"}, missingKeys(got))
}

func TestMissingNoCrossFieldCoupling(t *testing.T) {
	p := &models.Profile{EnrollmentNo: "X1", State: "MP"}

	before := Missing(p, []string{"department", "district"})
	// Adding an already satisfied key must not change the rest.
	after := Missing(p, []string{"department", "district", "state"})
	assert.Equal(t, missingKeys(before), missingKeys(after))
}

func TestMissingSkipsUnknownKeys(t *testing.T) {
	p := &models.Profile{}
	got := Missing(p, []string{"no_such_field", "pincode"})
	assert.Equal(t, []string{"pincode"}, missingKeys(got))
}

func TestMissingEmptyRequirementList(t *testing.T) {
	assert.Empty(t, Missing(&models.Profile{}, nil))
}

func TestRegistryCoversEveryKind(t *testing.T) {
	f, ok := Lookup("category")
	require.True(t, ok)
	assert.Equal(t, KindSelect, f.Kind)
	assert.Contains(t, f.Options, "Gen-EWS")

	f, ok = Lookup("department")
	require.True(t, ok)
	assert.Equal(t, SourceDepartments, f.Source)

	_, ok = Lookup("unknown_key")
	assert.False(t, ok)
}

func TestFieldSetString(t *testing.T) {
	p := &models.Profile{}

	f, _ := Lookup("annual_family_income")
	require.NoError(t, f.SetString(p, "120000.50"))
	assert.Equal(t, 120000.50, p.AnnualFamilyIncome)
	assert.Error(t, f.SetString(p, "not a number"))

	f, _ = Lookup("gap_year")
	require.NoError(t, f.SetString(p, "Yes"))
	assert.True(t, p.GapYear)
	require.NoError(t, f.SetString(p, "no"))
	assert.False(t, p.GapYear)

	f, _ = Lookup("backlogs")
	require.NoError(t, f.SetString(p, "2"))
	assert.Equal(t, 2, p.Backlogs)

	f, _ = Lookup("enrollment_no")
	require.NoError(t, f.SetString(p, "  0901CS211001  "))
	assert.Equal(t, "0901CS211001", p.EnrollmentNo)
}

func TestFieldDisplayValue(t *testing.T) {
	p := &models.Profile{GapYear: true, Backlogs: 3, AnnualFamilyIncome: 85000}

	f, _ := Lookup("gap_year")
	assert.Equal(t, "Yes", f.DisplayValue(p))

	f, _ = Lookup("backlogs")
	assert.Equal(t, "3", f.DisplayValue(p))

	f, _ = Lookup("annual_family_income")
	assert.Equal(t, "85000", f.DisplayValue(p))

	f, _ = Lookup("department")
	assert.Equal(t, "", f.DisplayValue(nil))
}
