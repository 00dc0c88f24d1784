// internal/wizard/registry.go
package wizard

import (
	"fmt"
	"strconv"
	"strings"

	"scholar-portal/internal/models"
)

// FieldKind selects the input control a frontend should render.
type FieldKind string

const (
	KindText     FieldKind = "text"
	KindTextarea FieldKind = "textarea"
	KindNumber   FieldKind = "number"
	KindBoolean  FieldKind = "boolean"
	KindDate     FieldKind = "date"
	KindSelect   FieldKind = "select"
)

// OptionSource names where a select field's options come from when they are
// not static.
type OptionSource string

const (
	SourceStatic      OptionSource = ""
	SourceDepartments OptionSource = "departments"
	SourceBranches    OptionSource = "branches"
)

/// Field is one entry of the profile field catalog: key, label, input kind
// and typed accessors into the Profile record.
type Field struct {
	Key     string
	Label   string
	Kind    FieldKind
	Options []string
	Source  OptionSource

	get func(p *models.Profile) interface{}
	set func(p *models.Profile, raw string) error
}

// Value returns the field's current value, or nil for a nil profile.
func (f Field) Value(p *models.Profile) interface{} {
	if p == nil {
		return nil
	}
	return f.get(p)
}

// Present reports whether the field counts as filled. Only nil records and
// empty strings are missing; zero numbers and false booleans are present.
func (f Field) Present(p *models.Profile) bool {
	if p == nil {
		return false
	}
	if s, ok := f.get(p).(string); ok {
		return s != ""
	}
	return true
}

// SetString writes a raw text input into the draft, converting per kind.
func (f Field) SetString(p *models.Profile, raw string) error {
	return f.set(p, raw)
}

// DisplayValue renders the field for review screens.
func (f Field) DisplayValue(p *models.Profile) string {
	v := f.Value(p)
	switch x := v.(type) {
	case nil:
		return ""
	case bool:
		if x {
			return "Yes"
		}
		return "No"
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case int:
		return strconv.Itoa(x)
	default:
		return fmt.Sprintf("%v", x)
	}
}

func textField(key, label string, kind FieldKind, get func(*models.Profile) *string) Field {
	return Field{
		Key:   key,
		Label: label,
		Kind:  kind,
		get:   func(p *models.Profile) interface{} { return *get(p) },
		set: func(p *models.Profile, raw string) error {
			*get(p) = strings.TrimSpace(raw)
			return nil
		},
	}
}

func selectField(key, label string, options []string, source OptionSource, get func(*models.Profile) *string) Field {
	f := textField(key, label, KindSelect, get)
	f.Options = options
	f.Source = source
	return f
}

func numberField(key, label string, get func(*models.Profile) *float64) Field {
	return Field{
		Key:   key,
		Label: label,
		Kind:  KindNumber,
		get:   func(p *models.Profile) interface{} { return *get(p) },
		set: func(p *models.Profile, raw string) error {
			raw = strings.TrimSpace(raw)
			if raw == "" {
				*get(p) = 0
				return nil
			}
			v, err := strconv.ParseFloat(raw, 64)
			if err != nil {
				return fmt.Errorf("%s must be a number", label)
			}
			*get(p) = v
			return nil
		},
	}
}

func intField(key, label string, get func(*models.Profile) *int) Field {
	return Field{
		Key:   key,
		Label: label,
		Kind:  KindNumber,
		get:   func(p *models.Profile) interface{} { return *get(p) },
		set: func(p *models.Profile, raw string) error {
			raw = strings.TrimSpace(raw)
			if raw == "" {
				*get(p) = 0
				return nil
			}
			v, err := strconv.Atoi(raw)
			if err != nil {
				return fmt.Errorf("%s must be a whole number", label)
			}
			*get(p) = v
			return nil
		},
	}
}

func boolField(key, label string, get func(*models.Profile) *bool) Field {
	return Field{
		Key:   key,
		Label: label,
		Kind:  KindBoolean,
		get:   func(p *models.Profile) interface{} { return *get(p) },
		set: func(p *models.Profile, raw string) error {
			switch strings.ToLower(strings.TrimSpace(raw)) {
			case "yes", "true", "y", "1":
				*get(p) = true
			case "no", "false", "n", "0", "":
				*get(p) = false
			default:
				return fmt.Errorf("%s must be yes or no", label)
			}
			return nil
		},
	}
}

// fields is the full catalog, in form order. Department and branch options
// come from master data at runtime.
var fields = []Field{
	textField("enrollment_no", "Enrollment Number", KindText, func(p *models.Profile) *string { return &p.EnrollmentNo }),
	selectField("department", "Department", nil, SourceDepartments, func(p *models.Profile) *string { return &p.Department }),
	selectField("branch", "Branch", nil, SourceBranches, func(p *models.Profile) *string { return &p.Branch }),
	textField("mobile_number", "Mobile Number", KindText, func(p *models.Profile) *string { return &p.MobileNumber }),
	textField("date_of_birth", "Date of Birth", KindDate, func(p *models.Profile) *string { return &p.DateOfBirth }),
	selectField("gender", "Gender", []string{"Male", "Female"}, SourceStatic, func(p *models.Profile) *string { return &p.Gender }),
	textField("father_name", "Father's Name", KindText, func(p *models.Profile) *string { return &p.FatherName }),
	textField("mother_name", "Mother's Name", KindText, func(p *models.Profile) *string { return &p.MotherName }),
	selectField("category", "Category", []string{"General", "OBC", "SC", "ST", "Gen-EWS", "Other"}, SourceStatic, func(p *models.Profile) *string { return &p.Category }),
	boolField("minority_status", "Minority Status", func(p *models.Profile) *bool { return &p.MinorityStatus }),
	boolField("disability", "Disability", func(p *models.Profile) *bool { return &p.Disability }),
	textField("permanent_address", "Permanent Address", KindTextarea, func(p *models.Profile) *string { return &p.PermanentAddress }),
	textField("state", "State", KindText, func(p *models.Profile) *string { return &p.State }),
	textField("district", "District", KindText, func(p *models.Profile) *string { return &p.District }),
	textField("pincode", "Pincode", KindText, func(p *models.Profile) *string { return &p.Pincode }),
	textField("current_address", "Current Address", KindTextarea, func(p *models.Profile) *string { return &p.CurrentAddress }),
	numberField("annual_family_income", "Annual Family Income", func(p *models.Profile) *float64 { return &p.AnnualFamilyIncome }),
	numberField("disability_percentage", "Disability Percentage", func(p *models.Profile) *float64 { return &p.DisabilityPercentage }),
	textField("income_certificate_number", "Income Certificate Number", KindText, func(p *models.Profile) *string { return &p.IncomeCertificateNumber }),
	textField("issuing_authority", "Issuing Authority", KindText, func(p *models.Profile) *string { return &p.IssuingAuthority }),
	textField("income_certificate_validity_date", "Income Certificate Validity", KindDate, func(p *models.Profile) *string { return &p.IncomeCertificateValidityDate }),
	textField("account_holder_name", "Account Holder Name", KindText, func(p *models.Profile) *string { return &p.AccountHolderName }),
	textField("bank_name", "Bank Name", KindText, func(p *models.Profile) *string { return &p.BankName }),
	textField("account_number", "Account Number", KindText, func(p *models.Profile) *string { return &p.AccountNumber }),
	textField("ifsc_code", "IFSC Code", KindText, func(p *models.Profile) *string { return &p.IFSCCode }),
	textField("branch_name", "Branch Name", KindText, func(p *models.Profile) *string { return &p.BranchName }),
	textField("current_year_or_semester", "Current Year/Semester", KindText, func(p *models.Profile) *string { return &p.CurrentYearOrSemester }),
	numberField("previous_exam_percentage", "Previous Exam %", func(p *models.Profile) *float64 { return &p.PreviousExamPercentage }),
	intField("backlogs", "Backlogs", func(p *models.Profile) *int { return &p.Backlogs }),
	boolField("gap_year", "Gap Year", func(p *models.Profile) *bool { return &p.GapYear }),
	textField("father_occupation", "Father's Occupation", KindText, func(p *models.Profile) *string { return &p.FatherOccupation }),
	textField("mother_occupation", "Mother's Occupation", KindText, func(p *models.Profile) *string { return &p.MotherOccupation }),
	numberField("guardian_annual_income", "Guardian's Annual Income", func(p *models.Profile) *float64 { return &p.GuardianAnnualIncome }),
	boolField("parents_govt_job", "Parents Govt Job", func(p *models.Profile) *bool { return &p.ParentsGovtJob }),
	textField("parent_contact_number", "Parent Contact Number", KindText, func(p *models.Profile) *string { return &p.ParentContactNumber }),
	selectField("residential_status", "Residential Status", []string{"Hosteler", "Day Scholar"}, SourceStatic, func(p *models.Profile) *string { return &p.ResidentialStatus }),
}

var fieldIndex = buildIndex()

func buildIndex() map[string]int {
	idx := make(map[string]int, len(fields))
	for i, f := range fields {
		idx[f.Key] = i
	}
	return idx
}

// Fields returns the full catalog in form order.
func Fields() []Field {
	out := make([]Field, len(fields))
	copy(out, fields)
	return out
}

// Lookup finds a catalog entry by key.
func Lookup(key string) (Field, bool) {
	i, ok := fieldIndex[key]
	if !ok {
		return Field{}, false
	}
	return fields[i], true
}
