// internal/models/profile.go
package models

// Profile is the student's flat personal/academic/bank record. The backend
// stores every field as optional; unset fields normalize to the zero value
// of their type on the wire (empty string, false, 0).
type Profile struct {
	ID     int `json:"id,omitempty"`
	UserID int `json:"user_id,omitempty"`

	// Academic identity
	EnrollmentNo          string `json:"enrollment_no"`
	Department            string `json:"department"`
	Branch                string `json:"branch"`
	CurrentYearOrSemester string `json:"current_year_or_semester"`

	// Personal
	MobileNumber     string `json:"mobile_number"`
	DateOfBirth      string `json:"date_of_birth"`
	Gender           string `json:"gender"`
	FatherName       string `json:"father_name"`
	MotherName       string `json:"mother_name"`
	Category         string `json:"category"`
	MinorityStatus   bool   `json:"minority_status"`
	Disability       bool   `json:"disability"`
	PermanentAddress string `json:"permanent_address"`
	State            string `json:"state"`
	District         string `json:"district"`
	Pincode          string `json:"pincode"`
	CurrentAddress   string `json:"current_address"`

	// Income / certificates
	AnnualFamilyIncome           float64 `json:"annual_family_income"`
	DisabilityPercentage         float64 `json:"disability_percentage"`
	IncomeCertificateNumber      string  `json:"income_certificate_number"`
	IssuingAuthority             string  `json:"issuing_authority"`
	IncomeCertificateValidityDate string `json:"income_certificate_validity_date"`

	// Bank
	AccountHolderName string `json:"account_holder_name"`
	BankName          string `json:"bank_name"`
	AccountNumber     string `json:"account_number"`
	IFSCCode          string `json:"ifsc_code"`
	BranchName        string `json:"branch_name"`

	// Academic standing
	PreviousExamPercentage float64 `json:"previous_exam_percentage"`
	Backlogs               int     `json:"backlogs"`
	GapYear                bool    `json:"gap_year"`

	// Family
	FatherOccupation     string  `json:"father_occupation"`
	MotherOccupation     string  `json:"mother_occupation"`
	GuardianAnnualIncome float64 `json:"guardian_annual_income"`
	ParentsGovtJob       bool    `json:"parents_govt_job"`
	ParentContactNumber  string  `json:"parent_contact_number"`
	ResidentialStatus    string  `json:"residential_status"`

	ScholarshipSwitchCount int `json:"scholarship_switch_count"`
}

// Clone returns a copy of the profile, used as the wizard's edit draft.
func (p *Profile) Clone() *Profile {
	if p == nil {
		return &Profile{}
	}
	cp := *p
	return &cp
}
