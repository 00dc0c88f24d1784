// internal/models/scholarship.go
package models

// DocumentFormat is a master-data entry describing a kind of document
// (e.g. "Income Certificate").
type DocumentFormat struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	IsActive    bool   `json:"is_active"`
}

// DocumentRequirement is a scholarship-defined rule: which document kind is
// needed, whether it is mandatory, and its upload constraints.
type DocumentRequirement struct {
	ID                int             `json:"id"`
	DocumentFormatID  int             `json:"document_format_id"`
	OrderIndex        int             `json:"order_index"`
	IsMandatory       bool            `json:"is_mandatory"`
	IsRenewalRequired bool            `json:"is_renewal_required"`
	RenewalInstruction string         `json:"renewal_instruction,omitempty"`
	Instructions      string          `json:"instructions,omitempty"`
	AllowedTypes      []string        `json:"allowed_types,omitempty"`
	MaxPages          int             `json:"max_pages,omitempty"`
	DocumentFormat    *DocumentFormat `json:"document_format,omitempty"`
}

// Scholarship is a read-only descriptor fetched once per wizard session.
type Scholarship struct {
	ID                    int      `json:"id"`
	Name                  string   `json:"name"`
	Description           string   `json:"description,omitempty"`
	Category              string   `json:"category"`
	EligibilityCriteria   string   `json:"eligibility_criteria,omitempty"`
	Amount                float64  `json:"amount,omitempty"`
	LastDate              string   `json:"last_date,omitempty"`
	MutuallyExclusiveIDs  []int    `json:"mutually_exclusive_ids,omitempty"`
	ApplicationLink       string   `json:"application_link,omitempty"`

	// Eligibility thresholds, enforced by the backend; displayed here.
	MinPercentage     float64  `json:"min_percentage,omitempty"`
	Min12thPercentage float64  `json:"min_12th_percentage,omitempty"`
	MinCGPA           float64  `json:"min_cgpa,omitempty"`
	MaxFamilyIncome   float64  `json:"max_family_income,omitempty"`
	AllowedCategories []string `json:"allowed_categories,omitempty"`
	AllowedDepartments []string `json:"allowed_departments,omitempty"`
	AllowedYears      []string `json:"allowed_years,omitempty"`
	GovtJobAllowed    bool     `json:"govt_job_allowed"`

	// Profile field keys this scholarship requires before applying.
	RequiredProfileFields []string `json:"required_profile_fields,omitempty"`

	// Renewal
	AllowedBatchesNew     []int `json:"allowed_batches_new,omitempty"`
	AllowedBatchesRenewal []int `json:"allowed_batches_renewal,omitempty"`
	IsRenewable           bool  `json:"is_renewable"`

	IsActive          bool                  `json:"is_active"`
	RequiredDocuments []DocumentRequirement `json:"required_documents,omitempty"`
}

// EligibilityResult is the backend's answer to a pre-application check.
type EligibilityResult struct {
	Eligible bool     `json:"eligible"`
	Reasons  []string `json:"reasons,omitempty"`
}

// Announcement is a notice attached to a scholarship.
type Announcement struct {
	ID            int    `json:"id"`
	ScholarshipID int    `json:"scholarship_id"`
	Title         string `json:"title"`
	Content       string `json:"content,omitempty"`
	IsActive      bool   `json:"is_active"`
	CreatedAt     string `json:"created_at,omitempty"`
}
