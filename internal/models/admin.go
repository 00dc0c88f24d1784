// internal/models/admin.go
package models

// NameCount is one slice of a distribution chart.
type NameCount struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
}

// AnalyticsDashboard is the admin analytics payload.
type AnalyticsDashboard struct {
	DepartmentDistribution []NameCount `json:"department_distribution"`
	CategoryDistribution   []NameCount `json:"category_distribution"`
	GenderDistribution     []NameCount `json:"gender_distribution"`
	ApplicationStatus      []NameCount `json:"application_status"`
}

// EmailRequest is the broadcast email payload. TargetID is a department or
// branch name, or a scholarship id, depending on TargetGroup.
type EmailRequest struct {
	Subject          string   `json:"subject"`
	Body             string   `json:"body"`
	TargetGroup      string   `json:"target_group"` // all|department|branch|scholarship|custom
	TargetID         string   `json:"target_id,omitempty"`
	CustomRecipients []string `json:"custom_recipients,omitempty"`
}

// EmailResult reports how many recipients were queued.
type EmailResult struct {
	Message string `json:"message"`
	Count   int    `json:"count"`
}

type AuditLog struct {
	ID         int    `json:"id"`
	Action     string `json:"action"`
	UserID     int    `json:"user_id"`
	TargetType string `json:"target_type,omitempty"`
	TargetID   string `json:"target_id,omitempty"`
	Details    string `json:"details,omitempty"`
	CreatedAt  string `json:"created_at"`
}

// AdminStats is the headline counters block on staff dashboards.
type AdminStats struct {
	TotalUsers        int `json:"total_users"`
	TotalStudents     int `json:"total_students"`
	TotalScholarships int `json:"total_scholarships"`
	TotalApplications int `json:"total_applications"`
	PendingReview     int `json:"pending_review"`
}
