// internal/models/user.go
package models

// UserRole mirrors the backend's role enum.
type UserRole string

const (
	RoleStudent  UserRole = "student"
	RoleGOffice  UserRole = "g_office"
	RoleDeptHead UserRole = "dept_head"
	RoleAdmin    UserRole = "super_admin"
)

type User struct {
	ID           int      `json:"id"`
	Email        string   `json:"email"`
	FullName     string   `json:"full_name"`
	EnrollmentNo string   `json:"enrollment_no,omitempty"`
	Role         UserRole `json:"role"`
	IsActive     bool     `json:"is_active"`
	CreatedAt    string   `json:"created_at,omitempty"`
}

// TokenResponse is the login endpoint's payload.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}
