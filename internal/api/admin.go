// internal/api/admin.go
package api

import (
	"context"
	"fmt"

	"scholar-portal/internal/models"
)

// Staff-side endpoints. The backend enforces role checks; this client only
// routes the calls.

func (c *Client) AdminApplications(ctx context.Context) ([]models.Application, error) {
	var out []models.Application
	if err := c.Get(ctx, "/admin/applications", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) UpdateApplicationStatus(ctx context.Context, appID int, req models.StatusUpdate) (*models.Application, error) {
	var out models.Application
	if err := c.Put(ctx, fmt.Sprintf("/admin/applications/%d/status", appID), req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) VerifyDocument(ctx context.Context, docID int, req models.DocumentVerify) error {
	return c.Put(ctx, fmt.Sprintf("/admin/applications/documents/%d/verify", docID), req, nil)
}

func (c *Client) AdminStats(ctx context.Context) (*models.AdminStats, error) {
	var out models.AdminStats
	if err := c.Get(ctx, "/admin/stats", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) AdminUsers(ctx context.Context) ([]models.User, error) {
	var out []models.User
	if err := c.Get(ctx, "/admin/users", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) UpdateUserRole(ctx context.Context, userID int, role models.UserRole) (*models.User, error) {
	var out models.User
	payload := map[string]models.UserRole{"role": role}
	if err := c.Put(ctx, fmt.Sprintf("/admin/users/%d/role", userID), payload, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteUser(ctx context.Context, userID int) error {
	return c.Delete(ctx, fmt.Sprintf("/admin/users/%d", userID), nil)
}

// Department head views, scoped server-side to the caller's department.

func (c *Client) DeptApplications(ctx context.Context) ([]models.Application, error) {
	var out []models.Application
	if err := c.Get(ctx, "/admin/dept/applications", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) DeptStats(ctx context.Context) (*models.AdminStats, error) {
	var out models.AdminStats
	if err := c.Get(ctx, "/admin/dept/stats", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeptStudents(ctx context.Context) ([]models.User, error) {
	var out []models.User
	if err := c.Get(ctx, "/admin/dept/students", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) AnalyticsDashboard(ctx context.Context) (*models.AnalyticsDashboard, error) {
	var out models.AnalyticsDashboard
	if err := c.Get(ctx, "/admin/analytics/dashboard", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) AuditLogs(ctx context.Context, limit int) ([]models.AuditLog, error) {
	var out []models.AuditLog
	if err := c.Get(ctx, fmt.Sprintf("/admin/audit-logs?limit=%d", limit), &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) ServerLogs(ctx context.Context, limit int) ([]string, error) {
	var out []string
	if err := c.Get(ctx, fmt.Sprintf("/admin/server-logs?limit=%d", limit), &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ExportCSV downloads an export blob. exportType is "applications" or
// "applicants".
func (c *Client) ExportCSV(ctx context.Context, exportType string) ([]byte, string, error) {
	return c.Download(ctx, fmt.Sprintf("/admin/export/%s", exportType))
}

func (c *Client) SendBroadcastEmail(ctx context.Context, req models.EmailRequest) (*models.EmailResult, error) {
	var out models.EmailResult
	if err := c.Post(ctx, "/admin/communications/email/send", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
