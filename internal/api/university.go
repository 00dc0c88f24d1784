// internal/api/university.go
package api

import (
	"context"
	"fmt"

	"scholar-portal/internal/models"
)

func (c *Client) Departments(ctx context.Context) ([]models.Department, error) {
	var out []models.Department
	if err := c.Get(ctx, "/university/departments", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Branches lists branches, optionally scoped to one department.
func (c *Client) Branches(ctx context.Context, departmentID int) ([]models.Branch, error) {
	path := "/university/branches"
	if departmentID > 0 {
		path = fmt.Sprintf("%s?department_id=%d", path, departmentID)
	}
	var out []models.Branch
	if err := c.Get(ctx, path, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) Sessions(ctx context.Context) ([]models.SessionYear, error) {
	var out []models.SessionYear
	if err := c.Get(ctx, "/university/sessions", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Master data management, super admin only.

func (c *Client) CreateDepartment(ctx context.Context, d models.Department) (*models.Department, error) {
	var out models.Department
	if err := c.Post(ctx, "/admin/departments", d, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateDepartment(ctx context.Context, id int, d models.Department) (*models.Department, error) {
	var out models.Department
	if err := c.Put(ctx, fmt.Sprintf("/admin/departments/%d", id), d, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteDepartment(ctx context.Context, id int) error {
	return c.Delete(ctx, fmt.Sprintf("/admin/departments/%d", id), nil)
}

func (c *Client) CreateBranch(ctx context.Context, b models.Branch) (*models.Branch, error) {
	var out models.Branch
	if err := c.Post(ctx, "/admin/branches", b, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateBranch(ctx context.Context, id int, b models.Branch) (*models.Branch, error) {
	var out models.Branch
	if err := c.Put(ctx, fmt.Sprintf("/admin/branches/%d", id), b, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteBranch(ctx context.Context, id int) error {
	return c.Delete(ctx, fmt.Sprintf("/admin/branches/%d", id), nil)
}

func (c *Client) CreateSession(ctx context.Context, s models.SessionYear) (*models.SessionYear, error) {
	var out models.SessionYear
	if err := c.Post(ctx, "/admin/sessions", s, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateSession(ctx context.Context, id int, s models.SessionYear) (*models.SessionYear, error) {
	var out models.SessionYear
	if err := c.Put(ctx, fmt.Sprintf("/admin/sessions/%d", id), s, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteSession(ctx context.Context, id int) error {
	return c.Delete(ctx, fmt.Sprintf("/admin/sessions/%d", id), nil)
}
