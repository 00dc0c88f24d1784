// internal/api/applications.go
package api

import (
	"context"
	"fmt"

	"scholar-portal/internal/models"
)

func (c *Client) MyApplications(ctx context.Context) ([]models.Application, error) {
	var out []models.Application
	if err := c.Get(ctx, "/applications/", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Apply creates a new application. The backend rejects the call when a
// mutually exclusive application is still pending.
func (c *Client) Apply(ctx context.Context, req models.ApplicationCreate) (*models.Application, error) {
	var out models.Application
	if err := c.Post(ctx, "/applications/apply", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateApplication resubmits a returned application with updated remarks.
// The backend moves it out of docs_required.
func (c *Client) UpdateApplication(ctx context.Context, id int, req models.ApplicationUpdate) (*models.Application, error) {
	var out models.Application
	if err := c.Put(ctx, fmt.Sprintf("/applications/%d", id), req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// RenewableScholarships lists scholarships the student holds an approved
// application for and may renew this session.
func (c *Client) RenewableScholarships(ctx context.Context) ([]models.Scholarship, error) {
	var out []models.Scholarship
	if err := c.Get(ctx, "/applications/renewable", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) Renew(ctx context.Context, req models.RenewalCreate) (*models.Application, error) {
	var out models.Application
	if err := c.Post(ctx, "/applications/renew", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Switch withdraws the pending conflicting application and applies to the
// target scholarship in one backend transaction. Allowed once per student.
func (c *Client) Switch(ctx context.Context, req models.SwitchRequest) (*models.Application, error) {
	var out models.Application
	if err := c.Post(ctx, "/applications/switch", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ApplicationPDF downloads the merged PDF bundle for one application.
func (c *Client) ApplicationPDF(ctx context.Context, id int) ([]byte, string, error) {
	return c.Download(ctx, fmt.Sprintf("/applications/%d/pdf", id))
}
