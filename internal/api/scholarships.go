// internal/api/scholarships.go
package api

import (
	"context"
	"fmt"

	"scholar-portal/internal/models"
)

func (c *Client) Scholarships(ctx context.Context) ([]models.Scholarship, error) {
	var out []models.Scholarship
	if err := c.Get(ctx, "/scholarships/", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) Scholarship(ctx context.Context, id int) (*models.Scholarship, error) {
	var out models.Scholarship
	if err := c.Get(ctx, fmt.Sprintf("/scholarships/%d", id), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CheckEligibility asks the backend whether the current student clears the
// scholarship's thresholds, before the wizard is even opened.
func (c *Client) CheckEligibility(ctx context.Context, scholarshipID int) (*models.EligibilityResult, error) {
	var out models.EligibilityResult
	if err := c.Get(ctx, fmt.Sprintf("/scholarships/%d/check-eligibility", scholarshipID), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Announcements lists active notices. Public notices need no session.
func (c *Client) Announcements(ctx context.Context) ([]models.Announcement, error) {
	var out []models.Announcement
	if err := c.Get(ctx, "/notices/", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) PublicAnnouncements(ctx context.Context) ([]models.Announcement, error) {
	var out []models.Announcement
	if err := c.Get(ctx, "/notices/public", &out); err != nil {
		return nil, err
	}
	return out, nil
}
