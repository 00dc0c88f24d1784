// internal/api/profile.go
package api

import (
	"context"

	"scholar-portal/internal/common/errors"
	"scholar-portal/internal/models"
)

// MyProfile fetches the student's own profile. A 404 is a legitimate empty
// state for students who have not filled the form yet, so it returns
// (nil, nil) rather than an error.
func (c *Client) MyProfile(ctx context.Context) (*models.Profile, error) {
	var out models.Profile
	if err := c.Get(ctx, "/profile/me", &out); err != nil {
		if errors.IsNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	return &out, nil
}

func (c *Client) CreateProfile(ctx context.Context, p *models.Profile) (*models.Profile, error) {
	var out models.Profile
	if err := c.Post(ctx, "/profile/", p, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateProfile(ctx context.Context, p *models.Profile) (*models.Profile, error) {
	var out models.Profile
	if err := c.Put(ctx, "/profile/me", p, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// SaveProfile creates the profile when none exists yet, otherwise updates.
func (c *Client) SaveProfile(ctx context.Context, p *models.Profile, exists bool) (*models.Profile, error) {
	if exists {
		return c.UpdateProfile(ctx, p)
	}
	return c.CreateProfile(ctx, p)
}
