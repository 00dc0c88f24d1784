// internal/api/auth.go
package api

import (
	"context"

	"scholar-portal/internal/models"
	"scholar-portal/internal/session"
)

// Login exchanges credentials for a bearer token, stores the resulting
// session, and re-arms the one-shot 401 handler for the new login.
func (c *Client) Login(ctx context.Context, email, password string) (*models.TokenResponse, error) {
	var token models.TokenResponse
	err := c.PostForm(ctx, "/auth/login/access-token", map[string]string{
		"username": email,
		"password": password,
	}, &token)
	if err != nil {
		return nil, err
	}

	sess := &session.Session{
		AccessToken: token.AccessToken,
		TokenType:   token.TokenType,
		Email:       email,
	}
	if err := c.store.Save(sess); err != nil {
		return nil, err
	}
	c.ResetUnauthorized()

	// Enrich the stored session with identity details. Failure here is not
	// fatal; the token is already usable.
	if me, err := c.Me(ctx); err == nil {
		sess.Role = me.Role
		sess.UserID = me.ID
		if err := c.store.Save(sess); err != nil {
			c.logger.Warn("failed to persist session identity", map[string]interface{}{
				"error": err.Error(),
			})
		}
	}
	return &token, nil
}

// Me returns the authenticated user's identity.
func (c *Client) Me(ctx context.Context) (*models.User, error) {
	var user models.User
	if err := c.Get(ctx, "/auth/me", &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// Logout clears the stored session. Purely local; the backend keeps no
// server-side session state for bearer tokens.
func (c *Client) Logout() error {
	return c.store.Clear()
}
