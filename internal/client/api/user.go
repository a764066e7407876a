package api

import (
	"context"
	"net/http"

	"github.com/stis-apps/titiktemu/internal/client/models"
)

// GetProfile fetches the authenticated user's profile.
func (c *Client) GetProfile(ctx context.Context) (*models.User, error) {
	var user models.User
	if err := c.doJSON(ctx, http.MethodGet, "/users/profile", nil, nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// UpdateProfile replaces the editable profile fields and returns the
// updated profile.
func (c *Client) UpdateProfile(ctx context.Context, req models.UpdateProfileRequest) (*models.User, error) {
	var user models.User
	if err := c.doJSON(ctx, http.MethodPut, "/users/profile", nil, req, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// ChangePassword swaps the account password.
func (c *Client) ChangePassword(ctx context.Context, req models.ChangePasswordRequest) (*models.MessageResponse, error) {
	var resp models.MessageResponse
	if err := c.doJSON(ctx, http.MethodPut, "/users/change-password", nil, req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// DeleteAccount removes the account server-side.
func (c *Client) DeleteAccount(ctx context.Context) (*models.MessageResponse, error) {
	var resp models.MessageResponse
	if err := c.doJSON(ctx, http.MethodDelete, "/users/account", nil, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
