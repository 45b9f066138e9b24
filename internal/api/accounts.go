package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"eduadmin/internal/domain"
	"eduadmin/internal/session"
)

type credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Login opens a portal session. Wrong credentials match ErrUnauthorized,
// an unconfirmed email matches ErrEmailNotConfirmed.
func (c *Client) Login(ctx context.Context, username, password string) error {
	if _, _, err := c.send(ctx, http.MethodPost, "accounts/login/", credentials{username, password}); err != nil {
		return fmt.Errorf("login failed: %w", err)
	}
	return nil
}

// Logout closes the portal session
func (c *Client) Logout(ctx context.Context) error {
	if _, _, err := c.send(ctx, http.MethodPost, "accounts/logout/", nil); err != nil {
		return fmt.Errorf("logout failed: %w", err)
	}
	return nil
}

// CurrentSession loads the logged in user and, when it exists, their profile
func (c *Client) CurrentSession(ctx context.Context) (*session.Session, error) {
	var user domain.User
	if err := c.getJSON(ctx, "accounts/users/me/", &user); err != nil {
		return nil, fmt.Errorf("failed to load current user: %w", err)
	}

	var profile domain.Profile
	if err := c.getJSON(ctx, "accounts/profiles/me/", &profile); err != nil {
		if errors.Is(err, ErrNotFound) {
			return session.New(user, nil), nil
		}
		return nil, fmt.Errorf("failed to load current profile: %w", err)
	}
	if profile.User.ID == 0 {
		profile.User = user
	}
	return session.New(user, &profile), nil
}

// Users lists portal accounts
func (c *Client) Users(ctx context.Context) ([]domain.User, error) {
	users, err := getList[domain.User](ctx, c, "accounts/users/")
	if err != nil {
		return nil, fmt.Errorf("failed to load users: %w", err)
	}
	return users, nil
}

// Profiles lists employee profiles with their embedded users
func (c *Client) Profiles(ctx context.Context) ([]domain.Profile, error) {
	profiles, err := getList[domain.Profile](ctx, c, "accounts/profiles/")
	if err != nil {
		return nil, fmt.Errorf("failed to load profiles: %w", err)
	}
	return profiles, nil
}
