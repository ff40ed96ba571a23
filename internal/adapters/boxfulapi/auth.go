package boxfulapi

import (
	"context"
	"fmt"
	"net/http"

	"boxful-client/internal/domain"
	"boxful-client/internal/platform/obs"
)

const (
	registerPath = "/auth/register"
	loginPath    = "/auth/login"
)

// Register creates an account. It never signs the user in.
func (c *Client) Register(ctx context.Context, req domain.RegisterRequest) (_ domain.AuthResponse, err error) {
	defer obs.Time(ctx, "boxfulapi.Register")(&err)

	var out domain.AuthResponse
	if err := c.call(ctx, http.MethodPost, registerPath, req, &out); err != nil {
		return domain.AuthResponse{}, fmt.Errorf("register: %w", err)
	}
	return out, nil
}

// Login exchanges credentials for a token and the user profile.
func (c *Client) Login(ctx context.Context, creds domain.Credentials) (_ domain.AuthResponse, err error) {
	defer obs.Time(ctx, "boxfulapi.Login")(&err)

	var out domain.AuthResponse
	if err := c.call(ctx, http.MethodPost, loginPath, creds, &out); err != nil {
		return domain.AuthResponse{}, fmt.Errorf("login: %w", err)
	}
	return out, nil
}
