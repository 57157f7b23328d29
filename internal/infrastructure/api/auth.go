package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/tiendapos/terminal/internal/domain/identity"
)

// Login exchanges credentials for an access token and the operator profile
func (c *Client) Login(ctx context.Context, creds identity.Credentials) (*identity.AuthResponse, error) {
	env, err := c.do(ctx, http.MethodPost, "/api/auth/login", nil, creds, nil)
	if err != nil {
		return nil, err
	}
	var auth identity.AuthResponse
	if err := env.decode(&auth); err != nil {
		return nil, err
	}
	return &auth, nil
}

// CheckToken asks the backend whether the token is still valid and returns the
// operator it belongs to.
func (c *Client) CheckToken(ctx context.Context, token string) (*identity.User, error) {
	query := url.Values{}
	query.Set("token", token)

	env, err := c.do(ctx, http.MethodGet, "/api/auth/checkToken", query, nil, nil)
	if err != nil {
		return nil, err
	}
	var user identity.User
	if err := env.decode(&user); err != nil {
		return nil, err
	}
	return &user, nil
}
