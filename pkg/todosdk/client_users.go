package todosdk

import (
	"context"
	"errors"
	"net/http"

	"github.com/aussiebroadwan/todo/pkg/httpx"
)

// ErrMissingToken is returned when a register or login response carries no
// X-Auth header.
var ErrMissingToken = errors.New("todosdk: response has no auth token")

// Register creates an account and returns it with a fresh session token.
func (c *Client) Register(ctx context.Context, email, password string) (*UserResponse, string, error) {
	return c.credentials(ctx, "/users", email, password)
}

// Login signs in and returns the user with a new session token.
func (c *Client) Login(ctx context.Context, email, password string) (*UserResponse, string, error) {
	return c.credentials(ctx, "/users/login", email, password)
}

func (c *Client) credentials(ctx context.Context, path, email, password string) (*UserResponse, string, error) {
	resp, err := c.doRequest(ctx, http.MethodPost, path, CredentialsRequest{Email: email, Password: password})
	if err != nil {
		return nil, "", err
	}
	token := resp.Header.Get(httpx.AuthHeader)

	var user UserResponse
	if err := decodeJSON(resp, &user, http.StatusOK); err != nil {
		return nil, "", err
	}
	if token == "" {
		return nil, "", ErrMissingToken
	}
	return &user, token, nil
}

// Me returns the user that owns the client's token.
func (c *Client) Me(ctx context.Context) (*UserResponse, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, "/users/me", nil)
	if err != nil {
		return nil, err
	}

	var user UserResponse
	if err := decodeJSON(resp, &user, http.StatusOK); err != nil {
		return nil, err
	}
	return &user, nil
}

// Logout revokes the client's token on the server.
func (c *Client) Logout(ctx context.Context) error {
	resp, err := c.doRequest(ctx, http.MethodDelete, "/users/me/token", nil)
	if err != nil {
		return err
	}
	return checkStatus(resp, http.StatusOK)
}
