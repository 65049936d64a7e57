package api

import (
	"context"
	"net/http"
)

type credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token string `json:"token"`
}

// Login exchanges credentials for a session token.
func (c *Client) Login(ctx context.Context, username, password string) (string, error) {
	var resp loginResponse
	err := c.do(ctx, http.MethodPost, "/auth/login", credentials{Username: username, Password: password}, &resp)
	if err != nil {
		return "", err
	}
	return resp.Token, nil
}

// Register creates a new account. The caller logs in separately
// afterwards; registration does not return a token.
func (c *Client) Register(ctx context.Context, username, password string) error {
	return c.do(ctx, http.MethodPost, "/auth/register", credentials{Username: username, Password: password}, nil)
}
