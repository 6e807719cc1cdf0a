package todosdk

import (
	"net/http"
	"strings"
	"time"
)

// Client talks to the todo service. A Client with an empty Token makes
// anonymous requests; use WithToken to act as a signed in user.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
	Token      string
}

// NewClient creates an anonymous client.
func NewClient(baseURL string) *Client {
	return &Client{
		BaseURL: strings.TrimSuffix(baseURL, "/"),
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// WithToken returns a copy of c that sends token in the X-Auth header.
func (c *Client) WithToken(token string) *Client {
	cp := *c
	cp.Token = token
	return &cp
}
