package paddle

import (
	"net/http"
)

type Option func(*Client)

func WithClient(client *http.Client) Option {
	return func(c *Client) {
		c.client = client
	}
}

func WithToken(token string) Option {
	return func(c *Client) {
		c.token = token
	}
}

// WithHeaders adds headers to every request. Content-Type and Authorization
// set here are overridden by the client.
func WithHeaders(headers http.Header) Option {
	return func(c *Client) {
		c.headers = headers.Clone()
	}
}

// WithDebug logs request payloads and responses with base64 data truncated.
func WithDebug(debug bool) Option {
	return func(c *Client) {
		c.debug = debug
	}
}
