package backend

import (
	"context"
	"net/url"
)

// API is the port domain services use to reach the recruitment backend.
// It hides the transport so services can be exercised against any server.
type API interface {
	Do(ctx context.Context, req Request) ([]byte, error)
}

// Request describes a single backend call. Token is the admin's access token;
// an empty token sends no Authorization header.
type Request struct {
	Method string
	Path   string
	Query  url.Values
	Token  string
	Body   any
}
