package checkers

import (
	"context"
	"time"
)

// Pinger is satisfied by backend.Client.
type Pinger interface {
	Ping(ctx context.Context) error
}

type BackendChecker struct {
	api Pinger
}

func NewBackendChecker(api Pinger) *BackendChecker {
	return &BackendChecker{api: api}
}

func (c *BackendChecker) Name() string { return "backend" }

func (c *BackendChecker) Check(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	return c.api.Ping(ctx)
}
