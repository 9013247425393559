package audit

import (
	"context"
	"time"

	"github.com/google/uuid"
)

const (
	ActionCreate = "create"
	ActionUpdate = "update"
	ActionDelete = "delete"
)

const (
	ResourceApplication = "application"
	ResourceCandidate   = "candidate"
	ResourcePosting     = "job_position"
	ResourceJobType     = "job_type"
)

// Entry — запись журнала действий администратора.
type Entry struct {
	ID         uuid.UUID `json:"id"`
	ActorEmail string    `json:"actor_email"`
	Action     string    `json:"action"`
	Resource   string    `json:"resource"`
	ResourceID string    `json:"resource_id"`
	At         time.Time `json:"at"`
}

// Repository persists audit entries.
type Repository interface {
	Create(ctx context.Context, e Entry) error
	List(ctx context.Context, limit, offset int) ([]Entry, error)
}
