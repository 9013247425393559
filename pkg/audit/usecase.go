package audit

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"
)

// UseCase records admin mutations. Record never fails the caller.
type UseCase interface {
	Record(ctx context.Context, actor, action, resource, resourceID string)
	List(ctx context.Context, limit, offset int) ([]Entry, error)
}

type service struct {
	repo Repository
	now  func() time.Time
}

// NewService returns the audit trail. A nil repo keeps entries in the log only.
func NewService(repo Repository) UseCase {
	return &service{repo: repo, now: time.Now}
}

func (s *service) Record(ctx context.Context, actor, action, resource, resourceID string) {
	e := Entry{
		ID:         uuid.New(),
		ActorEmail: actor,
		Action:     action,
		Resource:   resource,
		ResourceID: resourceID,
		At:         s.now().UTC(),
	}
	log.Printf("audit: %s %s %s/%s", e.ActorEmail, e.Action, e.Resource, e.ResourceID)
	if s.repo == nil {
		return
	}
	// the admin's request may already be finished
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 2*time.Second)
	defer cancel()
	if err := s.repo.Create(ctx, e); err != nil {
		log.Printf("audit: store entry %s: %v", e.ID, err)
	}
}

func (s *service) List(ctx context.Context, limit, offset int) ([]Entry, error) {
	if s.repo == nil {
		return []Entry{}, nil
	}
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}
	return s.repo.List(ctx, limit, offset)
}
