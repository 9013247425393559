package session

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("session not found")

// User is the admin identity returned by the backend at login.
type User struct {
	Email string `json:"email"`
	Role  string `json:"role,omitempty"`
}

// Session — учётные данные администратора, выданные бэкендом при входе.
// Created at login, deleted at logout; its presence is the only auth signal.
type Session struct {
	ID          uuid.UUID `json:"id"`
	AccessToken string    `json:"access_token"`
	TokenType   string    `json:"token_type"`
	User        User      `json:"user"`
	CreatedAt   time.Time `json:"created_at"`
	ExpiresAt   time.Time `json:"expires_at"`
}

func (s Session) Expired(now time.Time) bool {
	return !s.ExpiresAt.IsZero() && !now.Before(s.ExpiresAt)
}

// Key is the string form of the id used by caches.
func (s Session) Key() string { return s.ID.String() }

// Store persists sessions between requests.
type Store interface {
	Save(ctx context.Context, s Session) error
	Get(ctx context.Context, id uuid.UUID) (Session, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
