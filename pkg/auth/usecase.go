package auth

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/tidwall/gjson"

	"github.com/artem13815/smarthire-admin/pkg/backend"
	"github.com/artem13815/smarthire-admin/pkg/session"
)

// AuthUseCase exchanges admin credentials for a backend token and keeps
// the resulting session server-side.
type AuthUseCase interface {
	Login(ctx context.Context, creds Credentials) (session.Session, error)
	Logout(ctx context.Context, id uuid.UUID) error
}

type authService struct {
	api      backend.API
	sessions session.Store
	ttl      time.Duration
	now      func() time.Time
}

// NewAuthService returns default implementation of AuthUseCase.
func NewAuthService(api backend.API, sessions session.Store, ttl time.Duration) AuthUseCase {
	return &authService{api: api, sessions: sessions, ttl: ttl, now: time.Now}
}

func (s *authService) Login(ctx context.Context, creds Credentials) (session.Session, error) {
	if creds.Email == "" || creds.Password == "" {
		return session.Session{}, ErrMissingCredentials
	}

	body, err := backend.Post(ctx, s.api, "", "/login", map[string]string{
		"email":    creds.Email,
		"password": creds.Password,
	})
	if err != nil {
		return session.Session{}, err
	}
	if !gjson.ValidBytes(body) {
		return session.Session{}, ErrInvalidCredentials
	}
	res := gjson.ParseBytes(body)
	token := strings.TrimSpace(res.Get("access_token").String())
	if token == "" {
		return session.Session{}, ErrInvalidCredentials
	}

	tokenType := res.Get("token_type").String()
	if tokenType == "" {
		tokenType = "bearer"
	}
	user := session.User{Email: creds.Email}
	if u := res.Get("user"); u.IsObject() {
		if email := u.Get("email").String(); email != "" {
			user.Email = email
		}
		user.Role = u.Get("role").String()
	}

	now := s.now().UTC()
	sess := session.Session{
		ID:          uuid.New(),
		AccessToken: token,
		TokenType:   tokenType,
		User:        user,
		CreatedAt:   now,
		ExpiresAt:   now.Add(s.ttl),
	}
	if err := s.sessions.Save(ctx, sess); err != nil {
		return session.Session{}, fmt.Errorf("save session: %w", err)
	}
	return sess, nil
}

func (s *authService) Logout(ctx context.Context, id uuid.UUID) error {
	return s.sessions.Delete(ctx, id)
}
