package auth

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/artem13815/smarthire-admin/pkg/backend"
	"github.com/artem13815/smarthire-admin/pkg/session"
)

func loginBackend(t *testing.T, status int, reply string) (backend.API, *int) {
	t.Helper()
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/login", r.URL.Path)
		assert.Empty(t, r.Header.Get("Authorization"))
		var got map[string]string
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		assert.Equal(t, "admin@smarthire.io", got["email"])
		w.WriteHeader(status)
		_, _ = w.Write([]byte(reply))
	}))
	t.Cleanup(srv.Close)
	return backend.New(srv.URL, time.Second), &calls
}

func TestLogin_CreatesSession(t *testing.T) {
	api, _ := loginBackend(t, http.StatusOK,
		`{"access_token": "abc", "token_type": "Bearer", "user": {"email": "admin@smarthire.io", "role": "admin"}}`)
	store := session.NewMemoryStore()
	uc := NewAuthService(api, store, time.Hour)

	sess, err := uc.Login(context.Background(), Credentials{Email: "admin@smarthire.io", Password: "pw"})
	require.NoError(t, err)
	assert.Equal(t, "abc", sess.AccessToken)
	assert.Equal(t, "Bearer", sess.TokenType)
	assert.Equal(t, session.User{Email: "admin@smarthire.io", Role: "admin"}, sess.User)
	assert.WithinDuration(t, sess.CreatedAt.Add(time.Hour), sess.ExpiresAt, time.Second)

	stored, err := store.Get(context.Background(), sess.ID)
	require.NoError(t, err)
	assert.Equal(t, sess.AccessToken, stored.AccessToken)

	require.NoError(t, uc.Logout(context.Background(), sess.ID))
	_, err = store.Get(context.Background(), sess.ID)
	assert.ErrorIs(t, err, session.ErrNotFound)
}

func TestLogin_DefaultsWithoutUser(t *testing.T) {
	api, _ := loginBackend(t, http.StatusOK, `{"access_token": "abc"}`)
	uc := NewAuthService(api, session.NewMemoryStore(), time.Hour)

	sess, err := uc.Login(context.Background(), Credentials{Email: "admin@smarthire.io", Password: "pw"})
	require.NoError(t, err)
	assert.Equal(t, "bearer", sess.TokenType)
	assert.Equal(t, "admin@smarthire.io", sess.User.Email)
}

func TestLogin_Failures(t *testing.T) {
	t.Run("missing credentials", func(t *testing.T) {
		api, calls := loginBackend(t, http.StatusOK, `{}`)
		uc := NewAuthService(api, session.NewMemoryStore(), time.Hour)
		_, err := uc.Login(context.Background(), Credentials{Email: "admin@smarthire.io"})
		assert.ErrorIs(t, err, ErrMissingCredentials)
		assert.Zero(t, *calls)
	})

	t.Run("backend rejects", func(t *testing.T) {
		api, _ := loginBackend(t, http.StatusUnauthorized, `{"detail": "Invalid email or password"}`)
		uc := NewAuthService(api, session.NewMemoryStore(), time.Hour)
		_, err := uc.Login(context.Background(), Credentials{Email: "admin@smarthire.io", Password: "bad"})
		require.Error(t, err)
		assert.Equal(t, "Invalid email or password", backend.Message(err, "Login failed. Please check your credentials."))
	})

	t.Run("no token in answer", func(t *testing.T) {
		api, _ := loginBackend(t, http.StatusOK, `{"token_type": "bearer"}`)
		uc := NewAuthService(api, session.NewMemoryStore(), time.Hour)
		_, err := uc.Login(context.Background(), Credentials{Email: "admin@smarthire.io", Password: "pw"})
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})
}
