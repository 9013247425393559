package application

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/artem13815/smarthire-admin/pkg/backend"
)

func TestService_List_SingleObjectBecomesRow(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/applications", r.URL.Path)
		_, _ = w.Write([]byte(`{"user_id": 1, "user_cv_id": 10, "name": "Ann", "email": "ann@x.io",
			"job_type": "Backend", "job_position": "Go Dev", "cv_url": "http://cv/10", "feedback": null}`))
	}))
	defer srv.Close()

	rows, err := NewService(backend.New(srv.URL, time.Second)).List(context.Background(), "tok")
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, int64(10), rows[0].UserCVID)
	assert.Equal(t, int64(1), rows[0].UserID)
	assert.Empty(t, rows[0].Feedback)
}

func TestService_Recent_Query(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/applications/recent", r.URL.Path)
		assert.Equal(t, "5", r.URL.Query().Get("limit"))
		assert.Equal(t, "0", r.URL.Query().Get("offset"))
		_, _ = w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	rows, err := NewService(backend.New(srv.URL, time.Second)).Recent(context.Background(), "tok", 5, 0)
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestService_Delete(t *testing.T) {
	var gotMethod, gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod, gotPath = r.Method, r.URL.Path
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	err := NewService(backend.New(srv.URL, time.Second)).Delete(context.Background(), "tok", 42)
	require.NoError(t, err)
	assert.Equal(t, http.MethodDelete, gotMethod)
	assert.Equal(t, "/applications/42", gotPath)
}

func TestFind(t *testing.T) {
	rows := []Application{{UserID: 1, UserCVID: 10, Name: "Ann"}, {UserID: 2, UserCVID: 20, Name: "Ben"}}

	row, err := Find(rows, 20)
	require.NoError(t, err)
	assert.Equal(t, "Ben", row.Name)

	_, err = Find(rows, 99)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = Find(nil, 10)
	assert.ErrorIs(t, err, ErrNotFound)
}
