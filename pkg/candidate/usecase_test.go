package candidate

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

func TestService_List_PagedEnvelope(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/admin/candidates", r.URL.Path)
		assert.Equal(t, "20", r.URL.Query().Get("limit"))
		assert.Equal(t, "40", r.URL.Query().Get("offset"))
		_, _ = w.Write([]byte(`{"items": [
			{"id": 7, "name": "Ann", "email": "ann@x.io", "phone": "0785", "created_at": "2025-01-02", "application_count": 3},
			{"user_id": "8", "full_name": "Bob", "email": "bob@x.io", "phone_number": null, "applications": 1}
		], "total": 43}`))
	}))
	defer srv.Close()

	page, err := NewService(backend.New(srv.URL, time.Second)).List(context.Background(), "tok", 20, 40)
	require.NoError(t, err)
	require.Len(t, page.Items, 2)
	assert.Equal(t, Candidate{ID: "7", Name: "Ann", Email: "ann@x.io", Phone: "0785", CreatedAt: "2025-01-02", ApplicationCount: 3}, page.Items[0])
	assert.Equal(t, Candidate{ID: "8", Name: "Bob", Email: "bob@x.io", ApplicationCount: 1}, page.Items[1])
	assert.Equal(t, 43, page.Total)
	assert.True(t, page.HasNext())
	assert.True(t, page.HasPrev())
}

func TestService_List_BareArray(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[{"id": 1, "name": "Ann"}]`))
	}))
	defer srv.Close()

	page, err := NewService(backend.New(srv.URL, time.Second)).List(context.Background(), "tok", 20, 0)
	require.NoError(t, err)
	assert.Equal(t, -1, page.Total)
	assert.False(t, page.HasNext(), "short page without total is the last one")
	assert.False(t, page.HasPrev())
}

func TestPage_HasNextWithoutTotal(t *testing.T) {
	p := Page{Items: make([]Candidate, 2), Limit: 2, Total: -1}
	assert.True(t, p.HasNext())
}

func TestService_Delete_UsesUserPath(t *testing.T) {
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	require.NoError(t, NewService(backend.New(srv.URL, time.Second)).Delete(context.Background(), "tok", "7"))
	assert.Equal(t, "/users/7", gotPath)
}
