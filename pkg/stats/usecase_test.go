package stats

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

func serve(t *testing.T, status int, body string) backend.API {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/stats/overview", r.URL.Path)
		assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return backend.New(srv.URL, time.Second)
}

func TestOverview(t *testing.T) {
	api := serve(t, http.StatusOK, `{"candidate_users": 1234, "applications": 56, "job_positions": "n/a"}`)

	ov, err := NewService(api).Overview(context.Background(), "tok")
	require.NoError(t, err)
	require.NotNil(t, ov.CandidateUsers)
	assert.Equal(t, 1234, *ov.CandidateUsers)
	require.NotNil(t, ov.Applications)
	assert.Equal(t, 56, *ov.Applications)
	assert.Nil(t, ov.JobPositions, "non-numeric values are treated as missing")
}

func TestOverview_Failure(t *testing.T) {
	api := serve(t, http.StatusForbidden, `{"detail": "Admins only"}`)

	_, err := NewService(api).Overview(context.Background(), "tok")
	require.Error(t, err)
	assert.Equal(t, "Admins only", backend.Message(err, "Failed to load stats"))
}
