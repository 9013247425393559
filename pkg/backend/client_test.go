package backend

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_Do_SendsBearerAndBody(t *testing.T) {
	var gotAuth, gotPath, gotQuery string
	var gotBody map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotPath = r.URL.Path
		gotQuery = r.URL.RawQuery
		_ = json.NewDecoder(r.Body).Decode(&gotBody)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id": 7, "name": "QA"}`))
	}))
	defer srv.Close()

	c := New(srv.URL+"/", time.Second)
	out, err := c.Do(context.Background(), Request{
		Method: http.MethodPost,
		Path:   "/jobs/types",
		Query:  url.Values{"limit": {"5"}},
		Token:  "tok",
		Body:   map[string]string{"name": "QA"},
	})
	require.NoError(t, err)
	assert.JSONEq(t, `{"id": 7, "name": "QA"}`, string(out))
	assert.Equal(t, "Bearer tok", gotAuth)
	assert.Equal(t, "/jobs/types", gotPath)
	assert.Equal(t, "limit=5", gotQuery)
	assert.Equal(t, "QA", gotBody["name"])
}

func TestClient_Do_NoTokenNoHeader(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get("Authorization"))
		_, _ = w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	_, err := Get(context.Background(), New(srv.URL, time.Second), "", "/login", nil)
	require.NoError(t, err)
}

func TestClient_Do_ErrorDetail(t *testing.T) {
	tests := []struct {
		name   string
		body   string
		detail string
	}{
		{name: "string detail", body: `{"detail": "Not authenticated"}`, detail: "Not authenticated"},
		{name: "list detail", body: `{"detail": [{"loc": ["body"], "msg": "field required"}, {"msg": "second"}]}`, detail: "field required"},
		{name: "no detail", body: `{"error": "boom"}`, detail: ""},
		{name: "not json", body: `<html>oops</html>`, detail: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusUnprocessableEntity)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			err := Delete(context.Background(), New(srv.URL, time.Second), "tok", "/applications/3")
			require.Error(t, err)

			var apiErr *APIError
			require.True(t, errors.As(err, &apiErr))
			assert.Equal(t, http.StatusUnprocessableEntity, apiErr.Status)
			assert.Equal(t, tt.detail, apiErr.Detail)
			assert.Equal(t, http.StatusUnprocessableEntity, StatusOf(err))
			if tt.detail != "" {
				assert.Equal(t, tt.detail, Message(err, "fallback"))
			} else {
				assert.Equal(t, "fallback", Message(err, "fallback"))
			}
		})
	}
}

func TestClient_Do_TransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	_, err := Get(context.Background(), New(srv.URL, time.Second), "tok", "/applications", nil)
	require.Error(t, err)
	assert.Equal(t, 0, StatusOf(err))
	assert.Equal(t, "Failed to fetch applications", Message(err, "Failed to fetch applications"))
}

func TestItems_Shapes(t *testing.T) {
	tests := []struct {
		name string
		body string
		want int
	}{
		{name: "array", body: `[{"id":1},{"id":2}]`, want: 2},
		{name: "items wrapper", body: `{"items":[{"id":1}], "total": 1}`, want: 1},
		{name: "single object", body: `{"id":1,"name":"x"}`, want: 1},
		{name: "null", body: `null`, want: 0},
		{name: "empty body", body: ``, want: 0},
		{name: "empty array", body: `[]`, want: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			items, err := Items([]byte(tt.body))
			require.NoError(t, err)
			assert.Len(t, items, tt.want)
		})
	}

	_, err := Items([]byte(`{broken`))
	assert.ErrorIs(t, err, ErrMalformed)
}

func TestDecodeList(t *testing.T) {
	type row struct {
		ID   int    `json:"id"`
		Name string `json:"name"`
	}
	rows, err := DecodeList[row]([]byte(`{"id": 4, "name": "solo"}`))
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, row{ID: 4, Name: "solo"}, rows[0])

	_, err = DecodeList[row]([]byte(`[{"id": "not-a-number"}]`))
	assert.Error(t, err)
}

func TestTotal(t *testing.T) {
	n, ok := Total([]byte(`{"items": [], "total": 42}`))
	assert.True(t, ok)
	assert.Equal(t, 42, n)

	_, ok = Total([]byte(`[]`))
	assert.False(t, ok)
}
