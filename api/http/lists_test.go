package http

import (
	"io"
	"net"
	nethttp "net/http"
	"net/url"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scripted answers GETs from lists, DELETE of deletePath with deleteStatus.
func scripted(lists map[string]string, deletePath string, deleteStatus int, deleteBody string) func(method, path string) (int, string) {
	return func(method, path string) (int, string) {
		switch method {
		case nethttp.MethodGet:
			if body, ok := lists[path]; ok {
				return nethttp.StatusOK, body
			}
		case nethttp.MethodDelete:
			if path == deletePath {
				return deleteStatus, deleteBody
			}
		}
		return nethttp.StatusNotFound, `{"detail": "Not Found"}`
	}
}

func TestLists_EmptyState(t *testing.T) {
	tests := []struct {
		page  string
		lists map[string]string
		empty string
	}{
		{page: "/applications", lists: map[string]string{"/applications": `[]`}, empty: "No applications yet."},
		{page: "/users", lists: map[string]string{"/admin/candidates": `{"items": [], "total": 0}`}, empty: "No candidates yet."},
		{page: "/job-postings", lists: map[string]string{"/jobs/types": `[]`, "/jobs/positions": `[]`}, empty: "No job postings yet."},
		{page: "/job-type", lists: map[string]string{"/jobs/types": `[]`}, empty: "No job types yet."},
	}
	for _, tt := range tests {
		t.Run(tt.page, func(t *testing.T) {
			con := newConsole(t, scripted(tt.lists, "", 0, ""))

			resp, body := con.do(t, nethttp.MethodGet, tt.page, nil, con.signIn(t))
			assert.Equal(t, nethttp.StatusOK, resp.StatusCode)
			assert.Contains(t, body, tt.empty)
		})
	}
}

type deleteCase struct {
	name       string
	page       string
	lists      map[string]string
	listPath   string
	deletePath string
	action     string
	keep       string
	gone       string
}

var deleteCases = []deleteCase{
	{
		name:       "applications",
		page:       "/applications",
		lists:      map[string]string{"/applications": twoApplications},
		listPath:   "/applications",
		deletePath: "/applications/22",
		action:     "/applications/22/delete",
		keep:       "Alice Brown",
		gone:       "Bob Stone",
	},
	{
		name:       "users",
		page:       "/users",
		lists:      map[string]string{"/admin/candidates": `{"items": [{"id": 7, "name": "Ann Keeper"}, {"id": 8, "name": "Ben Leaver"}], "total": 2}`},
		listPath:   "/admin/candidates",
		deletePath: "/users/8",
		action:     "/users/8/delete",
		keep:       "Ann Keeper",
		gone:       "Ben Leaver",
	},
	{
		name: "job postings",
		page: "/job-postings",
		lists: map[string]string{
			"/jobs/types":     `[{"id": 1, "name": "Backend"}]`,
			"/jobs/positions": `[{"id": 5, "name": "Go Developer", "type_id": 1}, {"id": 6, "name": "Perl Archivist", "type_id": 1}]`,
		},
		listPath:   "/jobs/positions",
		deletePath: "/jobs/positions/6",
		action:     "/job-postings/6/delete",
		keep:       "Go Developer",
		gone:       "Perl Archivist",
	},
	{
		name:       "job types",
		page:       "/job-type",
		lists:      map[string]string{"/jobs/types": `[{"id": 1, "name": "Backend"}, {"id": 2, "name": "Mainframe"}]`},
		listPath:   "/jobs/types",
		deletePath: "/jobs/types/2",
		action:     "/job-type/2/delete",
		keep:       "Backend",
		gone:       "Mainframe",
	},
}

func TestLists_DeleteRemovesExactlyTarget(t *testing.T) {
	for _, tt := range deleteCases {
		t.Run(tt.name, func(t *testing.T) {
			con := newConsole(t, scripted(tt.lists, tt.deletePath, nethttp.StatusNoContent, ``))
			cookie := con.signIn(t)

			_, body := con.do(t, nethttp.MethodGet, tt.page, nil, cookie)
			require.Contains(t, body, tt.gone)

			resp, body := con.do(t, nethttp.MethodPost, tt.action, nil, cookie)
			assert.Equal(t, nethttp.StatusOK, resp.StatusCode)
			assert.Contains(t, body, tt.keep)
			assert.NotContains(t, body, tt.gone)
			assert.Equal(t, 1, con.count(nethttp.MethodDelete, tt.deletePath))
			assert.Equal(t, 1, con.count(nethttp.MethodGet, tt.listPath), "list is patched, not re-fetched")
		})
	}
}

func TestLists_DeleteFailureKeepsRows(t *testing.T) {
	for _, tt := range deleteCases {
		t.Run(tt.name, func(t *testing.T) {
			con := newConsole(t, scripted(tt.lists, tt.deletePath, nethttp.StatusConflict, `{"detail": "Still referenced"}`))
			cookie := con.signIn(t)

			con.do(t, nethttp.MethodGet, tt.page, nil, cookie)
			resp, body := con.do(t, nethttp.MethodPost, tt.action, nil, cookie)
			assert.Equal(t, nethttp.StatusBadGateway, resp.StatusCode)
			assert.Contains(t, body, "Still referenced")
			assert.Contains(t, body, tt.keep)
			assert.Contains(t, body, tt.gone)
		})
	}
}

func TestLists_DeleteAsksFirst(t *testing.T) {
	for _, tt := range deleteCases {
		t.Run(tt.name, func(t *testing.T) {
			con := newConsole(t, scripted(tt.lists, tt.deletePath, nethttp.StatusNoContent, ``))
			cookie := con.signIn(t)

			con.do(t, nethttp.MethodGet, tt.page, nil, cookie)
			resp, body := con.do(t, nethttp.MethodGet, tt.action, nil, cookie)
			assert.Equal(t, nethttp.StatusOK, resp.StatusCode)
			assert.Contains(t, body, `action="`+tt.action)
			assert.Zero(t, con.count(nethttp.MethodDelete, tt.deletePath))
		})
	}
}

// jobTypesBackend serves a mutable type list the way the backend would.
type jobTypesBackend struct {
	mu       sync.Mutex
	list     string
	create   func() (int, string)
	afterAdd string
}

func (b *jobTypesBackend) reply(method, path string) (int, string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	switch {
	case method == nethttp.MethodGet && path == "/jobs/types":
		return nethttp.StatusOK, b.list
	case method == nethttp.MethodPost && path == "/jobs/types":
		status, body := b.create()
		if status < 300 && b.afterAdd != "" {
			b.list = b.afterAdd
		}
		return status, body
	case method == nethttp.MethodPut:
		return nethttp.StatusOK, `{}`
	}
	return nethttp.StatusNotFound, `{"detail": "Not Found"}`
}

func TestJobTypes_InlineAddPrepends(t *testing.T) {
	b := &jobTypesBackend{
		list:   `[{"id": 1, "name": "Backend"}]`,
		create: func() (int, string) { return nethttp.StatusCreated, `{"id": 9, "name": "Data"}` },
	}
	con := newConsole(t, b.reply)
	cookie := con.signIn(t)

	con.do(t, nethttp.MethodGet, "/job-type", nil, cookie)
	resp, body := con.do(t, nethttp.MethodPost, "/job-type", url.Values{"name": {" Data "}}, cookie)
	assert.Equal(t, nethttp.StatusOK, resp.StatusCode)

	created := strings.Index(body, "<td>Data</td>")
	existing := strings.Index(body, "<td>Backend</td>")
	require.NotEqual(t, -1, created)
	require.NotEqual(t, -1, existing)
	assert.Less(t, created, existing)
	assert.Contains(t, body, `href="/job-type/9/edit"`)
	assert.Equal(t, 1, con.count(nethttp.MethodGet, "/jobs/types"))
}

func TestJobTypes_InlineAddFailureKeepsName(t *testing.T) {
	b := &jobTypesBackend{
		list:   `[{"id": 1, "name": "Backend"}]`,
		create: func() (int, string) { return nethttp.StatusConflict, `{"detail": "Type already exists"}` },
	}
	con := newConsole(t, b.reply)
	cookie := con.signIn(t)

	con.do(t, nethttp.MethodGet, "/job-type", nil, cookie)
	resp, body := con.do(t, nethttp.MethodPost, "/job-type", url.Values{"name": {"Data"}}, cookie)
	assert.Equal(t, nethttp.StatusBadGateway, resp.StatusCode)
	assert.Contains(t, body, "Type already exists")
	assert.Contains(t, body, `value="Data"`, "typed name is kept in the add form")
	assert.NotContains(t, body, "<td>Data</td>")
}

func TestJobTypes_CreatedWithoutIDRefetches(t *testing.T) {
	b := &jobTypesBackend{
		list:     `[{"id": 1, "name": "Backend"}]`,
		create:   func() (int, string) { return nethttp.StatusOK, `{"ok": true}` },
		afterAdd: `[{"id": 1, "name": "Backend"}, {"id": 3, "name": "Security"}]`,
	}
	con := newConsole(t, b.reply)
	cookie := con.signIn(t)

	con.do(t, nethttp.MethodGet, "/job-type", nil, cookie)
	resp, body := con.do(t, nethttp.MethodPost, "/job-type", url.Values{"name": {"Security"}}, cookie)
	assert.Equal(t, nethttp.StatusOK, resp.StatusCode)
	assert.Contains(t, body, `href="/job-type/3/edit"`)
	assert.Equal(t, 2, con.count(nethttp.MethodGet, "/jobs/types"))
}

func TestJobTypes_EditModal(t *testing.T) {
	b := &jobTypesBackend{list: `[{"id": 1, "name": "Backend"}, {"id": 2, "name": "Design"}]`}
	con := newConsole(t, b.reply)
	cookie := con.signIn(t)

	con.do(t, nethttp.MethodGet, "/job-type", nil, cookie)
	resp, body := con.do(t, nethttp.MethodGet, "/job-type/2/edit", nil, cookie)
	assert.Equal(t, nethttp.StatusOK, resp.StatusCode)
	assert.Contains(t, body, "Edit Job Type")
	assert.Contains(t, body, `action="/job-type/2"`)
	assert.Contains(t, body, `value="Design"`)

	resp, body = con.do(t, nethttp.MethodPost, "/job-type/2", url.Values{"name": {"Product Design"}}, cookie)
	assert.Equal(t, nethttp.StatusOK, resp.StatusCode)
	assert.Contains(t, body, "<td>Product Design</td>")
	assert.NotContains(t, body, "<td>Design</td>")

	resp, body = con.do(t, nethttp.MethodGet, "/job-type/77/edit", nil, cookie)
	assert.Equal(t, nethttp.StatusNotFound, resp.StatusCode)
	assert.Contains(t, body, "Job type not found")
}

func TestJobTypes_BlankNameMakesNoCall(t *testing.T) {
	b := &jobTypesBackend{
		list:   `[]`,
		create: func() (int, string) { return nethttp.StatusCreated, `{"id": 1, "name": "x"}` },
	}
	con := newConsole(t, b.reply)

	resp, _ := con.do(t, nethttp.MethodPost, "/job-type", url.Values{"name": {"   "}}, con.signIn(t))
	assert.Equal(t, nethttp.StatusUnprocessableEntity, resp.StatusCode)
	assert.Zero(t, con.count(nethttp.MethodPost, "/jobs/types"))
}

const feedbackApplication = `[{"user_id": 1, "user_cv_id": 11, "name": "Alice Brown", "email": "alice@x.io",
	"job_position": "Go Dev", "job_type": "Backend", "cv_url": "http://cv/11",
	"feedback": "Strong grasp of Go. Struggled with SQL joins."}]`

func TestApplications_ReportDialog(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
		want   []string
	}{
		{
			name:   "bullets from feedback",
			status: nethttp.StatusOK,
			body:   `[{"id": 3, "status": "completed", "score": 7.5, "accuracy_pct": 66.6, "summary": "Solid candidate", "is_suitable": true, "suitability": "Suitable"}]`,
			want:   []string{"Solid candidate", "<li>Strong grasp of Go.</li>", "<li>Struggled with SQL joins.</li>", "67%", "Suitable ✅"},
		},
		{
			name:   "no report yet",
			status: nethttp.StatusOK,
			body:   `[]`,
			want:   []string{"No report found for this CV yet."},
		},
		{
			name:   "backend detail",
			status: nethttp.StatusInternalServerError,
			body:   `{"detail": "Report store offline"}`,
			want:   []string{"Report store offline"},
		},
		{
			name:   "fallback message",
			status: nethttp.StatusInternalServerError,
			body:   `oops`,
			want:   []string{"Failed to load interview report"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			con := newConsole(t, func(method, path string) (int, string) {
				switch path {
				case "/applications":
					return nethttp.StatusOK, feedbackApplication
				case "/interview-reports/by-cv/11":
					return tt.status, tt.body
				}
				return nethttp.StatusNotFound, `{}`
			})
			cookie := con.signIn(t)

			con.do(t, nethttp.MethodGet, "/applications", nil, cookie)
			resp, body := con.do(t, nethttp.MethodGet, "/applications/11/report", nil, cookie)
			assert.Equal(t, nethttp.StatusOK, resp.StatusCode)
			assert.Contains(t, body, "Alice Brown · Go Dev")
			for _, want := range tt.want {
				assert.Contains(t, body, want)
			}
			assert.Equal(t, 1, con.count(nethttp.MethodGet, "/interview-reports/by-cv/11"))
			assert.Equal(t, 1, con.count(nethttp.MethodGet, "/applications"), "row comes from the cached list")
		})
	}
}

// serve runs the console on a real listener so keep-alive connections
// reuse fasthttp request buffers between requests.
func (con *console) serve(t *testing.T) string {
	t.Helper()
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	go func() { _ = con.app.Listener(ln) }()
	t.Cleanup(func() { _ = con.app.Shutdown() })
	return "http://" + ln.Addr().String()
}

func TestCachedRowsSurviveConnectionReuse(t *testing.T) {
	b := &jobTypesBackend{list: `[{"id": 4, "name": "Ops"}]`}
	con := newConsole(t, b.reply)
	base := con.serve(t)
	cookie := con.signIn(t)
	client := &nethttp.Client{Timeout: 5 * time.Second}

	send := func(method, path string, form url.Values) string {
		var body io.Reader
		if form != nil {
			body = strings.NewReader(form.Encode())
		}
		req, err := nethttp.NewRequest(method, base+path, body)
		require.NoError(t, err)
		if form != nil {
			req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		}
		req.AddCookie(cookie)
		resp, err := client.Do(req)
		require.NoError(t, err)
		defer resp.Body.Close()
		raw, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		return string(raw)
	}

	send(nethttp.MethodGet, "/job-type", nil)
	send(nethttp.MethodPost, "/job-type/4", url.Values{"name": {"Platform"}})
	for i := 0; i < 5; i++ {
		send(nethttp.MethodPost, "/job-type/999", url.Values{"name": {"Zzzzzzzz"}})
	}

	body := send(nethttp.MethodGet, "/job-type/new", nil)
	assert.Contains(t, body, "<td>Platform</td>")
	assert.Contains(t, body, `href="/job-type/4/edit"`)
	assert.NotContains(t, body, "Zzzzzzzz")
}
