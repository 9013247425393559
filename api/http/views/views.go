package views

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"strconv"
	"strings"
	"sync"
)

//go:embed templates/*.html
var templatesFS embed.FS

//go:embed static
var staticFS embed.FS

// pages are rendered by name; each is parsed together with layout.html.
var pages = []string{
	"login",
	"dashboard",
	"applications",
	"users",
	"job_postings",
	"job_type",
	"logout",
	"error",
}

// Renderer implements fiber.Views over the embedded templates.
type Renderer struct {
	once sync.Once
	err  error
	sets map[string]*template.Template
}

func New() *Renderer { return &Renderer{} }

// Load parses every page. Fiber calls it once when the app is created.
func (r *Renderer) Load() error {
	r.once.Do(func() {
		sets := make(map[string]*template.Template, len(pages))
		for _, name := range pages {
			t, err := template.New(name).Funcs(Funcs()).ParseFS(templatesFS, "templates/layout.html", "templates/"+name+".html")
			if err != nil {
				r.err = fmt.Errorf("parse view %s: %w", name, err)
				return
			}
			sets[name] = t
		}
		r.sets = sets
	})
	return r.err
}

func (r *Renderer) Render(w io.Writer, name string, data interface{}, _ ...string) error {
	if err := r.Load(); err != nil {
		return err
	}
	t, ok := r.sets[name]
	if !ok {
		return fmt.Errorf("view %q not found", name)
	}
	return t.ExecuteTemplate(w, name+".html", data)
}

// Static returns the embedded assets rooted at the static directory.
func Static() fs.FS {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	return sub
}

const placeholder = "—"

// Funcs are the helpers available to every template.
func Funcs() template.FuncMap {
	return template.FuncMap{
		"dash": func(s string) string {
			if strings.TrimSpace(s) == "" {
				return placeholder
			}
			return s
		},
		"num": func(n *int) string {
			if n == nil {
				return placeholder
			}
			return Group(*n)
		},
		"add":  func(a, b int) int { return a + b },
		"sub":  func(a, b int) int { return a - b },
		"dict": dict,
	}
}

// dict builds a map from key/value pairs so partials can take several arguments.
func dict(pairs ...any) (map[string]any, error) {
	if len(pairs)%2 != 0 {
		return nil, fmt.Errorf("dict: odd number of arguments")
	}
	m := make(map[string]any, len(pairs)/2)
	for i := 0; i < len(pairs); i += 2 {
		k, ok := pairs[i].(string)
		if !ok {
			return nil, fmt.Errorf("dict: key %v is not a string", pairs[i])
		}
		m[k] = pairs[i+1]
	}
	return m, nil
}

// Group formats n with comma thousands separators.
func Group(n int) string {
	s := strconv.Itoa(n)
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}
	head := len(s) % 3
	if head == 0 {
		head = 3
	}
	b.WriteString(s[:head])
	for i := head; i < len(s); i += 3 {
		b.WriteByte(',')
		b.WriteString(s[i : i+3])
	}
	return b.String()
}
