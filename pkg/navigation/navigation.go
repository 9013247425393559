package navigation

import "strings"

const Brand = "SmartHire - Admin"

// Item is one sidebar link.
type Item struct {
	Label  string
	Href   string
	Active bool
}

var items = []Item{
	{Label: "Dashboard", Href: "/dashboard"},
	{Label: "Job Posting", Href: "/job-postings"},
	{Label: "Job Types", Href: "/job-type"},
	{Label: "Applications", Href: "/applications"},
	{Label: "Users", Href: "/users"},
}

// Items returns the sidebar with the entry for path marked active.
func Items(path string) []Item {
	out := make([]Item, len(items))
	copy(out, items)
	for i := range out {
		out[i].Active = IsActive(out[i].Href, path)
	}
	return out
}

// IsActive reports whether href equals path or is a path prefix of it.
// "/job-type" does not match "/job-types".
func IsActive(href, path string) bool {
	if path == href {
		return true
	}
	return strings.HasPrefix(path, strings.TrimSuffix(href, "/")+"/")
}
