package backend

import (
	"errors"
	"fmt"
	"strings"

	"github.com/tidwall/gjson"
)

// APIError is a non-2xx reply from the backend.
type APIError struct {
	Status int
	Method string
	Path   string
	Detail string
}

func (e *APIError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("%s %s failed (%d): %s", e.Method, e.Path, e.Status, e.Detail)
	}
	return fmt.Sprintf("%s %s failed (%d)", e.Method, e.Path, e.Status)
}

// Detail extracts the FastAPI-style `detail` field: either a string or a
// list of {msg} objects, in which case the first message wins.
func Detail(body []byte) string {
	if len(body) == 0 || !gjson.Valid(string(body)) {
		return ""
	}
	d := gjson.GetBytes(body, "detail")
	switch {
	case !d.Exists():
		return ""
	case d.IsArray():
		for _, item := range d.Array() {
			if msg := strings.TrimSpace(item.Get("msg").String()); msg != "" {
				return msg
			}
		}
		return ""
	case d.Type == gjson.String:
		return strings.TrimSpace(d.String())
	default:
		return strings.TrimSpace(d.Raw)
	}
}

// Message picks the text shown to the admin: the backend detail when there is
// one, otherwise fallback.
func Message(err error, fallback string) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.Detail != "" {
		return apiErr.Detail
	}
	return fallback
}

// StatusOf returns the HTTP status of a backend error, or 0 for transport failures.
func StatusOf(err error) int {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Status
	}
	return 0
}

// Describe is Message for views that name the failed call: without a detail
// an APIError reads like "GET /jobs/types failed (502)".
func Describe(err error, fallback string) string {
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		return fallback
	}
	if apiErr.Detail != "" {
		return apiErr.Detail
	}
	return fmt.Sprintf("%s %s failed (%d)", apiErr.Method, apiErr.Path, apiErr.Status)
}
