package candidate

import (
	"context"
	"net/url"
	"strconv"
	"strings"

	"github.com/tidwall/gjson"

	"github.com/artem13815/smarthire-admin/pkg/backend"
)

type UseCase interface {
	List(ctx context.Context, token string, limit, offset int) (Page, error)
	Delete(ctx context.Context, token, id string) error
}

type service struct {
	api backend.API
}

func NewService(api backend.API) UseCase { return &service{api: api} }

func (s *service) List(ctx context.Context, token string, limit, offset int) (Page, error) {
	q := url.Values{}
	q.Set("limit", strconv.Itoa(limit))
	q.Set("offset", strconv.Itoa(offset))
	body, err := backend.Get(ctx, s.api, token, "/admin/candidates", q)
	if err != nil {
		return Page{}, err
	}
	items, err := backend.Items(body)
	if err != nil {
		return Page{}, err
	}
	page := Page{Items: make([]Candidate, 0, len(items)), Limit: limit, Offset: offset, Total: -1}
	for _, item := range items {
		page.Items = append(page.Items, decode(item))
	}
	if total, ok := backend.Total(body); ok {
		page.Total = total
	}
	return page, nil
}

// Delete removes the candidate's user account.
func (s *service) Delete(ctx context.Context, token, id string) error {
	return backend.Delete(ctx, s.api, token, "/users/"+url.PathEscape(id))
}

// decode tolerates the field spellings seen across backend versions.
func decode(item gjson.Result) Candidate {
	return Candidate{
		ID:               first(item, "id", "user_id"),
		Name:             first(item, "name", "full_name"),
		Email:            first(item, "email"),
		Phone:            first(item, "phone", "phone_number", "phoneNum"),
		CreatedAt:        first(item, "created_at", "createdAt"),
		ApplicationCount: int(firstResult(item, "application_count", "applications_count", "applications").Int()),
	}
}

func firstResult(item gjson.Result, paths ...string) gjson.Result {
	for _, p := range paths {
		if r := item.Get(p); r.Exists() && r.Type != gjson.Null {
			return r
		}
	}
	return gjson.Result{}
}

func first(item gjson.Result, paths ...string) string {
	return strings.TrimSpace(firstResult(item, paths...).String())
}
