package application

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/artem13815/smarthire-admin/pkg/backend"
)

// UseCase covers the application list, the dashboard feed and deletion.
type UseCase interface {
	List(ctx context.Context, token string) ([]Application, error)
	Recent(ctx context.Context, token string, limit, offset int) ([]Application, error)
	Delete(ctx context.Context, token string, cvID int64) error
}

type service struct {
	api backend.API
}

func NewService(api backend.API) UseCase { return &service{api: api} }

func (s *service) List(ctx context.Context, token string) ([]Application, error) {
	body, err := backend.Get(ctx, s.api, token, "/applications", nil)
	if err != nil {
		return nil, err
	}
	return backend.DecodeList[Application](body)
}

func (s *service) Recent(ctx context.Context, token string, limit, offset int) ([]Application, error) {
	q := url.Values{}
	q.Set("limit", strconv.Itoa(limit))
	q.Set("offset", strconv.Itoa(offset))
	body, err := backend.Get(ctx, s.api, token, "/applications/recent", q)
	if err != nil {
		return nil, err
	}
	return backend.DecodeList[Application](body)
}

// Delete removes an application by its cv id.
func (s *service) Delete(ctx context.Context, token string, cvID int64) error {
	return backend.Delete(ctx, s.api, token, fmt.Sprintf("/applications/%d", cvID))
}
