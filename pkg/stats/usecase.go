package stats

import (
	"context"
	"fmt"

	"github.com/tidwall/gjson"

	"github.com/artem13815/smarthire-admin/pkg/backend"
)

type UseCase interface {
	Overview(ctx context.Context, token string) (Overview, error)
}

type service struct {
	api backend.API
}

func NewService(api backend.API) UseCase { return &service{api: api} }

func (s *service) Overview(ctx context.Context, token string) (Overview, error) {
	body, err := backend.Get(ctx, s.api, token, "/stats/overview", nil)
	if err != nil {
		return Overview{}, err
	}
	if len(body) == 0 {
		return Overview{}, nil
	}
	if !gjson.ValidBytes(body) {
		return Overview{}, fmt.Errorf("stats overview: %w", backend.ErrMalformed)
	}
	res := gjson.ParseBytes(body)
	return Overview{
		CandidateUsers: count(res.Get("candidate_users")),
		Applications:   count(res.Get("applications")),
		JobPositions:   count(res.Get("job_positions")),
	}, nil
}

// count accepts only JSON numbers.
func count(r gjson.Result) *int {
	if r.Type != gjson.Number {
		return nil
	}
	n := int(r.Int())
	return &n
}
