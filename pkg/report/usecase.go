package report

import (
	"context"
	"fmt"
	"net/url"

	"github.com/artem13815/smarthire-admin/pkg/backend"
)

// historyWindow is how many reports are requested per cv; the newest comes first.
const historyWindow = 50

type UseCase interface {
	// Latest returns the newest report for a cv, or nil when none exists yet.
	Latest(ctx context.Context, token string, cvID int64) (*InterviewReport, error)
}

type service struct {
	api backend.API
}

func NewService(api backend.API) UseCase { return &service{api: api} }

func (s *service) Latest(ctx context.Context, token string, cvID int64) (*InterviewReport, error) {
	q := url.Values{}
	q.Set("limit", fmt.Sprint(historyWindow))
	q.Set("offset", "0")
	body, err := backend.Get(ctx, s.api, token, fmt.Sprintf("/interview-reports/by-cv/%d", cvID), q)
	if err != nil {
		return nil, err
	}
	reports, err := backend.DecodeList[InterviewReport](body)
	if err != nil {
		return nil, err
	}
	if len(reports) == 0 {
		return nil, nil
	}
	return &reports[0], nil
}
