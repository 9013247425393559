package jobs

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/tidwall/gjson"
	"golang.org/x/sync/errgroup"

	"github.com/artem13815/smarthire-admin/pkg/backend"
)

// ErrValidation — черновик не готов к отправке.
var ErrValidation = errors.New("draft is incomplete")

// UseCase manages job types and job postings through the backend.
type UseCase interface {
	Board(ctx context.Context, token string) (Board, error)
	Types(ctx context.Context, token string) ([]JobType, error)

	CreatePosting(ctx context.Context, token string, d PostingDraft, types []JobType) (Posting, error)
	UpdatePosting(ctx context.Context, token string, d PostingDraft, types []JobType) (Posting, error)
	DeletePosting(ctx context.Context, token, id string) error

	// CreateType reports ok=false when the backend answered without an id,
	// in which case callers re-fetch the list.
	CreateType(ctx context.Context, token string, d TypeDraft) (t JobType, ok bool, err error)
	UpdateType(ctx context.Context, token string, d TypeDraft) (JobType, error)
	DeleteType(ctx context.Context, token, id string) error
}

type service struct {
	api backend.API
}

func NewService(api backend.API) UseCase { return &service{api: api} }

// loadError keeps the per-endpoint fallback text next to the cause.
type loadError struct {
	fallback string
	err      error
}

func (e *loadError) Error() string { return e.fallback + ": " + e.err.Error() }
func (e *loadError) Unwrap() error { return e.err }

// LoadMessage returns the admin-facing text for a Board failure.
func LoadMessage(err error) string {
	fallback := "Could not load job postings."
	var le *loadError
	if errors.As(err, &le) {
		fallback = le.fallback
	}
	return backend.Message(err, fallback)
}

// Board fetches types and positions in parallel and joins them.
func (s *service) Board(ctx context.Context, token string) (Board, error) {
	var typesBody, positionsBody []byte
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		body, err := backend.Get(gctx, s.api, token, "/jobs/types", nil)
		if err != nil {
			return &loadError{fallback: "Failed to fetch job types", err: err}
		}
		typesBody = body
		return nil
	})
	g.Go(func() error {
		body, err := backend.Get(gctx, s.api, token, "/jobs/positions", nil)
		if err != nil {
			return &loadError{fallback: "Failed to fetch job positions", err: err}
		}
		positionsBody = body
		return nil
	})
	if err := g.Wait(); err != nil {
		return Board{}, err
	}

	types, err := NormalizeTypes(typesBody)
	if err != nil {
		return Board{}, fmt.Errorf("job types: %w", err)
	}
	postings, err := NormalizePositions(positionsBody, NewTypeIndex(types))
	if err != nil {
		return Board{}, fmt.Errorf("job positions: %w", err)
	}
	return Board{Types: types, Postings: postings}, nil
}

func (s *service) Types(ctx context.Context, token string) ([]JobType, error) {
	body, err := backend.Get(ctx, s.api, token, "/jobs/types", nil)
	if err != nil {
		return nil, err
	}
	return NormalizeTypes(body)
}

// postingPayload prefers a numeric type_id and falls back to a name field.
func postingPayload(d PostingDraft, nameKey string) map[string]any {
	p := map[string]any{"name": d.Position}
	if n, err := strconv.ParseInt(d.TypeID, 10, 64); err == nil {
		p["type_id"] = n
	} else if d.TypeName != "" {
		p[nameKey] = d.TypeName
	}
	return p
}

func (s *service) prepare(d PostingDraft, types []JobType) (PostingDraft, TypeIndex, error) {
	d = d.Trimmed()
	if !d.Ready() {
		return d, TypeIndex{}, ErrValidation
	}
	ix := NewTypeIndex(types)
	if d.TypeName == "" {
		d.TypeName = ix.Name(d.TypeID)
	}
	return d, ix, nil
}

// saved builds the list row from the server's canonical id and name.
func saved(body []byte, d PostingDraft, ix TypeIndex, fallbackID string) Posting {
	p := Posting{ID: fallbackID, Position: d.Position, TypeID: d.TypeID}
	if gjson.Valid(string(body)) {
		res := gjson.ParseBytes(body)
		if id := idOf(res.Get("id")); id != "" {
			p.ID = id
		}
		if name := strings.TrimSpace(res.Get("name").String()); name != "" {
			p.Position = name
		}
	}
	p.TypeName = ix.Name(d.TypeID)
	if p.TypeName == "" {
		p.TypeName = d.TypeName
	}
	return p
}

func (s *service) CreatePosting(ctx context.Context, token string, d PostingDraft, types []JobType) (Posting, error) {
	d, ix, err := s.prepare(d, types)
	if err != nil {
		return Posting{}, err
	}
	body, err := backend.Post(ctx, s.api, token, "/jobs/positions", postingPayload(d, "type"))
	if err != nil {
		return Posting{}, err
	}
	return saved(body, d, ix, uuid.NewString()), nil
}

func (s *service) UpdatePosting(ctx context.Context, token string, d PostingDraft, types []JobType) (Posting, error) {
	d, ix, err := s.prepare(d, types)
	if err != nil {
		return Posting{}, err
	}
	if d.ID == "" {
		return Posting{}, ErrValidation
	}
	body, err := backend.Put(ctx, s.api, token, "/jobs/positions/"+url.PathEscape(d.ID), postingPayload(d, "type_name"))
	if err != nil {
		return Posting{}, err
	}
	return saved(body, d, ix, d.ID), nil
}

func (s *service) DeletePosting(ctx context.Context, token, id string) error {
	return backend.Delete(ctx, s.api, token, "/jobs/positions/"+url.PathEscape(id))
}

func (s *service) CreateType(ctx context.Context, token string, d TypeDraft) (JobType, bool, error) {
	name := strings.TrimSpace(d.Name)
	if name == "" {
		return JobType{}, false, ErrValidation
	}
	body, err := backend.Post(ctx, s.api, token, "/jobs/types", map[string]string{"name": name})
	if err != nil {
		return JobType{}, false, err
	}
	if !gjson.Valid(string(body)) {
		return JobType{}, false, nil
	}
	res := gjson.ParseBytes(body)
	id := firstID(res, "id", "type_id")
	if id == "" {
		return JobType{}, false, nil
	}
	if n := strings.TrimSpace(res.Get("name").String()); n != "" {
		name = n
	}
	return JobType{ID: id, Name: name}, true, nil
}

func (s *service) UpdateType(ctx context.Context, token string, d TypeDraft) (JobType, error) {
	id := strings.TrimSpace(d.ID)
	name := strings.TrimSpace(d.Name)
	if id == "" || name == "" {
		return JobType{}, ErrValidation
	}
	body, err := backend.Put(ctx, s.api, token, "/jobs/types/"+url.PathEscape(id), map[string]string{"name": name})
	if err != nil {
		return JobType{}, err
	}
	if gjson.Valid(string(body)) {
		if n := strings.TrimSpace(gjson.GetBytes(body, "name").String()); n != "" {
			name = n
		}
	}
	return JobType{ID: id, Name: name}, nil
}

func (s *service) DeleteType(ctx context.Context, token, id string) error {
	return backend.Delete(ctx, s.api, token, "/jobs/types/"+url.PathEscape(id))
}
