package remote

import "context"

// Status is the lifecycle state of a remotely fetched value.
type Status int

const (
	Idle Status = iota
	Loading
	Ready
	Failed
)

func (s Status) String() string {
	switch s {
	case Loading:
		return "loading"
	case Ready:
		return "ready"
	case Failed:
		return "failed"
	default:
		return "idle"
	}
}

// Ticket identifies one fetch. Only the latest ticket may settle a Resource.
type Ticket uint64

// Resource tracks one remotely fetched value: idle → loading → ready | failed.
// It is not safe for concurrent use; callers serialize access.
type Resource[T any] struct {
	Status Status
	Data   T
	Err    string

	gen uint64
}

// Begin moves the resource to loading and invalidates earlier tickets.
// Previously loaded data stays visible until the new fetch settles.
func (r *Resource[T]) Begin() Ticket {
	r.gen++
	r.Status = Loading
	r.Err = ""
	return Ticket(r.gen)
}

// Current reports whether t is still the latest ticket.
func (r *Resource[T]) Current(t Ticket) bool {
	return uint64(t) == r.gen && r.Status == Loading
}

// Resolve settles a successful fetch. Stale tickets are ignored.
func (r *Resource[T]) Resolve(t Ticket, data T) bool {
	if !r.Current(t) {
		return false
	}
	r.Status = Ready
	r.Data = data
	r.Err = ""
	return true
}

// Fail settles a failed fetch. Stale tickets are ignored.
func (r *Resource[T]) Fail(t Ticket, msg string) bool {
	if !r.Current(t) {
		return false
	}
	r.Status = Failed
	r.Err = msg
	return true
}

// Set replaces the data of a ready resource, used for optimistic local edits.
func (r *Resource[T]) Set(data T) {
	r.Status = Ready
	r.Data = data
	r.Err = ""
}

func (r Resource[T]) IsLoading() bool { return r.Status == Loading || r.Status == Idle }
func (r Resource[T]) IsReady() bool   { return r.Status == Ready }
func (r Resource[T]) IsFailed() bool  { return r.Status == Failed }

// Fetch runs fetch through a fresh resource and returns the settled snapshot.
// A result that arrives after ctx is done leaves the resource loading.
func Fetch[T any](ctx context.Context, fetch func(context.Context) (T, error), message func(error) string) (Resource[T], error) {
	var r Resource[T]
	t := r.Begin()
	data, err := fetch(ctx)
	if ctx.Err() != nil {
		return r, ctx.Err()
	}
	if err != nil {
		r.Fail(t, message(err))
		return r, err
	}
	r.Resolve(t, data)
	return r, nil
}
