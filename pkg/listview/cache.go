package listview

import (
	"context"
	"sync"
	"time"

	"github.com/artem13815/smarthire-admin/pkg/remote"
)

// Cache keeps the last loaded state of every list view, per session.
// Entries are disposable: a fresh page load replaces them and idle ones are swept.
type Cache struct {
	mu      sync.Mutex
	entries map[key]*entry
	ttl     time.Duration
	now     func() time.Time
}

type key struct {
	session string
	view    string
}

type entry struct {
	res     any
	touched time.Time
}

func NewCache(ttl time.Duration) *Cache {
	return &Cache{entries: make(map[key]*entry), ttl: ttl, now: time.Now}
}

// Drop forgets every view of a session, used on logout.
func (c *Cache) Drop(sessionID string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for k := range c.entries {
		if k.session == sessionID {
			delete(c.entries, k)
		}
	}
}

// Sweep removes entries untouched for longer than the cache ttl.
func (c *Cache) Sweep() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	cutoff := c.now().Add(-c.ttl)
	removed := 0
	for k, e := range c.entries {
		if e.touched.Before(cutoff) {
			delete(c.entries, k)
			removed++
		}
	}
	return removed
}

// Len reports the number of cached lists across all sessions.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// View is a typed handle on one named list view inside a Cache.
type View[T any] struct {
	cache *Cache
	name  string
}

func NewView[T any](c *Cache, name string) View[T] {
	return View[T]{cache: c, name: name}
}

// resource returns the stored resource, creating it if needed. Caller holds the lock.
func (v View[T]) resource(sessionID string) *remote.Resource[[]T] {
	k := key{session: sessionID, view: v.name}
	e, ok := v.cache.entries[k]
	if ok {
		if r, ok := e.res.(*remote.Resource[[]T]); ok {
			e.touched = v.cache.now()
			return r
		}
	}
	r := &remote.Resource[[]T]{}
	v.cache.entries[k] = &entry{res: r, touched: v.cache.now()}
	return r
}

// Load fetches the view fresh and stores the outcome unless a newer load
// for the same session started meanwhile. The returned snapshot is always
// this call's own outcome.
func (v View[T]) Load(ctx context.Context, sessionID string, fetch func(context.Context) ([]T, error), message func(error) string) remote.Resource[[]T] {
	v.cache.mu.Lock()
	ticket := v.resource(sessionID).Begin()
	v.cache.mu.Unlock()

	data, err := fetch(ctx)

	var own remote.Resource[[]T]
	ownTicket := own.Begin()
	if ctx.Err() != nil {
		return own
	}
	if err != nil {
		own.Fail(ownTicket, message(err))
	} else {
		own.Resolve(ownTicket, data)
	}

	v.cache.mu.Lock()
	defer v.cache.mu.Unlock()
	stored := v.resource(sessionID)
	if err != nil {
		stored.Fail(ticket, own.Err)
	} else {
		stored.Resolve(ticket, data)
	}
	return own
}

// Get returns the cached state of the view, if any settled state exists.
func (v View[T]) Get(sessionID string) (remote.Resource[[]T], bool) {
	v.cache.mu.Lock()
	defer v.cache.mu.Unlock()
	e, ok := v.cache.entries[key{session: sessionID, view: v.name}]
	if !ok {
		return remote.Resource[[]T]{}, false
	}
	r, ok := e.res.(*remote.Resource[[]T])
	if !ok || r.Status == remote.Idle || r.Status == remote.Loading {
		return remote.Resource[[]T]{}, false
	}
	e.touched = v.cache.now()
	return *r, true
}

// Patch applies fn to the cached rows and stores the result as ready state.
// It is how successful mutations update the list without a re-fetch.
func (v View[T]) Patch(sessionID string, fn func([]T) []T) remote.Resource[[]T] {
	v.cache.mu.Lock()
	defer v.cache.mu.Unlock()
	r := v.resource(sessionID)
	r.Set(fn(r.Data))
	return *r
}
