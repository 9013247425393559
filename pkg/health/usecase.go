package health

import (
	"context"
	"fmt"
	"sync"
)

// Checker represents a dependency health check.
type Checker interface {
	Name() string
	Check(ctx context.Context) error
}

// Status is the outcome of one checker.
type Status struct {
	Name  string `json:"name"`
	OK    bool   `json:"ok"`
	Error string `json:"error,omitempty"`
}

// ReadinessUseCase describes readiness verification.
type ReadinessUseCase interface {
	Ready(ctx context.Context) ([]Status, error)
}

type service struct {
	checkers []Checker
}

// NewService aggregates dependency checkers. Nil checkers are skipped so
// optional dependencies can be passed unconditionally.
func NewService(checkers ...Checker) ReadinessUseCase {
	s := &service{}
	for _, ch := range checkers {
		if ch != nil {
			s.checkers = append(s.checkers, ch)
		}
	}
	return s
}

// Ready runs every checker concurrently and fails on the first broken one
// in registration order.
func (s *service) Ready(ctx context.Context) ([]Status, error) {
	out := make([]Status, len(s.checkers))
	var wg sync.WaitGroup
	for i, ch := range s.checkers {
		wg.Add(1)
		go func(i int, ch Checker) {
			defer wg.Done()
			st := Status{Name: ch.Name(), OK: true}
			if err := ch.Check(ctx); err != nil {
				st.OK = false
				st.Error = err.Error()
			}
			out[i] = st
		}(i, ch)
	}
	wg.Wait()

	for _, st := range out {
		if !st.OK {
			return out, fmt.Errorf("%s: %s", st.Name, st.Error)
		}
	}
	return out, nil
}
