package service

import (
	"context"
	"errors"
	"sync"

	"github.com/pooja-dev3/erp-lead-admin-sub000/internal/core/domain"
	"github.com/pooja-dev3/erp-lead-admin-sub000/internal/pkg/metrics"
)

// Superseder makes list fetches latest-wins. Starting a fetch for a key
// cancels the previous in-flight fetch for the same key, so a slow stale
// response can never be delivered after a newer one.
type Superseder struct {
	mu       sync.Mutex
	inflight map[string]*flight
}

type flight struct {
	cancel context.CancelCauseFunc
}

func NewSuperseder() *Superseder {
	return &Superseder{inflight: make(map[string]*flight)}
}

// Begin derives a cancellable context for a fetch under key. The returned
// done func must be called when the fetch finishes.
func (s *Superseder) Begin(ctx context.Context, key string) (context.Context, func()) {
	ctx, cancel := context.WithCancelCause(ctx)
	f := &flight{cancel: cancel}

	s.mu.Lock()
	if prev, ok := s.inflight[key]; ok {
		prev.cancel(domain.ErrSuperseded)
		metrics.SupersededRequestsTotal.Inc()
	}
	s.inflight[key] = f
	s.mu.Unlock()

	done := func() {
		s.mu.Lock()
		if cur, ok := s.inflight[key]; ok && cur == f {
			delete(s.inflight, key)
		}
		s.mu.Unlock()
		cancel(nil)
	}
	return ctx, done
}

// Superseded reports whether ctx was cancelled by a newer Begin.
func Superseded(ctx context.Context) bool {
	return errors.Is(context.Cause(ctx), domain.ErrSuperseded)
}

// InFlight returns the number of tracked fetches.
func (s *Superseder) InFlight() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.inflight)
}
