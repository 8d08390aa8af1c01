// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package engine

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/sirajlabs/siraj/pkg/types"
)

// Session separates pending input from committed searches. Query and
// filter edits only update pending state; Search runs when the caller
// commits. Commits carry a monotonically increasing generation and a
// commit that finishes after a newer one started returns ErrSuperseded,
// giving last-call-wins semantics without locking inside the engine.
type Session struct {
	engine *Engine

	mu      sync.Mutex
	query   string
	filters types.FilterState

	gen atomic.Uint64
}

// NewSession starts a session with the given initial filter state.
func NewSession(e *Engine, initial types.FilterState) *Session {
	return &Session{engine: e, filters: initial}
}

// SetQuery updates the pending query without running a search.
func (s *Session) SetQuery(query string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.query = query
}

// SetFilters replaces the pending filter state without running a search.
func (s *Session) SetFilters(filters types.FilterState) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.filters = filters
}

// EditFilters applies fn to the pending filter state under the session
// lock, without running a search.
func (s *Session) EditFilters(fn func(*types.FilterState)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(&s.filters)
}

// Pending returns the query and filter state that the next commit will run.
func (s *Session) Pending() (string, types.FilterState) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.query, s.filters
}

// Commit executes a search over the pending state. If another commit is
// issued before this one finishes, its output is discarded and
// ErrSuperseded is returned.
func (s *Session) Commit(ctx context.Context) (Output, error) {
	s.mu.Lock()
	query, filters := s.query, s.filters
	s.mu.Unlock()

	gen := s.gen.Add(1)

	out, err := s.engine.Search(ctx, query, filters)
	if s.gen.Load() != gen {
		return Output{}, ErrSuperseded
	}
	return out, err
}
