package kv

import (
	"context"
	"sync"
)

// Staged buffers writes on top of a base store. Reads see the buffered writes first.
// Nothing reaches the base until Commit, which applies the whole write set as one batch.
type Staged struct {
	base Store

	mu        sync.Mutex
	writes    map[string]Mutation
	order     []string
	committed bool
}

// NewStaged creates a write set over base.
func NewStaged(base Store) *Staged {
	return &Staged{
		base:   base,
		writes: make(map[string]Mutation),
	}
}

func (s *Staged) Get(ctx context.Context, key string) (string, bool, error) {
	s.mu.Lock()
	m, ok := s.writes[key]
	s.mu.Unlock()

	if ok {
		if m.Delete {
			return "", false, nil
		}

		return m.Value, true, nil
	}

	return s.base.Get(ctx, key)
}

func (s *Staged) Set(_ context.Context, key, value string) error {
	s.stage(Put(key, value))

	return nil
}

func (s *Staged) Remove(_ context.Context, key string) error {
	s.stage(Delete(key))

	return nil
}

func (s *Staged) Apply(_ context.Context, mutations []Mutation) error {
	for _, m := range mutations {
		s.stage(m)
	}

	return nil
}

func (s *Staged) Keys(ctx context.Context, prefix string) ([]string, error) {
	baseKeys, err := s.base.Keys(ctx, prefix)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{}, len(baseKeys))
	for _, k := range baseKeys {
		seen[k] = struct{}{}
	}

	s.mu.Lock()
	for k, m := range s.writes {
		if m.Delete {
			delete(seen, k)
		} else {
			seen[k] = struct{}{}
		}
	}
	s.mu.Unlock()

	keys := make([]string, 0, len(seen))
	for k := range seen {
		keys = append(keys, k)
	}

	return sortedWithPrefix(keys, prefix), nil
}

// Mutations returns the buffered writes in first-write order.
func (s *Staged) Mutations() []Mutation {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]Mutation, 0, len(s.order))
	for _, k := range s.order {
		out = append(out, s.writes[k])
	}

	return out
}

// Commit applies the buffered writes to the base store. A write set commits at most once.
func (s *Staged) Commit(ctx context.Context) error {
	mutations := s.Mutations()

	s.mu.Lock()
	if s.committed {
		s.mu.Unlock()

		return nil
	}
	s.committed = true
	s.mu.Unlock()

	if len(mutations) == 0 {
		return nil
	}

	return s.base.Apply(ctx, mutations)
}

func (s *Staged) stage(m Mutation) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.writes[m.Key]; !ok {
		s.order = append(s.order, m.Key)
	}
	s.writes[m.Key] = m
}
