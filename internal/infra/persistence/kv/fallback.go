package kv

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"
)

// Fallback wraps a primary store and switches to an in-memory overlay the first time the primary fails.
// Once degraded, writes land only in the overlay and reads prefer it, so the session keeps working
// while the data is no longer persisted.
type Fallback struct {
	primary  Store
	logger   *slog.Logger
	degraded atomic.Bool

	mu      sync.RWMutex
	overlay map[string]*string // nil value marks a removed key
}

// NewFallback wraps primary.
func NewFallback(primary Store, logger *slog.Logger) *Fallback {
	return &Fallback{
		primary: primary,
		logger:  logger,
		overlay: make(map[string]*string),
	}
}

// Degraded reports whether the store has switched to the in-memory overlay.
func (f *Fallback) Degraded() bool {
	return f.degraded.Load()
}

func (f *Fallback) Get(ctx context.Context, key string) (string, bool, error) {
	f.mu.RLock()
	value, staged := f.overlay[key]
	f.mu.RUnlock()

	if staged {
		if value == nil {
			return "", false, nil
		}

		return *value, true, nil
	}

	result, ok, err := f.primary.Get(ctx, key)
	if err != nil {
		f.degrade(ctx, "get", key, err)

		return "", false, nil
	}

	return result, ok, nil
}

func (f *Fallback) Set(ctx context.Context, key, value string) error {
	return f.Apply(ctx, []Mutation{Put(key, value)})
}

func (f *Fallback) Remove(ctx context.Context, key string) error {
	return f.Apply(ctx, []Mutation{Delete(key)})
}

func (f *Fallback) Apply(ctx context.Context, mutations []Mutation) error {
	if len(mutations) == 0 {
		return nil
	}

	if !f.Degraded() {
		err := f.primary.Apply(ctx, mutations)
		if err == nil {
			return nil
		}
		f.degrade(ctx, "apply", mutations[0].Key, err)
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	for _, m := range mutations {
		if m.Delete {
			f.overlay[m.Key] = nil

			continue
		}
		value := m.Value
		f.overlay[m.Key] = &value
	}

	return nil
}

func (f *Fallback) Keys(ctx context.Context, prefix string) ([]string, error) {
	seen := make(map[string]struct{})

	primaryKeys, err := f.primary.Keys(ctx, prefix)
	if err != nil {
		f.degrade(ctx, "keys", prefix, err)
	}
	for _, k := range primaryKeys {
		seen[k] = struct{}{}
	}

	f.mu.RLock()
	for k, v := range f.overlay {
		if v == nil {
			delete(seen, k)
		} else {
			seen[k] = struct{}{}
		}
	}
	f.mu.RUnlock()

	keys := make([]string, 0, len(seen))
	for k := range seen {
		keys = append(keys, k)
	}

	return sortedWithPrefix(keys, prefix), nil
}

// Degrade switches to the overlay without waiting for a failing call.
func (f *Fallback) Degrade(ctx context.Context, op string, err error) {
	f.degrade(ctx, op, "", err)
}

func (f *Fallback) degrade(ctx context.Context, op, key string, err error) {
	if f.degraded.CompareAndSwap(false, true) {
		f.logger.WarnContext(ctx, "Storage failed, continuing in memory; changes will not persist",
			slog.String("op", op),
			slog.String("key", key),
			slog.Any("error", err),
		)
	}
}
