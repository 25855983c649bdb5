package kv

import (
	"context"
	"sync"

	"recyclemart/internal/errors"
	"recyclemart/internal/util"
)

// Memory is an in-process store bounded by an optional byte quota.
// Sizes count key and value bytes.
type Memory struct {
	mu    sync.RWMutex
	data  map[string]string
	used  int64
	quota int64
}

// NewMemory creates an empty memory store. A quota of zero or less means unbounded.
func NewMemory(quota int64) *Memory {
	return &Memory{
		data:  make(map[string]string),
		quota: quota,
	}
}

func (m *Memory) Get(_ context.Context, key string) (string, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	value, ok := m.data[key]

	return value, ok, nil
}

func (m *Memory) Set(ctx context.Context, key, value string) error {
	return m.Apply(ctx, []Mutation{Put(key, value)})
}

func (m *Memory) Remove(ctx context.Context, key string) error {
	return m.Apply(ctx, []Mutation{Delete(key)})
}

// Apply checks the quota against the size after the whole batch, so a batch either fits or writes nothing.
func (m *Memory) Apply(_ context.Context, mutations []Mutation) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	mutations = compact(mutations)

	next := m.used
	for _, mu := range mutations {
		if old, ok := m.data[mu.Key]; ok {
			next -= entrySize(mu.Key, old)
		}
		if !mu.Delete {
			next += entrySize(mu.Key, mu.Value)
		}
	}

	if m.quota > 0 && next > m.quota && next > m.used {
		return errors.Wrapf(ErrQuotaExceeded, "need %s of %s", util.FormatBytes(next), util.FormatBytes(m.quota))
	}

	for _, mu := range mutations {
		if mu.Delete {
			delete(m.data, mu.Key)

			continue
		}
		m.data[mu.Key] = mu.Value
	}
	m.used = next

	return nil
}

func (m *Memory) Keys(_ context.Context, prefix string) ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	keys := make([]string, 0, len(m.data))
	for k := range m.data {
		keys = append(keys, k)
	}

	return sortedWithPrefix(keys, prefix), nil
}

// Used reports the bytes currently stored.
func (m *Memory) Used() int64 {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.used
}

func entrySize(key, value string) int64 {
	return int64(len(key) + len(value))
}
