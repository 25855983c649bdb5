// Package kv provides the string-keyed persistence adapter every repository writes through,
// plus the concrete backends it can run on.
package kv

import (
	"context"
	"sort"
	"strings"

	"recyclemart/internal/errors"
)

var (
	// ErrQuotaExceeded is returned when a write would push the store past its byte quota.
	ErrQuotaExceeded = errors.New("storage quota exceeded")
	// ErrUnavailable is returned when the backend cannot be reached.
	ErrUnavailable = errors.New("storage unavailable")
)

// Store is a string-keyed key-value store holding serialized collections.
type Store interface {
	// Get returns the value under key and whether it exists.
	Get(ctx context.Context, key string) (string, bool, error)

	// Set writes value under key.
	Set(ctx context.Context, key, value string) error

	// Remove deletes key. Removing an absent key is not an error.
	Remove(ctx context.Context, key string) error

	// Apply writes every mutation in order as one batch.
	Apply(ctx context.Context, mutations []Mutation) error

	// Keys lists the keys starting with prefix in lexical order.
	Keys(ctx context.Context, prefix string) ([]string, error)
}

// Mutation is one write of a batch.
type Mutation struct {
	Key    string
	Value  string
	Delete bool
}

// Put builds a mutation that sets key to value.
func Put(key, value string) Mutation {
	return Mutation{Key: key, Value: value}
}

// Delete builds a mutation that removes key.
func Delete(key string) Mutation {
	return Mutation{Key: key, Delete: true}
}

// compact keeps only the last mutation per key, preserving first-seen order.
func compact(mutations []Mutation) []Mutation {
	last := make(map[string]int, len(mutations))
	for i, m := range mutations {
		last[m.Key] = i
	}

	out := make([]Mutation, 0, len(last))
	for i, m := range mutations {
		if last[m.Key] == i {
			out = append(out, m)
		}
	}

	return out
}

func sortedWithPrefix(keys []string, prefix string) []string {
	out := make([]string, 0, len(keys))
	for _, k := range keys {
		if strings.HasPrefix(k, prefix) {
			out = append(out, k)
		}
	}
	sort.Strings(out)

	return out
}
