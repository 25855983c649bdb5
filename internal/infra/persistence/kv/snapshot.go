package kv

import (
	"context"
	"encoding/json"
	"sort"
	"strings"
	"time"

	"recyclemart/internal/errors"
	"recyclemart/internal/util"
)

// Snapshot is a point-in-time copy of every key under a prefix.
type Snapshot struct {
	CreatedAt time.Time         `json:"created_at"`
	Prefix    string            `json:"prefix,omitempty"`
	Checksum  string            `json:"checksum"`
	Entries   map[string]string `json:"entries"`
}

// ErrChecksumMismatch is returned when a snapshot's entries no longer match its checksum.
var ErrChecksumMismatch = errors.New("snapshot checksum mismatch")

// Export copies every key starting with prefix into a snapshot.
func Export(ctx context.Context, store Store, prefix string, now time.Time) (*Snapshot, error) {
	keys, err := store.Keys(ctx, prefix)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list keys")
	}

	snap := &Snapshot{
		CreatedAt: now.UTC(),
		Prefix:    prefix,
		Entries:   make(map[string]string, len(keys)),
	}
	for _, key := range keys {
		value, ok, err := store.Get(ctx, key)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to read %s", key)
		}
		if ok {
			snap.Entries[key] = value
		}
	}

	if snap.Checksum, err = snap.computeChecksum(); err != nil {
		return nil, err
	}

	return snap, nil
}

// Verify recomputes the checksum over the entries.
func (s *Snapshot) Verify() error {
	sum, err := s.computeChecksum()
	if err != nil {
		return err
	}
	if sum != s.Checksum {
		return errors.Wrapf(ErrChecksumMismatch, "expected %s, got %s", s.Checksum, sum)
	}

	return nil
}

// Size is the number of key and value bytes held by the snapshot.
func (s *Snapshot) Size() int64 {
	var size int64
	for key, value := range s.Entries {
		size += int64(len(key) + len(value))
	}

	return size
}

// Import writes the snapshot back as one batch. With replace set, keys under the
// snapshot prefix that the snapshot does not hold are removed.
func Import(ctx context.Context, store Store, snap *Snapshot, replace bool) (int, error) {
	mutations := make([]Mutation, 0, len(snap.Entries))

	if replace {
		existing, err := store.Keys(ctx, snap.Prefix)
		if err != nil {
			return 0, errors.Wrap(err, "failed to list keys")
		}
		for _, key := range existing {
			if _, keep := snap.Entries[key]; !keep {
				mutations = append(mutations, Delete(key))
			}
		}
	}

	for _, key := range sortedKeys(snap.Entries) {
		mutations = append(mutations, Put(key, snap.Entries[key]))
	}

	if err := store.Apply(ctx, mutations); err != nil {
		return 0, errors.Wrap(err, "failed to restore snapshot")
	}

	return len(snap.Entries), nil
}

// computeChecksum hashes the entries in key order, one JSON-encoded pair per line.
func (s *Snapshot) computeChecksum() (string, error) {
	var b strings.Builder
	for _, key := range sortedKeys(s.Entries) {
		line, err := json.Marshal([2]string{key, s.Entries[key]})
		if err != nil {
			return "", errors.WithStack(err)
		}
		b.Write(line)
		b.WriteByte('\n')
	}

	return util.CalculateChecksum(strings.NewReader(b.String()))
}

func sortedKeys(entries map[string]string) []string {
	keys := make([]string, 0, len(entries))
	for key := range entries {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	return keys
}
