package kv

import (
	"context"
	"strings"

	"recyclemart/internal/errors"

	"github.com/redis/go-redis/v9"
)

const redisScanCount = 100

// Redis stores each key as a redis string under a shared prefix.
type Redis struct {
	client *redis.Client
	prefix string
}

// NewRedis wraps a redis client.
func NewRedis(client *redis.Client, prefix string) *Redis {
	return &Redis{client: client, prefix: prefix}
}

func (r *Redis) Get(ctx context.Context, key string) (string, bool, error) {
	value, err := r.client.Get(ctx, r.prefix+key).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, errors.Wrapf(err, "redis get %s", key)
	}

	return value, true, nil
}

func (r *Redis) Set(ctx context.Context, key, value string) error {
	if err := r.client.Set(ctx, r.prefix+key, value, 0).Err(); err != nil {
		return errors.Wrapf(err, "redis set %s", key)
	}

	return nil
}

func (r *Redis) Remove(ctx context.Context, key string) error {
	if err := r.client.Del(ctx, r.prefix+key).Err(); err != nil {
		return errors.Wrapf(err, "redis del %s", key)
	}

	return nil
}

// Apply runs the batch inside MULTI/EXEC.
func (r *Redis) Apply(ctx context.Context, mutations []Mutation) error {
	_, err := r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		for _, m := range compact(mutations) {
			if m.Delete {
				pipe.Del(ctx, r.prefix+m.Key)

				continue
			}
			pipe.Set(ctx, r.prefix+m.Key, m.Value, 0)
		}

		return nil
	})
	if err != nil {
		return errors.Wrap(err, "redis apply batch")
	}

	return nil
}

func (r *Redis) Keys(ctx context.Context, prefix string) ([]string, error) {
	var keys []string

	iter := r.client.Scan(ctx, 0, r.prefix+prefix+"*", redisScanCount).Iterator()
	for iter.Next(ctx) {
		keys = append(keys, strings.TrimPrefix(iter.Val(), r.prefix))
	}
	if err := iter.Err(); err != nil {
		return nil, errors.Wrap(err, "redis scan")
	}

	return sortedWithPrefix(keys, prefix), nil
}

// Ping checks the connection.
func (r *Redis) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

// Close closes the client.
func (r *Redis) Close() error {
	return r.client.Close()
}
