package kv

import (
	"context"
	"io"
	"strings"

	"recyclemart/internal/errors"

	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob" // file:// buckets
	_ "gocloud.dev/blob/memblob"  // mem:// buckets
	"gocloud.dev/gcerrors"
)

// Blob stores each key as one object in a gocloud bucket.
// Buckets have no multi-object transactions, so Apply writes objects one by one.
type Blob struct {
	bucket *blob.Bucket
	prefix string
}

// OpenBlob opens the bucket at bucketURL, e.g. "file:///var/lib/recyclemart" or "mem://".
func OpenBlob(ctx context.Context, bucketURL, prefix string) (*Blob, error) {
	bucket, err := blob.OpenBucket(ctx, bucketURL)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open bucket %s", bucketURL)
	}

	return NewBlob(bucket, prefix), nil
}

// NewBlob wraps an opened bucket.
func NewBlob(bucket *blob.Bucket, prefix string) *Blob {
	return &Blob{bucket: bucket, prefix: prefix}
}

func (b *Blob) Get(ctx context.Context, key string) (string, bool, error) {
	data, err := b.bucket.ReadAll(ctx, b.prefix+key)
	if err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return "", false, nil
		}

		return "", false, errors.Wrapf(err, "failed to read %s", key)
	}

	return string(data), true, nil
}

func (b *Blob) Set(ctx context.Context, key, value string) error {
	opts := &blob.WriterOptions{ContentType: "application/json"}
	if err := b.bucket.WriteAll(ctx, b.prefix+key, []byte(value), opts); err != nil {
		return errors.Wrapf(err, "failed to write %s", key)
	}

	return nil
}

func (b *Blob) Remove(ctx context.Context, key string) error {
	if err := b.bucket.Delete(ctx, b.prefix+key); err != nil && gcerrors.Code(err) != gcerrors.NotFound {
		return errors.Wrapf(err, "failed to delete %s", key)
	}

	return nil
}

func (b *Blob) Apply(ctx context.Context, mutations []Mutation) error {
	for _, m := range compact(mutations) {
		var err error
		if m.Delete {
			err = b.Remove(ctx, m.Key)
		} else {
			err = b.Set(ctx, m.Key, m.Value)
		}
		if err != nil {
			return err
		}
	}

	return nil
}

func (b *Blob) Keys(ctx context.Context, prefix string) ([]string, error) {
	iter := b.bucket.List(&blob.ListOptions{Prefix: b.prefix + prefix})

	var keys []string
	for {
		obj, err := iter.Next(ctx)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, errors.Wrap(err, "failed to list bucket")
		}
		if obj.IsDir {
			continue
		}
		keys = append(keys, strings.TrimPrefix(obj.Key, b.prefix))
	}

	return sortedWithPrefix(keys, prefix), nil
}

// Close releases the bucket.
func (b *Blob) Close() error {
	return b.bucket.Close()
}
