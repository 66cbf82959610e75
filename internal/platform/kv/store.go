// Package kv is the durable key-value layer behind per-installation state.
// Values are opaque byte blobs; a missing key reads as (nil, nil).
package kv

import (
	"context"
	"errors"
)

var ErrClosed = errors.New("kv: store closed")

type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}
