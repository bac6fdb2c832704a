// Package kv implements the durable key-value slots backing the session and
// preference stores. Each store owns one fixed key and always rewrites the
// full value.
package kv

import (
	"context"
)

// Repository is the persistence surface of the client. A missing key is not
// an error: Get returns (nil, nil).
type Repository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	List(ctx context.Context) (map[string][]byte, error)
	Clear(ctx context.Context) error
}
