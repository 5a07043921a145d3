package domain

import (
	"context"
	"time"
)

// CacheError represents an error originating from the cache.
type CacheError string

func (e CacheError) Error() string {
	return string(e)
}

// ErrCacheMiss is returned when a key or hash field is not present.
const ErrCacheMiss = CacheError("cache: key not found")

// Cache is the hash-oriented cache used for AI generated definitions.
type Cache interface {
	// HGet returns ErrCacheMiss when the field is absent.
	HGet(ctx context.Context, key, field string) (string, error)
	HSet(ctx context.Context, key, field, value string) error
	Expire(ctx context.Context, key string, expiration time.Duration) error
	Delete(ctx context.Context, key string) error
	Ping(ctx context.Context) error
}
