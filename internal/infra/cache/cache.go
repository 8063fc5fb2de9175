// Package cache stores generated answers keyed by normalized question.
package cache

import (
	"context"
	"errors"
	"time"
)

var ErrCacheMiss = errors.New("cache miss")

type Cache interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string, ttl time.Duration) error
	Close() error
}

// Nop never stores anything.
type Nop struct{}

func (Nop) Get(context.Context, string) (string, error) { return "", ErrCacheMiss }

func (Nop) Set(context.Context, string, string, time.Duration) error { return nil }

func (Nop) Close() error { return nil }
