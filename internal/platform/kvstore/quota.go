// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package kvstore

import (
	"context"
	"fmt"
	"sync"
)

// Quota decorates a [Store] with a byte budget shared by all keys.
//
// An entry costs len(key) + len(value). Usage is measured from the inner store
// on the first write and tracked incrementally afterwards.
type Quota struct {
	inner Store
	limit int64

	mu     sync.Mutex
	sizes  map[string]int64
	used   int64
	primed bool
}

// WithQuota wraps inner with a budget of limit bytes. A non-positive limit disables the check.
func WithQuota(inner Store, limit int64) *Quota {
	return &Quota{inner: inner, limit: limit, sizes: make(map[string]int64)}
}

// Used returns the bytes currently accounted for.
func (q *Quota) Used(ctx context.Context) (int64, error) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if err := q.prime(ctx); err != nil {
		return 0, err
	}
	return q.used, nil
}

// Limit returns the configured budget.
func (q *Quota) Limit() int64 { return q.limit }

func (q *Quota) Get(ctx context.Context, key string) ([]byte, error) {
	return q.inner.Get(ctx, key)
}

func (q *Quota) Set(ctx context.Context, key string, value []byte) error {
	q.mu.Lock()
	defer q.mu.Unlock()

	if err := q.prime(ctx); err != nil {
		return err
	}

	cost := int64(len(key) + len(value))
	projected := q.used - q.sizes[key] + cost
	if q.limit > 0 && projected > q.limit {
		return fmt.Errorf("kvstore: %q needs %d bytes, %d of %d in use: %w",
			key, cost, q.used, q.limit, ErrQuotaExceeded)
	}

	if err := q.inner.Set(ctx, key, value); err != nil {
		return err
	}
	q.used = projected
	q.sizes[key] = cost
	return nil
}

func (q *Quota) Delete(ctx context.Context, key string) error {
	q.mu.Lock()
	defer q.mu.Unlock()

	if err := q.inner.Delete(ctx, key); err != nil {
		return err
	}
	q.used -= q.sizes[key]
	delete(q.sizes, key)
	return nil
}

func (q *Quota) Keys(ctx context.Context, prefix string) ([]string, error) {
	return q.inner.Keys(ctx, prefix)
}

func (q *Quota) Ping(ctx context.Context) error {
	return q.inner.Ping(ctx)
}

// prime measures existing entries once. Callers hold q.mu.
func (q *Quota) prime(ctx context.Context) error {
	if q.primed {
		return nil
	}

	keys, err := q.inner.Keys(ctx, "")
	if err != nil {
		return fmt.Errorf("kvstore: measure usage: %w", err)
	}
	for _, key := range keys {
		value, err := q.inner.Get(ctx, key)
		if err != nil {
			continue
		}
		size := int64(len(key) + len(value))
		q.sizes[key] = size
		q.used += size
	}
	q.primed = true
	return nil
}
