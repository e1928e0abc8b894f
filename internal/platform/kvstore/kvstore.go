// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package kvstore defines the string-keyed byte store that holds the closet's
three aggregates, and its backends.

Backends:

  - Memory: process-local map, used by tests and throwaway sessions.
  - File: one file per key in a data directory (default).
  - Redis: keys under a configurable prefix.
  - Postgres: rows of the closet.kv_entries table.

Every backend can be wrapped with [WithQuota] to emulate the finite budget of
a browser's local storage. A write that does not fit fails with
[ErrQuotaExceeded] and leaves the previous value untouched.
*/
package kvstore

import (
	"context"
	"errors"
)

var (
	// ErrNotFound is returned by Get when the key holds no value.
	ErrNotFound = errors.New("kvstore: key not found")

	// ErrQuotaExceeded is returned by Set when the store has no room for the value.
	ErrQuotaExceeded = errors.New("kvstore: quota exceeded")
)

// Store is a string-keyed byte store.
//
// Implementations must be safe for concurrent use.
type Store interface {
	// Get returns the value under key, or [ErrNotFound].
	Get(ctx context.Context, key string) ([]byte, error)

	// Set replaces the value under key.
	Set(ctx context.Context, key string, value []byte) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Keys lists every key starting with prefix, in no particular order.
	Keys(ctx context.Context, prefix string) ([]string, error)

	// Ping reports whether the backend is reachable.
	Ping(ctx context.Context) error
}

// clone detaches a value from the caller's buffer.
func clone(value []byte) []byte {
	if value == nil {
		return []byte{}
	}
	out := make([]byte, len(value))
	copy(out, value)
	return out
}
