// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package persist stores versioned aggregates in a [kvstore.Store].

An aggregate lives under "{name}_{version}". On load, the current key is tried
first, then each legacy probe in priority order. A probe whose read or decode
fails is skipped as if its key were absent. When nothing matches, the caller's
fallback is used.

Writes always target the current key. After the first successful write the
legacy keys are removed, so migrated data is read from exactly one place.
*/
package persist

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync/atomic"

	"github.com/taibuivan/closet/internal/platform/kvstore"
	"github.com/taibuivan/closet/internal/platform/notice"
)

// Notifier receives user-visible warnings.
type Notifier interface {
	Warn(ctx context.Context, code, message string)
}

// Sink is the persistence hook an owned store calls after every mutation.
type Sink[T any] interface {
	Persist(ctx context.Context, value T)
}

// Probe is one (key, decode) strategy for reading an aggregate.
type Probe[T any] struct {
	Key    string
	Decode func(data []byte) (T, error)
}

// JSONProbe decodes key with encoding/json into T.
func JSONProbe[T any](key string) Probe[T] {
	return Probe[T]{Key: key, Decode: decodeJSON[T]}
}

func decodeJSON[T any](data []byte) (T, error) {
	var value T
	err := json.Unmarshal(data, &value)
	return value, err
}

// VersionedKey builds the storage key of an aggregate. An empty version
// yields the bare, unversioned name.
func VersionedKey(name, version string) string {
	if version == "" {
		return name
	}
	return name + "_" + version
}

// Origin tells where a loaded aggregate came from.
type Origin string

const (
	OriginCurrent  Origin = "current"
	OriginLegacy   Origin = "legacy"
	OriginFallback Origin = "fallback"
)

// Aggregate reads and writes one aggregate of type T.
type Aggregate[T any] struct {
	store    kvstore.Store
	key      string
	legacy   []Probe[T]
	notifier Notifier
	logger   *slog.Logger

	legacyCleared atomic.Bool
}

// New returns an aggregate stored under VersionedKey(name, version).
// legacy probes are tried in the order given.
func New[T any](store kvstore.Store, name, version string, notifier Notifier, logger *slog.Logger, legacy ...Probe[T]) *Aggregate[T] {
	return &Aggregate[T]{
		store:    store,
		key:      VersionedKey(name, version),
		legacy:   legacy,
		notifier: notifier,
		logger:   logger.With(slog.String("aggregate", name)),
	}
}

// Key returns the current storage key.
func (a *Aggregate[T]) Key() string { return a.key }

// Load returns the first value a probe can read, or fallback() when none can.
func (a *Aggregate[T]) Load(ctx context.Context, fallback func() T) (T, Origin) {
	probes := append([]Probe[T]{JSONProbe[T](a.key)}, a.legacy...)

	for i, probe := range probes {
		data, err := a.store.Get(ctx, probe.Key)
		if err != nil {
			if !errors.Is(err, kvstore.ErrNotFound) {
				a.logger.WarnContext(ctx, "persist_read_failed",
					slog.String("key", probe.Key),
					slog.Any("error", err),
				)
			}
			continue
		}

		value, err := probe.Decode(data)
		if err != nil {
			a.logger.WarnContext(ctx, "persist_decode_failed",
				slog.String("key", probe.Key),
				slog.Any("error", err),
			)
			continue
		}

		origin := OriginCurrent
		if i > 0 {
			origin = OriginLegacy
			a.logger.InfoContext(ctx, "persist_legacy_loaded", slog.String("key", probe.Key))
		}
		return value, origin
	}

	return fallback(), OriginFallback
}

// Write encodes value under the current key and clears legacy keys once it succeeds.
func (a *Aggregate[T]) Write(ctx context.Context, value T) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("persist: encode %s: %w", a.key, err)
	}

	if err := a.store.Set(ctx, a.key, data); err != nil {
		return err
	}

	if a.legacyCleared.CompareAndSwap(false, true) {
		a.clearLegacy(ctx)
	}
	return nil
}

// Persist writes value and never fails: quota exhaustion becomes a user
// notice, anything else is logged.
func (a *Aggregate[T]) Persist(ctx context.Context, value T) {
	err := a.Write(ctx, value)
	if err == nil {
		return
	}

	if errors.Is(err, kvstore.ErrQuotaExceeded) {
		a.logger.WarnContext(ctx, "persist_quota_exceeded", slog.String("key", a.key))
		if a.notifier != nil {
			a.notifier.Warn(ctx, notice.CodeStorageQuota,
				"Storage is full. Your latest changes are kept for this session only; delete some photos or export a backup.")
		}
		return
	}

	a.logger.ErrorContext(ctx, "persist_write_failed",
		slog.String("key", a.key),
		slog.Any("error", err),
	)
}

func (a *Aggregate[T]) clearLegacy(ctx context.Context) {
	for _, probe := range a.legacy {
		if err := a.store.Delete(ctx, probe.Key); err != nil {
			a.logger.WarnContext(ctx, "persist_legacy_cleanup_failed",
				slog.String("key", probe.Key),
				slog.Any("error", err),
			)
		}
	}
}
