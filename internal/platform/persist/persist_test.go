// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package persist_test

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/closet/internal/platform/kvstore"
	"github.com/taibuivan/closet/internal/platform/notice"
	"github.com/taibuivan/closet/internal/platform/persist"
)

type profile struct {
	Height string `json:"height"`
}

func discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newAggregate(store kvstore.Store, board *notice.Board) *persist.Aggregate[profile] {
	return persist.New(store, "body_profile", "v2", board, discard(),
		persist.JSONProbe[profile](persist.VersionedKey("body_profile", "v1")),
		persist.JSONProbe[profile](persist.VersionedKey("body_profile", "")),
	)
}

func zero() profile { return profile{} }

/*
TestVersionedKey covers suffixed and bare keys.
*/
func TestVersionedKey(t *testing.T) {
	assert.Equal(t, "outfits_v2", persist.VersionedKey("outfits", "v2"))
	assert.Equal(t, "outfits", persist.VersionedKey("outfits", ""))
}

/*
TestAggregate_Load walks the probe priority order.
*/
func TestAggregate_Load(t *testing.T) {
	tests := []struct {
		name       string
		seed       map[string]string
		wantHeight string
		wantOrigin persist.Origin
	}{
		{
			name:       "Fallback when empty",
			seed:       map[string]string{},
			wantOrigin: persist.OriginFallback,
		},
		{
			name:       "Current key wins",
			seed:       map[string]string{"body_profile_v2": `{"height":"170"}`, "body_profile_v1": `{"height":"160"}`},
			wantHeight: "170",
			wantOrigin: persist.OriginCurrent,
		},
		{
			name:       "v1 before unversioned",
			seed:       map[string]string{"body_profile_v1": `{"height":"160"}`, "body_profile": `{"height":"150"}`},
			wantHeight: "160",
			wantOrigin: persist.OriginLegacy,
		},
		{
			name:       "Corrupt current treated as absent",
			seed:       map[string]string{"body_profile_v2": `{not json`, "body_profile": `{"height":"150"}`},
			wantHeight: "150",
			wantOrigin: persist.OriginLegacy,
		},
		{
			name:       "Everything corrupt falls back",
			seed:       map[string]string{"body_profile_v2": `[`, "body_profile_v1": `"x"`},
			wantOrigin: persist.OriginFallback,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			store := kvstore.NewMemory()
			for key, value := range tt.seed {
				require.NoError(t, store.Set(ctx, key, []byte(value)))
			}

			got, origin := newAggregate(store, notice.NewBoard(4)).Load(ctx, zero)
			assert.Equal(t, tt.wantHeight, got.Height)
			assert.Equal(t, tt.wantOrigin, origin)
		})
	}
}

/*
TestAggregate_WriteClearsLegacy verifies that legacy data loads unchanged and
disappears after the first current write.
*/
func TestAggregate_WriteClearsLegacy(t *testing.T) {
	ctx := context.Background()
	store := kvstore.NewMemory()
	require.NoError(t, store.Set(ctx, "body_profile_v1", []byte(`{"height":"160"}`)))
	require.NoError(t, store.Set(ctx, "body_profile", []byte(`{"height":"150"}`)))

	aggregate := newAggregate(store, notice.NewBoard(4))
	loaded, origin := aggregate.Load(ctx, zero)
	require.Equal(t, persist.OriginLegacy, origin)
	require.Equal(t, "160", loaded.Height)

	require.NoError(t, aggregate.Write(ctx, loaded))

	keys, err := store.Keys(ctx, "body_profile")
	require.NoError(t, err)
	assert.Equal(t, []string{"body_profile_v2"}, keys)

	reloaded, origin := newAggregate(store, notice.NewBoard(4)).Load(ctx, zero)
	assert.Equal(t, persist.OriginCurrent, origin)
	assert.Equal(t, loaded, reloaded)
}

/*
TestAggregate_PersistQuota verifies that a full store posts a notice and keeps
the previous value.
*/
func TestAggregate_PersistQuota(t *testing.T) {
	ctx := context.Background()
	board := notice.NewBoard(4)
	store := kvstore.WithQuota(kvstore.NewMemory(), 64)
	aggregate := newAggregate(store, board)

	aggregate.Persist(ctx, profile{Height: "170"})
	assert.Equal(t, 0, board.Len())

	aggregate.Persist(ctx, profile{Height: strings.Repeat("9", 100)})

	notices := board.Drain()
	require.Len(t, notices, 1)
	assert.Equal(t, notice.CodeStorageQuota, notices[0].Code)

	stored, origin := aggregate.Load(ctx, zero)
	assert.Equal(t, persist.OriginCurrent, origin)
	assert.Equal(t, "170", stored.Height)
}

/*
TestAggregate_CustomProbe verifies that a legacy decoder can reshape old data.
*/
func TestAggregate_CustomProbe(t *testing.T) {
	ctx := context.Background()
	store := kvstore.NewMemory()
	require.NoError(t, store.Set(ctx, "body_profile", []byte(`170`)))

	aggregate := persist.New(store, "body_profile", "v2", nil, discard(),
		persist.Probe[profile]{
			Key: "body_profile",
			Decode: func(data []byte) (profile, error) {
				return profile{Height: string(data)}, nil
			},
		},
	)

	got, origin := aggregate.Load(ctx, zero)
	assert.Equal(t, persist.OriginLegacy, origin)
	assert.Equal(t, "170", got.Height)
}
