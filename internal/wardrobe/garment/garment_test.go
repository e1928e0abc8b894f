// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package garment_test

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/closet/internal/platform/kvstore"
	"github.com/taibuivan/closet/internal/platform/notice"
	"github.com/taibuivan/closet/internal/platform/persist"
	"github.com/taibuivan/closet/internal/wardrobe/garment"
)

func discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

/*
TestCoerce covers English names, singulars, case and the legacy localized labels.
*/
func TestCoerce(t *testing.T) {
	tests := []struct {
		label  string
		want   garment.Category
		wantOK bool
	}{
		{"Tops", garment.CategoryTops, true},
		{"  bottoms ", garment.CategoryBottoms, true},
		{"SHOE", garment.CategoryShoes, true},
		{"Footwear", garment.CategoryShoes, true},
		{"bag", garment.CategoryBags, true},
		{"Accessory", garment.CategoryAccessories, true},
		{"上装", garment.CategoryTops, true},
		{"下装", garment.CategoryBottoms, true},
		{"鞋子", garment.CategoryShoes, true},
		{"包包", garment.CategoryBags, true},
		{"配饰", garment.CategoryAccessories, true},
		{"Outerwear", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			got, ok := garment.Coerce(tt.label)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

/*
TestGarment_JSONRoundTrip verifies the export field names and a lossless round trip.
*/
func TestGarment_JSONRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		tags []string
	}{
		{"with_tags", []string{"work"}},
		{"empty_tags", []string{}},
		{"no_tags", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			original := garment.Garment{
				ID: "0190a5c2-0000-7000-8000-000000000001", Name: "Basic White Tee",
				MainCategory: garment.CategoryTops, SubCategory: "T-Shirt",
				ImageURL: "data:image/jpeg;base64,AAAA", Price: "99", Season: "Summer",
				PurchaseDate: "2024-01-15", Tags: tt.tags, CreatedAt: 1705276800000,
			}

			data, err := json.Marshal(original)
			require.NoError(t, err)
			assert.Contains(t, string(data), `"mainCategory":"Tops"`)
			assert.Contains(t, string(data), `"createdAt":1705276800000`)

			var decoded garment.Garment
			require.NoError(t, json.Unmarshal(data, &decoded))
			assert.Equal(t, original, decoded)
		})
	}
}

/*
TestAggregate_LegacyCatalog verifies that a v1 catalog with localized labels
loads with mapped categories and is moved to the current key on first write.
*/
func TestAggregate_LegacyCatalog(t *testing.T) {
	ctx := context.Background()
	store := kvstore.NewMemory()
	legacy := `[{"id":"a","name":"白T恤","mainCategory":"上装","subCategory":"未分类","imageUrl":"x","createdAt":1}]`
	require.NoError(t, store.Set(ctx, "closet_items_v1", []byte(legacy)))

	aggregate := garment.NewAggregate(store, notice.NewBoard(4), discard())
	items, origin := aggregate.Load(ctx, func() []garment.Garment { return nil })

	require.Equal(t, persist.OriginLegacy, origin)
	require.Len(t, items, 1)
	assert.Equal(t, garment.CategoryTops, items[0].MainCategory)
	assert.Equal(t, "Uncategorized", items[0].SubCategory)
	assert.Equal(t, "白T恤", items[0].Name)

	catalog := garment.NewCatalog(items, aggregate)
	catalog.Add(ctx, garment.Garment{ID: "b", Name: "Tee", MainCategory: garment.CategoryTops, ImageURL: "y", CreatedAt: 2})

	_, err := store.Get(ctx, "closet_items_v1")
	assert.ErrorIs(t, err, kvstore.ErrNotFound)

	stored, err := store.Get(ctx, "closet_items_v2")
	require.NoError(t, err)
	assert.Contains(t, string(stored), `"id":"a"`)
	assert.Contains(t, string(stored), `"id":"b"`)
}

/*
TestSampleGarments verifies the starter wardrobe.
*/
func TestSampleGarments(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	samples := garment.SampleGarments(now)

	require.Len(t, samples, 6)
	seen := map[string]bool{}
	for _, sample := range samples {
		assert.NotEmpty(t, sample.ID)
		assert.False(t, seen[sample.ID], "ids are unique")
		seen[sample.ID] = true
		assert.True(t, sample.MainCategory.IsValid())
		assert.True(t, sample.HasImage())
	}
	assert.Equal(t, now.UnixMilli(), samples[0].CreatedAt)
	assert.Greater(t, samples[0].CreatedAt, samples[5].CreatedAt)
}
