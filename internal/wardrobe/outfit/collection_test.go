// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package outfit_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/closet/internal/platform/apperr"
	"github.com/taibuivan/closet/internal/wardrobe/outfit"
)

type recordingSink struct {
	writes [][]outfit.Outfit
}

func (sink *recordingSink) Persist(_ context.Context, value []outfit.Outfit) {
	sink.writes = append(sink.writes, value)
}

func named(ids ...string) []outfit.Outfit {
	out := make([]outfit.Outfit, len(ids))
	for i, id := range ids {
		out[i] = outfit.Outfit{ID: id, Name: id, Items: []string{"A"}}
	}
	return out
}

func ids(outfits []outfit.Outfit) []string {
	out := make([]string, len(outfits))
	for i, o := range outfits {
		out[i] = o.ID
	}
	return out
}

/*
TestCollection_Move covers the splice semantics and its no-op cases.
*/
func TestCollection_Move(t *testing.T) {
	tests := []struct {
		name       string
		from, to   int
		want       []string
		wantWrites int
		wantErr    bool
	}{
		{name: "Front to back", from: 0, to: 2, want: []string{"O2", "O3", "O1"}, wantWrites: 1},
		{name: "Back to front", from: 2, to: 0, want: []string{"O3", "O1", "O2"}, wantWrites: 1},
		{name: "Adjacent", from: 1, to: 2, want: []string{"O1", "O3", "O2"}, wantWrites: 1},
		{name: "Drop on itself", from: 1, to: 1, want: []string{"O1", "O2", "O3"}},
		{name: "Out of range", from: 0, to: 3, want: []string{"O1", "O2", "O3"}, wantErr: true},
		{name: "Negative", from: -1, to: 0, want: []string{"O1", "O2", "O3"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sink := &recordingSink{}
			collection := outfit.NewCollection(named("O1", "O2", "O3"), sink)

			err := collection.Move(context.Background(), tt.from, tt.to)
			if tt.wantErr {
				assert.True(t, apperr.HasCode(err, apperr.CodeValidation))
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.want, ids(collection.List()))
			assert.Len(t, sink.writes, tt.wantWrites)
		})
	}
}

/*
TestCollection_Rename verifies trimming and rejection of blank names.
*/
func TestCollection_Rename(t *testing.T) {
	ctx := context.Background()
	collection := outfit.NewCollection(named("O1"), nil)

	renamed, err := collection.Rename(ctx, "O1", "  Brunch  ")
	require.NoError(t, err)
	assert.Equal(t, "Brunch", renamed.Name)

	_, err = collection.Rename(ctx, "O1", "   ")
	assert.True(t, apperr.HasCode(err, apperr.CodeValidation))

	current, _ := collection.Get("O1")
	assert.Equal(t, "Brunch", current.Name, "prior name kept")

	_, err = collection.Rename(ctx, "nope", "x")
	assert.True(t, apperr.HasCode(err, apperr.CodeNotFound))
}

/*
TestCollection_PrependAndDelete verifies newest-first insertion and removal.
*/
func TestCollection_PrependAndDelete(t *testing.T) {
	ctx := context.Background()
	collection := outfit.NewCollection(named("O1"), nil)

	collection.Prepend(ctx, outfit.Outfit{ID: "O2", Items: []string{"A", "A", "B"}})
	assert.Equal(t, []string{"O2", "O1"}, ids(collection.List()))

	o2, _ := collection.Get("O2")
	assert.Equal(t, []string{"A", "B"}, o2.Items, "items are deduplicated")
	assert.NotNil(t, o2.Positions)

	assert.True(t, collection.Delete(ctx, "O1"))
	assert.False(t, collection.Delete(ctx, "O1"))
	assert.Equal(t, 1, collection.Len())
}

/*
TestCollection_ContainingGarment lists related outfits in display order.
*/
func TestCollection_ContainingGarment(t *testing.T) {
	collection := outfit.NewCollection([]outfit.Outfit{
		{ID: "O1", Items: []string{"A", "B"}},
		{ID: "O2", Items: []string{"C"}},
		{ID: "O3", Items: []string{"B"}},
	}, nil)

	assert.Equal(t, []string{"O1", "O3"}, ids(collection.ContainingGarment("B")))
	assert.Empty(t, collection.ContainingGarment("Z"))
}
