// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package outfit_test

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/taibuivan/closet/internal/wardrobe/garment"
	"github.com/taibuivan/closet/internal/wardrobe/outfit"
)

func seededLayout() *outfit.Layout {
	return outfit.NewLayout(rand.NewPCG(1, 2))
}

/*
TestDefaultPlacement_Anchors verifies the anchor of every category.
*/
func TestDefaultPlacement_Anchors(t *testing.T) {
	tests := []struct {
		category garment.Category
		want     outfit.Placement
	}{
		{garment.CategoryTops, outfit.Placement{X: 50, Y: 35, Scale: 1.3, Rotation: -2, ZIndex: 1}},
		{garment.CategoryBottoms, outfit.Placement{X: 50, Y: 65, Scale: 1.2, Rotation: 3, ZIndex: 1}},
		{garment.CategoryShoes, outfit.Placement{X: 30, Y: 85, Scale: 0.8, Rotation: 15, ZIndex: 1}},
		{garment.CategoryBags, outfit.Placement{X: 75, Y: 75, Scale: 1.0, Rotation: -10, ZIndex: 1}},
	}

	layout := seededLayout()
	for _, tt := range tests {
		t.Run(string(tt.category), func(t *testing.T) {
			got := layout.DefaultPlacement(garment.Garment{ID: "g", MainCategory: tt.category}, nil, 1)
			assert.Equal(t, tt.want, got)
		})
	}
}

/*
TestDefaultPlacement_Jitter verifies that accessories and unknown categories
are centred with a bounded, reproducible rotation.
*/
func TestDefaultPlacement_Jitter(t *testing.T) {
	first, second := seededLayout(), seededLayout()

	for i := range 50 {
		category := garment.CategoryAccessories
		if i%2 == 1 {
			category = "Hats"
		}
		g := garment.Garment{ID: "g", MainCategory: category}

		a := first.DefaultPlacement(g, nil, i)
		b := second.DefaultPlacement(g, nil, i)

		assert.Equal(t, a, b, "same seed, same layout")
		assert.Equal(t, 50.0, a.X)
		assert.Equal(t, 50.0, a.Y)
		assert.Equal(t, 1.0, a.Scale)
		assert.GreaterOrEqual(t, a.Rotation, -5.0)
		assert.LessOrEqual(t, a.Rotation, 5.0)
	}
}

/*
TestDefaultPlacement_Idempotent verifies that a placed garment keeps its placement.
*/
func TestDefaultPlacement_Idempotent(t *testing.T) {
	existing := map[string]outfit.Placement{
		"g": {X: 10, Y: 20, Scale: 2, Rotation: 45, ZIndex: 7},
	}

	got := seededLayout().DefaultPlacement(garment.Garment{ID: "g", MainCategory: garment.CategoryTops}, existing, 99)
	assert.Equal(t, existing["g"], got)
}
