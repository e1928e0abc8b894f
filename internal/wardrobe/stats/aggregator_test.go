// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package stats_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/closet/internal/wardrobe/garment"
	"github.com/taibuivan/closet/internal/wardrobe/outfit"
	"github.com/taibuivan/closet/internal/wardrobe/stats"
)

func fixedClock() time.Time {
	return time.Date(2026, time.October, 16, 9, 0, 0, 0, time.UTC)
}

func counts(buckets []stats.Bucket) map[string]int {
	result := make(map[string]int, len(buckets))
	for _, bucket := range buckets {
		result[bucket.Label] = bucket.Count
	}
	return result
}

/*
TestAggregator_Scenario verifies spend and histogram for one dated and one undated garment.
*/
func TestAggregator_Scenario(t *testing.T) {
	garments := []garment.Garment{
		{ID: "a", Name: "A", MainCategory: garment.CategoryTops, SubCategory: "T-Shirt", Price: "100", PurchaseDate: "2026-03-02"},
		{ID: "b", Name: "B", MainCategory: garment.CategoryShoes, SubCategory: "Sneakers", Price: "50"},
	}

	report := stats.NewAggregator(fixedClock).Compute(garments, nil)

	assert.Equal(t, 2, report.TotalCount)
	assert.Equal(t, "150", report.TotalValue.String())
	assert.Equal(t, "100", report.Annual.Total.String())
	assert.Equal(t, 1, report.Annual.Count)
	assert.Equal(t, "100", report.Annual.Average.String())
	assert.Equal(t, 3, report.Annual.PeakMonth)
	assert.Equal(t, 2026, report.Annual.Year)
	require.Len(t, report.Annual.Months, 12)
	assert.Equal(t, 1, report.Annual.Months[2].Count)

	require.Len(t, report.Categories, 5)
	histogram := map[garment.Category]int{}
	for _, bucket := range report.Categories {
		histogram[bucket.Category] = bucket.Count
	}
	assert.Equal(t, map[garment.Category]int{
		garment.CategoryTops:        1,
		garment.CategoryBottoms:     0,
		garment.CategoryShoes:       1,
		garment.CategoryBags:        0,
		garment.CategoryAccessories: 0,
	}, histogram)
	assert.Equal(t, []stats.Bucket{{Label: "T-Shirt", Count: 1}}, report.Categories[0].SubCategories)
}

/*
TestAggregator_Empty verifies zero values on an empty catalog.
*/
func TestAggregator_Empty(t *testing.T) {
	report := stats.NewAggregator(fixedClock).Compute(nil, nil)

	assert.Zero(t, report.TotalCount)
	assert.True(t, report.TotalValue.IsZero())
	assert.True(t, report.Annual.Average.IsZero())
	assert.Zero(t, report.Annual.PeakMonth)
	assert.Empty(t, report.Colors)
	assert.Empty(t, report.TopPriced)
	assert.Len(t, report.Categories, 5)
}

/*
TestAggregator_Seasons verifies substring matching and the All-season fallback.
*/
func TestAggregator_Seasons(t *testing.T) {
	garments := []garment.Garment{
		{ID: "1", MainCategory: garment.CategoryTops, Season: "Spring/Autumn"},
		{ID: "2", MainCategory: garment.CategoryTops, Season: "WINTER"},
		{ID: "3", MainCategory: garment.CategoryTops, Season: "夏"},
		{ID: "4", MainCategory: garment.CategoryTops, Season: "四季"},
		{ID: "5", MainCategory: garment.CategoryTops},
		{ID: "6", MainCategory: garment.CategoryTops, Season: "rainy"},
	}

	report := stats.NewAggregator(fixedClock).Compute(garments, nil)

	assert.Equal(t, map[string]int{
		stats.SeasonSpring:    1,
		stats.SeasonSummer:    1,
		stats.SeasonAutumn:    1,
		stats.SeasonWinter:    1,
		stats.SeasonAllSeason: 3,
	}, counts(report.Seasons))
}

/*
TestAggregator_Colors verifies bucketing, truncation and tie order.
*/
func TestAggregator_Colors(t *testing.T) {
	colors := []string{"Navy Blue / White", "navy blazer", "Red", "Black", "black", "Green", "Pink", "Gray", "Beige", ""}
	garments := make([]garment.Garment, 0, len(colors))
	for _, color := range colors {
		garments = append(garments, garment.Garment{MainCategory: garment.CategoryTops, Color: color})
	}

	report := stats.NewAggregator(fixedClock).Compute(garments, nil)

	require.Len(t, report.Colors, 6)
	assert.Equal(t, stats.Bucket{Label: "navy b", Count: 2}, report.Colors[0])
	assert.Equal(t, stats.Bucket{Label: "black", Count: 2}, report.Colors[1])
	assert.Equal(t, stats.Bucket{Label: "red", Count: 1}, report.Colors[2])
	assert.Equal(t, "gray", report.Colors[5].Label)
}

/*
TestAggregator_TopPricedAndUsage verifies price ranking and outfit usage counts.
*/
func TestAggregator_TopPricedAndUsage(t *testing.T) {
	garments := []garment.Garment{
		{ID: "a", Name: "A", MainCategory: garment.CategoryTops, Price: "¥1,200"},
		{ID: "b", Name: "B", MainCategory: garment.CategoryBags, Price: "800"},
		{ID: "c", Name: "C", MainCategory: garment.CategoryShoes, Price: "1200"},
		{ID: "d", Name: "D", MainCategory: garment.CategoryBottoms, Price: "50"},
		{ID: "e", Name: "E", MainCategory: garment.CategoryBottoms, Price: "free"},
	}
	outfits := []outfit.Outfit{
		{ID: "o1", Items: []string{"a", "b", "ghost"}},
		{ID: "o2", Items: []string{"a"}},
	}

	report := stats.NewAggregator(fixedClock).Compute(garments, outfits)

	require.Len(t, report.TopPriced, 3)
	assert.Equal(t, "a", report.TopPriced[0].ID, "ties keep catalog order")
	assert.Equal(t, "c", report.TopPriced[1].ID)
	assert.Equal(t, "b", report.TopPriced[2].ID)

	assert.Equal(t, 2, report.OutfitCount)
	require.Len(t, report.Usage, 5)
	assert.Equal(t, 2, report.Usage[0].Outfits)
	assert.Equal(t, 1, report.Usage[1].Outfits)
	assert.Zero(t, report.Usage[2].Outfits)
}

/*
TestAggregator_PeakMonth verifies ties resolve to the earliest month.
*/
func TestAggregator_PeakMonth(t *testing.T) {
	garments := []garment.Garment{
		{MainCategory: garment.CategoryTops, Price: "10", PurchaseDate: "2026-05-01"},
		{MainCategory: garment.CategoryTops, Price: "20", PurchaseDate: "2026-02-01"},
		{MainCategory: garment.CategoryTops, Price: "30", PurchaseDate: "2025-02-01"},
	}

	report := stats.NewAggregator(fixedClock).Compute(garments, nil)

	assert.Equal(t, 2, report.Annual.PeakMonth)
	assert.Equal(t, 2, report.Annual.Count)
	assert.Equal(t, "15", report.Annual.Average.String())
}
