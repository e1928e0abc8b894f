// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package stats derives wardrobe statistics from a catalog snapshot.

Nothing here is stored. A [Report] is recomputed on every read, so it always
reflects the latest catalog and outfit collection.
*/
package stats

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/taibuivan/closet/internal/wardrobe/garment"
)

// # Seasons

const (
	SeasonSpring    = "Spring"
	SeasonSummer    = "Summer"
	SeasonAutumn    = "Autumn"
	SeasonWinter    = "Winter"
	SeasonAllSeason = "All-season"
)

// Bucket is one labelled count.
type Bucket struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}

// CategoryBucket counts one main category and its subcategories.
type CategoryBucket struct {
	Category      garment.Category `json:"category"`
	Count         int              `json:"count"`
	SubCategories []Bucket         `json:"subCategories"`
}

// MonthBucket is the spend of one calendar month.
type MonthBucket struct {
	Month int             `json:"month"`
	Count int             `json:"count"`
	Spend decimal.Decimal `json:"spend"`
}

// AnnualSpend summarizes purchases dated in the current calendar year.
type AnnualSpend struct {
	Year    int             `json:"year"`
	Total   decimal.Decimal `json:"total"`
	Count   int             `json:"count"`
	Average decimal.Decimal `json:"average"`
	Months  []MonthBucket   `json:"months"`

	// PeakMonth is 1-12, or 0 when nothing was bought this year.
	PeakMonth int `json:"peakMonth"`
}

// PricedGarment is an entry of the most expensive garments list.
type PricedGarment struct {
	ID           string           `json:"id"`
	Name         string           `json:"name"`
	MainCategory garment.Category `json:"mainCategory"`
	Price        decimal.Decimal  `json:"price"`
}

// Usage is how many saved outfits reference a garment.
type Usage struct {
	GarmentID string `json:"garmentId"`
	Name      string `json:"name"`
	Outfits   int    `json:"outfits"`
}

// Report is the full statistics view.
type Report struct {
	TotalCount  int              `json:"totalCount"`
	TotalValue  decimal.Decimal  `json:"totalValue"`
	Categories  []CategoryBucket `json:"categories"`
	Seasons     []Bucket         `json:"seasons"`
	Colors      []Bucket         `json:"colors"`
	Annual      AnnualSpend      `json:"annual"`
	TopPriced   []PricedGarment  `json:"topPriced"`
	OutfitCount int              `json:"outfitCount"`
	Usage       []Usage          `json:"usage"`
}

// Seasons returns the season labels in display order.
func Seasons() []string {
	return []string{SeasonSpring, SeasonSummer, SeasonAutumn, SeasonWinter, SeasonAllSeason}
}

// Clock returns the current time.
type Clock func() time.Time
