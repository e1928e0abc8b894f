package stats

import (
	"cmp"
	"slices"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/text/cases"

	"github.com/taibuivan/closet/internal/platform/constants"
	"github.com/taibuivan/closet/internal/wardrobe/garment"
	"github.com/taibuivan/closet/internal/wardrobe/outfit"
	"github.com/taibuivan/closet/pkg/money"
)

// purchaseDateLayout is the ISO date stored in purchaseDate.
const purchaseDateLayout = "2006-01-02"

// seasonAliases lists the folded substrings that select each season.
var seasonAliases = map[string][]string{
	SeasonSpring:    {"spring", "春"},
	SeasonSummer:    {"summer", "夏"},
	SeasonAutumn:    {"autumn", "fall", "秋"},
	SeasonWinter:    {"winter", "冬"},
	SeasonAllSeason: {"all-season", "all season", "四季"},
}

// Aggregator computes reports against an injected clock.
type Aggregator struct {
	now Clock
}

// NewAggregator returns an aggregator. A nil clock means [time.Now].
func NewAggregator(now Clock) *Aggregator {
	if now == nil {
		now = time.Now
	}
	return &Aggregator{now: now}
}

/*
Compute builds a [Report] from one snapshot.

Parameters:
  - garments: []garment.Garment (catalog order, newest first)
  - outfits: []outfit.Outfit (may be nil)

Returns:
  - Report
*/
func (aggregator *Aggregator) Compute(garments []garment.Garment, outfits []outfit.Outfit) Report {
	raws := make([]string, len(garments))
	prices := make([]decimal.Decimal, len(garments))
	for i, g := range garments {
		raws[i] = g.Price
		prices[i] = money.Parse(g.Price)
	}

	return Report{
		TotalCount:  len(garments),
		TotalValue:  money.Sum(raws...),
		Categories:  categoryHistogram(garments),
		Seasons:     seasonHistogram(garments),
		Colors:      colorHistogram(garments),
		Annual:      annualSpend(garments, prices, aggregator.now().Year()),
		TopPriced:   topPriced(garments, prices),
		OutfitCount: len(outfits),
		Usage:       usage(garments, outfits),
	}
}

func categoryHistogram(garments []garment.Garment) []CategoryBucket {
	buckets := make([]CategoryBucket, 0, len(garment.Categories()))
	index := make(map[garment.Category]int)
	for _, category := range garment.Categories() {
		index[category] = len(buckets)
		buckets = append(buckets, CategoryBucket{Category: category, SubCategories: []Bucket{}})
	}

	for _, g := range garments {
		position, ok := index[g.MainCategory]
		if !ok {
			continue
		}

		bucket := &buckets[position]
		bucket.Count++

		sub := g.SubCategory
		if sub == "" {
			sub = constants.DefaultSubCategory
		}
		bucket.SubCategories = increment(bucket.SubCategories, sub)
	}
	return buckets
}

func seasonHistogram(garments []garment.Garment) []Bucket {
	labels := Seasons()
	counts := make(map[string]int, len(labels))
	folder := cases.Fold()

	for _, g := range garments {
		season := folder.String(strings.TrimSpace(g.Season))

		matched := false
		for _, label := range labels {
			if matchesAny(season, seasonAliases[label]) {
				counts[label]++
				matched = true
			}
		}
		if !matched {
			counts[SeasonAllSeason]++
		}
	}

	buckets := make([]Bucket, 0, len(labels))
	for _, label := range labels {
		buckets = append(buckets, Bucket{Label: label, Count: counts[label]})
	}
	return buckets
}

func matchesAny(value string, needles []string) bool {
	if value == "" {
		return false
	}
	for _, needle := range needles {
		if strings.Contains(value, needle) {
			return true
		}
	}
	return false
}

func colorHistogram(garments []garment.Garment) []Bucket {
	folder := cases.Fold()
	buckets := []Bucket{}

	for _, g := range garments {
		key := colorKey(folder.String(g.Color))
		if key == "" {
			continue
		}
		buckets = increment(buckets, key)
	}

	// Stable keeps first-seen order among equal counts.
	slices.SortStableFunc(buckets, func(a, b Bucket) int {
		return cmp.Compare(b.Count, a.Count)
	})

	if len(buckets) > constants.TopColorBuckets {
		buckets = buckets[:constants.TopColorBuckets]
	}
	return buckets
}

// colorKey reduces "Navy Blue / White" to "navy b".
func colorKey(folded string) string {
	first, _, _ := strings.Cut(folded, "/")
	first = strings.TrimSpace(first)

	runes := []rune(first)
	if len(runes) > constants.ColorKeyRunes {
		runes = runes[:constants.ColorKeyRunes]
	}
	return strings.TrimSpace(string(runes))
}

func annualSpend(garments []garment.Garment, prices []decimal.Decimal, year int) AnnualSpend {
	months := make([]MonthBucket, 12)
	for i := range months {
		months[i] = MonthBucket{Month: i + 1, Spend: decimal.Zero}
	}

	spend := AnnualSpend{Year: year, Total: decimal.Zero, Average: decimal.Zero}
	for i, g := range garments {
		purchased, err := time.Parse(purchaseDateLayout, strings.TrimSpace(g.PurchaseDate))
		if err != nil || purchased.Year() != year {
			continue
		}

		bucket := &months[purchased.Month()-1]
		bucket.Count++
		bucket.Spend = bucket.Spend.Add(prices[i])

		spend.Count++
		spend.Total = spend.Total.Add(prices[i])
	}

	if spend.Count > 0 {
		spend.Average = spend.Total.Div(decimal.NewFromInt(int64(spend.Count))).Round(2)
	}

	peak := 0
	for _, bucket := range months {
		if bucket.Count > 0 && (peak == 0 || bucket.Count > months[peak-1].Count) {
			peak = bucket.Month
		}
	}

	spend.Months = months
	spend.PeakMonth = peak
	return spend
}

func topPriced(garments []garment.Garment, prices []decimal.Decimal) []PricedGarment {
	priced := make([]PricedGarment, 0, len(garments))
	for i, g := range garments {
		if !prices[i].IsPositive() {
			continue
		}
		priced = append(priced, PricedGarment{ID: g.ID, Name: g.Name, MainCategory: g.MainCategory, Price: prices[i]})
	}

	slices.SortStableFunc(priced, func(a, b PricedGarment) int {
		return b.Price.Cmp(a.Price)
	})

	if len(priced) > constants.TopPricedGarments {
		priced = priced[:constants.TopPricedGarments]
	}
	return priced
}

func usage(garments []garment.Garment, outfits []outfit.Outfit) []Usage {
	counts := make(map[string]int, len(garments))
	for _, o := range outfits {
		for _, id := range o.Items {
			counts[id]++
		}
	}

	// Only catalog garments are reported, so dangling ids drop out here.
	result := make([]Usage, 0, len(garments))
	for _, g := range garments {
		result = append(result, Usage{GarmentID: g.ID, Name: g.Name, Outfits: counts[g.ID]})
	}
	return result
}

func increment(buckets []Bucket, label string) []Bucket {
	for i := range buckets {
		if buckets[i].Label == label {
			buckets[i].Count++
			return buckets
		}
	}
	return append(buckets, Bucket{Label: label, Count: 1})
}
