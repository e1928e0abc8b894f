// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package analysis

import (
	"math"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// categoryKeywords maps label words to a main category. Checked in order.
var categoryKeywords = []struct {
	category string
	words    []string
}{
	{"Shoes", []string{"shoe", "sneaker", "boot", "footwear", "sandal", "heel", "loafer", "slipper"}},
	{"Bags", []string{"bag", "handbag", "tote", "backpack", "purse", "wallet", "clutch", "luggage"}},
	{"Bottoms", []string{"trousers", "jeans", "pants", "skirt", "shorts", "leggings", "denim"}},
	{"Accessories", []string{"hat", "cap", "scarf", "belt", "jewellery", "jewelry", "necklace", "watch", "sunglasses", "glove", "tie", "earring", "bracelet"}},
	{"Tops", []string{"shirt", "t-shirt", "blouse", "sweater", "jacket", "coat", "hoodie", "top", "sleeve", "outerwear", "cardigan", "vest", "jersey", "dress"}},
}

// styleKeywords maps label words to a style suggestion.
var styleKeywords = []struct {
	style string
	words []string
}{
	{"Sporty", []string{"sportswear", "athletic", "active"}},
	{"Formal", []string{"formal", "suit", "tuxedo", "business"}},
	{"Vintage", []string{"vintage", "retro"}},
	{"Street", []string{"street"}},
	{"Casual", []string{"casual", "t-shirt", "jeans", "denim", "sneaker"}},
}

// seasonKeywords maps label words to a season suggestion.
var seasonKeywords = []struct {
	season string
	words  []string
}{
	{"Winter", []string{"coat", "sweater", "wool", "boot", "scarf", "glove", "parka"}},
	{"Summer", []string{"sandal", "shorts", "swimwear", "tank", "sun hat", "straw"}},
}

// namedColor is a reference point of the color palette.
type namedColor struct {
	name    string
	r, g, b float64
}

var palette = []namedColor{
	{"Black", 20, 20, 20},
	{"White", 245, 245, 245},
	{"Gray", 128, 128, 128},
	{"Red", 200, 30, 35},
	{"Orange", 240, 140, 20},
	{"Yellow", 240, 220, 40},
	{"Green", 40, 140, 60},
	{"Blue", 30, 80, 190},
	{"Navy", 20, 30, 80},
	{"Purple", 120, 50, 150},
	{"Pink", 240, 160, 190},
	{"Brown", 120, 75, 40},
	{"Beige", 225, 205, 170},
}

// NearestColor names the palette color closest to an RGB triple.
func NearestColor(r, g, b float64) string {
	best := ""
	bestDistance := math.MaxFloat64
	for _, c := range palette {
		distance := (r-c.r)*(r-c.r) + (g-c.g)*(g-c.g) + (b-c.b)*(b-c.b)
		if distance < bestDistance {
			best, bestDistance = c.name, distance
		}
	}
	return best
}

// FromLabels derives attributes from detection labels, most confident first,
// and an already-named dominant color.
func FromLabels(labels []string, color string) Attributes {
	attrs := Attributes{Color: color}

	for _, label := range labels {
		lower := strings.ToLower(label)

		if attrs.MainCategory == "" {
			if category := match(lower, categoryKeywords); category != "" {
				attrs.MainCategory = category
				attrs.SubCategory = cases.Title(language.English).String(lower)
			}
		}
		if attrs.Style == "" {
			attrs.Style = matchStyle(lower)
		}
		if attrs.Season == "" {
			attrs.Season = matchSeason(lower)
		}
	}

	if attrs.SubCategory != "" {
		attrs.SuggestedName = strings.TrimSpace(color + " " + attrs.SubCategory)
	}
	return attrs
}

func match(label string, table []struct {
	category string
	words    []string
}) string {
	for _, entry := range table {
		if containsAny(label, entry.words) {
			return entry.category
		}
	}
	return ""
}

func matchStyle(label string) string {
	for _, entry := range styleKeywords {
		if containsAny(label, entry.words) {
			return entry.style
		}
	}
	return ""
}

func matchSeason(label string) string {
	for _, entry := range seasonKeywords {
		if containsAny(label, entry.words) {
			return entry.season
		}
	}
	return ""
}

func containsAny(label string, words []string) bool {
	for _, word := range words {
		if strings.Contains(label, word) {
			return true
		}
	}
	return false
}
