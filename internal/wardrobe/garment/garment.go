// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package garment manages the catalog of owned clothing items.

Core Responsibility:

  - Catalog: An owned, mutex-guarded list of garments with a persistence hook.
  - Categories: The five main categories and the coercion of free-text labels onto them.
  - Samples: The starter wardrobe shown before the user adds anything.

Deleting a garment never touches outfits. Outfits resolve their garment ids
through the catalog and silently skip ids it no longer knows.
*/
package garment

import (
	"strings"

	"golang.org/x/text/cases"

	"github.com/taibuivan/closet/internal/platform/constants"
)

// # Domain Enums

// Category is the main category of a garment.
type Category string

const (
	CategoryTops        Category = "Tops"
	CategoryBottoms     Category = "Bottoms"
	CategoryShoes       Category = "Shoes"
	CategoryBags        Category = "Bags"
	CategoryAccessories Category = "Accessories"
)

// Categories lists every main category in display order.
func Categories() []Category {
	return []Category{CategoryTops, CategoryBottoms, CategoryShoes, CategoryBags, CategoryAccessories}
}

// IsValid reports whether c is one of the five main categories.
func (c Category) IsValid() bool {
	switch c {
	case CategoryTops, CategoryBottoms, CategoryShoes, CategoryBags, CategoryAccessories:
		return true
	}
	return false
}

// categoryAliases lists the case-folded labels accepted for each category,
// including the localized labels written by the first version of the app.
var categoryAliases = map[Category][]string{
	CategoryTops:        {"tops", "top", "上装"},
	CategoryBottoms:     {"bottoms", "bottom", "下装"},
	CategoryShoes:       {"shoes", "shoe", "footwear", "鞋子"},
	CategoryBags:        {"bags", "bag", "包包"},
	CategoryAccessories: {"accessories", "accessory", "配饰"},
}

// Coerce maps a free-text label (an analyzer answer, a legacy localized label)
// onto a [Category]. ok is false when the label matches nothing.
func Coerce(label string) (category Category, ok bool) {
	key := cases.Fold().String(strings.TrimSpace(label))
	for _, candidate := range Categories() {
		for _, alias := range categoryAliases[candidate] {
			if key == alias {
				return candidate, true
			}
		}
	}
	return "", false
}

// # Domain Entities

// Garment is one owned clothing item.
type Garment struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	MainCategory    Category `json:"mainCategory"`
	SubCategory     string   `json:"subCategory"`
	ImageURL        string   `json:"imageUrl"`
	Color           string   `json:"color,omitempty"`
	Style           string   `json:"style,omitempty"`
	Brand           string   `json:"brand,omitempty"`
	Price           string   `json:"price,omitempty"`
	Size            string   `json:"size,omitempty"`
	Season          string   `json:"season,omitempty"`
	PurchaseChannel string   `json:"purchaseChannel,omitempty"`
	PurchaseDate    string   `json:"purchaseDate,omitempty"`
	Tags            []string `json:"tags"`

	// CreatedAt is a unix timestamp in milliseconds.
	CreatedAt int64 `json:"createdAt"`
}

// HasImage reports whether the garment carries a photo.
func (g Garment) HasImage() bool {
	return strings.TrimSpace(g.ImageURL) != ""
}

// normalize fills defaults and maps unknown categories. It reports whether the
// stored category had to be replaced.
func (g *Garment) normalize() (recategorized bool) {
	if strings.TrimSpace(g.SubCategory) == "" {
		g.SubCategory = constants.DefaultSubCategory
	}
	if g.MainCategory.IsValid() {
		return false
	}
	if category, ok := Coerce(string(g.MainCategory)); ok {
		g.MainCategory = category
		return false
	}
	g.MainCategory = CategoryAccessories
	return true
}

// Global field names for validation
const (
	FieldName         = "name"
	FieldMainCategory = "mainCategory"
	FieldImageURL     = "imageUrl"
	FieldPurchaseDate = "purchaseDate"
	FieldTags         = "tags"
)
