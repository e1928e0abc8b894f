// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package outfit composes garments into saved outfits and keeps the ordered
outfit collection.

Core Responsibility:

  - Layout: The category anchor table that gives each newly selected garment its first placement.
  - Composer: A working selection that toggles garments, adjusts placements and saves an outfit.
  - Collection: The ordered list of saved outfits with rename, delete and move.
  - Gesture: The press/hold/drag state machine that turns pointer events into taps and moves.

Outfits hold garment ids only. A garment deleted from the catalog stays in
the outfit's items and positions and is skipped when the outfit is resolved.
*/
package outfit

import (
	"maps"
	"slices"
	"time"

	"github.com/taibuivan/closet/internal/platform/constants"
)

// Placement is the 2D transform of one garment on the outfit canvas.
//
// X and Y are percentages of the canvas (0 to 100). Higher ZIndex draws on top.
type Placement struct {
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
	Scale    float64 `json:"scale"`
	Rotation float64 `json:"rotation"`
	ZIndex   int     `json:"zIndex"`
}

// Outfit is a saved composition.
type Outfit struct {
	ID        string               `json:"id"`
	Name      string               `json:"name"`
	Items     []string             `json:"items"`
	Positions map[string]Placement `json:"positions"`

	// CreatedAt is a unix timestamp in milliseconds.
	CreatedAt int64 `json:"createdAt"`
}

// Contains reports whether the outfit references garmentID.
func (o Outfit) Contains(garmentID string) bool {
	return slices.Contains(o.Items, garmentID)
}

func (o Outfit) clone() Outfit {
	o.Items = slices.Clone(o.Items)
	o.Positions = maps.Clone(o.Positions)
	return o
}

// DefaultName is the name given to an outfit saved without one.
func DefaultName(now time.Time) string {
	return constants.DefaultOutfitNamePrefix + " " + now.Format("2006-01-02")
}

// Global field names for validation
const (
	FieldName  = "name"
	FieldItems = "items"
	FieldFrom  = "from"
	FieldTo    = "to"
)
