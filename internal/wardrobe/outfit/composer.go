// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package outfit

import (
	"maps"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/taibuivan/closet/internal/platform/apperr"
	"github.com/taibuivan/closet/internal/platform/validate"
	"github.com/taibuivan/closet/internal/wardrobe/garment"
)

// Composition is a snapshot of a composer's working state.
type Composition struct {
	ID        string               `json:"id"`
	Name      string               `json:"name"`
	Items     []string             `json:"items"`
	Positions map[string]Placement `json:"positions"`
}

// Adjustment is a manual change to a placement. Nil fields are left unchanged.
type Adjustment struct {
	X            *float64 `json:"x"`
	Y            *float64 `json:"y"`
	Scale        *float64 `json:"scale"`
	Rotation     *float64 `json:"rotation"`
	BringToFront bool     `json:"bringToFront"`
}

// GarmentLookup resolves a garment id to whether it exists and has a photo.
type GarmentLookup func(id string) (exists, hasImage bool)

/*
Composer is the working selection of garments being arranged into an outfit.

It moves from empty, through any number of toggles, to a named non-empty
selection that can be saved. Every selected garment has exactly one placement.
*/
type Composer struct {
	id     string
	layout *Layout

	mu        sync.Mutex
	name      string
	items     []string
	positions map[string]Placement
	nextZ     int
}

// NewComposer returns an empty composer.
func NewComposer(id string, layout *Layout) *Composer {
	return &Composer{id: id, layout: layout, positions: make(map[string]Placement)}
}

// ID returns the composer's id.
func (composer *Composer) ID() string { return composer.id }

// Toggle flips g's membership. It reports whether g is selected afterwards.
func (composer *Composer) Toggle(g garment.Garment) bool {
	composer.mu.Lock()
	defer composer.mu.Unlock()

	if index := slices.Index(composer.items, g.ID); index >= 0 {
		composer.items = slices.Delete(composer.items, index, index+1)
		delete(composer.positions, g.ID)
		return false
	}

	composer.nextZ++
	composer.positions[g.ID] = composer.layout.DefaultPlacement(g, composer.positions, composer.nextZ)
	composer.items = append(composer.items, g.ID)
	return true
}

// Place applies a manual adjustment to a selected garment.
func (composer *Composer) Place(garmentID string, adjustment Adjustment) (Placement, error) {
	composer.mu.Lock()
	defer composer.mu.Unlock()

	placement, ok := composer.positions[garmentID]
	if !ok {
		return Placement{}, apperr.NotFound("Selected garment")
	}

	if adjustment.X != nil {
		placement.X = *adjustment.X
	}
	if adjustment.Y != nil {
		placement.Y = *adjustment.Y
	}
	if adjustment.Scale != nil {
		placement.Scale = *adjustment.Scale
	}
	if adjustment.Rotation != nil {
		placement.Rotation = *adjustment.Rotation
	}
	if adjustment.BringToFront {
		composer.nextZ++
		placement.ZIndex = composer.nextZ
	}

	placement = clampPlacement(placement)
	composer.positions[garmentID] = placement
	return placement, nil
}

// Rename sets the working name.
func (composer *Composer) Rename(name string) {
	composer.mu.Lock()
	defer composer.mu.Unlock()
	composer.name = strings.TrimSpace(name)
}

// Snapshot returns a copy of the working state.
func (composer *Composer) Snapshot() Composition {
	composer.mu.Lock()
	defer composer.mu.Unlock()

	return Composition{
		ID:        composer.id,
		Name:      composer.name,
		Items:     append([]string{}, composer.items...),
		Positions: maps.Clone(composer.positions),
	}
}

/*
Save turns the selection into an outfit and resets the composer.

The name argument overrides the working name when non-blank; when both are
blank the outfit gets a date-stamped default name.

Returns:
  - error: VALIDATION_ERROR, with no outfit produced, when nothing is selected
    or a selected garment has no photo
*/
func (composer *Composer) Save(name string, lookup GarmentLookup, id string, now time.Time) (Outfit, error) {
	composer.mu.Lock()
	defer composer.mu.Unlock()

	validator := &validate.Validator{}
	validator.Custom(FieldItems, len(composer.items) == 0, "Select at least one garment")
	for _, garmentID := range composer.items {
		exists, hasImage := lookup(garmentID)
		validator.Custom(FieldItems, !exists, "Garment "+garmentID+" no longer exists")
		validator.Custom(FieldItems, exists && !hasImage, "Garment "+garmentID+" has no photo")
	}
	if err := validator.Err(); err != nil {
		return Outfit{}, err
	}

	finalName := strings.TrimSpace(name)
	if finalName == "" {
		finalName = composer.name
	}
	if finalName == "" {
		finalName = DefaultName(now)
	}

	saved := Outfit{
		ID:        id,
		Name:      finalName,
		Items:     slices.Clone(composer.items),
		Positions: maps.Clone(composer.positions),
		CreatedAt: now.UnixMilli(),
	}

	composer.name = ""
	composer.items = nil
	composer.positions = make(map[string]Placement)
	composer.nextZ = 0
	return saved, nil
}
