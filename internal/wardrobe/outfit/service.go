// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package outfit

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/taibuivan/closet/internal/platform/apperr"
	"github.com/taibuivan/closet/internal/platform/constants"
	"github.com/taibuivan/closet/internal/wardrobe/garment"
	"github.com/taibuivan/closet/pkg/slice"
	"github.com/taibuivan/closet/pkg/uuid"
)

// Detail is an outfit with its garments resolved in item order.
type Detail struct {
	Outfit
	Garments []garment.Garment `json:"garments"`
}

// GestureResult reports what a batch of pointer events did.
type GestureResult struct {
	Outcomes []Outcome `json:"outcomes"`
	State    State     `json:"state"`

	// Opened is the id of the last tapped outfit, if any.
	Opened string `json:"opened,omitempty"`
}

// # Service Layer

// Service orchestrates composing, saving and organising outfits.
type Service struct {
	catalog    *garment.Catalog
	collection *Collection
	layout     *Layout
	logger     *slog.Logger
	now        func() time.Time

	mu        sync.Mutex
	composers map[string]*Composer
	gesture   *Gesture
}

// NewService constructs a [Service].
func NewService(catalog *garment.Catalog, collection *Collection, layout *Layout, logger *slog.Logger) *Service {
	return &Service{
		catalog:    catalog,
		collection: collection,
		layout:     layout,
		logger:     logger,
		now:        time.Now,
		composers:  make(map[string]*Composer),
		gesture:    NewGesture(constants.LongPressThreshold),
	}
}

// Collection returns the underlying collection.
func (service *Service) Collection() *Collection { return service.collection }

// # Composition

// StartComposition opens an empty composer.
func (service *Service) StartComposition() Composition {
	composer := NewComposer(uuid.New(), service.layout)

	service.mu.Lock()
	service.composers[composer.ID()] = composer
	service.mu.Unlock()

	return composer.Snapshot()
}

func (service *Service) composer(id string) (*Composer, error) {
	if !uuid.Valid(id) {
		return nil, apperr.NotFound("Composition")
	}

	service.mu.Lock()
	defer service.mu.Unlock()

	composer, ok := service.composers[id]
	if !ok {
		return nil, apperr.NotFound("Composition")
	}
	return composer, nil
}

// GetComposition returns the working state of a composer.
func (service *Service) GetComposition(id string) (Composition, error) {
	composer, err := service.composer(id)
	if err != nil {
		return Composition{}, err
	}
	return composer.Snapshot(), nil
}

// RenameComposition sets the working name of a composer.
func (service *Service) RenameComposition(id, name string) (Composition, error) {
	composer, err := service.composer(id)
	if err != nil {
		return Composition{}, err
	}
	composer.Rename(name)
	return composer.Snapshot(), nil
}

// DiscardComposition drops a composer without saving.
func (service *Service) DiscardComposition(id string) error {
	service.mu.Lock()
	defer service.mu.Unlock()

	if _, ok := service.composers[id]; !ok {
		return apperr.NotFound("Composition")
	}
	delete(service.composers, id)
	return nil
}

/*
ToggleGarment adds a catalog garment to the selection, or removes it if it
is already selected.

Returns:
  - error: NOT_FOUND for an unknown composition, or for an unknown garment
    that is not currently selected
*/
func (service *Service) ToggleGarment(id, garmentID string) (Composition, error) {
	composer, err := service.composer(id)
	if err != nil {
		return Composition{}, err
	}

	g, ok := service.catalog.Get(garmentID)
	if !ok {
		// A garment deleted after being selected can still be unselected.
		if _, selected := composer.Snapshot().Positions[garmentID]; !selected {
			return Composition{}, apperr.NotFound("Garment")
		}
		g = garment.Garment{ID: garmentID}
	}

	composer.Toggle(g)
	return composer.Snapshot(), nil
}

// PlaceGarment applies a manual adjustment to a selected garment.
func (service *Service) PlaceGarment(id, garmentID string, adjustment Adjustment) (Placement, error) {
	composer, err := service.composer(id)
	if err != nil {
		return Placement{}, err
	}
	return composer.Place(garmentID, adjustment)
}

// SaveComposition saves the selection as a new outfit at the front of the collection.
func (service *Service) SaveComposition(context context.Context, id, name string) (Outfit, error) {
	composer, err := service.composer(id)
	if err != nil {
		return Outfit{}, err
	}

	lookup := func(garmentID string) (bool, bool) {
		g, ok := service.catalog.Get(garmentID)
		return ok, ok && g.HasImage()
	}

	saved, err := composer.Save(name, lookup, uuid.New(), service.now())
	if err != nil {
		return Outfit{}, err
	}

	service.collection.Prepend(context, saved)
	service.logger.InfoContext(context, "outfit_saved",
		slog.String("outfit_id", saved.ID),
		slog.Int("items", len(saved.Items)),
	)
	return saved, nil
}

// # Collection

// ListOutfits returns every saved outfit in display order.
func (service *Service) ListOutfits() []Outfit {
	return service.collection.List()
}

// GetOutfit returns an outfit with its garments. Deleted garments are skipped.
func (service *Service) GetOutfit(id string) (Detail, error) {
	o, ok := service.collection.Get(id)
	if !ok {
		return Detail{}, apperr.NotFound("Outfit")
	}
	return Detail{Outfit: o, Garments: service.Resolve(o)}, nil
}

// Resolve returns the garments of o in item order, without dangling ids.
func (service *Service) Resolve(o Outfit) []garment.Garment {
	return service.catalog.Lookup(o.Items)
}

// OutfitsContaining lists the outfits that use a garment.
func (service *Service) OutfitsContaining(garmentID string) []Outfit {
	return service.collection.ContainingGarment(garmentID)
}

// RenameOutfit commits a trimmed, non-empty name.
func (service *Service) RenameOutfit(context context.Context, id, name string) (Outfit, error) {
	renamed, err := service.collection.Rename(context, id, name)
	if err != nil {
		return Outfit{}, err
	}
	service.logger.InfoContext(context, "outfit_renamed", slog.String("outfit_id", id))
	return renamed, nil
}

/*
DeleteOutfit removes an outfit once the caller has confirmed.

Returns:
  - error: VALIDATION_ERROR without confirmation, NOT_FOUND for an unknown id
*/
func (service *Service) DeleteOutfit(context context.Context, id string, confirmed bool) error {
	if !confirmed {
		return apperr.ConfirmationRequired("Deleting an outfit")
	}
	if !service.collection.Delete(context, id) {
		return apperr.NotFound("Outfit")
	}

	service.logger.WarnContext(context, "outfit_deleted", slog.String("outfit_id", id))
	return nil
}

// MoveOutfit splices the outfit at from to position to.
func (service *Service) MoveOutfit(context context.Context, from, to int) ([]Outfit, error) {
	if err := service.collection.Move(context, from, to); err != nil {
		return nil, err
	}
	return service.collection.List(), nil
}

/*
HandleGestures feeds pointer events through the reorder state machine.

The batch is all or nothing: every resulting move is checked against the
current order before any is committed, and a rejected batch leaves both the
order and the gesture state untouched. The gesture state carries over between
calls, so a client may send events one at a time.
*/
func (service *Service) HandleGestures(context context.Context, events []Event) (GestureResult, error) {
	service.mu.Lock()
	defer service.mu.Unlock()

	before := service.gesture.State()
	order := service.collection.List()

	result := GestureResult{Outcomes: make([]Outcome, 0, len(events))}
	var moves []Outcome
	for _, event := range events {
		outcome := service.gesture.Handle(event)
		result.Outcomes = append(result.Outcomes, outcome)

		switch outcome.Kind {
		case OutcomeMove:
			if err := checkMove(len(order), outcome.From, outcome.To); err != nil {
				service.gesture.Restore(before)
				return GestureResult{}, err
			}
			order = slice.Move(order, outcome.From, outcome.To)
			moves = append(moves, outcome)
		case OutcomeTap:
			if outcome.From >= 0 && outcome.From < len(order) {
				result.Opened = order[outcome.From].ID
			}
		}
	}

	if err := service.collection.MoveAll(context, moves); err != nil {
		service.gesture.Restore(before)
		return GestureResult{}, err
	}
	for _, move := range moves {
		service.logger.InfoContext(context, "outfit_reordered",
			slog.Int("from", move.From),
			slog.Int("to", move.To),
		)
	}

	result.State = service.gesture.State()
	return result, nil
}
