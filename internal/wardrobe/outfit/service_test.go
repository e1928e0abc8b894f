// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package outfit_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/closet/internal/platform/apperr"
	"github.com/taibuivan/closet/internal/wardrobe/garment"
	"github.com/taibuivan/closet/internal/wardrobe/outfit"
)

func newService(t *testing.T, garments ...garment.Garment) (*outfit.Service, *garment.Catalog) {
	t.Helper()

	catalog := garment.NewCatalog(garments, nil)
	service := outfit.NewService(catalog, outfit.NewCollection(nil, nil), seededLayout(), discard())
	return service, catalog
}

/*
TestService_ComposeAndSave drives a composer from toggle to saved outfit.
*/
func TestService_ComposeAndSave(t *testing.T) {
	ctx := context.Background()
	service, _ := newService(t, tee(), sneakers())

	composition := service.StartComposition()
	_, err := service.ToggleGarment(composition.ID, "A")
	require.NoError(t, err)
	composition, err = service.ToggleGarment(composition.ID, "B")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B"}, composition.Items)

	_, err = service.ToggleGarment(composition.ID, "ghost")
	assert.True(t, apperr.HasCode(err, apperr.CodeNotFound))

	saved, err := service.SaveComposition(ctx, composition.ID, "Weekend")
	require.NoError(t, err)
	assert.Equal(t, "Weekend", saved.Name)

	second := service.StartComposition()
	_, err = service.ToggleGarment(second.ID, "B")
	require.NoError(t, err)
	newer, err := service.SaveComposition(ctx, second.ID, "")
	require.NoError(t, err)

	assert.Equal(t, []string{newer.ID, saved.ID}, ids(service.ListOutfits()), "newest first")

	_, err = service.SaveComposition(ctx, "unknown", "")
	assert.True(t, apperr.HasCode(err, apperr.CodeNotFound))
}

/*
TestService_DeletedGarmentStaysReferenced verifies that deleting a garment
leaves outfits intact but filters it from resolved lists.
*/
func TestService_DeletedGarmentStaysReferenced(t *testing.T) {
	ctx := context.Background()
	service, catalog := newService(t, tee(), sneakers())

	composition := service.StartComposition()
	_, _ = service.ToggleGarment(composition.ID, "A")
	_, _ = service.ToggleGarment(composition.ID, "B")
	saved, err := service.SaveComposition(ctx, composition.ID, "")
	require.NoError(t, err)

	require.True(t, catalog.Delete(ctx, "A"))

	detail, err := service.GetOutfit(saved.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B"}, detail.Items)
	assert.Contains(t, detail.Positions, "A")
	require.Len(t, detail.Garments, 1)
	assert.Equal(t, "B", detail.Garments[0].ID)

	assert.Len(t, service.OutfitsContaining("A"), 1, "related outfits still list the deleted garment")
}

/*
TestService_SaveWithDeletedSelection verifies that a selection pointing at a
deleted garment cannot be saved but can be unselected.
*/
func TestService_SaveWithDeletedSelection(t *testing.T) {
	ctx := context.Background()
	service, catalog := newService(t, tee(), sneakers())

	composition := service.StartComposition()
	_, _ = service.ToggleGarment(composition.ID, "A")
	_, _ = service.ToggleGarment(composition.ID, "B")
	catalog.Delete(ctx, "A")

	_, err := service.SaveComposition(ctx, composition.ID, "")
	assert.True(t, apperr.HasCode(err, apperr.CodeValidation))

	updated, err := service.ToggleGarment(composition.ID, "A")
	require.NoError(t, err)
	assert.Equal(t, []string{"B"}, updated.Items)

	_, err = service.SaveComposition(ctx, composition.ID, "")
	assert.NoError(t, err)
}

/*
TestService_DeleteOutfitNeedsConfirmation verifies the confirmation guard.
*/
func TestService_DeleteOutfitNeedsConfirmation(t *testing.T) {
	ctx := context.Background()
	service, catalog := newService(t, tee())

	composition := service.StartComposition()
	_, _ = service.ToggleGarment(composition.ID, "A")
	saved, err := service.SaveComposition(ctx, composition.ID, "")
	require.NoError(t, err)

	err = service.DeleteOutfit(ctx, saved.ID, false)
	assert.True(t, apperr.HasCode(err, apperr.CodeValidation))
	assert.Len(t, service.ListOutfits(), 1)

	require.NoError(t, service.DeleteOutfit(ctx, saved.ID, true))
	assert.Empty(t, service.ListOutfits())
	assert.Equal(t, 1, catalog.Len(), "catalog untouched")

	assert.True(t, apperr.HasCode(service.DeleteOutfit(ctx, saved.ID, true), apperr.CodeNotFound))
}

/*
TestService_HandleGestures verifies that gesture moves are committed and taps
report the opened outfit.
*/
func TestService_HandleGestures(t *testing.T) {
	ctx := context.Background()
	catalog := garment.NewCatalog(nil, nil)
	collection := outfit.NewCollection(named("O1", "O2", "O3"), nil)
	service := outfit.NewService(catalog, collection, seededLayout(), discard())

	result, err := service.HandleGestures(ctx, []outfit.Event{
		ev(outfit.EventPress, 0, 1000),
		ev(outfit.EventHold, 0, 1600),
		ev(outfit.EventOver, 2, 1700),
		ev(outfit.EventDrop, 2, 1800),
	})
	require.NoError(t, err)
	assert.Equal(t, outfit.StateIdle, result.State.Kind)
	assert.Equal(t, []string{"O2", "O3", "O1"}, ids(service.ListOutfits()))

	// The press carries over to the next call.
	_, err = service.HandleGestures(ctx, []outfit.Event{ev(outfit.EventPress, 1, 2000)})
	require.NoError(t, err)
	result, err = service.HandleGestures(ctx, []outfit.Event{ev(outfit.EventRelease, 1, 2100)})
	require.NoError(t, err)
	assert.Equal(t, "O3", result.Opened)

	_, err = service.HandleGestures(ctx, []outfit.Event{ev(outfit.EventDragStart, 0, 0), ev(outfit.EventDrop, 9, 1)})
	assert.True(t, apperr.HasCode(err, apperr.CodeValidation))
	assert.Equal(t, []string{"O2", "O3", "O1"}, ids(service.ListOutfits()))
}

/*
TestService_HandleGesturesBatchIsAtomic verifies that a batch with one invalid
drop commits none of its moves and keeps the prior gesture state.
*/
func TestService_HandleGesturesBatchIsAtomic(t *testing.T) {
	ctx := context.Background()
	sink := &recordingSink{}
	collection := outfit.NewCollection(named("O1", "O2", "O3"), sink)
	service := outfit.NewService(garment.NewCatalog(nil, nil), collection, seededLayout(), discard())

	_, err := service.HandleGestures(ctx, []outfit.Event{ev(outfit.EventPress, 1, 1000)})
	require.NoError(t, err)

	_, err = service.HandleGestures(ctx, []outfit.Event{
		ev(outfit.EventDragStart, 0, 1100),
		ev(outfit.EventDrop, 2, 1200),
		ev(outfit.EventDragStart, 0, 1300),
		ev(outfit.EventDrop, 9, 1400),
	})
	require.Error(t, err)
	assert.True(t, apperr.HasCode(err, apperr.CodeValidation))
	assert.Equal(t, []string{"O1", "O2", "O3"}, ids(service.ListOutfits()))
	assert.Empty(t, sink.writes, "nothing persisted")

	// The pending press survives the rejected batch.
	result, err := service.HandleGestures(ctx, []outfit.Event{ev(outfit.EventRelease, 1, 1050)})
	require.NoError(t, err)
	assert.Equal(t, "O2", result.Opened)

	// A valid batch with two moves is written once.
	_, err = service.HandleGestures(ctx, []outfit.Event{
		ev(outfit.EventDragStart, 0, 2000),
		ev(outfit.EventDrop, 2, 2100),
		ev(outfit.EventDragStart, 0, 2200),
		ev(outfit.EventDrop, 1, 2300),
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"O3", "O2", "O1"}, ids(service.ListOutfits()))
	assert.Len(t, sink.writes, 1)
}
