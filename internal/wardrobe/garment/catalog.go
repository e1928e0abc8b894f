// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package garment

import (
	"context"
	"slices"
	"sync"

	"github.com/taibuivan/closet/internal/platform/persist"
)

// Catalog is the owned list of garments.
//
// Each mutation and its persistence write run under the catalog lock, so
// writes land in mutation order and readers never see a half-applied change.
type Catalog struct {
	mu    sync.RWMutex
	items []Garment
	sink  persist.Sink[[]Garment]
}

// NewCatalog returns a catalog holding initial. sink may be nil.
func NewCatalog(initial []Garment, sink persist.Sink[[]Garment]) *Catalog {
	items := make([]Garment, len(initial))
	copy(items, initial)
	for i := range items {
		items[i].normalize()
	}
	return &Catalog{items: items, sink: sink}
}

// List returns a snapshot of every garment, newest first.
func (catalog *Catalog) List() []Garment {
	catalog.mu.RLock()
	defer catalog.mu.RUnlock()

	out := cloneAll(catalog.items)
	slices.SortStableFunc(out, func(a, b Garment) int {
		switch {
		case a.CreatedAt > b.CreatedAt:
			return -1
		case a.CreatedAt < b.CreatedAt:
			return 1
		}
		return 0
	})
	return out
}

// Len returns the number of garments.
func (catalog *Catalog) Len() int {
	catalog.mu.RLock()
	defer catalog.mu.RUnlock()
	return len(catalog.items)
}

// Get returns the garment with id.
func (catalog *Catalog) Get(id string) (Garment, bool) {
	catalog.mu.RLock()
	defer catalog.mu.RUnlock()

	index := catalog.indexOf(id)
	if index < 0 {
		return Garment{}, false
	}
	return clone(catalog.items[index]), true
}

// Lookup returns the garments for ids in the given order. Unknown ids are skipped.
func (catalog *Catalog) Lookup(ids []string) []Garment {
	catalog.mu.RLock()
	defer catalog.mu.RUnlock()

	out := make([]Garment, 0, len(ids))
	for _, id := range ids {
		if index := catalog.indexOf(id); index >= 0 {
			out = append(out, clone(catalog.items[index]))
		}
	}
	return out
}

// Add inserts a garment at the front of the catalog.
func (catalog *Catalog) Add(context context.Context, garment Garment) Garment {
	catalog.mu.Lock()
	defer catalog.mu.Unlock()

	garment.normalize()
	catalog.items = append([]Garment{clone(garment)}, catalog.items...)
	catalog.persist(context)
	return garment
}

// Update applies mutate to the garment with id. The id itself cannot change.
func (catalog *Catalog) Update(context context.Context, id string, mutate func(*Garment)) (Garment, bool) {
	catalog.mu.Lock()
	defer catalog.mu.Unlock()

	index := catalog.indexOf(id)
	if index < 0 {
		return Garment{}, false
	}

	updated := clone(catalog.items[index])
	mutate(&updated)
	updated.ID = id
	updated.normalize()

	catalog.items[index] = updated
	catalog.persist(context)
	return clone(updated), true
}

// Delete removes the garment with id. Outfits referencing it are left alone.
func (catalog *Catalog) Delete(context context.Context, id string) bool {
	catalog.mu.Lock()
	defer catalog.mu.Unlock()

	index := catalog.indexOf(id)
	if index < 0 {
		return false
	}

	catalog.items = slices.Delete(catalog.items, index, index+1)
	catalog.persist(context)
	return true
}

// Replace swaps the whole catalog, used by backup import.
func (catalog *Catalog) Replace(context context.Context, items []Garment) {
	catalog.mu.Lock()
	defer catalog.mu.Unlock()

	catalog.items = cloneAll(items)
	for i := range catalog.items {
		catalog.items[i].normalize()
	}
	catalog.persist(context)
}

func (catalog *Catalog) indexOf(id string) int {
	return slices.IndexFunc(catalog.items, func(g Garment) bool { return g.ID == id })
}

// persist hands the current state to the sink. Callers hold the write lock.
func (catalog *Catalog) persist(context context.Context) {
	if catalog.sink != nil {
		catalog.sink.Persist(context, cloneAll(catalog.items))
	}
}

func clone(g Garment) Garment {
	g.Tags = slices.Clone(g.Tags)
	return g
}

func cloneAll(items []Garment) []Garment {
	out := make([]Garment, len(items))
	for i, g := range items {
		out[i] = clone(g)
	}
	return out
}
