// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package outfit

import (
	"context"
	"slices"
	"strings"
	"sync"

	"github.com/taibuivan/closet/internal/platform/apperr"
	"github.com/taibuivan/closet/internal/platform/persist"
	"github.com/taibuivan/closet/internal/platform/validate"
	"github.com/taibuivan/closet/pkg/slice"
)

// Collection is the ordered list of saved outfits. Index 0 is shown first.
type Collection struct {
	mu      sync.RWMutex
	outfits []Outfit
	sink    persist.Sink[[]Outfit]
}

// NewCollection returns a collection holding initial. sink may be nil.
func NewCollection(initial []Outfit, sink persist.Sink[[]Outfit]) *Collection {
	outfits := make([]Outfit, len(initial))
	for i, o := range initial {
		outfits[i] = normalize(o)
	}
	return &Collection{outfits: outfits, sink: sink}
}

// List returns a snapshot of the collection in display order.
func (collection *Collection) List() []Outfit {
	collection.mu.RLock()
	defer collection.mu.RUnlock()
	return cloneAll(collection.outfits)
}

// Len returns the number of outfits.
func (collection *Collection) Len() int {
	collection.mu.RLock()
	defer collection.mu.RUnlock()
	return len(collection.outfits)
}

// Get returns the outfit with id.
func (collection *Collection) Get(id string) (Outfit, bool) {
	collection.mu.RLock()
	defer collection.mu.RUnlock()

	index := collection.indexOf(id)
	if index < 0 {
		return Outfit{}, false
	}
	return collection.outfits[index].clone(), true
}

// ContainingGarment lists the outfits that reference garmentID, in display order.
func (collection *Collection) ContainingGarment(garmentID string) []Outfit {
	collection.mu.RLock()
	defer collection.mu.RUnlock()

	related := slice.Filter(collection.outfits, func(o Outfit) bool { return o.Contains(garmentID) })
	return cloneAll(related)
}

// Prepend puts a freshly saved outfit at the front.
func (collection *Collection) Prepend(context context.Context, o Outfit) {
	collection.mu.Lock()
	defer collection.mu.Unlock()

	collection.outfits = append([]Outfit{normalize(o)}, collection.outfits...)
	collection.persist(context)
}

// Rename commits a trimmed, non-empty name. The prior name is kept on rejection.
func (collection *Collection) Rename(context context.Context, id, name string) (Outfit, error) {
	name = strings.TrimSpace(name)

	validator := &validate.Validator{}
	validator.Required(FieldName, name).MaxLen(FieldName, name, 200)
	if err := validator.Err(); err != nil {
		return Outfit{}, err
	}

	collection.mu.Lock()
	defer collection.mu.Unlock()

	index := collection.indexOf(id)
	if index < 0 {
		return Outfit{}, apperr.NotFound("Outfit")
	}

	collection.outfits[index].Name = name
	collection.persist(context)
	return collection.outfits[index].clone(), nil
}

// Delete removes an outfit. The catalog is never touched.
func (collection *Collection) Delete(context context.Context, id string) bool {
	collection.mu.Lock()
	defer collection.mu.Unlock()

	index := collection.indexOf(id)
	if index < 0 {
		return false
	}

	collection.outfits = slices.Delete(collection.outfits, index, index+1)
	collection.persist(context)
	return true
}

/*
Move removes the outfit at from and reinserts it at to, as a single splice.

Moving onto the same index changes nothing and writes nothing.

Returns:
  - error: VALIDATION_ERROR when an index is out of range
*/
func (collection *Collection) Move(context context.Context, from, to int) error {
	collection.mu.Lock()
	defer collection.mu.Unlock()

	if err := checkMove(len(collection.outfits), from, to); err != nil {
		return err
	}

	if from == to {
		return nil
	}

	collection.outfits = slice.Move(collection.outfits, from, to)
	collection.persist(context)
	return nil
}

// MoveAll applies moves in order as one change with a single write. Every
// move is validated first, so a rejected batch changes nothing.
func (collection *Collection) MoveAll(context context.Context, moves []Outcome) error {
	collection.mu.Lock()
	defer collection.mu.Unlock()

	count := len(collection.outfits)
	for _, move := range moves {
		if err := checkMove(count, move.From, move.To); err != nil {
			return err
		}
	}

	reordered := collection.outfits
	for _, move := range moves {
		reordered = slice.Move(reordered, move.From, move.To)
	}
	if len(moves) == 0 || slices.EqualFunc(reordered, collection.outfits, func(a, b Outfit) bool { return a.ID == b.ID }) {
		return nil
	}

	collection.outfits = reordered
	collection.persist(context)
	return nil
}

// checkMove rejects indices outside a list of count outfits.
func checkMove(count, from, to int) error {
	validator := &validate.Validator{}
	validator.Custom(FieldFrom, from < 0 || from >= count, "Index out of range")
	validator.Custom(FieldTo, to < 0 || to >= count, "Index out of range")
	return validator.Err()
}

// Replace swaps the whole collection, used by backup import.
func (collection *Collection) Replace(context context.Context, outfits []Outfit) {
	collection.mu.Lock()
	defer collection.mu.Unlock()

	collection.outfits = make([]Outfit, len(outfits))
	for i, o := range outfits {
		collection.outfits[i] = normalize(o)
	}
	collection.persist(context)
}

func (collection *Collection) indexOf(id string) int {
	return slices.IndexFunc(collection.outfits, func(o Outfit) bool { return o.ID == id })
}

// persist hands the current state to the sink. Callers hold the write lock.
func (collection *Collection) persist(context context.Context) {
	if collection.sink != nil {
		collection.sink.Persist(context, cloneAll(collection.outfits))
	}
}

// normalize deduplicates items and makes sure the slices and maps are non-nil.
func normalize(o Outfit) Outfit {
	o = o.clone()
	o.Items = slice.Dedupe(o.Items)
	if o.Items == nil {
		o.Items = []string{}
	}
	if o.Positions == nil {
		o.Positions = make(map[string]Placement)
	}
	return o
}

func cloneAll(outfits []Outfit) []Outfit {
	out := make([]Outfit, len(outfits))
	for i, o := range outfits {
		out[i] = o.clone()
	}
	return out
}
