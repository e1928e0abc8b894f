// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package profile holds the single body-measurement profile.
//
// Values are free text as typed by the user ("170", "170 cm"). The profile
// always exists; it starts empty and is never deleted.
package profile

import (
	"context"
	"log/slog"
	"strings"
	"sync"

	"github.com/taibuivan/closet/internal/platform/constants"
	"github.com/taibuivan/closet/internal/platform/kvstore"
	"github.com/taibuivan/closet/internal/platform/persist"
	"github.com/taibuivan/closet/internal/platform/validate"
)

// maxFieldLength bounds each measurement.
const maxFieldLength = 32

// BodyProfile holds the user's measurements.
type BodyProfile struct {
	Height   string `json:"height,omitempty"`
	Weight   string `json:"weight,omitempty"`
	Shoulder string `json:"shoulder,omitempty"`
	Chest    string `json:"chest,omitempty"`
	Waist    string `json:"waist,omitempty"`
	Hips     string `json:"hips,omitempty"`
}

func (p BodyProfile) trimmed() BodyProfile {
	return BodyProfile{
		Height:   strings.TrimSpace(p.Height),
		Weight:   strings.TrimSpace(p.Weight),
		Shoulder: strings.TrimSpace(p.Shoulder),
		Chest:    strings.TrimSpace(p.Chest),
		Waist:    strings.TrimSpace(p.Waist),
		Hips:     strings.TrimSpace(p.Hips),
	}
}

func (p BodyProfile) validate() error {
	validator := &validate.Validator{}
	validator.MaxLen("height", p.Height, maxFieldLength)
	validator.MaxLen("weight", p.Weight, maxFieldLength)
	validator.MaxLen("shoulder", p.Shoulder, maxFieldLength)
	validator.MaxLen("chest", p.Chest, maxFieldLength)
	validator.MaxLen("waist", p.Waist, maxFieldLength)
	validator.MaxLen("hips", p.Hips, maxFieldLength)
	return validator.Err()
}

// Store is the owned profile singleton.
type Store struct {
	mu      sync.RWMutex
	profile BodyProfile
	sink    persist.Sink[BodyProfile]
}

// NewStore returns a store holding initial. sink may be nil.
func NewStore(initial BodyProfile, sink persist.Sink[BodyProfile]) *Store {
	return &Store{profile: initial, sink: sink}
}

// Get returns the current profile.
func (store *Store) Get() BodyProfile {
	store.mu.RLock()
	defer store.mu.RUnlock()
	return store.profile
}

// Replace overwrites the profile and persists it.
func (store *Store) Replace(context context.Context, profile BodyProfile) {
	store.mu.Lock()
	defer store.mu.Unlock()

	store.profile = profile
	if store.sink != nil {
		store.sink.Persist(context, profile)
	}
}

// NewAggregate returns the persistence handle of the profile.
func NewAggregate(kv kvstore.Store, notifier persist.Notifier, logger *slog.Logger) *persist.Aggregate[BodyProfile] {
	name := constants.AggregateProfile
	return persist.New(kv, name, constants.SchemaVersion, notifier, logger,
		persist.JSONProbe[BodyProfile](persist.VersionedKey(name, constants.LegacySchemaVersion)),
		persist.JSONProbe[BodyProfile](persist.VersionedKey(name, "")),
	)
}

// Service validates profile updates.
type Service struct {
	store  *Store
	logger *slog.Logger
}

// NewService constructs a [Service].
func NewService(store *Store, logger *slog.Logger) *Service {
	return &Service{store: store, logger: logger}
}

// Store returns the underlying store.
func (service *Service) Store() *Store { return service.store }

// GetProfile returns the profile.
func (service *Service) GetProfile() BodyProfile {
	return service.store.Get()
}

// UpdateProfile replaces the whole profile with trimmed values.
func (service *Service) UpdateProfile(context context.Context, input BodyProfile) (BodyProfile, error) {
	profile := input.trimmed()
	if err := profile.validate(); err != nil {
		return BodyProfile{}, err
	}

	service.store.Replace(context, profile)
	service.logger.InfoContext(context, "profile_updated")
	return profile, nil
}
