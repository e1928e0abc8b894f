// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package backup exports and restores the whole wardrobe as one JSON document.

Import is all-or-nothing: the document is fully decoded before any aggregate
is touched, then the catalog, the outfit collection and the body profile are
replaced wholesale.
*/
package backup

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/taibuivan/closet/internal/platform/apperr"
	"github.com/taibuivan/closet/internal/platform/constants"
	"github.com/taibuivan/closet/internal/platform/validate"
	"github.com/taibuivan/closet/internal/wardrobe/garment"
	"github.com/taibuivan/closet/internal/wardrobe/outfit"
	"github.com/taibuivan/closet/internal/wardrobe/profile"
)

// Document field names.
const (
	FieldClosetItems = "closetItems"
	FieldOutfits     = "outfits"
	FieldBodyProfile = "bodyProfile"
)

// Document is the exported backup file.
type Document struct {
	Version     string              `json:"version"`
	ExportDate  string              `json:"exportDate"`
	ClosetItems []garment.Garment   `json:"closetItems"`
	Outfits     []outfit.Outfit     `json:"outfits"`
	BodyProfile profile.BodyProfile `json:"bodyProfile"`
}

// Summary reports what an import restored.
type Summary struct {
	Garments int `json:"garments"`
	Outfits  int `json:"outfits"`
}

// Service reads and replaces the three aggregates.
type Service struct {
	catalog     *garment.Catalog
	collection  *outfit.Collection
	bodyProfile *profile.Store
	logger      *slog.Logger
	now         func() time.Time
}

func NewService(catalog *garment.Catalog, collection *outfit.Collection, bodyProfile *profile.Store, logger *slog.Logger) *Service {
	return &Service{catalog: catalog, collection: collection, bodyProfile: bodyProfile, logger: logger, now: time.Now}
}

// Export snapshots every aggregate.
func (service *Service) Export() Document {
	return Document{
		Version:     constants.ExportSchemaVersion,
		ExportDate:  service.now().UTC().Format(time.RFC3339),
		ClosetItems: service.catalog.List(),
		Outfits:     service.collection.List(),
		BodyProfile: service.bodyProfile.Get(),
	}
}

// Filename is the suggested download name of an export taken now.
func (service *Service) Filename() string {
	return fmt.Sprintf("closet-backup-%s.json", service.now().Format(time.DateOnly))
}

/*
Import restores a document produced by [Service.Export] or by an older version
of the app.

Parameters:
  - data: raw JSON document
  - confirmed: the caller explicitly accepted overwriting current data

Returns:
  - error: VALIDATION_ERROR when unconfirmed or when closetItems is missing or
    not an array; nothing is changed in that case
*/
func (service *Service) Import(context context.Context, data []byte, confirmed bool) (Summary, error) {
	if !confirmed {
		return Summary{}, apperr.ConfirmationRequired("Import")
	}

	document, err := decode(data)
	if err != nil {
		return Summary{}, err
	}

	service.catalog.Replace(context, document.ClosetItems)
	service.collection.Replace(context, document.Outfits)
	service.bodyProfile.Replace(context, document.BodyProfile)

	summary := Summary{Garments: len(document.ClosetItems), Outfits: len(document.Outfits)}
	service.logger.WarnContext(context, "backup_imported",
		slog.Int("garments", summary.Garments),
		slog.Int("outfits", summary.Outfits),
	)
	return summary, nil
}

// decode validates the document shape. Legacy category labels and
// array-shaped outfit positions are accepted.
func decode(data []byte) (Document, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return Document{}, validate.ErrInvalidJSON
	}

	items, ok := fields[FieldClosetItems]
	if !ok || !isArray(items) {
		return Document{}, validate.RequiredError(FieldClosetItems, "Must be a JSON array")
	}

	var document Document
	var err error

	if document.ClosetItems, err = garment.DecodeLegacy(items); err != nil {
		return Document{}, validate.RequiredError(FieldClosetItems, "Contains malformed garments")
	}

	if raw, ok := fields[FieldOutfits]; ok && !isNull(raw) {
		if !isArray(raw) {
			return Document{}, validate.RequiredError(FieldOutfits, "Must be a JSON array")
		}
		if document.Outfits, err = outfit.DecodeLegacy(raw); err != nil {
			return Document{}, validate.RequiredError(FieldOutfits, "Contains malformed outfits")
		}
	}

	if raw, ok := fields[FieldBodyProfile]; ok && !isNull(raw) {
		if err := json.Unmarshal(raw, &document.BodyProfile); err != nil {
			return Document{}, validate.RequiredError(FieldBodyProfile, "Must be an object of strings")
		}
	}

	return document, nil
}

func isArray(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) > 0 && trimmed[0] == '['
}

func isNull(raw json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}
