// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package garment

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/taibuivan/closet/internal/platform/analysis"
	"github.com/taibuivan/closet/internal/platform/apperr"
	"github.com/taibuivan/closet/internal/platform/validate"
	"github.com/taibuivan/closet/pkg/pagination"
	"github.com/taibuivan/closet/pkg/pointer"
	"github.com/taibuivan/closet/pkg/slice"
	"github.com/taibuivan/closet/pkg/uuid"
)

// Thumbnail bounds, in pixels.
const (
	DefaultThumbnailSize = 256
	MinThumbnailSize     = 32
	MaxThumbnailSize     = 1024
)

// Patch carries the fields of a partial update. Nil fields are left unchanged.
type Patch struct {
	Name            *string   `json:"name"`
	MainCategory    *Category `json:"mainCategory"`
	SubCategory     *string   `json:"subCategory"`
	ImageURL        *string   `json:"imageUrl"`
	Color           *string   `json:"color"`
	Style           *string   `json:"style"`
	Brand           *string   `json:"brand"`
	Price           *string   `json:"price"`
	Size            *string   `json:"size"`
	Season          *string   `json:"season"`
	PurchaseChannel *string   `json:"purchaseChannel"`
	PurchaseDate    *string   `json:"purchaseDate"`
	Tags            *[]string `json:"tags"`
}

// Apply copies every non-nil field onto g.
func (patch Patch) Apply(g *Garment) {
	pointer.Apply(&g.Name, patch.Name)
	pointer.Apply(&g.MainCategory, patch.MainCategory)
	pointer.Apply(&g.SubCategory, patch.SubCategory)
	pointer.Apply(&g.ImageURL, patch.ImageURL)
	pointer.Apply(&g.Color, patch.Color)
	pointer.Apply(&g.Style, patch.Style)
	pointer.Apply(&g.Brand, patch.Brand)
	pointer.Apply(&g.Price, patch.Price)
	pointer.Apply(&g.Size, patch.Size)
	pointer.Apply(&g.Season, patch.Season)
	pointer.Apply(&g.PurchaseChannel, patch.PurchaseChannel)
	pointer.Apply(&g.PurchaseDate, patch.PurchaseDate)
	pointer.Apply(&g.Tags, patch.Tags)
}

// # Service Layer

// Service exposes the catalog to the HTTP layer and the intake flow.
type Service struct {
	catalog *Catalog
	logger  *slog.Logger
	now     func() time.Time
}

// NewService constructs a [Service] over catalog.
func NewService(catalog *Catalog, logger *slog.Logger) *Service {
	return &Service{catalog: catalog, logger: logger, now: time.Now}
}

// Catalog returns the underlying catalog.
func (service *Service) Catalog() *Catalog { return service.catalog }

/*
ListGarments returns one page of the catalog, newest first.

Parameters:
  - category: optional main category filter (any accepted alias)
  - params: page window

Returns:
  - error: VALIDATION_ERROR for an unknown category
*/
func (service *Service) ListGarments(category string, params pagination.Params) ([]Garment, pagination.Meta, error) {
	items := service.catalog.List()

	if strings.TrimSpace(category) != "" {
		wanted, ok := Coerce(category)
		if !ok {
			return nil, pagination.Meta{}, validate.RequiredError("category", "Unknown category")
		}
		items = slice.Filter(items, func(g Garment) bool { return g.MainCategory == wanted })
		if items == nil {
			items = []Garment{}
		}
	}

	page, meta := pagination.Window(items, params)
	return page, meta, nil
}

// GetGarment returns one garment or NOT_FOUND.
func (service *Service) GetGarment(id string) (Garment, error) {
	garment, ok := service.catalog.Get(id)
	if !ok {
		return Garment{}, apperr.NotFound("Garment")
	}
	return garment, nil
}

/*
CreateGarment validates a new garment and adds it to the front of the catalog.

A fresh UUIDv7 id and creation time are always assigned; client-supplied
values for both are ignored.
*/
func (service *Service) CreateGarment(context context.Context, input Garment) (Garment, error) {
	input.Name = strings.TrimSpace(input.Name)
	input.Tags = cleanTags(input.Tags)

	if err := validateGarment(input); err != nil {
		return Garment{}, err
	}

	input.ID = uuid.New()
	input.CreatedAt = service.now().UnixMilli()

	created := service.catalog.Add(context, input)
	service.logger.InfoContext(context, "garment_created",
		slog.String("garment_id", created.ID),
		slog.String("category", string(created.MainCategory)),
	)
	return created, nil
}

// UpdateGarment applies a partial update. The merged result must still be valid.
func (service *Service) UpdateGarment(context context.Context, id string, patch Patch) (Garment, error) {
	current, ok := service.catalog.Get(id)
	if !ok {
		return Garment{}, apperr.NotFound("Garment")
	}

	patch.Apply(&current)
	current.Name = strings.TrimSpace(current.Name)
	current.Tags = cleanTags(current.Tags)
	if err := validateGarment(current); err != nil {
		return Garment{}, err
	}

	updated, ok := service.catalog.Update(context, id, func(g *Garment) {
		patch.Apply(g)
		g.Name = current.Name
		g.Tags = current.Tags
	})
	if !ok {
		return Garment{}, apperr.NotFound("Garment")
	}

	service.logger.InfoContext(context, "garment_updated", slog.String("garment_id", id))
	return updated, nil
}

// DeleteGarment removes a garment. Outfits keep their reference to it.
func (service *Service) DeleteGarment(context context.Context, id string) error {
	if !service.catalog.Delete(context, id) {
		return apperr.NotFound("Garment")
	}

	service.logger.WarnContext(context, "garment_deleted", slog.String("garment_id", id))
	return nil
}

/*
Thumbnail renders a square JPEG of an uploaded garment photo.

Returns:
  - error: NOT_FOUND for an unknown garment, UNPROCESSABLE when the photo is a
    remote URL or cannot be decoded
*/
func (service *Service) Thumbnail(id string, size int) ([]byte, error) {
	garment, err := service.GetGarment(id)
	if err != nil {
		return nil, err
	}

	size = min(max(size, MinThumbnailSize), MaxThumbnailSize)

	data, err := analysis.DecodeDataURL(garment.ImageURL)
	if errors.Is(err, analysis.ErrNotInline) {
		return nil, apperr.Unprocessable("Garment photo is not stored locally")
	}
	if err != nil {
		return nil, apperr.Unprocessable("Garment photo is not a valid image")
	}

	thumbnail, err := analysis.Thumbnail(data, size)
	if err != nil {
		return nil, apperr.Unprocessable("Garment photo is not a valid image")
	}
	return thumbnail, nil
}

func validateGarment(g Garment) error {
	validator := &validate.Validator{}

	validator.Required(FieldName, g.Name).MaxLen(FieldName, g.Name, 200)
	validator.Required(FieldImageURL, g.ImageURL)
	validator.Custom(FieldMainCategory, !g.MainCategory.IsValid() && !coercible(g.MainCategory),
		"Must be one of: Tops, Bottoms, Shoes, Bags, Accessories")
	validator.ISODate(FieldPurchaseDate, g.PurchaseDate)
	validator.Custom(FieldTags, len(g.Tags) > 30, "At most 30 tags")

	return validator.Err()
}

func coercible(c Category) bool {
	_, ok := Coerce(string(c))
	return ok
}

// cleanTags trims, drops empty and deduplicates tags.
func cleanTags(tags []string) []string {
	if tags == nil {
		return nil
	}
	trimmed := slice.Map(tags, strings.TrimSpace)
	nonEmpty := slice.Filter(trimmed, func(t string) bool { return t != "" })
	return slice.Dedupe(nonEmpty)
}
