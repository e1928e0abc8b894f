// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package pagination windows in-memory lists for the API list endpoints.
//
// Closet aggregates are held entirely in memory, so a page is a sub-slice of
// the already-filtered list rather than a LIMIT/OFFSET query.
package pagination

import (
	"net/http"

	"github.com/taibuivan/closet/pkg/query"
)

const (
	// DefaultLimit is the page size when "limit" is absent or invalid.
	DefaultLimit = 50
	// MaxLimit caps "limit" so a single page stays small.
	MaxLimit = 200
)

// Params is a 1-indexed page request.
type Params struct {
	Page  int
	Limit int
}

// Meta is returned next to "data" in list responses.
type Meta struct {
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	Total      int `json:"total"`
	TotalPages int `json:"total_pages"`
}

// Window returns the page of items selected by params together with its metadata.
//
// Pages past the end yield an empty, non-nil slice.
func Window[T any](items []T, params Params) ([]T, Meta) {
	meta := Meta{Page: params.Page, Limit: params.Limit, Total: len(items)}
	if params.Limit > 0 {
		meta.TotalPages = (len(items) + params.Limit - 1) / params.Limit
	}

	start := (max(params.Page, 1) - 1) * params.Limit
	if start >= len(items) {
		return []T{}, meta
	}
	return items[start:min(start+params.Limit, len(items))], meta
}

// FromRequest reads "page" and "limit", falling back to page 1 and
// [DefaultLimit] and clamping the limit to [MaxLimit].
func FromRequest(r *http.Request) Params {
	page := query.Int(r, "page", 1)
	if page < 1 {
		page = 1
	}

	limit := query.Int(r, "limit", DefaultLimit)
	if limit < 1 {
		limit = DefaultLimit
	}

	return Params{Page: page, Limit: min(limit, MaxLimit)}
}
