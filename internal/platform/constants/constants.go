// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package constants provides centralized, immutable values for the closet service.

Categories:

  - Server Timing: Read/Write/Idle timeouts for the HTTP server.
  - Rate Limiting: Burst capacities and IP tracking TTLs.
  - Storage: Aggregate names and schema version suffixes for the key-value store.
  - Composition: Gesture thresholds and placement bounds.

Using this package ensures Magic Strings and Magic Numbers are eliminated
from the business logic.
*/
package constants

import "time"

// # Metadata

const (
	AppName    = "closet"
	AppVersion = "0.3.0"
)

// # Server Timing

const (
	// DefaultReadTimeout is the maximum duration for reading the entire request.
	// Garment uploads carry embedded images, so this is longer than a plain JSON API.
	DefaultReadTimeout = 15 * time.Second

	// DefaultWriteTimeout is the maximum duration before timing out writes of the response.
	DefaultWriteTimeout = 15 * time.Second

	// DefaultIdleTimeout is the maximum amount of time to wait for the next request.
	DefaultIdleTimeout = 120 * time.Second

	// DefaultReadHeaderTimeout is the amount of time allowed to read request headers.
	DefaultReadHeaderTimeout = 2 * time.Second

	// GlobalRequestTimeout is the deadline for the entire request lifecycle.
	GlobalRequestTimeout = 30 * time.Second

	// ShutdownTimeout is how long we wait for in-flight requests to complete during shutdown.
	ShutdownTimeout = 15 * time.Second

	// MaxRequestBodyBytes bounds JSON bodies (a backup document with embedded photos can be large).
	MaxRequestBodyBytes = 32 << 20
)

// # Rate Limiting

const (
	// RateLimitCleanupInterval is how often old IP entries are removed from memory.
	RateLimitCleanupInterval = 1 * time.Minute

	// RateLimitClientTTL is how long a client must be idle before its entry is deleted.
	RateLimitClientTTL = 3 * time.Minute

	// AnalysisRateLimit is the sustained rate of outbound image-analysis calls per second.
	AnalysisRateLimit = 1.0

	// AnalysisRateBurst allows a few photos to be analysed back to back.
	AnalysisRateBurst = 3
)

// # Storage Keys

const (
	// AggregateCatalog is the key prefix of the garment catalog.
	AggregateCatalog = "closet_items"

	// AggregateOutfits is the key prefix of the outfit collection.
	AggregateOutfits = "outfits"

	// AggregateProfile is the key prefix of the body profile.
	AggregateProfile = "body_profile"

	// SchemaVersion is the suffix written for every aggregate.
	SchemaVersion = "v2"

	// LegacySchemaVersion is the previous suffix, read for migration only.
	LegacySchemaVersion = "v1"

	// ExportSchemaVersion is the "version" tag of exported backup documents.
	ExportSchemaVersion = "2"

	// NoticeCapacity is how many undelivered user notices are retained.
	NoticeCapacity = 32
)

// # Composition

const (
	// LongPressThreshold is the hold time that turns a press into a reorder drag.
	LongPressThreshold = 500 * time.Millisecond

	// MinPlacementScale and MaxPlacementScale bound manual resizing.
	MinPlacementScale = 0.2
	MaxPlacementScale = 4.0

	// RotationJitterDegrees is the half-width of the random rotation for unanchored garments.
	RotationJitterDegrees = 5.0

	// DefaultOutfitNamePrefix precedes the date stamp of unnamed outfits.
	DefaultOutfitNamePrefix = "My Outfit"

	// DefaultSubCategory is assigned when a garment has no refinement.
	DefaultSubCategory = "Uncategorized"
)

// # Statistics

const (
	// TopColorBuckets is how many color buckets the aggregator surfaces.
	TopColorBuckets = 6

	// ColorKeyRunes is the prefix length of a color bucket key.
	ColorKeyRunes = 6

	// TopPricedGarments is how many of the most expensive garments are listed.
	TopPricedGarments = 3
)

// # HTTP Headers

const (
	HeaderXRequestID    = "X-Request-ID"
	HeaderXRealIP       = "X-Real-IP"
	HeaderXForwardedFor = "X-Forwarded-For"
	HeaderOrigin        = "Origin"

	// HeaderXPendingNotices carries the number of notices waiting at GET /notices.
	HeaderXPendingNotices = "X-Pending-Notices"
)

// # JSON Field Identifiers

const (
	FieldStatus = "status"
	FieldChecks = "checks"
)
