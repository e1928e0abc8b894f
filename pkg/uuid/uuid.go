// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package uuid provides time-ordered unique identifiers for closet records.

Garments, outfits, drafts and composer sessions are all keyed by UUIDv7 strings.

Properties:

  - Sortable: Ordered by creation time (millisecond precision).
  - Never reused: A deleted garment's identifier cannot come back.
  - Opaque: Callers must not parse meaning out of the value.
*/
package uuid

import "github.com/google/uuid"

// # Generators

// New generates a new UUIDv7 string.
func New() string {

	// Create a new version 7 UUID (time-sortable)
	id, err := uuid.NewV7()

	// entropy failure is an unrecoverable system-level error
	if err != nil {
		panic("uuid: failed to generate UUIDv7: " + err.Error())
	}

	return id.String()
}

// # Validation

// Valid reports whether s parses as a UUID of any version.
//
// Legacy catalogs carry short non-UUID identifiers (e.g. "m1"), so this is
// only used to reject obviously malformed path parameters on new records.
func Valid(s string) bool {
	_, err := uuid.Parse(s)
	return err == nil
}
