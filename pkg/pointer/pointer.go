// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package pointer provides helpers for the optional fields of partial updates.

PATCH payloads decode absent JSON keys as nil pointers. These helpers let the
service layer apply only the fields that were actually sent.

Key Functions:
  - To: Creates a pointer from a value literal.
  - Apply: Copies *src into *dst when src is non-nil.
*/
package pointer

// To returns a pointer to the provided value.
func To[T any](v T) *T {
	return &v
}

// Apply overwrites *dst with *src when src is set and reports whether it did.
func Apply[T any](dst *T, src *T) bool {
	if src == nil || dst == nil {
		return false
	}
	*dst = *src
	return true
}
