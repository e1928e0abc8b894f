// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package slice complements the standard [slices] package with the helpers the
closet aggregates need: [Filter] for category views, [Dedupe] for outfit item
lists and tags, and the splice-style [Move] used for manual reordering.
*/
package slice

// Map maps a slice of type T to a slice of type U using the provided transformation function.
func Map[T any, U any](input []T, transform func(T) U) []U {
	if input == nil {
		return nil
	}

	result := make([]U, len(input))
	for i, v := range input {
		result[i] = transform(v)
	}

	return result
}

// Filter filters a slice, returning only elements where the predicate function evaluates to true.
func Filter[T any](input []T, predicate func(T) bool) []T {
	if input == nil {
		return nil
	}

	var result []T
	for _, v := range input {
		if predicate(v) {
			result = append(result, v)
		}
	}

	return result
}

// Move returns a copy of input with the element at from removed and
// re-inserted at to.
//
// # Semantics
//
// This is a move, not a swap: every element strictly between from and to
// shifts by one position towards from. Out-of-range indices or from == to
// return an unchanged copy.
func Move[T any](input []T, from, to int) []T {
	result := make([]T, len(input))
	copy(result, input)

	if from == to || from < 0 || to < 0 || from >= len(input) || to >= len(input) {
		return result
	}

	moved := result[from]
	if from < to {
		copy(result[from:to], result[from+1:to+1])
	} else {
		copy(result[to+1:from+1], result[to:from])
	}
	result[to] = moved

	return result
}

// Dedupe returns input with repeated elements removed, keeping first occurrences.
func Dedupe[T comparable](input []T) []T {
	if input == nil {
		return nil
	}

	seen := make(map[T]struct{}, len(input))
	result := make([]T, 0, len(input))
	for _, v := range input {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		result = append(result, v)
	}

	return result
}
