// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package query parses list-style URL query parameters.
package query

import (
	"net/http"
	"strconv"
	"strings"
)

// Strings collects every value of key, splitting comma-separated entries,
// trimming whitespace and dropping empties.
//
// Both "?category=Tops,Shoes" and "?category=Tops&category=Shoes" yield
// ["Tops", "Shoes"].
func Strings(r *http.Request, key string) []string {
	var res []string
	for _, raw := range r.URL.Query()[key] {
		for _, v := range strings.Split(raw, ",") {
			clean := strings.TrimSpace(v)
			if clean != "" {
				res = append(res, clean)
			}
		}
	}
	return res
}

// Bool reports whether key is set to a true-ish value ("1", "true", "yes").
// Unparseable values are false.
func Bool(r *http.Request, key string) bool {
	raw := strings.TrimSpace(r.URL.Query().Get(key))
	if strings.EqualFold(raw, "yes") {
		return true
	}
	v, _ := strconv.ParseBool(raw)
	return v
}

// Int parses key as an integer, returning fallback when it is absent or malformed.
func Int(r *http.Request, key string, fallback int) int {
	n, err := strconv.Atoi(strings.TrimSpace(r.URL.Query().Get(key)))
	if err != nil {
		return fallback
	}
	return n
}
