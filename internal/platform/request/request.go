// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package requestutil provides utilities for extracting data from HTTP requests.

It abstracts away the underlying router's parameter extraction and common
body decoding patterns, ensuring consistent error handling and type safety.
*/
package requestutil

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/closet/internal/platform/apperr"
	"github.com/taibuivan/closet/internal/platform/constants"
	"github.com/taibuivan/closet/internal/platform/validate"
	"github.com/taibuivan/closet/pkg/query"
)

/*
DecodeJSON reads the request body and decodes it into the target structure.

Parameters:
  - request: *http.Request
  - target: interface{} (Pointer to the destination struct)

Returns:
  - error: validate.ErrInvalidJSON if decoding fails, otherwise nil
*/
func DecodeJSON(request *http.Request, target interface{}) error {
	body := http.MaxBytesReader(nil, request.Body, constants.MaxRequestBodyBytes)
	if err := json.NewDecoder(body).Decode(target); err != nil {
		return validate.ErrInvalidJSON
	}
	return nil
}

/*
ReadBody returns the raw request body, bounded by [constants.MaxRequestBodyBytes].
*/
func ReadBody(request *http.Request) ([]byte, error) {
	body, err := io.ReadAll(http.MaxBytesReader(nil, request.Body, constants.MaxRequestBodyBytes))
	if err != nil {
		return nil, apperr.ValidationError("Request body could not be read")
	}
	return body, nil
}

/*
ID retrieves a named URL parameter (UUID) from the request.
*/
func ID(request *http.Request, name string) string {
	return chi.URLParam(request, name)
}

/*
IsConfirmed reports whether the caller explicitly consented to an irreversible
action, via "?confirm=true" or the X-Confirm header.
*/
func IsConfirmed(request *http.Request) bool {
	return query.Bool(request, "confirm") || request.Header.Get("X-Confirm") == "true"
}
