// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package analysis infers garment attributes from a photo.

The call is best-effort: callers treat any error as "no suggestion" and let
the user fill the form by hand. Three implementations exist:

  - [Vision]: Google Cloud Vision label and dominant-color detection.
  - [HTTP]: a JSON endpoint that returns the attributes directly.
  - [Disabled]: always fails with [ErrDisabled].

[Throttle] bounds the outbound call rate of any of them.
*/
package analysis

import (
	"context"
	"errors"

	"golang.org/x/time/rate"
)

// ErrDisabled is returned when no analyzer is configured.
var ErrDisabled = errors.New("analysis: analyzer disabled")

// Attributes are the suggestions returned for one photo. Any field may be empty.
//
// MainCategory is free text; callers coerce it to their own category set.
type Attributes struct {
	MainCategory  string `json:"mainCategory"`
	SubCategory   string `json:"subCategory"`
	Color         string `json:"color"`
	Style         string `json:"style"`
	Season        string `json:"season"`
	SuggestedName string `json:"suggestedName"`
}

// Empty reports whether the analyzer suggested nothing at all.
func (a Attributes) Empty() bool {
	return a == Attributes{}
}

// Analyzer inspects encoded image bytes (JPEG, PNG, GIF, ...).
type Analyzer interface {
	Analyze(ctx context.Context, image []byte) (Attributes, error)
}

// Func adapts a plain function to [Analyzer].
type Func func(ctx context.Context, image []byte) (Attributes, error)

// Analyze calls f.
func (f Func) Analyze(ctx context.Context, image []byte) (Attributes, error) {
	return f(ctx, image)
}

// Disabled is the analyzer used when none is configured.
type Disabled struct{}

// Analyze always returns [ErrDisabled].
func (Disabled) Analyze(context.Context, []byte) (Attributes, error) {
	return Attributes{}, ErrDisabled
}

// throttled waits for a limiter token before each call.
type throttled struct {
	inner   Analyzer
	limiter *rate.Limiter
}

// Throttle limits inner to limit calls per second with the given burst.
func Throttle(inner Analyzer, limit float64, burst int) Analyzer {
	return &throttled{inner: inner, limiter: rate.NewLimiter(rate.Limit(limit), burst)}
}

func (t *throttled) Analyze(ctx context.Context, image []byte) (Attributes, error) {
	if err := t.limiter.Wait(ctx); err != nil {
		return Attributes{}, err
	}
	return t.inner.Analyze(ctx, image)
}
