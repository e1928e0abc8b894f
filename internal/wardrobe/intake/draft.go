// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package intake implements the add-garment flow.

A [Draft] holds a photo and the form fields typed so far. Attaching an
uploaded photo starts a background analysis whose suggestions fill the
fields the user has not set. Submitting a draft creates the garment in the
catalog; closing it discards everything, including a late analysis result.
*/
package intake

import (
	"context"

	"github.com/taibuivan/closet/internal/platform/analysis"
	"github.com/taibuivan/closet/internal/wardrobe/garment"
)

// Analysis states reported on a draft.
const (
	AnalysisNone    = "none"
	AnalysisRunning = "running"
	AnalysisDone    = "done"
	AnalysisFailed  = "failed"
)

// Field identifiers tracked as user-edited.
const (
	fieldName         = "name"
	fieldMainCategory = "mainCategory"
	fieldSubCategory  = "subCategory"
	fieldColor        = "color"
	fieldStyle        = "style"
	fieldSeason       = "season"
)

// Draft is a garment being entered.
type Draft struct {
	ID       string          `json:"id"`
	Form     garment.Garment `json:"form"`
	Busy     bool            `json:"busy"`
	Analysis string          `json:"analysis"`
	OpenedAt int64           `json:"openedAt"`

	// Suggested is the last analysis result, kept for display.
	Suggested *analysis.Attributes `json:"suggested,omitempty"`
}

// entry is the service-side state of one draft.
type entry struct {
	draft      Draft
	edited     map[string]bool
	generation int
	cancel     context.CancelFunc
}

func (e *entry) snapshot() Draft {
	draft := e.draft
	draft.Form.Tags = append([]string(nil), e.draft.Form.Tags...)
	if e.draft.Suggested != nil {
		suggested := *e.draft.Suggested
		draft.Suggested = &suggested
	}
	return draft
}

// markEdited records every field the patch sets.
func (e *entry) markEdited(patch garment.Patch) {
	if patch.Name != nil {
		e.edited[fieldName] = true
	}
	if patch.MainCategory != nil {
		e.edited[fieldMainCategory] = true
	}
	if patch.SubCategory != nil {
		e.edited[fieldSubCategory] = true
	}
	if patch.Color != nil {
		e.edited[fieldColor] = true
	}
	if patch.Style != nil {
		e.edited[fieldStyle] = true
	}
	if patch.Season != nil {
		e.edited[fieldSeason] = true
	}
}

// fill copies a suggestion into a field the user has not set.
func (e *entry) fill(field string, target *string, suggestion string) {
	if suggestion == "" {
		return
	}
	if e.edited[field] && *target != "" {
		return
	}
	*target = suggestion
}
