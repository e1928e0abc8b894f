// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package intake

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/taibuivan/closet/internal/platform/analysis"
	"github.com/taibuivan/closet/internal/platform/apperr"
	"github.com/taibuivan/closet/internal/platform/ctxutil"
	"github.com/taibuivan/closet/internal/platform/notice"
	"github.com/taibuivan/closet/internal/platform/persist"
	"github.com/taibuivan/closet/internal/platform/validate"
	"github.com/taibuivan/closet/internal/wardrobe/garment"
	"github.com/taibuivan/closet/pkg/uuid"
)

// defaultSeason is preselected on a fresh draft.
const defaultSeason = "All-season"

// Service owns the open drafts.
type Service struct {
	garments *garment.Service
	analyzer analysis.Analyzer
	notices  persist.Notifier
	logger   *slog.Logger
	timeout  time.Duration
	now      func() time.Time

	mu     sync.Mutex
	drafts map[string]*entry
	wg     sync.WaitGroup
}

/*
NewService constructs the intake service.

Parameters:
  - garments: catalog service that receives submitted drafts
  - analyzer: photo analyzer (use [analysis.Disabled] when none is configured)
  - notices: receives a warning when an analysis fails (may be nil)
  - timeout: deadline of one analysis call
*/
func NewService(garments *garment.Service, analyzer analysis.Analyzer, notices persist.Notifier, logger *slog.Logger, timeout time.Duration) *Service {
	return &Service{
		garments: garments,
		analyzer: analyzer,
		notices:  notices,
		logger:   logger,
		timeout:  timeout,
		now:      time.Now,
		drafts:   make(map[string]*entry),
	}
}

// OpenDraft creates a draft with defaults, applies input and starts analysis
// when input carries an uploaded photo.
func (service *Service) OpenDraft(context context.Context, input garment.Patch) (Draft, error) {
	if err := validateImage(input.ImageURL); err != nil {
		return Draft{}, err
	}

	now := service.now()
	current := &entry{
		draft: Draft{
			ID: uuid.New(),
			Form: garment.Garment{
				MainCategory: garment.CategoryTops,
				Season:       defaultSeason,
				PurchaseDate: now.Format(time.DateOnly),
			},
			Analysis: AnalysisNone,
			OpenedAt: now.UnixMilli(),
		},
		edited: make(map[string]bool),
	}
	input.Apply(&current.draft.Form)
	current.markEdited(input)

	service.mu.Lock()
	defer service.mu.Unlock()

	service.drafts[current.draft.ID] = current
	if input.ImageURL != nil {
		service.startAnalysis(context, current)
	}

	service.logger.InfoContext(context, "draft_opened", slog.String("draft_id", current.draft.ID))
	return current.snapshot(), nil
}

// GetDraft returns one draft or NOT_FOUND.
func (service *Service) GetDraft(id string) (Draft, error) {
	service.mu.Lock()
	defer service.mu.Unlock()

	current, ok := service.drafts[id]
	if !ok {
		return Draft{}, apperr.NotFound("Draft")
	}
	return current.snapshot(), nil
}

// UpdateDraft applies typed form fields. A new photo restarts the analysis
// and discards any result still pending for the previous one.
func (service *Service) UpdateDraft(context context.Context, id string, patch garment.Patch) (Draft, error) {
	if err := validateImage(patch.ImageURL); err != nil {
		return Draft{}, err
	}

	service.mu.Lock()
	defer service.mu.Unlock()

	current, ok := service.drafts[id]
	if !ok {
		return Draft{}, apperr.NotFound("Draft")
	}

	previousImage := current.draft.Form.ImageURL
	patch.Apply(&current.draft.Form)
	current.markEdited(patch)

	if patch.ImageURL != nil && *patch.ImageURL != previousImage {
		service.startAnalysis(context, current)
	}
	return current.snapshot(), nil
}

// CloseDraft discards a draft and cancels its analysis.
func (service *Service) CloseDraft(context context.Context, id string) error {
	service.mu.Lock()
	defer service.mu.Unlock()

	current, ok := service.drafts[id]
	if !ok {
		return apperr.NotFound("Draft")
	}

	service.discard(current)
	service.logger.InfoContext(context, "draft_closed", slog.String("draft_id", id))
	return nil
}

/*
SubmitDraft turns a draft into a catalog garment and closes it.

Returns:
  - error: CONFLICT while the photo is being analysed, VALIDATION_ERROR when
    the photo or name is missing, NOT_FOUND for an unknown draft
*/
func (service *Service) SubmitDraft(context context.Context, id string) (garment.Garment, error) {
	service.mu.Lock()
	defer service.mu.Unlock()

	current, ok := service.drafts[id]
	if !ok {
		return garment.Garment{}, apperr.NotFound("Draft")
	}
	if current.draft.Busy {
		return garment.Garment{}, apperr.Conflict("Photo analysis is still running")
	}

	form := current.draft.Form
	validator := &validate.Validator{}
	validator.Required(garment.FieldImageURL, form.ImageURL)
	validator.Required(garment.FieldName, strings.TrimSpace(form.Name))
	if err := validator.Err(); err != nil {
		return garment.Garment{}, err
	}

	created, err := service.garments.CreateGarment(context, form)
	if err != nil {
		return garment.Garment{}, err
	}

	service.discard(current)
	return created, nil
}

// Wait blocks until every running analysis has returned.
func (service *Service) Wait() {
	service.wg.Wait()
}

// discard removes current from the map. Callers hold the lock.
func (service *Service) discard(current *entry) {
	if current.cancel != nil {
		current.cancel()
	}
	delete(service.drafts, current.draft.ID)
}

/*
startAnalysis launches the analyzer for the draft's current photo.

Remote photos are not analysed. Callers hold the lock.
*/
func (service *Service) startAnalysis(ctx context.Context, current *entry) {
	if current.cancel != nil {
		current.cancel()
		current.cancel = nil
	}
	current.generation++
	current.draft.Busy = false
	current.draft.Analysis = AnalysisNone

	if !strings.HasPrefix(current.draft.Form.ImageURL, "data:") {
		return
	}
	image, err := analysis.DecodeDataURL(current.draft.Form.ImageURL)
	if err != nil {
		return
	}

	detached := ctxutil.WithAttrs(ctxutil.Detach(ctx), slog.String("draft_id", current.draft.ID))
	analysisCtx, cancel := context.WithTimeout(detached, service.timeout)
	current.cancel = cancel
	current.draft.Busy = true
	current.draft.Analysis = AnalysisRunning

	id, generation := current.draft.ID, current.generation
	service.wg.Add(1)
	go func() {
		defer service.wg.Done()
		defer cancel()

		attributes, err := service.analyze(analysisCtx, image)
		service.complete(analysisCtx, id, generation, attributes, err)
	}()
}

func (service *Service) analyze(ctx context.Context, image []byte) (analysis.Attributes, error) {
	prepared, err := analysis.Prepare(image)
	if err != nil {
		return analysis.Attributes{}, err
	}
	return service.analyzer.Analyze(ctx, prepared)
}

// complete applies an analysis result unless the draft was closed or its
// photo replaced in the meantime.
func (service *Service) complete(ctx context.Context, id string, generation int, attributes analysis.Attributes, err error) {
	service.mu.Lock()
	defer service.mu.Unlock()

	logger := ctxutil.GetLogger(ctx)

	current, ok := service.drafts[id]
	if !ok || current.generation != generation {
		logger.Debug("analysis_result_discarded")
		return
	}

	current.draft.Busy = false
	current.cancel = nil

	if err != nil {
		current.draft.Analysis = AnalysisFailed
		if !errors.Is(err, analysis.ErrDisabled) {
			logger.Warn("analysis_failed", slog.Any("error", err))
			if service.notices != nil {
				service.notices.Warn(ctx, notice.CodeAnalysisFailed, "Photo analysis failed; please fill in the details manually")
			}
		}
		return
	}

	current.draft.Analysis = AnalysisDone
	current.draft.Suggested = &attributes
	service.applySuggestions(ctx, current, attributes)
}

func (service *Service) applySuggestions(ctx context.Context, current *entry, attributes analysis.Attributes) {
	form := &current.draft.Form

	current.fill(fieldName, &form.Name, strings.TrimSpace(attributes.SuggestedName))
	current.fill(fieldSubCategory, &form.SubCategory, strings.TrimSpace(attributes.SubCategory))
	current.fill(fieldColor, &form.Color, strings.TrimSpace(attributes.Color))
	current.fill(fieldStyle, &form.Style, strings.TrimSpace(attributes.Style))
	current.fill(fieldSeason, &form.Season, strings.TrimSpace(attributes.Season))

	if attributes.MainCategory == "" || current.edited[fieldMainCategory] {
		return
	}
	category, ok := garment.Coerce(attributes.MainCategory)
	if !ok {
		ctxutil.GetLogger(ctx).Warn("analysis_category_unknown", slog.String("category", attributes.MainCategory))
		return
	}
	form.MainCategory = category
}

// validateImage rejects malformed data URLs. Remote URLs pass unchecked.
func validateImage(imageURL *string) error {
	if imageURL == nil || !strings.HasPrefix(*imageURL, "data:") {
		return nil
	}
	if _, err := analysis.DecodeDataURL(*imageURL); err != nil {
		return validate.RequiredError(garment.FieldImageURL, "Photo is not valid base64 image data")
	}
	return nil
}
