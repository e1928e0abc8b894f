// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package api_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"math/rand/v2"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/closet/internal/api"
	"github.com/taibuivan/closet/internal/platform/analysis"
	"github.com/taibuivan/closet/internal/platform/config"
	"github.com/taibuivan/closet/internal/platform/constants"
	"github.com/taibuivan/closet/internal/platform/kvstore"
	"github.com/taibuivan/closet/internal/platform/notice"
	"github.com/taibuivan/closet/internal/wardrobe/backup"
	"github.com/taibuivan/closet/internal/wardrobe/garment"
	"github.com/taibuivan/closet/internal/wardrobe/intake"
	"github.com/taibuivan/closet/internal/wardrobe/outfit"
	"github.com/taibuivan/closet/internal/wardrobe/profile"
	"github.com/taibuivan/closet/internal/wardrobe/stats"
)

func newStack(t *testing.T, store kvstore.Store, ready func(context.Context) error) http.Handler {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	notices := notice.NewBoard(8)

	catalog := garment.NewCatalog(garment.SampleGarments(time.Now()), garment.NewAggregate(store, notices, logger))
	collection := outfit.NewCollection(nil, outfit.NewAggregate(store, notices, logger))
	profileStore := profile.NewStore(profile.BodyProfile{}, profile.NewAggregate(store, notices, logger))

	garmentService := garment.NewService(catalog, logger)
	outfitService := outfit.NewService(catalog, collection, outfit.NewLayout(rand.NewPCG(1, 2)), logger)

	liveness, readiness := api.NewHealthHandlers(api.HealthDependencies{StoreDriver: "memory", CheckStore: ready}, logger)

	cfg := &config.Config{Environment: "test", RateLimitRPS: 1000, RateLimitBurst: 1000}
	return api.NewRouter(t.Context(), cfg, logger, api.Handlers{
		Liveness:  liveness,
		Readiness: readiness,
		Garment:   garment.NewHandler(garmentService),
		Intake:    intake.NewHandler(intake.NewService(garmentService, analysis.Disabled{}, notices, logger, time.Second)),
		Outfit:    outfit.NewHandler(outfitService),
		Profile:   profile.NewHandler(profile.NewService(profileStore, logger)),
		Stats:     stats.NewHandler(catalog, collection, stats.NewAggregator(time.Now)),
		Backup:    backup.NewHandler(backup.NewService(catalog, collection, profileStore, logger)),
		Notices:   notices,
	})
}

func call(t *testing.T, handler http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, httptest.NewRequest(method, path, reader))
	return recorder
}

func data[T any](t *testing.T, recorder *httptest.ResponseRecorder) T {
	t.Helper()

	var envelope struct {
		Data T `json:"data"`
	}
	require.NoError(t, json.NewDecoder(recorder.Body).Decode(&envelope))
	return envelope.Data
}

/*
TestRouter_Health verifies liveness and a failing readiness check.
*/
func TestRouter_Health(t *testing.T) {
	store := kvstore.NewMemory()

	router := newStack(t, store, store.Ping)
	assert.Equal(t, http.StatusOK, call(t, router, http.MethodGet, "/health", "").Code)
	assert.Equal(t, http.StatusOK, call(t, router, http.MethodGet, "/ready", "").Code)

	down := newStack(t, store, func(context.Context) error { return errors.New("connection refused") })
	recorder := call(t, down, http.MethodGet, "/ready", "")
	assert.Equal(t, http.StatusServiceUnavailable, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "degraded")
}

/*
TestRouter_ComposeAndStats saves an outfit from two catalog garments and reads the stats.
*/
func TestRouter_ComposeAndStats(t *testing.T) {
	store := kvstore.NewMemory()
	router := newStack(t, store, store.Ping)

	garments := data[[]garment.Garment](t, call(t, router, http.MethodGet, "/api/v1/garments?category=Tops", ""))
	require.NotEmpty(t, garments)
	top := garments[0]

	shoes := data[[]garment.Garment](t, call(t, router, http.MethodGet, "/api/v1/garments?category=Shoes", ""))
	require.NotEmpty(t, shoes)

	composition := data[outfit.Composition](t, call(t, router, http.MethodPost, "/api/v1/compositions", ""))
	for _, id := range []string{top.ID, shoes[0].ID} {
		recorder := call(t, router, http.MethodPost, "/api/v1/compositions/"+composition.ID+"/garments/"+id, "")
		require.Equal(t, http.StatusOK, recorder.Code)
	}

	recorder := call(t, router, http.MethodPost, "/api/v1/compositions/"+composition.ID+"/save", `{"name":"Weekend"}`)
	require.Equal(t, http.StatusCreated, recorder.Code)
	saved := data[outfit.Outfit](t, recorder)
	assert.Less(t, saved.Positions[top.ID].Y, saved.Positions[shoes[0].ID].Y)

	related := data[[]outfit.Outfit](t, call(t, router, http.MethodGet, "/api/v1/garments/"+top.ID+"/outfits", ""))
	require.Len(t, related, 1)

	report := data[stats.Report](t, call(t, router, http.MethodGet, "/api/v1/stats", ""))
	assert.Equal(t, 6, report.TotalCount)
	assert.Equal(t, 1, report.OutfitCount)

	stored, err := store.Get(t.Context(), "outfits_v2")
	require.NoError(t, err)
	assert.Contains(t, string(stored), "Weekend")
}

/*
TestRouter_QuotaNotice verifies a rejected write surfaces on /notices.
*/
func TestRouter_QuotaNotice(t *testing.T) {
	store := kvstore.WithQuota(kvstore.NewMemory(), 64)
	router := newStack(t, store, store.Ping)

	recorder := call(t, router, http.MethodPut, "/api/v1/profile", `{"height":"170","weight":"60","chest":"88","waist":"68","hips":"92"}`)
	require.Equal(t, http.StatusOK, recorder.Code, "the in-memory state still changes")
	assert.Equal(t, "1", recorder.Header().Get(constants.HeaderXPendingNotices))

	pending := data[[]notice.Notice](t, call(t, router, http.MethodGet, "/api/v1/notices", ""))
	require.Len(t, pending, 1)
	assert.Equal(t, notice.CodeStorageQuota, pending[0].Code)

	assert.Empty(t, data[[]notice.Notice](t, call(t, router, http.MethodGet, "/api/v1/notices", "")))
}

/*
TestRouter_NotFound verifies unknown resources use the error envelope.
*/
func TestRouter_NotFound(t *testing.T) {
	store := kvstore.NewMemory()
	router := newStack(t, store, store.Ping)

	recorder := call(t, router, http.MethodGet, "/api/v1/outfits/missing", "")
	assert.Equal(t, http.StatusNotFound, recorder.Code)
	assert.Contains(t, recorder.Body.String(), `"code":"NOT_FOUND"`)
}
