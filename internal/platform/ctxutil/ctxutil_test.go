// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package ctxutil_test

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/taibuivan/closet/internal/platform/ctxutil"
)

/*
TestContext_RequestID verifies that Request IDs can be injected and retrieved.
*/
func TestContext_RequestID(t *testing.T) {
	ctx := context.Background()
	requestID := "test-request-id"

	// 1. Initially should be empty
	assert.Empty(t, ctxutil.GetRequestID(ctx))

	// 2. Inject and retrieve
	ctx = ctxutil.WithRequestID(ctx, requestID)
	assert.Equal(t, requestID, ctxutil.GetRequestID(ctx))
}

/*
TestContext_Logger verifies that a custom logger can be stored in context.
*/
func TestContext_Logger(t *testing.T) {
	ctx := context.Background()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	// 1. Initially should return the default logger
	assert.Equal(t, slog.Default(), ctxutil.GetLogger(ctx))

	// 2. Inject and retrieve
	ctx = ctxutil.WithLogger(ctx, logger)
	assert.Equal(t, logger, ctxutil.GetLogger(ctx))
}

/*
TestContext_Detach verifies that detached contexts survive cancellation of the parent.
*/
func TestContext_Detach(t *testing.T) {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	parent, cancel := context.WithTimeout(context.Background(), time.Minute)
	parent = ctxutil.WithLogger(ctxutil.WithRequestID(parent, "rid-1"), logger)

	detached := ctxutil.Detach(parent)
	cancel()

	assert.Error(t, parent.Err())
	assert.NoError(t, detached.Err())
	assert.Equal(t, "rid-1", ctxutil.GetRequestID(detached))
	assert.Equal(t, logger, ctxutil.GetLogger(detached))
}

/*
TestContext_WithAttrs verifies attributes are added to the carried logger.
*/
func TestContext_WithAttrs(t *testing.T) {
	var buf bytes.Buffer
	ctx := ctxutil.WithLogger(context.Background(), slog.New(slog.NewTextHandler(&buf, nil)))

	ctx = ctxutil.WithAttrs(ctx, slog.String("draft_id", "d-1"))
	ctxutil.GetLogger(ctx).Info("analysis_started")

	assert.Contains(t, buf.String(), "draft_id=d-1")
}
