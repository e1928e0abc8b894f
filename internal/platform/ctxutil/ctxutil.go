// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package ctxutil carries the request ID and the request-scoped logger through
// [context.Context], including into background work such as photo analysis.
package ctxutil

import (
	"context"
	"log/slog"
)

// contextKey is unexported so no other package can collide with these values.
type contextKey int

const (
	requestIDKey contextKey = iota
	loggerKey
)

// # Request Tracing

// WithRequestID returns a new context with the provided request ID attached.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

// GetRequestID retrieves the request ID from the context.
// Returns an empty string if not found.
func GetRequestID(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}

// # Structured Logging

// WithLogger returns a new context with the provided logger attached.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, logger)
}

// GetLogger retrieves the logger from the context.
// If no logger is found, it returns the global default logger.
func GetLogger(ctx context.Context) *slog.Logger {
	logger, ok := ctx.Value(loggerKey).(*slog.Logger)
	if !ok || logger == nil {
		return slog.Default()
	}
	return logger
}

// WithAttrs returns ctx with its logger extended by attrs.
func WithAttrs(ctx context.Context, attrs ...any) context.Context {
	return WithLogger(ctx, GetLogger(ctx).With(attrs...))
}

// # Background Work

// Detach returns a background context that keeps the request ID and logger
// of ctx but none of its deadline or cancellation.
//
// Image analysis outlives the HTTP request that started it.
func Detach(ctx context.Context) context.Context {
	detached := context.Background()
	if id := GetRequestID(ctx); id != "" {
		detached = WithRequestID(detached, id)
	}
	return WithLogger(detached, GetLogger(ctx))
}
