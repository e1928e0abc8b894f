// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package notice queues user-visible warnings raised outside a request.

Storage quota failures and failed photo analyses do not fail the action that
caused them. They are posted here instead and handed to the client the next
time it polls the notice endpoint.
*/
package notice

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/taibuivan/closet/internal/platform/ctxutil"
)

// Well-known notice codes.
const (
	CodeStorageQuota   = "STORAGE_QUOTA_EXCEEDED"
	CodeAnalysisFailed = "ANALYSIS_FAILED"
)

// Notice is a single pending warning.
type Notice struct {
	Code    string    `json:"code"`
	Message string    `json:"message"`
	At      time.Time `json:"at"`
}

// Board is a bounded FIFO of notices. When full, the oldest notice is dropped.
type Board struct {
	mu       sync.Mutex
	items    []Notice
	capacity int
	now      func() time.Time
}

// NewBoard returns a board holding at most capacity notices.
func NewBoard(capacity int) *Board {
	if capacity < 1 {
		capacity = 1
	}
	return &Board{capacity: capacity, now: time.Now}
}

// Warn posts a notice and logs it with the context's logger.
func (b *Board) Warn(ctx context.Context, code, message string) {
	ctxutil.GetLogger(ctx).WarnContext(ctx, "user_notice_posted",
		slog.String("code", code),
		slog.String("message", message),
	)

	b.mu.Lock()
	defer b.mu.Unlock()

	if len(b.items) == b.capacity {
		b.items = b.items[1:]
	}
	b.items = append(b.items, Notice{Code: code, Message: message, At: b.now().UTC()})
}

// Drain returns every pending notice, oldest first, and empties the board.
func (b *Board) Drain() []Notice {
	b.mu.Lock()
	defer b.mu.Unlock()

	out := b.items
	b.items = nil
	if out == nil {
		out = []Notice{}
	}
	return out
}

// Len returns the number of pending notices.
func (b *Board) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.items)
}
