// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package redis opens the client behind the "redis" store driver.

Each aggregate is one string value under a configurable key prefix, so the
pool stays small. Redis maxmemory is the effective storage quota: an OOM
reply on write is surfaced as a quota error by the kvstore adapter.
*/
package redis

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/taibuivan/closet/internal/platform/constants"
)

const (
	dialTimeout = 3 * time.Second
	ioTimeout   = 2 * time.Second
)

// NewClient connects to redisURL and pings it once so a wrong URL fails at
// startup rather than on the first save.
func NewClient(ctx context.Context, redisURL string, logger *slog.Logger) (*redis.Client, error) {
	options, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("redis: invalid URL: %w", err)
	}

	// One writer, three small values.
	options.PoolSize = 4
	options.MinIdleConns = 1
	options.MaxIdleConns = 2
	options.ClientName = constants.AppName
	options.DialTimeout = dialTimeout
	options.ReadTimeout = ioTimeout
	options.WriteTimeout = ioTimeout

	client := redis.NewClient(options)

	pingCtx, cancel := context.WithTimeout(ctx, ioTimeout)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis: ping %s: %w", options.Addr, err)
	}

	logger.Info("redis_client_connected",
		slog.String("addr", options.Addr),
		slog.Int("db", options.DB),
	)
	return client, nil
}
