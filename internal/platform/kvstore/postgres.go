// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package kvstore

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/taibuivan/closet/internal/platform/database/schema"
	"github.com/taibuivan/closet/internal/platform/dberr"
)

// DB is the part of *pgxpool.Pool the store uses.
type DB interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Ping(ctx context.Context) error
}

// Postgres is a [Store] backed by the closet.kv_entries table.
type Postgres struct {
	db DB
}

// NewPostgres wraps a connected pool. The table is created by the migrations.
func NewPostgres(db DB) *Postgres {
	return &Postgres{db: db}
}

func (p *Postgres) Get(ctx context.Context, key string) ([]byte, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1`,
		schema.KVEntry.Value, schema.KVEntry.Table, schema.KVEntry.Key,
	)

	var value []byte
	err := p.db.QueryRow(ctx, query, key).Scan(&value)
	if dberr.IsNoRows(err) {
		return nil, ErrNotFound
	}
	return value, dberr.Wrap(err, "get_kv_entry")
}

func (p *Postgres) Set(ctx context.Context, key string, value []byte) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s)
		VALUES ($1, $2, NOW())
		ON CONFLICT (%s) DO UPDATE SET %s = EXCLUDED.%s, %s = NOW()
	`,
		schema.KVEntry.Table, schema.KVEntry.Key, schema.KVEntry.Value, schema.KVEntry.UpdatedAt,
		schema.KVEntry.Key, schema.KVEntry.Value, schema.KVEntry.Value, schema.KVEntry.UpdatedAt,
	)

	_, err := p.db.Exec(ctx, query, key, clone(value))
	if dberr.IsCapacity(err) {
		return fmt.Errorf("kvstore: postgres set %q: %w", key, ErrQuotaExceeded)
	}
	return dberr.Wrap(err, "set_kv_entry")
}

func (p *Postgres) Delete(ctx context.Context, key string) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, schema.KVEntry.Table, schema.KVEntry.Key)

	_, err := p.db.Exec(ctx, query, key)
	return dberr.Wrap(err, "delete_kv_entry")
}

func (p *Postgres) Keys(ctx context.Context, prefix string) ([]string, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE starts_with(%s, $1)`,
		schema.KVEntry.Key, schema.KVEntry.Table, schema.KVEntry.Key,
	)

	rows, err := p.db.Query(ctx, query, prefix)
	if err != nil {
		return nil, dberr.Wrap(err, "list_kv_entries")
	}
	defer rows.Close()

	var keys []string
	for rows.Next() {
		var key string
		if err := rows.Scan(&key); err != nil {
			return nil, dberr.Wrap(err, "scan_kv_entry")
		}
		keys = append(keys, key)
	}
	return keys, dberr.Wrap(rows.Err(), "list_kv_entries")
}

func (p *Postgres) Ping(ctx context.Context) error {
	return p.db.Ping(ctx)
}
