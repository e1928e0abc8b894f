// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package dberr classifies low-level PostgreSQL errors for the storage layer.
//
// It hides pgx types from callers: the key-value store only needs to know
// whether a row was missing or whether the database refused a write for
// capacity reasons.
package dberr

import (
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// IsNoRows reports whether err means the queried row does not exist.
func IsNoRows(err error) bool {
	return errors.Is(err, pgx.ErrNoRows)
}

// IsCapacity reports whether err is a PostgreSQL resource-exhaustion error.
func IsCapacity(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}

	switch pgErr.Code {
	case pgerrcode.DiskFull, pgerrcode.OutOfMemory, pgerrcode.InsufficientResources:
		return true
	case pgerrcode.ProgramLimitExceeded:
		// raised by the kv_entries size trigger
		return true
	}
	return false
}

// Wrap annotates err with the storage action that produced it.
func Wrap(err error, action string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("postgres: %s: %w", action, err)
}
