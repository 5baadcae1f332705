// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 AgroDesk Contributors

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/agrodesk/agrodesk/internal/logger"
)

// sqlStore is the [CollectionStore] shared by the PostgreSQL and SQLite
// backends. Each collection occupies one row of the "collections" table:
//
//	collections(key TEXT PRIMARY KEY, payload TEXT NOT NULL, version BIGINT NOT NULL)
//
// The optimistic-concurrency contract is enforced in SQL: updates are
// conditioned on the stored version, and a lost race surfaces as zero
// affected rows (or as a unique violation when two writers insert the same
// key), both mapped to [ErrVersionConflict].
type sqlStore struct {
	db      *sql.DB
	builder sq.StatementBuilderType

	// isUniqueViolation classifies driver-specific duplicate-key errors.
	isUniqueViolation func(error) bool

	logger *logger.Logger
}

func (s *sqlStore) Get(ctx context.Context, key string) (Collection, error) {
	log := logger.FromContext(ctx)

	query, args, err := s.builder.
		Select("payload", "version").
		From("collections").
		Where(sq.Eq{"key": key}).
		ToSql()
	if err != nil {
		log.Err(err).Str("collection", key).Msg("failed to build select query")
		return Collection{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var (
		payload []byte
		version int64
	)
	row := s.db.QueryRowContext(ctx, query, args...)
	if err := row.Scan(&payload, &version); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Collection{Version: 0}, nil
		}
		log.Err(err).Str("collection", key).Msg("failed to scan collection row")
		return Collection{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return Collection{Records: payload, Version: version}, nil
}

func (s *sqlStore) Put(ctx context.Context, key string, col Collection) error {
	log := logger.FromContext(ctx)

	if col.Version == 0 {
		return s.insert(ctx, key, col)
	}

	query, args, err := s.builder.
		Update("collections").
		Set("payload", []byte(col.Records)).
		Set("version", col.Version+1).
		Where(sq.Eq{"key": key, "version": col.Version}).
		ToSql()
	if err != nil {
		log.Err(err).Str("collection", key).Msg("failed to build update query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("collection", key).Msg("failed to execute collection update")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if affected == 0 {
		log.Warn().
			Str("collection", key).
			Int64("version", col.Version).
			Msg("collection changed since read, rejecting stale write")
		return ErrVersionConflict
	}

	return nil
}

// insert creates the first version of a collection. A concurrent first
// write loses the race as a primary-key violation and is reported as a
// version conflict, matching the semantics of the in-memory backend.
func (s *sqlStore) insert(ctx context.Context, key string, col Collection) error {
	log := logger.FromContext(ctx)

	query, args, err := s.builder.
		Insert("collections").
		Columns("key", "payload", "version").
		Values(key, []byte(col.Records), 1).
		ToSql()
	if err != nil {
		log.Err(err).Str("collection", key).Msg("failed to build insert query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err := s.db.ExecContext(ctx, query, args...); err != nil {
		if s.isUniqueViolation != nil && s.isUniqueViolation(err) {
			return ErrVersionConflict
		}
		log.Err(err).Str("collection", key).Msg("failed to execute collection insert")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return nil
}

func (s *sqlStore) Close() error {
	return s.db.Close()
}
